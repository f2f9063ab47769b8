package raster

// EncodeRGB packs 8-bit red, green and blue channels into a 32-bit pixel as
// R | G<<8 | B<<16 with a constant 0xFF high byte. The high byte is a fixed
// marker, not a semantic alpha channel.
func EncodeRGB(r, g, b uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xFF<<24
}

// DecodeRGB extracts the red, green and blue channels from a packed pixel,
// discarding the high byte. It is the inverse of EncodeRGB.
func DecodeRGB(c uint32) (uint8, uint8, uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// Basic packed colors.
const (
	Red   uint32 = 0xFF0000FF
	Green uint32 = 0xFF00FF00
	Blue  uint32 = 0xFFFF0000
)

// Gruvbox dark palette, packed.
const (
	GruvboxBg     uint32 = 0xFF282828
	GruvboxFg     uint32 = 0xFFB2DBEB
	GruvboxRed    uint32 = 0xFF3449FB
	GruvboxGreen  uint32 = 0xFF26BBB8
	GruvboxYellow uint32 = 0xFF2FBDFA
	GruvboxBlue   uint32 = 0xFF98A583
	GruvboxPurple uint32 = 0xFF9B86D3
	GruvboxAqua   uint32 = 0xFF7CC08E
	GruvboxGray   uint32 = 0xFF748392
	GruvboxOrange uint32 = 0xFF1980FE
)
