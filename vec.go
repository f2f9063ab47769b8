package raster

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint for Vec arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec is a fixed-arity numeric tuple. It is used both for pixel coordinates
// and for arbitrary small numeric tuples. All operations have value
// semantics: they allocate a fresh result and never alias their operands.
//
// Binary operations between two vectors are element-wise and truncate to the
// shorter arity. Scalar operands broadcast: the scalar contributes the same
// value at every position and never constrains the result arity.
type Vec[T Number] []T

// V constructs a vector from its elements.
func V[T Number](elems ...T) Vec[T] {
	return Vec[T](elems)
}

func reduce[T Number](lhs, rhs Vec[T], op func(T, T) T) Vec[T] {
	n := min(len(lhs), len(rhs))
	w := make(Vec[T], n)
	for i := 0; i < n; i++ {
		w[i] = op(lhs[i], rhs[i])
	}
	return w
}

func reduceScalar[T Number](v Vec[T], op func(T) T) Vec[T] {
	w := make(Vec[T], len(v))
	for i, e := range v {
		w[i] = op(e)
	}
	return w
}

// Add returns the element-wise sum of v and w, truncated to the shorter arity.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	return reduce(v, w, func(a, b T) T { return a + b })
}

// Sub returns the element-wise difference of v and w, truncated to the
// shorter arity.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	return reduce(v, w, func(a, b T) T { return a - b })
}

// Mul returns the element-wise product of v and w, truncated to the shorter
// arity.
func (v Vec[T]) Mul(w Vec[T]) Vec[T] {
	return reduce(v, w, func(a, b T) T { return a * b })
}

// Div returns the element-wise quotient of v and w, truncated to the shorter
// arity. Division by zero follows the element type's native behavior.
func (v Vec[T]) Div(w Vec[T]) Vec[T] {
	return reduce(v, w, func(a, b T) T { return a / b })
}

// AddScalar returns v with s added to every element.
func (v Vec[T]) AddScalar(s T) Vec[T] {
	return reduceScalar(v, func(a T) T { return a + s })
}

// SubScalar returns v with s subtracted from every element.
func (v Vec[T]) SubScalar(s T) Vec[T] {
	return reduceScalar(v, func(a T) T { return a - s })
}

// MulScalar returns v with every element multiplied by s.
func (v Vec[T]) MulScalar(s T) Vec[T] {
	return reduceScalar(v, func(a T) T { return a * s })
}

// DivScalar returns v with every element divided by s. Division by zero
// follows the element type's native behavior.
func (v Vec[T]) DivScalar(s T) Vec[T] {
	return reduceScalar(v, func(a T) T { return a / s })
}

// ScalarSub returns the vector whose elements are s minus the corresponding
// element of v. The scalar-first forms of addition and multiplication are
// commutative, use AddScalar and MulScalar for those.
func ScalarSub[T Number](s T, v Vec[T]) Vec[T] {
	return reduceScalar(v, func(a T) T { return s - a })
}

// ScalarDiv returns the vector whose elements are s divided by the
// corresponding element of v.
func ScalarDiv[T Number](s T, v Vec[T]) Vec[T] {
	return reduceScalar(v, func(a T) T { return s / a })
}

// XY returns the first two elements. It panics when v has fewer than two.
func (v Vec[T]) XY() (T, T) {
	return v[0], v[1]
}

// String formats the vector as (e0, e1, ..., eN-1). The empty vector
// formats as ().
func (v Vec[T]) String() string {
	sb := strings.Builder{}
	sb.WriteByte('(')
	for i, e := range v {
		if 0 < i {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(')')
	return sb.String()
}
