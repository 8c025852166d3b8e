// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Semigroup merges two values of the same type.
// Combine must be associative.
type Semigroup[A any] interface {
	Combine(x, y A) A
}

// Monoid is a Semigroup with an identity element:
// Combine(Empty(), x) == x == Combine(x, Empty()).
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

// Number is the set of types Sum and Product accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SemigroupFunc adapts an ordinary function to Semigroup.
type SemigroupFunc[A any] func(x, y A) A

// Combine calls f(x, y).
func (f SemigroupFunc[A]) Combine(x, y A) A { return f(x, y) }

// MonoidOf builds a Monoid from a combining function and its identity.
func MonoidOf[A any](combine func(x, y A) A, empty A) Monoid[A] {
	return funcMonoid[A]{combine: combine, empty: empty}
}

type funcMonoid[A any] struct {
	combine func(x, y A) A
	empty   A
}

func (m funcMonoid[A]) Combine(x, y A) A { return m.combine(x, y) }
func (m funcMonoid[A]) Empty() A         { return m.empty }

// Sum is the additive monoid.
type Sum[N Number] struct{}

func (Sum[N]) Combine(x, y N) N { return x + y }
func (Sum[N]) Empty() N         { return 0 }

// Product is the multiplicative monoid.
type Product[N Number] struct{}

func (Product[N]) Combine(x, y N) N { return x * y }
func (Product[N]) Empty() N         { return 1 }

// StringMonoid concatenates strings.
type StringMonoid struct{}

func (StringMonoid) Combine(x, y string) string { return x + y }
func (StringMonoid) Empty() string              { return "" }

// SliceMonoid concatenates slices.
type SliceMonoid[A any] struct{}

func (SliceMonoid[A]) Combine(x, y []A) []A { return ConcatSlice(x, y) }
func (SliceMonoid[A]) Empty() []A           { return EmptySlice[A]() }

// OptionMonoid lifts a Semigroup on A to a Monoid on Option[A].
// None is the identity.
type OptionMonoid[A any] struct {
	Inner Semigroup[A]
}

// OptionMonoidOf returns the Option monoid over s.
func OptionMonoidOf[A any](s Semigroup[A]) OptionMonoid[A] {
	return OptionMonoid[A]{Inner: s}
}

func (m OptionMonoid[A]) Combine(x, y Option[A]) Option[A] { return CombineOption(m.Inner, x, y) }
func (OptionMonoid[A]) Empty() Option[A]                   { return None[A]() }

// FirstOption is the monoid of OrOption: the first present value wins.
type FirstOption[A any] struct{}

func (FirstOption[A]) Combine(x, y Option[A]) Option[A] { return OrOption(x, y) }
func (FirstOption[A]) Empty() Option[A]                 { return None[A]() }

// ResultSemigroup keeps the first success.
// It has no identity element because no failure value is canonical.
type ResultSemigroup[E, A any] struct{}

func (ResultSemigroup[E, A]) Combine(x, y Result[E, A]) Result[E, A] { return CombineResult(x, y) }

// FoldMonoid combines xs from left to right starting at m.Empty().
func FoldMonoid[A any](m Monoid[A], xs ...A) A {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// CombineAll reduces a non-empty list with a Semigroup.
// Returns None when xs is empty.
func CombineAll[A any](s Semigroup[A], xs ...A) Option[A] {
	if len(xs) == 0 {
		return None[A]()
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = s.Combine(acc, x)
	}
	return Some(acc)
}
