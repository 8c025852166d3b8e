// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import "fmt"

// Option holds zero or one value of type A.
// The zero Option is None.
type Option[A any] struct {
	ok    bool
	value A
}

// Some creates a present Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// GetOr returns the value, or fallback when absent.
func (o Option[A]) GetOr(fallback A) A {
	if o.ok {
		return o.value
	}
	return fallback
}

// MustGet returns the value. Panics if absent.
func (o Option[A]) MustGet() A {
	if !o.ok {
		panic("kind: MustGet on None")
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[A]) Ptr() *A {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// ToSlice returns a one-element slice when present and nil otherwise.
func (o Option[A]) ToSlice() []A {
	if !o.ok {
		return nil
	}
	return []A{o.value}
}

// String renders Some(v) or None.
func (o Option[A]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to the held value. None stays None.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// PureOption lifts a into a present Option.
func PureOption[A any](a A) Option[A] {
	return Some(a)
}

// ApOption applies a held function to a held value.
// The result is present only when both operands are present.
func ApOption[A, B any](of Option[func(A) B], o Option[A]) Option[B] {
	if of.ok && o.ok {
		return Some(of.value(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.ok {
		return f(o.value)
	}
	return None[B]()
}

// FlattenOption removes one level of nesting.
func FlattenOption[A any](oo Option[Option[A]]) Option[A] {
	if oo.ok {
		return oo.value
	}
	return None[A]()
}

// FilterOption keeps the value only if pred holds for it.
func FilterOption[A any](o Option[A], pred func(A) bool) Option[A] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[A]()
}

// FoldLeftOption combines init with the held value once.
// An absent Option returns init unchanged.
func FoldLeftOption[A, B any](o Option[A], init B, f func(B, A) B) B {
	if o.ok {
		return f(init, o.value)
	}
	return init
}

// FoldRightOption is FoldLeftOption with the arguments of f swapped.
func FoldRightOption[A, B any](o Option[A], init B, f func(A, B) B) B {
	if o.ok {
		return f(o.value, init)
	}
	return init
}

// OrOption returns x if present, otherwise y.
func OrOption[A any](x, y Option[A]) Option[A] {
	if x.ok {
		return x
	}
	return y
}

// EmptyOption is the identity of OrOption.
func EmptyOption[A any]() Option[A] {
	return None[A]()
}

// CombineOption merges two Options using s for their contents.
// None is the identity on either side.
func CombineOption[A any](s Semigroup[A], x, y Option[A]) Option[A] {
	switch {
	case !x.ok:
		return y
	case !y.ok:
		return x
	default:
		return Some(s.Combine(x.value, y.value))
	}
}

// HeadOption returns the first element of xs, or None when xs is empty.
func HeadOption[A any](xs []A) Option[A] {
	if len(xs) == 0 {
		return None[A]()
	}
	return Some(xs[0])
}

// OptionToResult returns Ok for a present value and Err(e) otherwise.
func OptionToResult[E, A any](o Option[A], e E) Result[E, A] {
	if o.ok {
		return Ok[E](o.value)
	}
	return Err[E, A](e)
}
