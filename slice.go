// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import (
	"slices"

	"github.com/samber/lo"
)

// Sequence operations over plain Go slices.
// A nil slice and an empty slice are the same sequence. No function here
// mutates its input; results never alias the backing array of an argument
// unless noted.

// MapSlice applies f to every element, preserving order and length.
func MapSlice[A, B any](xs []A, f func(A) B) []B {
	return lo.Map(xs, func(x A, _ int) B { return f(x) })
}

// PureSlice lifts a into a one-element slice.
func PureSlice[A any](a A) []A {
	return []A{a}
}

// ApSlice applies every function in fs to every value in xs.
// The outer loop runs over functions and the inner loop over values, so
// ApSlice([f, g], [x, y]) is [f(x), f(y), g(x), g(y)].
func ApSlice[A, B any](fs []func(A) B, xs []A) []B {
	return lo.CrossJoinBy2(fs, xs, func(f func(A) B, x A) B { return f(x) })
}

// FlatMapSlice applies f to every element and concatenates the results in order.
func FlatMapSlice[A, B any](xs []A, f func(A) []B) []B {
	return lo.FlatMap(xs, func(x A, _ int) []B { return f(x) })
}

// FlattenSlice concatenates nested slices in order.
func FlattenSlice[A any](xss [][]A) []A {
	return lo.Flatten(xss)
}

// FoldLeftSlice accumulates from the front: f(f(f(init, x0), x1), x2).
func FoldLeftSlice[A, B any](xs []A, init B, f func(B, A) B) B {
	return lo.Reduce(xs, func(acc B, x A, _ int) B { return f(acc, x) }, init)
}

// FoldRightSlice accumulates from the back: f(x0, f(x1, f(x2, init))).
func FoldRightSlice[A, B any](xs []A, init B, f func(A, B) B) B {
	return lo.ReduceRight(xs, func(acc B, x A, _ int) B { return f(x, acc) }, init)
}

// FoldMapSlice maps every element into a monoid and combines the results.
func FoldMapSlice[A, M any](m Monoid[M], xs []A, f func(A) M) M {
	return FoldLeftSlice(xs, m.Empty(), func(acc M, x A) M { return m.Combine(acc, f(x)) })
}

// ConcatSlice appends y to x in a fresh slice.
func ConcatSlice[A any](x, y []A) []A {
	return slices.Concat(x, y)
}

// EmptySlice is the identity of ConcatSlice.
func EmptySlice[A any]() []A {
	return nil
}

// ZipSlice pairs elements by index. The result has the length of the
// shorter input.
func ZipSlice[A, B any](xs []A, ys []B) []Pair[A, B] {
	n := min(len(xs), len(ys))
	return lo.Map(xs[:n], func(x A, i int) Pair[A, B] {
		return Pair[A, B]{Fst: x, Snd: ys[i]}
	})
}

// ReverseSlice returns the elements of xs in reverse order in a fresh slice.
func ReverseSlice[A any](xs []A) []A {
	out := slices.Clone(xs)
	slices.Reverse(out)
	return out
}
