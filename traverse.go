// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import "slices"

// Effect is the applicative structure a traversal runs in.
//
// Type parameters:
//   - B: element type produced by the traversal function
//   - S: container being rebuilt (e.g. []B, Option[B])
//   - GB: the effect applied to B (e.g. Option[B])
//   - GS: the effect applied to S (e.g. Option[[]B])
type Effect[B, S, GB, GS any] struct {
	// Pure lifts a rebuilt container into the effect.
	Pure func(S) GS

	// Map2 combines the accumulated effect with the next element's effect.
	// The accumulator gs is evaluated first.
	Map2 func(gs GS, gb GB, f func(S, B) S) GS

	// Halted reports that gs is terminal and the traversal can stop.
	// Nil means the effect never short-circuits.
	Halted func(gs GS) bool

	// Linear promises that Map2 hands each accumulated S to f at most once.
	// Traversals may then append in place. The zero value copies on every
	// append, which is required for effects that branch.
	Linear bool
}

// OptionEffect runs a traversal in Option: any absent element makes the
// whole traversal absent.
func OptionEffect[B, S any]() Effect[B, S, Option[B], Option[S]] {
	return Effect[B, S, Option[B], Option[S]]{
		Pure:   PureOption[S],
		Map2:   Map2Option[S, B, S],
		Halted: Option[S].IsNone,
		Linear: true,
	}
}

// ResultEffect runs a traversal in Result: the first failure encountered
// becomes the result.
func ResultEffect[E, B, S any]() Effect[B, S, Result[E, B], Result[E, S]] {
	return Effect[B, S, Result[E, B], Result[E, S]]{
		Pure:   PureResult[E, S],
		Map2:   Map2Result[E, S, B, S],
		Halted: Result[E, S].IsErr,
		Linear: true,
	}
}

// SliceEffect runs a traversal in the nondeterminism of slices: every
// combination of choices is produced, and an element with no choices makes
// the whole traversal empty. The choices of the newest element vary
// slowest, so traversing [1, 2] with i -> [i, 10i] yields
// [[1 2] [10 2] [1 20] [10 20]].
func SliceEffect[B, S any]() Effect[B, S, []B, []S] {
	return Effect[B, S, []B, []S]{
		Pure: PureSlice[S],
		Map2: func(gs []S, gb []B, f func(S, B) S) []S {
			return Map2Slice(gb, gs, func(b B, s S) S { return f(s, b) })
		},
		Halted: func(gs []S) bool {
			return len(gs) == 0
		},
	}
}

func appendOne[B any](s []B, b B) []B {
	return append(s, b)
}

// appendFresh appends b without writing into the backing array of s.
func appendFresh[B any](s []B, b B) []B {
	return append(slices.Clip(s), b)
}

// TraverseSlice applies f to every element of xs and collects the results
// inside the effect, preserving order. Elements after a halting state are
// not visited.
func TraverseSlice[A, B, GB, GS any](xs []A, eff Effect[B, []B, GB, GS], f func(A) GB) GS {
	push := appendFresh[B]
	if eff.Linear {
		push = appendOne[B]
	}
	acc := eff.Pure(make([]B, 0, len(xs)))
	for _, x := range xs {
		if eff.Halted != nil && eff.Halted(acc) {
			return acc
		}
		acc = eff.Map2(acc, f(x), push)
	}
	return acc
}

// TraverseOption applies f to the held value and wraps the outcome in Some.
// None becomes Pure(None).
func TraverseOption[A, B, GB, GS any](o Option[A], eff Effect[B, Option[B], GB, GS], f func(A) GB) GS {
	if !o.ok {
		return eff.Pure(None[B]())
	}
	return eff.Map2(eff.Pure(None[B]()), f(o.value), func(_ Option[B], b B) Option[B] {
		return Some(b)
	})
}

// TraverseResult applies f to the success value and wraps the outcome in Ok.
// A failure becomes Pure(Err(e)).
func TraverseResult[E, A, B, GB, GS any](r Result[E, A], eff Effect[B, Result[E, B], GB, GS], f func(A) GB) GS {
	if !r.isOk {
		return eff.Pure(Err[E, B](r.err))
	}
	return eff.Map2(eff.Pure(Err[E, B](r.err)), f(r.ok), func(_ Result[E, B], b B) Result[E, B] {
		return Ok[E](b)
	})
}

// TraverseSliceOption is TraverseSlice in the Option effect.
func TraverseSliceOption[A, B any](xs []A, f func(A) Option[B]) Option[[]B] {
	return TraverseSlice(xs, OptionEffect[B, []B](), f)
}

// TraverseSliceResult is TraverseSlice in the Result effect.
func TraverseSliceResult[E, A, B any](xs []A, f func(A) Result[E, B]) Result[E, []B] {
	return TraverseSlice(xs, ResultEffect[E, B, []B](), f)
}

// TraverseSliceSlice is TraverseSlice in the slice effect.
func TraverseSliceSlice[A, B any](xs []A, f func(A) []B) [][]B {
	return TraverseSlice(xs, SliceEffect[B, []B](), f)
}

// SequenceSliceOption turns a slice of Options into an Option of a slice.
func SequenceSliceOption[A any](xs []Option[A]) Option[[]A] {
	return TraverseSliceOption(xs, Identity[Option[A]])
}

// SequenceSliceResult turns a slice of Results into a Result of a slice.
func SequenceSliceResult[E, A any](xs []Result[E, A]) Result[E, []A] {
	return TraverseSliceResult(xs, Identity[Result[E, A]])
}

// SequenceOptionSlice turns an optional slice into the slice of its
// Some-wrapped elements. None becomes [None].
func SequenceOptionSlice[A any](o Option[[]A]) []Option[A] {
	return TraverseOption(o, SliceEffect[A, Option[A]](), Identity[[]A])
}

// SequenceOptionResult swaps an Option around a Result.
func SequenceOptionResult[E, A any](o Option[Result[E, A]]) Result[E, Option[A]] {
	return TraverseOption(o, ResultEffect[E, A, Option[A]](), Identity[Result[E, A]])
}

// SequenceResultOption swaps a Result around an Option.
func SequenceResultOption[E, A any](r Result[E, Option[A]]) Option[Result[E, A]] {
	return TraverseResult(r, OptionEffect[A, Result[E, A]](), Identity[Option[A]])
}
