// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import "github.com/samber/lo"

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair builds a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Swap exchanges the components.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}

// Map2Option combines two present values with f.
func Map2Option[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	if oa.ok && ob.ok {
		return Some(f(oa.value, ob.value))
	}
	return None[C]()
}

// ProductOption pairs two present values.
func ProductOption[A, B any](oa Option[A], ob Option[B]) Option[Pair[A, B]] {
	return Map2Option(oa, ob, MakePair[A, B])
}

// Map2Slice applies f to every combination, outer loop over xs.
func Map2Slice[A, B, C any](xs []A, ys []B, f func(A, B) C) []C {
	return lo.CrossJoinBy2(xs, ys, f)
}

// ProductSlice is the Cartesian product of xs and ys.
func ProductSlice[A, B any](xs []A, ys []B) []Pair[A, B] {
	return Map2Slice(xs, ys, MakePair[A, B])
}

// Map2Result combines two successes with f.
// The failure of ra is preferred when both fail.
func Map2Result[E, A, B, C any](ra Result[E, A], rb Result[E, B], f func(A, B) C) Result[E, C] {
	if !ra.isOk {
		return Err[E, C](ra.err)
	}
	if !rb.isOk {
		return Err[E, C](rb.err)
	}
	return Ok[E](f(ra.ok, rb.ok))
}

// ProductResult pairs two successes.
func ProductResult[E, A, B any](ra Result[E, A], rb Result[E, B]) Result[E, Pair[A, B]] {
	return Map2Result(ra, rb, MakePair[A, B])
}
