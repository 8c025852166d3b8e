// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import "fmt"

// Result represents a value that is either a failure (Err) or a success (Ok).
// The failure type E comes first so that Result[E, ·] reads as a
// one-parameter container once E is fixed.
type Result[E, A any] struct {
	isOk bool
	err  E
	ok   A
}

// Ok creates a success value.
func Ok[E, A any](a A) Result[E, A] {
	return Result[E, A]{isOk: true, ok: a}
}

// Err creates a failure value.
func Err[E, A any](e E) Result[E, A] {
	return Result[E, A]{isOk: false, err: e}
}

// FromError converts Go's (value, error) convention into a Result.
// A non-nil err yields Err(err) and a is discarded.
func FromError[A any](a A, err error) Result[error, A] {
	if err != nil {
		return Err[error, A](err)
	}
	return Ok[error](a)
}

// IsOk returns true if this is a success.
func (r Result[E, A]) IsOk() bool {
	return r.isOk
}

// IsErr returns true if this is a failure.
func (r Result[E, A]) IsErr() bool {
	return !r.isOk
}

// GetOk returns the success value and true, or zero and false.
func (r Result[E, A]) GetOk() (A, bool) {
	if r.isOk {
		return r.ok, true
	}
	var zero A
	return zero, false
}

// GetErr returns the failure value and true, or zero and false.
func (r Result[E, A]) GetErr() (E, bool) {
	if !r.isOk {
		return r.err, true
	}
	var zero E
	return zero, false
}

// GetOr returns the success value, or fallback on failure.
func (r Result[E, A]) GetOr(fallback A) A {
	if r.isOk {
		return r.ok
	}
	return fallback
}

// Unpack returns both channels; exactly one of them is meaningful.
// For E = error this is the usual (value, err) pair.
func (r Result[E, A]) Unpack() (A, E) {
	return r.ok, r.err
}

// String renders Ok(v) or Err(e).
func (r Result[E, A]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MatchResult pattern matches on the Result, calling onErr or onOk.
func MatchResult[E, A, T any](r Result[E, A], onErr func(E) T, onOk func(A) T) T {
	if r.isOk {
		return onOk(r.ok)
	}
	return onErr(r.err)
}

// MapResult applies f to the success value. Failures pass through.
func MapResult[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if r.isOk {
		return Ok[E](f(r.ok))
	}
	return Err[E, B](r.err)
}

// MapErrResult applies g to the failure value. Successes pass through.
func MapErrResult[E, F, A any](r Result[E, A], g func(E) F) Result[F, A] {
	if r.isOk {
		return Ok[F](r.ok)
	}
	return Err[F, A](g(r.err))
}

// BimapResult transforms the success channel with f and the failure channel with g.
func BimapResult[E, F, A, B any](r Result[E, A], f func(A) B, g func(E) F) Result[F, B] {
	if r.isOk {
		return Ok[F](f(r.ok))
	}
	return Err[F, B](g(r.err))
}

// PureResult lifts a into a success.
func PureResult[E, A any](a A) Result[E, A] {
	return Ok[E](a)
}

// ApResult applies a successful function to a successful value.
//
// The function operand is inspected first, so when both operands fail the
// failure of rf is returned. This first-failure-wins order is part of the
// contract.
func ApResult[E, A, B any](rf Result[E, func(A) B], r Result[E, A]) Result[E, B] {
	if !rf.isOk {
		return Err[E, B](rf.err)
	}
	if !r.isOk {
		return Err[E, B](r.err)
	}
	return Ok[E](rf.ok(r.ok))
}

// FlatMapResult sequences two Result computations.
func FlatMapResult[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if r.isOk {
		return f(r.ok)
	}
	return Err[E, B](r.err)
}

// FlattenResult removes one level of nesting.
func FlattenResult[E, A any](rr Result[E, Result[E, A]]) Result[E, A] {
	if rr.isOk {
		return rr.ok
	}
	return Err[E, A](rr.err)
}

// FoldLeftResult combines init with the success value once.
// A failure contributes nothing and returns init.
func FoldLeftResult[E, A, B any](r Result[E, A], init B, f func(B, A) B) B {
	if r.isOk {
		return f(init, r.ok)
	}
	return init
}

// FoldRightResult is FoldLeftResult with the arguments of f swapped.
func FoldRightResult[E, A, B any](r Result[E, A], init B, f func(A, B) B) B {
	if r.isOk {
		return f(r.ok, init)
	}
	return init
}

// OrResult returns x if it is a success, otherwise y.
func OrResult[E, A any](x, y Result[E, A]) Result[E, A] {
	if x.isOk {
		return x
	}
	return y
}

// CombineResult merges two Results: the first success wins, and a failure
// yields the other operand.
func CombineResult[E, A any](x, y Result[E, A]) Result[E, A] {
	return OrResult(x, y)
}

// ResultToOption discards the failure value.
func ResultToOption[E, A any](r Result[E, A]) Option[A] {
	if r.isOk {
		return Some(r.ok)
	}
	return None[A]()
}
