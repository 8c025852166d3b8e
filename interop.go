// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import "github.com/samber/mo"

// Conversions to and from github.com/samber/mo.

// OptionFromMo converts a mo.Option.
func OptionFromMo[A any](o mo.Option[A]) Option[A] {
	if v, ok := o.Get(); ok {
		return Some(v)
	}
	return None[A]()
}

// OptionToMo converts to a mo.Option.
func OptionToMo[A any](o Option[A]) mo.Option[A] {
	if o.ok {
		return mo.Some(o.value)
	}
	return mo.None[A]()
}

// ResultFromMo converts a mo.Result, whose failure type is always error.
func ResultFromMo[A any](r mo.Result[A]) Result[error, A] {
	v, err := r.Get()
	return FromError(v, err)
}

// ResultToMo converts an error-typed Result to a mo.Result.
func ResultToMo[A any](r Result[error, A]) mo.Result[A] {
	if r.isOk {
		return mo.Ok(r.ok)
	}
	return mo.Err[A](r.err)
}

// ResultFromEither converts a mo.Either, reading Left as failure and Right
// as success.
func ResultFromEither[E, A any](e mo.Either[E, A]) Result[E, A] {
	if v, ok := e.Right(); ok {
		return Ok[E](v)
	}
	l, _ := e.Left()
	return Err[E, A](l)
}

// ResultToEither converts to a mo.Either with the failure on the Left.
func ResultToEither[E, A any](r Result[E, A]) mo.Either[E, A] {
	if r.isOk {
		return mo.Right[E](r.ok)
	}
	return mo.Left[E, A](r.err)
}
