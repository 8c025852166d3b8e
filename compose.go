// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Identity returns its argument.
func Identity[A any](a A) A { return a }

// Compose returns x -> g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and returns c.
func Const[A, C any](c C) func(A) C {
	return func(A) C { return c }
}

// Flip swaps the arguments of a binary function.
// It converts between the FoldLeft and FoldRight argument orders.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}
