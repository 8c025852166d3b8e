// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Capability interfaces.
//
// Go has no type constructors as type parameters, so each interface names
// the applied container types explicitly: FA is the container holding A,
// FB the same container holding B, FF the container holding func(A) B.
// Instance types below are zero-size; their methods delegate to the
// per-container free functions.

// Functor transforms contained values, preserving structure.
type Functor[A, B, FA, FB any] interface {
	Map(fa FA, f func(A) B) FB
}

// Apply combines a container of functions with a container of values.
type Apply[A, B, FA, FB, FF any] interface {
	Functor[A, B, FA, FB]
	Ap(ff FF, fa FA) FB
}

// Applicative is Apply with a way to lift plain values.
type Applicative[A, B, FA, FB, FF any] interface {
	Apply[A, B, FA, FB, FF]
	Pure(a A) FA
}

// Monad chains container-producing computations.
type Monad[A, B, FA, FB, FF any] interface {
	Applicative[A, B, FA, FB, FF]
	FlatMap(fa FA, f func(A) FB) FB
}

// Foldable collapses a container into an accumulated B.
type Foldable[A, B, FA any] interface {
	FoldLeft(fa FA, init B, f func(B, A) B) B
	FoldRight(fa FA, init B, f func(A, B) B) B
}

// SemigroupK chooses between or merges two containers of the same element type.
type SemigroupK[FA any] interface {
	Or(x, y FA) FA
}

// MonoidK is SemigroupK with an empty container.
type MonoidK[FA any] interface {
	SemigroupK[FA]
	Empty() FA
}

// Alternative is a MonoidK whose containers can also be built from a value.
type Alternative[A, FA any] interface {
	MonoidK[FA]
	Pure(a A) FA
}

// Bifunctor maps both type parameters of a two-parameter container:
// FAC holds A and C, FBD holds B and D.
type Bifunctor[A, B, C, D, FAC, FBD any] interface {
	Bimap(fac FAC, f func(A) B, g func(C) D) FBD
}

// Traversable flips a container of effectful values into an effectful
// container. FA holds A, FB holds B, GB is the effect over B and GT the
// effect over FB.
type Traversable[A, B, GB, GT, FA, FB any] interface {
	Traverse(fa FA, eff Effect[B, FB, GB, GT], f func(A) GB) GT
}

// OptionInstance supplies the Option capabilities.
type OptionInstance[A, B any] struct{}

func (OptionInstance[A, B]) Map(fa Option[A], f func(A) B) Option[B] { return MapOption(fa, f) }
func (OptionInstance[A, B]) Pure(a A) Option[A]                      { return PureOption(a) }
func (OptionInstance[A, B]) Ap(ff Option[func(A) B], fa Option[A]) Option[B] {
	return ApOption(ff, fa)
}
func (OptionInstance[A, B]) FlatMap(fa Option[A], f func(A) Option[B]) Option[B] {
	return FlatMapOption(fa, f)
}
func (OptionInstance[A, B]) FoldLeft(fa Option[A], init B, f func(B, A) B) B {
	return FoldLeftOption(fa, init, f)
}
func (OptionInstance[A, B]) FoldRight(fa Option[A], init B, f func(A, B) B) B {
	return FoldRightOption(fa, init, f)
}
func (OptionInstance[A, B]) Or(x, y Option[A]) Option[A] { return OrOption(x, y) }
func (OptionInstance[A, B]) Empty() Option[A]            { return EmptyOption[A]() }

// SliceInstance supplies the slice capabilities.
type SliceInstance[A, B any] struct{}

func (SliceInstance[A, B]) Map(fa []A, f func(A) B) []B       { return MapSlice(fa, f) }
func (SliceInstance[A, B]) Pure(a A) []A                      { return PureSlice(a) }
func (SliceInstance[A, B]) Ap(ff []func(A) B, fa []A) []B     { return ApSlice(ff, fa) }
func (SliceInstance[A, B]) FlatMap(fa []A, f func(A) []B) []B { return FlatMapSlice(fa, f) }
func (SliceInstance[A, B]) FoldLeft(fa []A, init B, f func(B, A) B) B {
	return FoldLeftSlice(fa, init, f)
}
func (SliceInstance[A, B]) FoldRight(fa []A, init B, f func(A, B) B) B {
	return FoldRightSlice(fa, init, f)
}
func (SliceInstance[A, B]) Or(x, y []A) []A { return ConcatSlice(x, y) }
func (SliceInstance[A, B]) Empty() []A      { return EmptySlice[A]() }

// ResultInstance supplies the Result capabilities for a fixed failure type E.
// Result has no empty value, so it is a SemigroupK but not a MonoidK.
type ResultInstance[E, A, B any] struct{}

func (ResultInstance[E, A, B]) Map(fa Result[E, A], f func(A) B) Result[E, B] {
	return MapResult(fa, f)
}
func (ResultInstance[E, A, B]) Pure(a A) Result[E, A] { return PureResult[E](a) }
func (ResultInstance[E, A, B]) Ap(ff Result[E, func(A) B], fa Result[E, A]) Result[E, B] {
	return ApResult(ff, fa)
}
func (ResultInstance[E, A, B]) FlatMap(fa Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	return FlatMapResult(fa, f)
}
func (ResultInstance[E, A, B]) FoldLeft(fa Result[E, A], init B, f func(B, A) B) B {
	return FoldLeftResult(fa, init, f)
}
func (ResultInstance[E, A, B]) FoldRight(fa Result[E, A], init B, f func(A, B) B) B {
	return FoldRightResult(fa, init, f)
}
func (ResultInstance[E, A, B]) Or(x, y Result[E, A]) Result[E, A] { return OrResult(x, y) }

// ResultBifunctor maps the success channel A→B and the failure channel E→F.
type ResultBifunctor[A, B, E, F any] struct{}

func (ResultBifunctor[A, B, E, F]) Bimap(r Result[E, A], f func(A) B, g func(E) F) Result[F, B] {
	return BimapResult(r, f, g)
}

// OptionTraversal traverses an Option inside the effect GB/GT.
type OptionTraversal[A, B, GB, GT any] struct{}

func (OptionTraversal[A, B, GB, GT]) Traverse(fa Option[A], eff Effect[B, Option[B], GB, GT], f func(A) GB) GT {
	return TraverseOption(fa, eff, f)
}

// SliceTraversal traverses a slice inside the effect GB/GT.
type SliceTraversal[A, B, GB, GT any] struct{}

func (SliceTraversal[A, B, GB, GT]) Traverse(fa []A, eff Effect[B, []B, GB, GT], f func(A) GB) GT {
	return TraverseSlice(fa, eff, f)
}

// ResultTraversal traverses a Result inside the effect GB/GT.
type ResultTraversal[E, A, B, GB, GT any] struct{}

func (ResultTraversal[E, A, B, GB, GT]) Traverse(fa Result[E, A], eff Effect[B, Result[E, B], GB, GT], f func(A) GB) GT {
	return TraverseResult(fa, eff, f)
}

var (
	_ Monad[int, string, Option[int], Option[string], Option[func(int) string]] = OptionInstance[int, string]{}
	_ Foldable[int, string, Option[int]]                                        = OptionInstance[int, string]{}
	_ Alternative[int, Option[int]]                                             = OptionInstance[int, string]{}

	_ Monad[int, string, []int, []string, []func(int) string] = SliceInstance[int, string]{}
	_ Foldable[int, string, []int]                            = SliceInstance[int, string]{}
	_ Alternative[int, []int]                                 = SliceInstance[int, string]{}

	_ Monad[int, string, Result[error, int], Result[error, string], Result[error, func(int) string]] = ResultInstance[error, int, string]{}
	_ Foldable[int, string, Result[error, int]]                                                      = ResultInstance[error, int, string]{}
	_ SemigroupK[Result[error, int]]                                                                 = ResultInstance[error, int, string]{}
	_ Bifunctor[int, string, error, string, Result[error, int], Result[string, string]]              = ResultBifunctor[int, string, error, string]{}

	_ Traversable[int, int, Option[int], Option[Option[int]], Option[int], Option[int]]          = OptionTraversal[int, int, Option[int], Option[Option[int]]]{}
	_ Traversable[int, int, Option[int], Option[[]int], []int, []int]                            = SliceTraversal[int, int, Option[int], Option[[]int]]{}
	_ Traversable[int, int, []int, []Result[error, int], Result[error, int], Result[error, int]] = ResultTraversal[error, int, int, []int, []Result[error, int]]{}
)

// Lift turns f into a function between containers.
func Lift[A, B, FA, FB any](fn Functor[A, B, FA, FB], f func(A) B) func(FA) FB {
	return func(fa FA) FB {
		return fn.Map(fa, f)
	}
}

// FoldMap maps every element of fa into m and combines the results left to right.
func FoldMap[A, M, FA any](fd Foldable[A, M, FA], m Monoid[M], fa FA, f func(A) M) M {
	return fd.FoldLeft(fa, m.Empty(), func(acc M, a A) M {
		return m.Combine(acc, f(a))
	})
}

// Collect lists the elements of fa in fold order.
func Collect[A, FA any](fd Foldable[A, []A, FA], fa FA) []A {
	return fd.FoldLeft(fa, nil, func(acc []A, a A) []A {
		return append(acc, a)
	})
}

// CountOf returns the number of elements fa holds.
func CountOf[A, FA any](fd Foldable[A, int, FA], fa FA) int {
	return fd.FoldLeft(fa, 0, func(n int, _ A) int { return n + 1 })
}
