// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kind provides Functor, Applicative, Monad, Foldable, Traversable,
// Semigroup/Monoid, Alternative and Bifunctor capabilities for three
// containers: the optional value [Option], the Go slice, and [Result].
//
// Go generics cannot abstract over a type constructor, so every capability
// exists twice:
//
//   - As free functions named after the container ([MapOption], [ApSlice],
//     [FlatMapResult], ...). These are what most code calls.
//   - As generic interfaces ([Functor], [Monad], [Foldable], ...) whose type
//     parameters name the applied container types, implemented by zero-size
//     instance types ([OptionInstance], [SliceInstance], [ResultInstance]).
//     Code that must be polymorphic over the container takes an instance.
//
// All operations are pure: they never mutate their inputs and always return
// new values.
//
// # Containers
//
//   - [Option]: zero or one value. [Some], [None], [FromPtr].
//   - []A: zero or more values in order. nil and empty are the same sequence.
//   - [Result]: a success ([Ok]) or a failure ([Err]). [FromError] and
//     [Result.Unpack] bridge to Go's (value, error) convention.
//
// # Capabilities
//
// Map (Functor):
//
//   - [MapOption], [MapSlice], [MapResult]
//
// Pure and Ap (Applicative):
//
//   - [PureOption], [PureSlice], [PureResult]
//   - [ApOption]: present only when both operands are present
//   - [ApSlice]: Cartesian product, outer loop over functions
//   - [ApResult]: first encountered failure wins, function operand first
//   - [Map2Option], [Map2Slice], [Map2Result] and the Product variants
//
// FlatMap (Monad):
//
//   - [FlatMapOption], [FlatMapSlice], [FlatMapResult]
//
// Folds (Foldable):
//
//   - [FoldLeftOption], [FoldLeftSlice], [FoldLeftResult]
//   - [FoldRightOption], [FoldRightSlice], [FoldRightResult]
//   - [FoldRightEvalSlice] and friends: lazy, stack-safe right folds on [Eval]
//
// Traverse (Traversable):
//
//   - [TraverseSlice], [TraverseOption], [TraverseResult] run in any [Effect]
//   - [OptionEffect], [ResultEffect], [SliceEffect]: built-in effects
//   - [TraverseSliceOption], [SequenceSliceResult], ...: fixed pairings
//
// Or and Empty (Alternative):
//
//   - [OrOption], [EmptyOption]: first present operand
//   - [ConcatSlice], [EmptySlice]: concatenation
//   - [OrResult]: first success; Result has no empty value
//
// Bimap (Bifunctor):
//
//   - [BimapResult], [MapErrResult]
//
// Semigroup and Monoid:
//
//   - [Semigroup], [Monoid], [FoldMonoid], [CombineAll]
//   - [Sum], [Product], [StringMonoid], [SliceMonoid], [OptionMonoid],
//     [FirstOption], [ResultSemigroup]
//
// # Effects and short-circuiting
//
// An [Effect] is the dictionary a traversal runs in. When its Halted
// function reports a terminal state the traversal stops without calling the
// traversal function on the remaining elements:
//
//	xs := []string{"1", "x", "3"}
//	r := kind.TraverseSliceResult(xs, func(s string) kind.Result[error, int] {
//		return kind.FromError(strconv.Atoi(s))
//	})
//	// r is Err(strconv.Atoi: parsing "x": invalid syntax); "3" is never parsed
//
// # Eval
//
// [Eval] is a lazy computation evaluated by an iterative trampoline over
// defunctionalized nodes. [Now], [Later], [Always], [Defer], [MapEval],
// [FlatMapEval], [Eval.Value].
//
// # Interop
//
// [OptionFromMo], [OptionToMo], [ResultFromMo], [ResultToMo],
// [ResultFromEither] and [ResultToEither] convert to and from
// github.com/samber/mo.
package kind
