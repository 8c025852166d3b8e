// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind_test

import (
	"fmt"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"code.hybscloud.com/kind"
)

// --- Generators ---

func optionGen() *rapid.Generator[kind.Option[int]] {
	return rapid.Custom(func(t *rapid.T) kind.Option[int] {
		if rapid.Bool().Draw(t, "present") {
			return kind.Some(rapid.IntRange(-1000, 1000).Draw(t, "value"))
		}
		return kind.None[int]()
	})
}

func resultGen() *rapid.Generator[kind.Result[string, int]] {
	return rapid.Custom(func(t *rapid.T) kind.Result[string, int] {
		if rapid.Bool().Draw(t, "ok") {
			return kind.Ok[string](rapid.IntRange(-1000, 1000).Draw(t, "value"))
		}
		return kind.Err[string, int](rapid.StringN(0, 8, -1).Draw(t, "err"))
	})
}

func sliceGen() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-1000, 1000), 0, 16)
}

// --- Law checks, written once against the capability interfaces ---

func checkFunctorLaws[FA any](t *rapid.T, fn kind.Functor[int, int, FA, FA], fa FA, eq func(FA, FA) bool) {
	if got := fn.Map(fa, kind.Identity[int]); !eq(got, fa) {
		t.Fatalf("identity: Map(fa, id) = %v, want %v", got, fa)
	}
	f := func(x int) int { return x*3 - 1 }
	g := func(x int) int { return x + 7 }
	left := fn.Map(fn.Map(fa, f), g)
	right := fn.Map(fa, kind.Compose(f, g))
	if !eq(left, right) {
		t.Fatalf("composition: %v != %v", left, right)
	}
}

func checkMonadLaws[FA, FF any](t *rapid.T, m kind.Monad[int, int, FA, FA, FF], fa FA, a int, f, g func(int) FA, eq func(FA, FA) bool) {
	if left, right := m.FlatMap(m.Pure(a), f), f(a); !eq(left, right) {
		t.Fatalf("left identity: %v != %v (a=%d)", left, right, a)
	}
	if left := m.FlatMap(fa, m.Pure); !eq(left, fa) {
		t.Fatalf("right identity: %v != %v", left, fa)
	}
	left := m.FlatMap(m.FlatMap(fa, f), g)
	right := m.FlatMap(fa, func(x int) FA { return m.FlatMap(f(x), g) })
	if !eq(left, right) {
		t.Fatalf("associativity: %v != %v", left, right)
	}
}

func checkMonoidKIdentity[FA any](t *rapid.T, m kind.MonoidK[FA], fa FA, eq func(FA, FA) bool) {
	if got := m.Or(m.Empty(), fa); !eq(got, fa) {
		t.Fatalf("left identity: %v != %v", got, fa)
	}
	if got := m.Or(fa, m.Empty()); !eq(got, fa) {
		t.Fatalf("right identity: %v != %v", got, fa)
	}
}

func checkFoldableOrder[FA any](t *rapid.T, fd kind.Foldable[int, []int, FA], fa FA) {
	left := fd.FoldLeft(fa, nil, func(acc []int, x int) []int { return append(acc, x) })
	right := fd.FoldRight(fa, nil, func(x int, acc []int) []int { return append(acc, x) })
	slices.Reverse(right)
	if !slices.Equal(left, right) {
		t.Fatalf("FoldRight is not the mirror of FoldLeft: %v vs %v", left, right)
	}
}

func eqComparable[T comparable](a, b T) bool { return a == b }

// --- Option ---

func TestPropertyOptionLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := optionGen().Draw(t, "o")
		a := rapid.IntRange(-1000, 1000).Draw(t, "a")
		var inst kind.OptionInstance[int, int]
		f := func(x int) kind.Option[int] {
			if x%3 == 0 {
				return kind.None[int]()
			}
			return kind.Some(x * 2)
		}
		g := func(x int) kind.Option[int] { return kind.Some(x - 5) }

		checkFunctorLaws[kind.Option[int]](t, inst, o, eqComparable)
		checkMonadLaws[kind.Option[int], kind.Option[func(int) int]](t, inst, o, a, f, g, eqComparable)
		checkMonoidKIdentity[kind.Option[int]](t, inst, o, eqComparable)
		checkFoldableOrder[kind.Option[int]](t, kind.OptionInstance[int, []int]{}, o)
	})
}

// --- Slice ---

func TestPropertySliceLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := sliceGen().Draw(t, "xs")
		a := rapid.IntRange(-1000, 1000).Draw(t, "a")
		var inst kind.SliceInstance[int, int]
		f := func(x int) []int { return []int{x, x + 1} }
		g := func(x int) []int {
			if x%2 == 0 {
				return nil
			}
			return []int{x * 10}
		}
		eq := slices.Equal[[]int]

		checkFunctorLaws[[]int](t, inst, xs, eq)
		checkMonadLaws[[]int, []func(int) int](t, inst, xs, a, f, g, eq)
		checkMonoidKIdentity[[]int](t, inst, xs, eq)
		checkFoldableOrder[[]int](t, kind.SliceInstance[int, []int]{}, xs)
	})
}

// --- Result ---

func TestPropertyResultLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := resultGen().Draw(t, "r")
		a := rapid.IntRange(-1000, 1000).Draw(t, "a")
		var inst kind.ResultInstance[string, int, int]
		f := func(x int) kind.Result[string, int] {
			if x < 0 {
				return kind.Err[string, int]("negative")
			}
			return kind.Ok[string](x / 2)
		}
		g := func(x int) kind.Result[string, int] { return kind.Ok[string](x + 1) }

		checkFunctorLaws[kind.Result[string, int]](t, inst, r, eqComparable)
		checkMonadLaws[kind.Result[string, int], kind.Result[string, func(int) int]](t, inst, r, a, f, g, eqComparable)
		checkFoldableOrder[kind.Result[string, int]](t, kind.ResultInstance[string, int, []int]{}, r)
	})
}

func TestPropertyResultBifunctor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := resultGen().Draw(t, "r")
		var bi kind.Bifunctor[int, int, string, string, kind.Result[string, int], kind.Result[string, int]] = kind.ResultBifunctor[int, int, string, string]{}
		if got := bi.Bimap(r, kind.Identity[int], kind.Identity[string]); got != r {
			t.Fatalf("bimap identity: %v != %v", got, r)
		}
		// Bimap is MapResult followed by MapErrResult.
		f := func(x int) int { return x * 2 }
		g := func(s string) string { return s + "!" }
		if got, want := bi.Bimap(r, f, g), kind.MapErrResult(kind.MapResult(r, f), g); got != want {
			t.Fatalf("bimap: %v != %v", got, want)
		}
	})
}

// --- Applicative agrees with Map2 ---

func TestPropertyApSliceMatchesMap2(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ks := sliceGen().Draw(t, "ks")
		xs := sliceGen().Draw(t, "xs")
		fs := kind.MapSlice(ks, func(k int) func(int) int {
			return func(x int) int { return k*1000 + x }
		})
		got := kind.ApSlice(fs, xs)
		want := kind.Map2Slice(ks, xs, func(k, x int) int { return k*1000 + x })
		if !slices.Equal(got, want) {
			t.Fatalf("ApSlice = %v, Map2Slice = %v", got, want)
		}
	})
}

// --- Traverse ---

func TestPropertyTraverseSliceOption(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := sliceGen().Draw(t, "xs")
		got := kind.TraverseSliceOption(xs, kind.Some[int])
		v, ok := got.Get()
		if !ok || !slices.Equal(v, xs) {
			t.Fatalf("traverse with Some: got %v, want Some(%v)", got, xs)
		}

		pos := func(x int) kind.Option[int] {
			if x < 0 {
				return kind.None[int]()
			}
			return kind.Some(x)
		}
		got = kind.TraverseSliceOption(xs, pos)
		if got.IsSome() != kind.ForAllSlice(xs, func(x int) bool { return x >= 0 }) {
			t.Fatalf("traverse presence %v disagrees with ForAllSlice for %v", got.IsSome(), xs)
		}
	})
}

func TestPropertyFoldRightEvalMatchesFoldRight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := sliceGen().Draw(t, "xs")
		show := func(x int, acc string) string { return fmt.Sprintf("%s,%d", acc, x) }
		want := kind.FoldRightSlice(xs, "", show)
		got := kind.FoldRightEvalSlice(xs, kind.Now(""), func(x int, rest kind.Eval[string]) kind.Eval[string] {
			return kind.MapEval(rest, func(acc string) string { return show(x, acc) })
		}).Value()
		if got != want {
			t.Fatalf("lazy %q != strict %q", got, want)
		}
	})
}
