// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import "sync"

// erased marks a type-erased value inside an Eval node chain.
// Concrete types are recovered with cast at node boundaries.
type erased = any

// evalNode is the defunctionalized representation of an Eval.
// Dispatch uses a type switch in runEval.
type evalNode interface {
	evalNode()
}

// nowNode is an already computed value.
type nowNode struct{ value erased }

// laterNode is a thunk forced at most once. A panic from the thunk is
// recorded and raised again on every later force.
type laterNode struct {
	once     sync.Once
	thunk    func() erased
	value    erased
	panicked any
}

// alwaysNode is a thunk forced on every evaluation.
type alwaysNode struct{ thunk func() erased }

// deferNode produces the next node on demand.
type deferNode struct{ thunk func() evalNode }

// bindNode feeds the value of src to f.
type bindNode struct {
	src evalNode
	f   func(erased) evalNode
}

// mapNode applies a pure function to the value of src.
type mapNode struct {
	src evalNode
	f   func(erased) erased
}

func (*nowNode) evalNode()    {}
func (*laterNode) evalNode()  {}
func (*alwaysNode) evalNode() {}
func (*deferNode) evalNode()  {}
func (*bindNode) evalNode()   {}
func (*mapNode) evalNode()    {}

func (n *laterNode) force() erased {
	n.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				n.panicked = r
				n.thunk = nil
				panic(r)
			}
		}()
		n.value = n.thunk()
		n.thunk = nil
	})
	if n.panicked != nil {
		panic(n.panicked)
	}
	return n.value
}

// Eval is a lazy computation of an A.
//
// Evaluation runs on an explicit continuation stack, so arbitrarily long
// chains of MapEval, FlatMapEval and Defer do not grow the goroutine stack.
// The zero Eval evaluates to the zero A.
type Eval[A any] struct {
	node evalNode
}

// Now wraps an already computed value.
func Now[A any](a A) Eval[A] {
	return Eval[A]{node: &nowNode{value: a}}
}

// Later computes f on first evaluation and memoizes the result.
// Later is safe for concurrent evaluation. If f panics, the panic value is
// memoized too: every evaluation of the Eval panics with it and f is not
// called again.
func Later[A any](f func() A) Eval[A] {
	return Eval[A]{node: &laterNode{thunk: func() erased { return f() }}}
}

// Always computes f on every evaluation.
func Always[A any](f func() A) Eval[A] {
	return Eval[A]{node: &alwaysNode{thunk: func() erased { return f() }}}
}

// Defer delays construction of an Eval until it is evaluated.
func Defer[A any](f func() Eval[A]) Eval[A] {
	return Eval[A]{node: &deferNode{thunk: func() evalNode { return f().node }}}
}

// MapEval applies a pure function to the result of e.
func MapEval[A, B any](e Eval[A], f func(A) B) Eval[B] {
	return Eval[B]{node: &mapNode{
		src: e.node,
		f:   func(x erased) erased { return f(cast[A](x)) },
	}}
}

// FlatMapEval sequences e with f.
func FlatMapEval[A, B any](e Eval[A], f func(A) Eval[B]) Eval[B] {
	return Eval[B]{node: &bindNode{
		src: e.node,
		f:   func(x erased) evalNode { return f(cast[A](x)).node },
	}}
}

// Value evaluates e.
func (e Eval[A]) Value() A {
	return cast[A](runEval(e.node))
}

// cast recovers a concrete type. A nil erased is the zero A, which keeps
// interface-typed results like error usable.
func cast[A any](x erased) A {
	if x == nil {
		var zero A
		return zero
	}
	return x.(A)
}

// evalCont is a pending step on the evaluation stack; exactly one field is set.
type evalCont struct {
	bind  func(erased) evalNode
	apply func(erased) erased
}

// runEval is the iterative evaluator for evalNode chains.
func runEval(n evalNode) erased {
	var stack []evalCont
	for {
		var v erased
		switch t := n.(type) {
		case nil:
			v = nil
		case *nowNode:
			v = t.value
		case *laterNode:
			v = t.force()
		case *alwaysNode:
			v = t.thunk()
		case *deferNode:
			n = t.thunk()
			continue
		case *bindNode:
			stack = append(stack, evalCont{bind: t.f})
			n = t.src
			continue
		case *mapNode:
			stack = append(stack, evalCont{apply: t.f})
			n = t.src
			continue
		default:
			panic("kind: unknown eval node")
		}

		// Unwind pure steps until a bind produces a new node.
		for {
			if len(stack) == 0 {
				return v
			}
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if k.apply != nil {
				v = k.apply(v)
				continue
			}
			n = k.bind(v)
			break
		}
	}
}

// FoldRightEvalSlice folds xs from the right lazily.
// f receives the element and the not yet evaluated fold of the rest; if f
// does not evaluate it, the remaining elements are never visited.
func FoldRightEvalSlice[A, B any](xs []A, lb Eval[B], f func(A, Eval[B]) Eval[B]) Eval[B] {
	var step func(i int) Eval[B]
	step = func(i int) Eval[B] {
		if i == len(xs) {
			return lb
		}
		return Defer(func() Eval[B] {
			return f(xs[i], step(i+1))
		})
	}
	return step(0)
}

// FoldRightEvalOption folds an Option from the right lazily.
func FoldRightEvalOption[A, B any](o Option[A], lb Eval[B], f func(A, Eval[B]) Eval[B]) Eval[B] {
	if !o.ok {
		return lb
	}
	return Defer(func() Eval[B] { return f(o.value, lb) })
}

// FoldRightEvalResult folds a Result from the right lazily.
// A failure yields lb.
func FoldRightEvalResult[E, A, B any](r Result[E, A], lb Eval[B], f func(A, Eval[B]) Eval[B]) Eval[B] {
	if !r.isOk {
		return lb
	}
	return Defer(func() Eval[B] { return f(r.ok, lb) })
}

// ExistsSlice reports whether pred holds for some element.
// Elements after the first match are not visited.
func ExistsSlice[A any](xs []A, pred func(A) bool) bool {
	return FoldRightEvalSlice(xs, Now(false), func(a A, rest Eval[bool]) Eval[bool] {
		if pred(a) {
			return Now(true)
		}
		return rest
	}).Value()
}

// ForAllSlice reports whether pred holds for every element.
// Elements after the first mismatch are not visited.
func ForAllSlice[A any](xs []A, pred func(A) bool) bool {
	return FoldRightEvalSlice(xs, Now(true), func(a A, rest Eval[bool]) Eval[bool] {
		if !pred(a) {
			return Now(false)
		}
		return rest
	}).Value()
}
