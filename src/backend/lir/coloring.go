package lir

import (
	"fmt"

	"vslcra/src/ir"
	"vslcra/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// ColorMap assigns a palette Color to every variable colored by AssignColors.
type ColorMap map[ir.Variable]Color

// ---------------------
// ----- Functions -----
// ---------------------

// GenerateStack runs the classic Chaitin/Briggs simplification of spec
// §4.5 against g at a fixed k, widening the disconnect threshold d from
// k-1 down to 1. It mirrors the teacher's allocateRegisterFunc retry loop
// (backend/lir/regalloc.go), generalized into the spec's explicit
// disconnect/reconnect primitives instead of one fixed-k retry count.
func GenerateStack(g *Graph, k int) (*util.Stack, bool) {
	g.ReconnectAll()
	stack := &util.Stack{}
	stacked := make(map[ir.Variable]bool)

	d := k - 1
	for d > 0 {
		s := g.DisconnectNodesOfDegree(d)
		fresh := make([]ir.Variable, 0, len(s))
		for _, v := range s {
			if !stacked[v] {
				fresh = append(fresh, v)
			}
		}
		if len(fresh) > 0 {
			for _, v := range fresh {
				stack.Push(v)
				stacked[v] = true
			}
			continue // Retry at the same d: new degree-d nodes may have emerged.
		}
		d--
	}

	failed := false
	for _, v := range g.Order() {
		if stacked[v] {
			continue
		}
		if g.ActiveDegree(v) == 0 {
			stack.Push(v)
			stacked[v] = true
		} else {
			failed = true
		}
	}

	g.ReconnectAll()
	if failed {
		return nil, false
	}
	return stack, true
}

// FindMinimumK searches k = 2, 3, ..., bound-1 for the smallest k at which
// GenerateStack succeeds, per spec §4.5's find_minimum_k. It returns the
// successful stack, the k it succeeded at, and true; or false if bound was
// exhausted (an AllocError, spec §7).
func FindMinimumK(g *Graph, bound int) (*util.Stack, int, bool) {
	for k := 2; k < bound; k++ {
		if stack, ok := GenerateStack(g, k); ok {
			return stack, k, true
		}
	}
	return nil, 0, false
}

// AssignColors materializes a palette of usedK colors and assigns one to
// every variable in stack, in the order the stack was produced (push
// order, i.e. bottom of stack first): spec §4.5 step 3 reads the stack
// "in the order returned", not in pop order. For each variable, the first
// palette color not already taken by a colored neighbor is assigned.
//
// util.Stack.Get is top-down (Get(1) is the most recently pushed element,
// Get(Size()) is the first one pushed, i.e. the bottom), so push order is
// obtained by walking the index from Size() down to 1.
func AssignColors(g *Graph, stack *util.Stack, usedK int) (ColorMap, error) {
	palette := NewPalette(usedK)
	colors := make(ColorMap, stack.Size())

	for i1 := stack.Size(); i1 >= 1; i1-- {
		v := stack.Get(i1).(ir.Variable)
		taken := make(map[Color]bool)
		for _, n := range g.Neighbors(v) {
			if c, ok := colors[n]; ok {
				taken[c] = true
			}
		}
		assigned := false
		for _, c := range palette {
			if !taken[c] {
				colors[v] = c
				assigned = true
				break
			}
		}
		if !assigned {
			return nil, fmt.Errorf("no free color for %s among %d colors; coloring engine invariant violated", v, usedK)
		}
	}
	return colors, nil
}
