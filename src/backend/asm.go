// Package backend fans spec §4.4/§4.5's RIG-build-then-color pipeline out
// across every function of a Program, the way the teacher's asm.go fans
// assembler generation out across functions via GenerateAssembler — here
// adapted into GenerateGraphs, since code generation itself is a Non-goal
// (see DESIGN.md).
package backend

import (
	"fmt"

	"vslcra/src/backend/lir"
	"vslcra/src/backend/render"
	"vslcra/src/ir"
	"vslcra/src/util"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// FuncResult bundles one function's allocation outcome: the RIG, the
// liveness points it was built from, the k the coloring engine settled on,
// the resulting color map, and the rendered DOT text (spec §6.2).
type FuncResult struct {
	Func   ir.Function
	Points []ir.Point
	Graph  *lir.Graph
	K      int
	Colors lir.ColorMap
	DOT    string
}

// ---------------------------
// ----- Functions -----------
// ---------------------------

// GenerateGraphs runs the liveness analyzer, RIG builder and k-coloring
// engine (spec §4.3–§4.5) for every function of prog and renders each
// resulting graph. When opt.Threads > 1, functions are processed in
// parallel via util.RunParallel, mirroring the teacher's own
// AllocateRegisters fan-out in backend/lir/regalloc.go.
func GenerateGraphs(opt util.Options, prog *ir.Program) ([]FuncResult, error) {
	results := make([]FuncResult, len(prog.Funcs))
	bound := opt.Bound
	if bound < 2 {
		bound = 2
	}

	errs := util.RunParallel(opt.Threads, len(prog.Funcs), func(i1 int) error {
		f := &prog.Funcs[i1]
		r, err := allocateFunc(f, bound)
		if err != nil {
			return err
		}
		results[i1] = *r
		return nil
	})
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return results, nil
}

// allocateFunc runs the pipeline for a single function.
func allocateFunc(f *ir.FuncDef, bound int) (*FuncResult, error) {
	pts := ir.Analyze(f.Body)
	g := lir.Build(pts)

	stack, k, ok := lir.FindMinimumK(g, bound)
	if !ok {
		return nil, fmt.Errorf("function %s: no coloring found for k < %d; more registers are required than the bound allows", f.Sig.Name, bound)
	}

	colors, err := lir.AssignColors(g, stack, k)
	if err != nil {
		return nil, fmt.Errorf("function %s: %w", f.Sig.Name, err)
	}

	return &FuncResult{
		Func:   f.Sig.Name,
		Points: pts,
		Graph:  g,
		K:      k,
		Colors: colors,
		DOT:    render.DOT(f.Sig.Name, g, colors),
	}, nil
}
