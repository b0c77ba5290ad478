package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"vslcra/src/backend"
	"vslcra/src/frontend"
	"vslcra/src/ir"
	"vslcra/src/util"
)

// run executes the compiler pipeline end to end. Behaviour is defined by
// the util.Options structure; runID correlates every diagnostic this
// invocation reports (util/perror.go's PipelineError).
func run(opt util.Options, runID uuid.UUID) error {
	src, err := util.ReadSource(opt)
	if err != nil {
		return util.NewPipelineError(util.LexError, runID, fmt.Errorf("could not read source code: %w", err))
	}

	// If -ts/--tokens flag was passed: output the token stream and exit.
	if opt.TokenStream {
		ts, err := frontend.TokenStream(src)
		if err != nil {
			return util.NewPipelineError(util.LexError, runID, err)
		}
		wr := util.NewWriter()
		wr.WriteString(ts)
		wr.Close()
		return nil
	}

	// Lex and parse the source into a Program (spec §4.1).
	prog, err := frontend.Parse(src)
	if err != nil {
		return util.NewPipelineError(util.SyntaxError, runID, err)
	}

	// Type check every function (spec §4.2).
	if ok, err := ir.ValidateTree(opt, prog); !ok {
		if err == nil {
			err = fmt.Errorf("source does not typecheck")
		}
		return util.NewPipelineError(util.TypeError, runID, fmt.Errorf("Source does not typecheck! %w", err))
	}

	// Liveness -> RIG -> k-coloring -> DOT render, per function (spec
	// §4.3-§4.5, §6.2).
	results, err := backend.GenerateGraphs(opt, prog)
	if err != nil {
		return util.NewPipelineError(util.AllocError, runID, err)
	}

	wr := util.NewWriter()
	defer wr.Close()
	for i1, r := range results {
		if opt.Verbose {
			for _, line := range strings.Split(prog.Funcs[i1].String(), "\n") {
				wr.Write("// %s\n", line)
			}
			wr.Write("// function %s chose k=%d\n", r.Func, r.K)
			for _, p := range r.Points {
				wr.Write("//   live_in(%s) = %v\n", stmtLabel(p), p.LiveIn)
			}
		}
		wr.WriteString(r.DOT)
	}
	return nil
}

// stmtLabel gives a short label for a liveness Point's source statement,
// used only by --verbose diagnostics.
func stmtLabel(p ir.Point) string {
	line, col := p.Stmt.Pos()
	return fmt.Sprintf("%d:%d", line, col)
}

func main() {
	opt, err := util.ParseArgs(os.Args)
	if err != nil {
		fmt.Printf("Command line argument error: %s\n", err)
		os.Exit(1)
	}

	// Initiate output writer.
	wg := sync.WaitGroup{}
	if len(opt.Out) > 0 {
		// Attempt to open output file. Create new file if necessary.
		f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Println(err)
			}
		}()
		util.ListenWrite(opt, f, &wg)
	} else {
		// Write results to stdout.
		util.ListenWrite(opt, nil, &wg)
	}
	defer util.Close()

	runID := uuid.New()
	runErr := run(opt, runID)

	// Wait for the writer to flush before reporting the outcome or exiting.
	wg.Wait()

	if runErr != nil {
		fmt.Printf("Error [%s]: %s\n", runID, runErr)
		os.Exit(1)
	}
}
