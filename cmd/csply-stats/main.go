// Command csply-stats runs the N-Queens scenario at a chosen size and
// strategy and prints the resulting SearchStats. Uses stdlib flag
// rather than a third-party CLI library, since the solve itself is the
// whole of this command's surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/constraints"
	"github.com/gopropagate/csply/pkg/csply/heuristics"
)

func main() {
	n := flag.Int("n", 8, "board size for the N-Queens scenario")
	restarts := flag.Bool("restarts", false, "wrap the search in a RestartingSearch with a random variable heuristic")
	flag.Parse()

	if *n < 1 {
		fmt.Fprintln(os.Stderr, "n must be positive")
		os.Exit(1)
	}

	domains := make(map[csply.VariableId]csply.Domain[csply.StandardValue], *n)
	vars := make([]csply.VariableId, *n)
	for i := 0; i < *n; i++ {
		vars[i] = csply.VariableId(i)
		values := make([]csply.StandardValue, *n)
		for col := 0; col < *n; col++ {
			values[col] = csply.Int(int64(col))
		}
		domains[vars[i]] = csply.NewHashSetDomain[csply.StandardValue](values...)
	}
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](domains)

	cs := []csply.Constraint[csply.StandardValue, struct{}, struct{}]{
		constraints.NewAllDifferent[csply.StandardValue, struct{}, struct{}](vars...),
	}
	for i := 0; i < *n; i++ {
		for j := i + 1; j < *n; j++ {
			cs = append(cs, constraints.NewAbsDiffNotEqual[csply.StandardValue, struct{}, struct{}](
				vars[i], vars[j], csply.Int(int64(j-i)),
			))
		}
	}

	var strategy csply.SearchStrategy[csply.StandardValue, struct{}, struct{}]
	if *restarts {
		inner := csply.NewBacktrackingSearch[csply.StandardValue, struct{}, struct{}](
			heuristics.Random[csply.StandardValue, struct{}, struct{}]{},
			heuristics.Identity[csply.StandardValue, struct{}, struct{}]{},
		)
		strategy = csply.NewRestartingSearch[csply.StandardValue, struct{}, struct{}](
			inner, heuristics.AfterNBacktracks{MaxBacktracks: 50},
		)
	} else {
		strategy = csply.NewBacktrackingSearch[csply.StandardValue, struct{}, struct{}](
			heuristics.MinRemainingValues[csply.StandardValue, struct{}, struct{}]{},
			heuristics.Identity[csply.StandardValue, struct{}, struct{}]{},
		)
	}

	bench.Run(os.Stdout, strategy, cs, initial)
}
