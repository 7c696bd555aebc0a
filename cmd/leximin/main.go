// Command leximin reads a preference CSV file and drives the leximin
// solver to completion, printing progress to stderr and the final tidied
// result to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jefelino/pref-match-web/assign"
	"github.com/jefelino/pref-match-web/ingest"
)

func main() {
	var (
		path    = flag.String("input", "", "path to the preference CSV file (required)")
		batch   = flag.Int("batch", 1000, "Step calls to run per scheduling frame before logging progress")
		verbose = flag.Bool("verbose", false, "include the position and original rank in out-of-range and duplicate-fixed warning messages")
	)
	flag.Parse()

	if *path == "" {
		log.Fatal("leximin: -input is required")
	}
	if *batch <= 0 {
		log.Fatal("leximin: -batch must be positive")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("leximin: %v", err)
	}
	defer f.Close()

	in, warnings, err := ingest.ParseCSVWithOptions(f, ingest.Options{Verbose: *verbose})
	if err != nil {
		log.Fatalf("leximin: %v", err)
	}
	logWarnings("ingestion", warnings)

	space, prepWarnings := assign.PrepareInput(in)
	logWarnings("preparation", prepWarnings)

	state := assign.NewState(space)
	frame := 0
	for !state.Finished() {
		frame++
		stepsThisFrame := 0
		for stepsThisFrame < *batch && !state.Finished() {
			next, progressed := assign.Step(state)
			if !progressed {
				break
			}
			state = next
			stepsThisFrame++
		}
		log.Printf("leximin: frame %d, %d steps, best=%s", frame, stepsThisFrame, describeBest(state.Best))
	}

	printResult(state.Best)
}

func logWarnings(stage string, warnings []assign.Warning) {
	for _, w := range warnings {
		log.Printf("leximin: %s warning: person=%q position=%q: %s", stage, w.Person, w.Position, w.Msg)
	}
}

func describeBest(best *assign.Best) string {
	if best == nil {
		return "none yet"
	}
	return fmt.Sprintf("%d tied assignment(s)", len(best.Assignments))
}

func printResult(best *assign.Best) {
	if best == nil {
		fmt.Println("no feasible assignment found")
		return
	}

	fmt.Printf("best distribution: %v\n", map[int]int(best.Distribution))
	for i, a := range assign.Tidy(best) {
		if i == 0 {
			fmt.Println("assignment 1:")
			for p, placed := range a {
				fmt.Printf("  %s -> %s (rank %d)\n", p, placed.Position, placed.Rank)
			}
			continue
		}
		fmt.Printf("assignment %d (diff from #1):\n", i+1)
		for p, placed := range a {
			fmt.Printf("  %s -> %s (rank %d)\n", p, placed.Position, placed.Rank)
		}
	}
}
