package assign

// Solve is a convenience, non-stepping entrypoint for callers that do not
// need to interleave search with other work. It runs PrepareInput followed
// by Step in a loop until the search finishes or budget steps have run,
// whichever comes first.
//
// budget caps the number of Step calls performed by this single call; 0
// means "run to completion". A positive budget that is exhausted before the
// search finishes simply returns the state reached so far — callers that
// want to resume should drive the Step loop themselves via NewState/Step
// instead of calling Solve again (Solve always starts a fresh search).
func Solve(in Input, budget int) (*Best, []Warning, error) {
	if budget < 0 {
		return nil, nil, ErrNegativeBudget
	}

	space, warnings := PrepareInput(in)
	state := NewState(space)

	steps := 0
	for !state.Finished() {
		if budget > 0 && steps >= budget {
			break
		}
		var progressed bool
		state, progressed = Step(state)
		if !progressed {
			break
		}
		steps++
	}

	return state.Best, warnings, nil
}
