package motion

import "fmt"

// transitionCatalog returns the fixed transition topology. It is data the
// compiler owns, not something derived from the manifest.
//
// Exit policy is declared per transition. The locomotion chain and Duck's
// return are interruptible; Jump and Attack play out before returning;
// Slide also waits, with its completion signalled by the end-of-clip
// marker the patcher propagates across variants.
func transitionCatalog() []Transition {
	return []Transition{
		// Locomotion chain.
		{From: Idle, To: Walk, Guards: []Guard{boolGuard(ParamMoving, true)}, Exit: ExitImmediate},
		{From: Walk, To: Idle, Guards: []Guard{boolGuard(ParamMoving, false)}, Exit: ExitImmediate},
		{From: Walk, To: Run, Guards: []Guard{boolGuard(ParamRunning, true)}, Exit: ExitImmediate},
		{From: Run, To: Walk, Guards: []Guard{boolGuard(ParamRunning, false)}, Exit: ExitImmediate},
		{From: Run, To: Idle, Guards: []Guard{boolGuard(ParamMoving, false)}, Exit: ExitImmediate},

		// Action entries fire from any state.
		{From: AnyState, To: Jump, Guards: []Guard{boolGuard(ParamJump, true)}, Exit: ExitImmediate},
		{From: AnyState, To: Attack, Guards: []Guard{boolGuard(ParamAttack, true)}, Exit: ExitImmediate},
		{From: AnyState, To: Duck, Guards: []Guard{boolGuard(ParamDuck, true)}, Exit: ExitImmediate},
		{From: AnyState, To: Slide, Guards: []Guard{boolGuard(ParamSlide, true)}, Exit: ExitImmediate},

		// Action returns.
		{From: Duck, To: Idle, Guards: []Guard{boolGuard(ParamDuck, false)}, Exit: ExitImmediate},
		{From: Jump, To: Idle, Exit: ExitWaitForCompletion},
		{From: Attack, To: Idle, Exit: ExitWaitForCompletion},
		{From: Slide, To: Idle, Exit: ExitWaitForCompletion},
	}
}

// validateTransitions checks every guard against the parameter definition
// table. The catalog is compiled in, so a violation is a programmer error
// and panics rather than surfacing as a run error.
func validateTransitions(ts []Transition) {
	for _, t := range ts {
		for _, g := range t.Guards {
			def, ok := ParamByName(g.Param)
			if !ok {
				panic(fmt.Sprintf("motion: transition %s->%s guards undeclared parameter %q", t.From, t.To, g.Param))
			}
			if !g.Value.Type().Equals(def.Type) {
				panic(fmt.Sprintf("motion: transition %s->%s guard on %q has type %s, parameter is %s",
					t.From, t.To, g.Param, g.Value.Type().FriendlyName(), def.Type.FriendlyName()))
			}
		}
	}
}
