/*
Package state drives the game lifecycle.

A Machine holds one current phase. Phases are built from factories declared
with Define or DefineWith and entered with Enter or EnterWith:

	m := state.New(env)
	if err := state.Enter[*state.BootstrapState](m); err != nil {
		return err
	}

New declares the standard phases:

	BootstrapState     registers services, loads the initial scene
	LoadProgressState  restores saved progress or starts a new game
	LoadLevelState     builds the level named by its payload
	GameLoopState      playing; optionally autosaves

Transitions requested from inside Enter are queued and run after it returns.
*/
package state
