/*
Package runtime drives the single frame goroutine.

All game state is owned by the goroutine running Loop. Platform callbacks,
timers and debug requests that start elsewhere hand their work to the
Dispatcher, which the loop drains at the top of every frame:

	d.Post(func() { shop.Refresh() })

	status, err := runtime.Call(ctx, d, func() (string, error) {
		return machine.CurrentName(), nil
	})

SceneLoader is itself a Ticker and must be added to the loop.
*/
package runtime
