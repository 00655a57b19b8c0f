// Package service provides the service registry for the game runtime.
//
// The container maps a service contract (usually an interface type) to exactly
// one live instance. Services are registered once during bootstrap, in
// dependency order, and resolved by later phases and factories.
//
// Rules:
//   - One instance per contract; a second Register fails
//   - Resolving an unregistered contract fails
//   - Single-threaded access; no internal synchronization
//
// Example Usage:
//
//	c := service.NewContainer()
//	service.MustRegister[random.Service](c, random.New())
//	rnd := service.MustResolve[random.Service](c)
package service
