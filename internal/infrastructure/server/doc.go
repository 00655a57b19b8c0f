// Package server provides the optional debug HTTP surface.
//
// Routes:
//
//	GET  /health   liveness
//	GET  /status   current phase and progress snapshot
//	POST /save     save progress now
//	GET  /metrics  Prometheus exposition
//
// Handlers that read game state post their work to the frame dispatcher and
// wait for the reply with runtime.Call.
package server
