/*
Package storage provides the durable key/value slots behind save games.

Backends:
  - Memory: process-local, for tests and headless runs
  - File: one file per key, atomic replace via rename
  - SQLite: a prefs table in a local database (modernc.org/sqlite, no cgo)
  - Redis: prefixed keys on a shared server

All backends return ErrNotFound for a key that was never written. Remote
backends can be wrapped in a Guard, which short-circuits calls while the
backend is failing.
*/
package storage
