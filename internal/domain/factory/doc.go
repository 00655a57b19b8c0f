/*
Package factory creates the entities of a level.

Every entity that reads or writes progress is registered when it is built.
The save pipeline asks for a snapshot of the writers; the level loader pushes
the loaded aggregate to every reader. Cleanup drops all of it before the next
level is built.
*/
package factory
