/*
Package saveload persists the progress aggregate under a single durable key.

Saving pulls state from the live progress writers, encodes the whole
aggregate and stores it in one write. Loading treats a missing or unreadable
slot as "no save" so the player starts fresh; only backend failures are
reported as errors.
*/
package saveload
