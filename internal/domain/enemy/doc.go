/*
Package enemy implements monsters and their spawners.

A Spawner consults KillData when progress is loaded: spawners recorded as
cleared stay empty, the rest create their monster. When a monster dies its
spawner is marked slain and records itself as cleared on the next save.
*/
package enemy
