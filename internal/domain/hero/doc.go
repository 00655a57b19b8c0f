/*
Package hero implements the player character.

Health and Move write their state back into the progress aggregate before
each save; Attack only reads the hero's stats.
*/
package hero
