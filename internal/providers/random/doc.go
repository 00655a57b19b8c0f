// Package random provides the random number service used for loot.
package random
