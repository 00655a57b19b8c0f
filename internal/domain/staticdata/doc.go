/*
Package staticdata loads design-time tables from TOML files in the data
directory: monster tuning (monsters.toml), level layouts with spawners and
save triggers (levels.toml), and window definitions (windows.toml).

Tables are validated on load; a spawner naming an unknown monster is an error.
*/
package staticdata
