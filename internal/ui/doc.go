/*
Package ui holds the headless user interface: the HUD elements, the shop
window and the loading curtain.

Elements keep display state (text, fill fractions) instead of drawing.
Widgets that subscribe to progress change notifications unsubscribe when
they close.
*/
package ui
