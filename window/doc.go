// Package window hosts the page in a desktop window through ebiten.
//
// The game goroutine samples ebiten input once per tick, turns the difference from the previous
// sample into page events and steps the loop; Draw uploads the last rendered frame. Window
// sizes are css pixels, the backing image is scaled by the monitor's device scale factor.
package window
