// Package terminal hosts the page on a tcell screen.
//
// Features:
//   - Half-block rendering: each cell shows two vertically stacked pixels
//   - True color (24-bit) and 256-color palette output
//   - Mouse motion, press, release and wheel mapped to page pointer events
//   - Page labels drawn as cell text over the raster
//   - Clean terminal restoration on exit and crash
//
// One column is one css pixel wide and one row two css pixels tall; the frame is rendered at
// the configured dpr and downsampled to the cell grid.
package terminal
