package asset

import (
	"embed"
	"io/fs"
)

//go:embed demo
var demo embed.FS

// Demo returns the bundled sample media, rooted so paths read "demo/01.gif"
func Demo() fs.FS { return demo }
