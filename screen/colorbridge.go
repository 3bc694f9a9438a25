package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/brunoczim/thedes/tile"
)

// toTcellColor resolves an abstract tile.Color through its device-neutral
// RGB form, letting tcell itself downsample to the terminal's detected
// color capability.
func toTcellColor(c tile.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
