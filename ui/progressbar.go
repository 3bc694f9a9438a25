package ui

import (
	"fmt"

	"github.com/brunoczim/thedes/progress"
	"github.com/brunoczim/thedes/tile"
)

// ProgressBar renders a progress.Monitor's snapshot. Unlike the other
// widgets it has no per-tick transition of its own: it is a passive
// readout of state another goroutine (e.g. a genproc.Generator run)
// drives forward.
type ProgressBar struct {
	Monitor progress.Monitor
}

// NewProgressBar wraps a monitor for drawing.
func NewProgressBar(monitor progress.Monitor) *ProgressBar {
	return &ProgressBar{Monitor: monitor}
}

// ProgressBarStyle configures a progress bar's colors.
type ProgressBarStyle struct {
	Filled tile.ColorPair
	Empty  tile.ColorPair
	Label  tile.ColorPair
}

// Draw renders a `████░░░░  NN% status` bar on row y, spanning the full
// region width: filled cells for the completed fraction, shaded cells for
// the rest, then the percentage and status label.
func (p *ProgressBar) Draw(r Region, y int, style ProgressBarStyle) {
	snap := p.Monitor.Read()
	var pct float64
	if snap.Goal > 0 {
		pct = float64(snap.Current) / float64(snap.Goal)
	}
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}

	label := fmt.Sprintf(" %3d%% %s", int(pct*100), snap.Status)
	w := int(r.Size.X)
	barW := w - runeLen(label)
	if barW < 1 {
		barW = 1
	}
	filled := int(float64(barW) * pct)

	row := r.Sub(0, y, w, 1)
	for x := 0; x < barW; x++ {
		if x < filled {
			row.Cell(x, 0, '█', style.Filled)
		} else {
			row.Cell(x, 0, '░', style.Empty)
		}
	}
	row.Text(barW, 0, label, style.Label)
}
