package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// CropStats shows how many crops were written or failed in this run.
type CropStats interface {
	Set(completed, failed int)
}

type cropStats struct {
	lbl *LabelWidget
}

// NewCropStats creates the counter label at (row, col) inside parent.
func NewCropStats(parent *FrameWidget, row, col int) CropStats {
	s := &cropStats{lbl: Label(Anchor("w"))}
	if parent != nil {
		Grid(s.lbl, In(parent), Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.lbl, Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	}
	s.Set(0, 0)
	return s
}

func (s *cropStats) Set(completed, failed int) {
	if s == nil || s.lbl == nil {
		return
	}
	text := fmt.Sprintf("Cropped: %d", completed)
	if failed > 0 {
		text += fmt.Sprintf("  Failed: %d", failed)
	}
	s.lbl.Configure(Txt(text))
}
