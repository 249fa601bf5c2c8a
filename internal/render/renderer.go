package render

import (
	"time"

	"github.com/trilleo/rhythmcraft/internal/theme"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int, err error)
	AddDecoration(row, column int, content string, frames int)
	RenderLoop(delay, framePeriod time.Duration, render func(startTime time.Time, duration time.Duration) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, color theme.Color, message string)
}
