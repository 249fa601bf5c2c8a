package score

import (
	"github.com/trilleo/rhythmcraft/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save the result of this play-through
	Save(chart *game.Chart, result Summary)

	// Load up previous results for the chart
	Load(chart *game.Chart) []Result

	// Best result for the chart, nil if never completed
	Best(chart *game.Chart) *Result
}

// Result is one persisted play-through of a chart.
type Result struct {
	Sum      string
	Title    string
	Score    int64
	Grade    string
	MaxCombo int
	Critical int
	Justice  int
	Attack   int
	Miss     int
}
