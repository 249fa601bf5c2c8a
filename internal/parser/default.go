package parser

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/trilleo/rhythmcraft/internal/game"
)

type DefaultParser struct{}

// Parse loads a JSON chart file and sanitises it to the invariants the
// judging core may assume: known note kinds, non-negative times and
// durations, lanes inside the chart's key count. Malformed entries are
// dropped, not errors; a file that is not a chart at all is.
func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}

	var chart game.Chart
	if err := json.Unmarshal(data, &chart); nil != err {
		return nil, fmt.Errorf("unable to parse chart %v: %w", file, err)
	}
	if chart.KeyCount == 0 {
		chart.KeyCount = 4
	}

	chart.Notes = sanitise(&chart)
	sort.SliceStable(chart.Notes, func(i, j int) bool {
		return chart.Notes[i].HitTime < chart.Notes[j].HitTime
	})
	return &chart, nil
}

func sanitise(c *game.Chart) []game.ChartNote {
	notes := make([]game.ChartNote, 0, len(c.Notes))
	for _, n := range c.Notes {
		if !n.Kind.Valid() || n.HitTime < 0 || n.Duration < 0 {
			continue
		}
		if n.Lane < 0 || n.Lane >= c.KeyCount {
			continue
		}
		if n.Kind == game.KindTap && n.Duration != 0 {
			n.Duration = 0
		}
		notes = append(notes, n)
	}
	return notes
}

// Save writes the chart as indented JSON, creating parent directories.
func (p *DefaultParser) Save(chart *game.Chart, file string) error {
	data, err := json.MarshalIndent(chart, "", "  ")
	if nil != err {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); nil != err {
		return err
	}
	return ioutil.WriteFile(file, data, 0644)
}
