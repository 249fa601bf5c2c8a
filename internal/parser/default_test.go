package parser

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/trilleo/rhythmcraft/internal/game"
	"github.com/trilleo/rhythmcraft/internal/testdata"
)

func writeChart(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "chart.json")
	if err := ioutil.WriteFile(file, []byte(content), 0644); nil != err {
		t.Fatal("unable to write chart:", err)
	}
	return file
}

func TestParse(t *testing.T) {
	p := &DefaultParser{}
	chart, err := p.Parse(writeChart(t, testdata.Raw()))
	if nil != err {
		t.Fatal("unable to parse chart:", err)
	}
	if chart.Title != "Test Pattern" || chart.KeyCount != 4 || chart.BPM != 150 {
		t.Log("chart", chart.Title, chart.KeyCount, chart.BPM)
		t.Fail()
	}
	if len(chart.Notes) != 12 {
		t.Log("notes", len(chart.Notes))
		t.Fail()
	}
}

func TestParseDropsMalformedEntries(t *testing.T) {
	chart, err := (&DefaultParser{}).Parse(writeChart(t, `{
		"title": "dirty",
		"keyCount": 4,
		"notes": [
			{ "lane": 1, "type": "TAP",  "hitTime": 3000, "duration": 0 },
			{ "lane": 9, "type": "TAP",  "hitTime": 1000, "duration": 0 },
			{ "lane": -1, "type": "TAP", "hitTime": 1000, "duration": 0 },
			{ "lane": 0, "type": "ROLL", "hitTime": 1000, "duration": 0 },
			{ "lane": 0, "type": "TAP",  "hitTime": -50,  "duration": 0 },
			{ "lane": 0, "type": "HOLD", "hitTime": 500,  "duration": -10 },
			{ "lane": 2, "type": "HOLD", "hitTime": 1000, "duration": 600 }
		]
	}`))
	if nil != err {
		t.Fatal("unable to parse chart:", err)
	}

	if len(chart.Notes) != 2 {
		t.Log("notes", chart.Notes)
		t.Fail()
	}
	// Survivors come back sorted by hit time
	if chart.Notes[0].HitTime != 1000 || chart.Notes[1].HitTime != 3000 {
		t.Log("order", chart.Notes)
		t.Fail()
	}
	if chart.TotalUnits() != 3 {
		t.Log("units", chart.TotalUnits())
		t.Fail()
	}
}

func TestParseDefaultsKeyCount(t *testing.T) {
	chart, err := (&DefaultParser{}).Parse(writeChart(t, `{"title": "bare", "notes": []}`))
	if nil != err {
		t.Fatal(err)
	}
	if chart.KeyCount != 4 {
		t.Log("keyCount", chart.KeyCount)
		t.Fail()
	}
}

func TestParseClampsTapDuration(t *testing.T) {
	chart, err := (&DefaultParser{}).Parse(writeChart(t, `{
		"keyCount": 4,
		"notes": [ { "lane": 0, "type": "TAP", "hitTime": 1000, "duration": 250 } ]
	}`))
	if nil != err {
		t.Fatal(err)
	}
	if chart.Notes[0].Duration != 0 {
		t.Log("duration", chart.Notes[0].Duration)
		t.Fail()
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := (&DefaultParser{}).Parse(writeChart(t, "#NOTES: not json")); nil == err {
		t.Fail()
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := &DefaultParser{}
	chart := game.SampleChart(5)
	file := filepath.Join(t.TempDir(), "charts", "demo.json")

	if err := p.Save(chart, file); nil != err {
		t.Fatal("unable to save chart:", err)
	}
	loaded, err := p.Parse(file)
	if nil != err {
		t.Fatal("unable to reload chart:", err)
	}

	if loaded.Title != chart.Title || loaded.KeyCount != chart.KeyCount {
		t.Log("loaded", loaded.Title, loaded.KeyCount)
		t.Fail()
	}
	if len(loaded.Notes) != len(chart.Notes) {
		t.Log("notes", len(loaded.Notes), "expected", len(chart.Notes))
		t.Fail()
	}
	if loaded.TotalUnits() != chart.TotalUnits() {
		t.Log("units", loaded.TotalUnits(), chart.TotalUnits())
		t.Fail()
	}
}
