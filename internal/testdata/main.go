package testdata

import (
	"encoding/json"

	"github.com/trilleo/rhythmcraft/internal/game"
)

func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(data), &chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

// Raw returns the chart JSON, for tests that exercise file loading.
func Raw() string {
	return data
}

const data = `{
  "title": "Test Pattern",
  "musicPath": "",
  "keyCount": 4,
  "bpm": 150,
  "offsetMs": 0,
  "notes": [
    { "lane": 0, "type": "TAP",  "hitTime": 1000, "duration": 0 },
    { "lane": 1, "type": "TAP",  "hitTime": 1400, "duration": 0 },
    { "lane": 2, "type": "TAP",  "hitTime": 1800, "duration": 0 },
    { "lane": 3, "type": "TAP",  "hitTime": 2200, "duration": 0 },
    { "lane": 0, "type": "HOLD", "hitTime": 2600, "duration": 800 },
    { "lane": 3, "type": "TAP",  "hitTime": 3000, "duration": 0 },
    { "lane": 2, "type": "HOLD", "hitTime": 3400, "duration": 600 },
    { "lane": 1, "type": "TAP",  "hitTime": 3800, "duration": 0 },
    { "lane": 0, "type": "TAP",  "hitTime": 4200, "duration": 0 },
    { "lane": 3, "type": "HOLD", "hitTime": 4600, "duration": 1000 },
    { "lane": 1, "type": "TAP",  "hitTime": 5000, "duration": 0 },
    { "lane": 2, "type": "TAP",  "hitTime": 5400, "duration": 0 }
  ]
}`
