package score

import (
	"github.com/trilleo/rhythmcraft/internal/game"
)

// MaxScore is the score of an all CRITICAL JUSTICE play, regardless of
// note count.
const MaxScore int64 = 1_010_000

// Tally accumulates the verdict counts and the running combo of one
// session. TotalUnits is fixed at session start.
type Tally struct {
	Critical int
	Justice  int
	Attack   int
	Miss     int

	Combo    int
	MaxCombo int

	TotalUnits int
}

// Record folds one verdict into the counts and the combo.
func (t *Tally) Record(j game.Judgement) {
	switch j {
	case game.CriticalJustice:
		t.Critical++
	case game.Justice:
		t.Justice++
	case game.Attack:
		t.Attack++
	case game.Miss:
		t.Miss++
	}
	if j.Breaks() {
		t.Combo = 0
		return
	}
	t.Combo++
	if t.Combo > t.MaxCombo {
		t.MaxCombo = t.Combo
	}
}

// CountMiss increments the miss count without touching the combo or
// counting as a recorded verdict. The sweep uses it for the implicit tail
// miss of a hold whose head was never pressed.
func (t *Tally) CountMiss() {
	t.Miss++
}

// Score is the closed-form 1,010,000-max score:
//   (critical*101 + justice*100 + attack*60) * 10000 / totalUnits
// Multiplication happens before the integer division so the result is
// exact and reproducible.
func (t *Tally) Score() int64 {
	if t.TotalUnits <= 0 {
		return 0
	}
	raw := (int64(t.Critical)*101 + int64(t.Justice)*100 + int64(t.Attack)*60) *
		10_000 / int64(t.TotalUnits)
	if raw > MaxScore {
		return MaxScore
	}
	return raw
}

// Grade maps a final score to its letter grade.
func Grade(score int64) string {
	switch {
	case score >= 1_005_000:
		return "SSS+"
	case score >= 1_000_000:
		return "SSS"
	case score >= 990_000:
		return "SS"
	case score >= 975_000:
		return "S"
	case score >= 950_000:
		return "AAA"
	case score >= 900_000:
		return "AA"
	case score >= 800_000:
		return "A"
	case score >= 700_000:
		return "B"
	case score >= 500_000:
		return "C"
	}
	return "D"
}
