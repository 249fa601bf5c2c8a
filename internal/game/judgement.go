package game

// Timing windows in milliseconds. The same table applies to a head press
// and to the release of a hold tail.
const (
	WindowCritical int64 = 50
	WindowJustice  int64 = 83
	WindowAttack   int64 = 116
)

// Judgement is the grade of one scored note-unit.
type Judgement uint8

const (
	CriticalJustice Judgement = iota
	Justice
	Attack
	Miss
)

// Judge classifies an absolute timing difference in milliseconds.
// Anything past the attack window is a miss.
func Judge(diff int64) Judgement {
	switch {
	case diff <= WindowCritical:
		return CriticalJustice
	case diff <= WindowJustice:
		return Justice
	case diff <= WindowAttack:
		return Attack
	}
	return Miss
}

// Weight is the per-unit multiplier of the 1,010,000 score formula.
func (j Judgement) Weight() int64 {
	switch j {
	case CriticalJustice:
		return 101
	case Justice:
		return 100
	case Attack:
		return 60
	}
	return 0
}

// Breaks reports whether the verdict resets the combo.
func (j Judgement) Breaks() bool {
	return j == Attack || j == Miss
}

func (j Judgement) String() string {
	switch j {
	case CriticalJustice:
		return "CRITICAL JUSTICE"
	case Justice:
		return "JUSTICE"
	case Attack:
		return "ATTACK"
	}
	return "MISS"
}
