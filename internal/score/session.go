package score

import (
	"fmt"

	"github.com/trilleo/rhythmcraft/internal/game"
)

// Session judges one play-through of a chart. It owns the runtime note
// states and the tally exclusively; the host drives it single-threaded
// with Press/Release/Advance and discards it when the play ends.
//
// All timing is the caller-supplied elapsed milliseconds since session
// start; the session never reads a clock.
type Session struct {
	keyCount int
	notes    []*game.Note
	tally    Tally
	complete bool

	onJudgement func(lane int, j game.Judgement)
}

// NewSession instantiates the runtime state for chart. onJudgement, if not
// nil, is invoked for every recorded verdict so the host can flash the
// lane; the implicit tail miss of an unpressed hold is tallied without a
// callback.
//
// A chart with an unsupported key count or a note outside the lane range
// is a programming error upstream and is rejected here.
func NewSession(chart *game.Chart, onJudgement func(lane int, j game.Judgement)) (*Session, error) {
	switch chart.KeyCount {
	case 4, 5, 6:
	default:
		return nil, fmt.Errorf("unsupported key count %v", chart.KeyCount)
	}

	notes := chart.ToNotes()
	units := 0
	for _, n := range notes {
		if n.Lane < 0 || n.Lane >= chart.KeyCount {
			return nil, fmt.Errorf("note at %vms: lane %v out of range for %v keys",
				n.Time, n.Lane, chart.KeyCount)
		}
		units++
		if n.IsHold() {
			units++
		}
	}

	s := &Session{
		keyCount:    chart.KeyCount,
		notes:       notes,
		onJudgement: onJudgement,
	}
	s.tally.TotalUnits = units
	return s, nil
}

// Press judges the head of the closest candidate note in lane at elapsed.
// Candidates are unresolved, non-active notes within the attack window;
// a press with no candidate is an air press and has no effect at all.
func (s *Session) Press(lane int, elapsed int64) {
	if s.complete || lane < 0 || lane >= s.keyCount {
		return
	}

	var best *game.Note
	bestDiff := game.WindowAttack + 1
	for _, n := range s.notes {
		if n.Lane != lane || n.Resolved() || n.HoldActive() {
			continue
		}
		diff := abs(n.Time - elapsed)
		if diff < bestDiff {
			bestDiff = diff
			best = n
		}
	}
	if nil == best {
		return
	}

	j := game.Judge(bestDiff)
	best.JudgeHead(j)
	s.record(lane, j)
}

// Release resolves the active hold in lane, if any. An early release can
// never earn CRITICAL JUSTICE: within the window the grade is capped at
// JUSTICE, beyond it the tail is a miss. A release with no active hold is
// a no-op.
func (s *Session) Release(lane int, elapsed int64) {
	if lane < 0 || lane >= s.keyCount {
		return
	}
	for _, n := range s.notes {
		if n.Lane != lane || !n.HoldActive() {
			continue
		}

		early := n.TailTime() - elapsed // positive = released before the tail
		diff := abs(early)
		var j game.Judgement
		switch {
		case early > game.WindowAttack:
			j = game.Miss
		case early > 0:
			if diff <= game.WindowJustice {
				j = game.Justice
			} else {
				j = game.Attack
			}
		default:
			j = game.Judge(diff)
		}

		n.JudgeTail(j)
		s.record(lane, j)
		return
	}
}

// Advance runs the auto-judge sweep at elapsed, which must be
// monotonically non-decreasing within a session. The host must deliver
// the tick's Press/Release events before calling Advance, so a press
// racing the window expiry is honoured rather than auto-missed.
//
// Unaddressed notes past the attack window are missed; for a hold this
// also tallies the implicitly missed tail, silently, so the lane does not
// flash twice. An active hold past its tail window auto-completes as
// CRITICAL JUSTICE: the player held through the whole note.
func (s *Session) Advance(elapsed int64) {
	done := true
	for _, n := range s.notes {
		if !n.Resolved() && !n.HoldActive() && n.Time-elapsed < -game.WindowAttack {
			n.JudgeHead(game.Miss)
			s.record(n.Lane, game.Miss)
			if n.IsHold() {
				s.tally.CountMiss()
			}
		}

		if n.HoldActive() && elapsed > n.TailTime()+game.WindowAttack {
			n.JudgeTail(game.CriticalJustice)
			s.record(n.Lane, game.CriticalJustice)
		}

		if !n.Resolved() {
			done = false
		}
	}
	if !s.complete && done && len(s.notes) > 0 {
		s.complete = true
	}
}

func (s *Session) record(lane int, j game.Judgement) {
	s.tally.Record(j)
	if nil != s.onJudgement {
		s.onJudgement(lane, j)
	}
}

// Notes exposes the per-note runtime state for rendering.
func (s *Session) Notes() []*game.Note {
	return s.notes
}

func (s *Session) KeyCount() int {
	return s.keyCount
}

// Complete reports whether every note has resolved. An empty chart never
// completes.
func (s *Session) Complete() bool {
	return s.complete
}

// Summary is the aggregate snapshot consumed by the HUD and the result
// screen.
type Summary struct {
	Score      int64
	Grade      string
	Combo      int
	MaxCombo   int
	Critical   int
	Justice    int
	Attack     int
	Miss       int
	TotalUnits int
	Complete   bool
}

func (s *Session) Summary() Summary {
	sc := s.tally.Score()
	return Summary{
		Score:      sc,
		Grade:      Grade(sc),
		Combo:      s.tally.Combo,
		MaxCombo:   s.tally.MaxCombo,
		Critical:   s.tally.Critical,
		Justice:    s.tally.Justice,
		Attack:     s.tally.Attack,
		Miss:       s.tally.Miss,
		TotalUnits: s.tally.TotalUnits,
		Complete:   s.complete,
	}
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
