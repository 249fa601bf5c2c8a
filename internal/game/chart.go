package game

// NoteKind is the serialised note type. The on-disk chart schema stores it
// by name so hand-edited files stay readable.
type NoteKind string

const (
	KindTap  NoteKind = "TAP"
	KindHold NoteKind = "HOLD"
)

func (k NoteKind) Valid() bool {
	return k == KindTap || k == KindHold
}

// ChartNote is a single serialisable note entry.
type ChartNote struct {
	Lane     int      `json:"lane"`
	Kind     NoteKind `json:"type"`
	HitTime  int64    `json:"hitTime"`  // ms from chart start
	Duration int64    `json:"duration"` // ms; 0 for TAP
}

// Chart is a song's metadata plus its ordered note list. It is loaded once
// per session and never mutated afterwards.
type Chart struct {
	Title     string      `json:"title"`
	MusicPath string      `json:"musicPath"`
	KeyCount  int         `json:"keyCount"`
	BPM       int         `json:"bpm"`
	OffsetMs  int64       `json:"offsetMs"`
	Notes     []ChartNote `json:"notes"`
}

// ToNotes instantiates the runtime note states for one session.
// Entries with an unknown kind are silently skipped.
func (c *Chart) ToNotes() []*Note {
	notes := make([]*Note, 0, len(c.Notes))
	for _, cn := range c.Notes {
		if !cn.Kind.Valid() {
			continue
		}
		notes = append(notes, &Note{
			Lane:     cn.Lane,
			Kind:     cn.Kind,
			Time:     cn.HitTime,
			Duration: cn.Duration,
		})
	}
	return notes
}

// TotalUnits counts the scored note-units of the chart: TAP = 1,
// HOLD = 2 (head and tail are judged separately). Notes outside the
// chart's lane range do not score.
func (c *Chart) TotalUnits() int {
	n := 0
	for _, cn := range c.Notes {
		if !cn.Kind.Valid() || cn.Lane < 0 || cn.Lane >= c.KeyCount {
			continue
		}
		n++
		if cn.Kind == KindHold {
			n++
		}
	}
	return n
}
