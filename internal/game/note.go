package game

// noteState is the judging lifecycle of one note. Transitions are one-way:
// pending → active (hold head pressed) → resolved, or pending → resolved.
type noteState uint8

const (
	statePending noteState = iota
	stateActive
	stateResolved
)

// Note is the runtime state of one chart note, owned by a single session.
type Note struct {
	Lane     int
	Kind     NoteKind
	Time     int64 // ms from session start the head should be hit
	Duration int64 // ms; 0 for TAP

	state      noteState
	head       Judgement
	tail       Judgement
	headJudged bool
	tailJudged bool
}

func (n *Note) IsHold() bool {
	return n.Kind == KindHold
}

// TailTime is the instant the tail of a hold should be released.
func (n *Note) TailTime() int64 {
	return n.Time + n.Duration
}

// Resolved reports whether no further judging can occur for this note.
func (n *Note) Resolved() bool {
	return n.state == stateResolved
}

// HoldActive reports whether a hold's head has been pressed and its tail
// not yet resolved.
func (n *Note) HoldActive() bool {
	return n.state == stateActive
}

func (n *Note) HeadJudgement() (Judgement, bool) {
	return n.head, n.headJudged
}

// LastJudgement returns the most recent verdict recorded for this note.
func (n *Note) LastJudgement() (Judgement, bool) {
	if n.tailJudged {
		return n.tail, true
	}
	return n.head, n.headJudged
}

// JudgeHead records the head verdict. A tap resolves immediately; a hold
// whose head was pressed becomes active and waits for its tail. A no-op
// unless the note is pending, so a head is judged at most once.
func (n *Note) JudgeHead(j Judgement) {
	if n.state != statePending {
		return
	}
	n.head = j
	n.headJudged = true
	if n.IsHold() && j != Miss {
		n.state = stateActive
		return
	}
	n.state = stateResolved
}

// JudgeTail records the tail verdict of an active hold. A no-op in any
// other state, so a tail is judged at most once and a resolved note never
// transitions again.
func (n *Note) JudgeTail(j Judgement) {
	if n.state != stateActive {
		return
	}
	n.tail = j
	n.tailJudged = true
	n.state = stateResolved
}
