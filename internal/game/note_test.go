package game

import (
	"testing"
)

func TestTapHeadJudgedOnce(t *testing.T) {
	n := &Note{Lane: 0, Kind: KindTap, Time: 1000}
	n.JudgeHead(Justice)
	n.JudgeHead(CriticalJustice) // must not overwrite

	j, ok := n.HeadJudgement()
	if !ok || j != Justice || !n.Resolved() {
		t.Log("verdict", j, ok)
		t.Fail()
	}
}

func TestHoldStateTransitions(t *testing.T) {
	n := &Note{Lane: 0, Kind: KindHold, Time: 1000, Duration: 500}

	if n.HoldActive() || n.Resolved() {
		t.Fail()
	}
	n.JudgeTail(CriticalJustice) // no active hold yet
	if n.Resolved() {
		t.Fail()
	}

	n.JudgeHead(Attack)
	if !n.HoldActive() || n.Resolved() {
		t.Log("active", n.HoldActive(), "resolved", n.Resolved())
		t.Fail()
	}

	n.JudgeTail(Justice)
	if n.HoldActive() || !n.Resolved() {
		t.Log("active", n.HoldActive(), "resolved", n.Resolved())
		t.Fail()
	}
	if j, _ := n.LastJudgement(); j != Justice {
		t.Log("verdict", j)
		t.Fail()
	}

	// Resolved is terminal
	n.JudgeHead(CriticalJustice)
	n.JudgeTail(CriticalJustice)
	if j, _ := n.LastJudgement(); j != Justice {
		t.Log("verdict after re-judge", j)
		t.Fail()
	}
}

func TestMissedHoldHeadResolvesImmediately(t *testing.T) {
	n := &Note{Lane: 0, Kind: KindHold, Time: 1000, Duration: 500}
	n.JudgeHead(Miss)
	if n.HoldActive() || !n.Resolved() {
		t.Log("active", n.HoldActive(), "resolved", n.Resolved())
		t.Fail()
	}
}

var judgeTests = map[int64]Judgement{
	0:   CriticalJustice,
	50:  CriticalJustice,
	51:  Justice,
	83:  Justice,
	84:  Attack,
	116: Attack,
	117: Miss,
	500: Miss,
}

func TestJudge(t *testing.T) {
	for diff, expected := range judgeTests {
		if j := Judge(diff); j != expected {
			t.Log("diff    ", diff)
			t.Log("verdict ", j)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestTotalUnits(t *testing.T) {
	c := &Chart{KeyCount: 4, Notes: []ChartNote{
		{Lane: 0, Kind: KindTap, HitTime: 100},
		{Lane: 1, Kind: KindHold, HitTime: 200, Duration: 300},
		{Lane: 5, Kind: KindTap, HitTime: 300}, // out of lane range
		{Lane: 2, Kind: "ROLL", HitTime: 400},  // unknown kind
		{Lane: 3, Kind: KindHold, HitTime: 500, Duration: 100},
	}}
	if units := c.TotalUnits(); units != 5 {
		t.Log("units", units)
		t.Fail()
	}

	empty := &Chart{KeyCount: 4}
	if units := empty.TotalUnits(); units != 0 {
		t.Log("units", units)
		t.Fail()
	}
}

func TestToNotesSkipsUnknownKinds(t *testing.T) {
	c := &Chart{KeyCount: 4, Notes: []ChartNote{
		{Lane: 0, Kind: KindTap, HitTime: 100},
		{Lane: 1, Kind: "ROLL", HitTime: 200},
		{Lane: 2, Kind: KindHold, HitTime: 300, Duration: 400},
	}}
	notes := c.ToNotes()
	if len(notes) != 2 {
		t.Log("notes", len(notes))
		t.Fail()
	}
	if notes[1].TailTime() != 700 {
		t.Log("tail", notes[1].TailTime())
		t.Fail()
	}
}

func TestSampleChartLanesInRange(t *testing.T) {
	for _, keyCount := range []int{4, 5, 6} {
		c := SampleChart(keyCount)
		if c.KeyCount != keyCount || len(c.Notes) == 0 {
			t.Log("keyCount", c.KeyCount, "notes", len(c.Notes))
			t.Fail()
		}
		for _, n := range c.Notes {
			if n.Lane < 0 || n.Lane >= keyCount {
				t.Log("lane", n.Lane, "keyCount", keyCount)
				t.Fail()
			}
		}
	}
}
