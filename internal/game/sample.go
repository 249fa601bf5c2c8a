package game

// SampleChart builds the bundled demo pattern, used when no chart file is
// given. keyCount must be 4, 5 or 6; the pattern widens with the lane count.
func SampleChart(keyCount int) *Chart {
	max := keyCount - 1
	mid := keyCount / 2

	c := &Chart{
		Title:    "Demo",
		KeyCount: keyCount,
		BPM:      120,
	}
	add := func(lane int, kind NoteKind, hitTime, duration int64) {
		c.Notes = append(c.Notes, ChartNote{
			Lane:     lane,
			Kind:     kind,
			HitTime:  hitTime,
			Duration: duration,
		})
	}

	add(0, KindTap, 1000, 0)
	add(max, KindTap, 1500, 0)
	add(mid, KindTap, 2000, 0)
	add(0, KindTap, 2500, 0)
	add(max, KindTap, 3000, 0)
	add(0, KindHold, 3500, 700)
	add(max, KindTap, 3750, 0)
	add(mid, KindHold, 4000, 800)
	add(max, KindTap, 4500, 0)
	add(0, KindTap, 4750, 0)
	add(mid, KindTap, 5000, 0)
	add(max, KindTap, 5250, 0)
	add(0, KindTap, 5500, 0)
	if keyCount >= 5 {
		add(1, KindTap, 5750, 0)
		add(keyCount-2, KindTap, 5750, 0)
	}
	add(0, KindHold, 6000, 1000)
	add(max, KindHold, 6000, 1000)
	add(mid, KindTap, 6500, 0)
	add(mid, KindTap, 7000, 0)
	add(0, KindTap, 7250, 0)
	add(max, KindTap, 7250, 0)
	add(mid, KindHold, 7500, 600)

	return c
}
