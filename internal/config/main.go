package config

import (
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory     = kingpin.Arg("directory", "Song/chart directory").ExistingDir()
	KeyCount      = kingpin.Flag("keys", "Lane count for the demo chart (4, 5, 6)").Default("4").Short('k').Int()
	Rate          = kingpin.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	Offset        = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay         = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Int()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("8ms").Short('p').Duration()
	BarRow        = kingpin.Flag("bar-row", "Console rows between the hit bar and the bottom").Default("8").Int()
	ScrollSpeed   = kingpin.Flag("scroll-speed", "Milliseconds of chart time per console row").Default("60").Short('s').Int()
	Device        = kingpin.Flag("device", "evdev device for true press/release input").String()

	keys4 = kingpin.Flag("keys-4", "Key runes for 4k").Default("dfjk").String()
	keys5 = kingpin.Flag("keys-5", "Key runes for 5k").Default("df jk").String()
	keys6 = kingpin.Flag("keys-6", "Key runes for 6k").Default("sdfjkl").String()

	// Default codes are D F (SPC) J K (S, L) from input-event-codes.h
	codes4 = kingpin.Flag("codes-4", "evdev key codes for 4k").Default("32,33,36,37").String()
	codes5 = kingpin.Flag("codes-5", "evdev key codes for 5k").Default("32,33,57,36,37").String()
	codes6 = kingpin.Flag("codes-6", "evdev key codes for 6k").Default("31,32,33,36,37,38").String()
)

func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}

func Keys(keyCount int) []rune {
	switch keyCount {
	case 5:
		return []rune(*keys5)
	case 6:
		return []rune(*keys6)
	}
	return []rune(*keys4)
}

func KeyColumn(r rune, keyCount int) int {
	for i, c := range Keys(keyCount) {
		if r == c {
			return i
		}
	}
	return -1
}

func KeyCodes(keyCount int) []uint16 {
	raw := *codes4
	switch keyCount {
	case 5:
		raw = *codes5
	case 6:
		raw = *codes6
	}
	codes := []uint16{}
	for _, part := range strings.Split(raw, ",") {
		code, err := strconv.ParseUint(strings.TrimSpace(part), 10, 16)
		if nil != err {
			continue
		}
		codes = append(codes, uint16(code))
	}
	return codes
}

func CodeColumn(code uint16, keyCount int) int {
	for i, c := range KeyCodes(keyCount) {
		if code == c {
			return i
		}
	}
	return -1
}
