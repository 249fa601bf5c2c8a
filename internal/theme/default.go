package theme

import (
	"fmt"

	"github.com/trilleo/rhythmcraft/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane int, kind game.NoteKind, active bool) string {
	if kind == game.KindHold {
		if active {
			return paint(holdActiveColor, holdSym)
		}
		return paint(holdColor, holdSym)
	}
	return paint(tapColor, tapSym)
}

func (t *DefaultTheme) RenderHoldBody(lane int, active bool) string {
	if active {
		return paint(holdActiveColor, bodySym)
	}
	return paint(holdBodyColor, bodySym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	return paint(judgementColors[j], judgementNames[j])
}

func (t *DefaultTheme) JudgementColor(j game.Judgement) Color {
	return judgementColors[j]
}

const (
	tapSym  = "⬤"
	holdSym = "◉"
	bodySym = "┃"
	barSym  = "-"
)

var (
	tapColor        = Color{230, 237, 243}
	holdColor       = Color{78, 205, 196}
	holdBodyColor   = Color{54, 142, 135}
	holdActiveColor = Color{38, 198, 218}

	judgementColors = map[game.Judgement]Color{
		game.CriticalJustice: {0, 255, 255},
		game.Justice:         {255, 204, 0},
		game.Attack:          {255, 136, 0},
		game.Miss:            {255, 68, 68},
	}
	judgementNames = map[game.Judgement]string{
		game.CriticalJustice: "  CJ",
		game.Justice:         "   J",
		game.Attack:          " ATK",
		game.Miss:            "MISS",
	}
)

func paint(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}
