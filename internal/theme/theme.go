package theme

import "github.com/trilleo/rhythmcraft/internal/game"

type Color struct {
	R, G, B uint8
}

type Theme interface {
	RenderNote(lane int, kind game.NoteKind, active bool) string
	RenderHoldBody(lane int, active bool) string
	RenderHitField(lane int) string
	RenderJudgement(j game.Judgement) string
	JudgementColor(j game.Judgement) Color
}
