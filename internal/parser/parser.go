package parser

import "github.com/trilleo/rhythmcraft/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
	Save(chart *game.Chart, file string) error
}
