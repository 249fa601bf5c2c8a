package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"

	"github.com/trilleo/rhythmcraft/internal/config"
	"github.com/trilleo/rhythmcraft/internal/game"
	"github.com/trilleo/rhythmcraft/internal/input"
	"github.com/trilleo/rhythmcraft/internal/parser"
	"github.com/trilleo/rhythmcraft/internal/render"
	"github.com/trilleo/rhythmcraft/internal/score"
	"github.com/trilleo/rhythmcraft/internal/theme"
)

const keyEsc uint16 = 1 // KEY_ESC

func main() {
	config.Parse()
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// laneHolding reports whether the lane currently has an active hold, so
// terminal input can treat the next key event as the release.
func laneHolding(s *score.Session, lane int) bool {
	for _, n := range s.Notes() {
		if n.Lane == lane && n.HoldActive() {
			return true
		}
	}
	return false
}

func findSongFiles(dir string) (chartFile, audioFile string, err error) {
	err = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".json":
			chartFile = p
		case ".mp3", ".ogg":
			audioFile = p
		}
		return nil
	})
	return chartFile, audioFile, err
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}
	var scr score.Scorer = &score.DefaultScorer{}

	chart := game.SampleChart(*config.KeyCount)
	audioFile := ""
	if *config.Directory != "" {
		chartFile, audio, err := findSongFiles(*config.Directory)
		if nil != err {
			return fmt.Errorf("unable to walk song directory: %w", err)
		}
		if chartFile == "" {
			return errors.New("unable to find a .json chart in given directory")
		}
		chart, err = psr.Parse(chartFile)
		if nil != err {
			return err
		}
		audioFile = audio
	}
	keyCount := chart.KeyCount

	if err := scr.Init(); nil != err {
		return err
	}
	defer scr.Deinit()

	columns, rows, err := r.Size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	hitRow := rows - *config.BarRow
	mc := columns >> 1
	cis := make([]int, keyCount)
	for i := range cis {
		cis[i] = mc + (2*i-(keyCount-1))**config.ColumnSpacing
	}
	sideCol := cis[0] - 36
	if sideCol < 2 {
		sideCol = 2
	}

	session, err := score.NewSession(chart, func(lane int, j game.Judgement) {
		r.AddDecoration(hitRow+2, cis[lane]-1, th.RenderJudgement(j), 75)
	})
	if nil != err {
		return err
	}

	var keyChannel <-chan keyboard.KeyEvent
	deviceEvents := make(chan *input.Event, 128)
	if *config.Device != "" {
		if err := input.ReadInput(*config.Device, deviceEvents); nil != err {
			return fmt.Errorf("unable to open input device: %w", err)
		}
	} else {
		keys, err := keyboard.GetKeys(128)
		if nil != err {
			return fmt.Errorf("unable to open keyboard: %w", err)
		}
		keyChannel = keys
		defer func() {
			if err := keyboard.Close(); nil != err {
				log.Println("unable to close keyboard:", err)
			}
		}()
	}

	if audioFile != "" {
		f, err := os.Open(audioFile)
		if nil != err {
			return err
		}
		var streamer beep.StreamSeekCloser
		var format beep.Format
		if path.Ext(audioFile) == ".ogg" {
			streamer, format, err = vorbis.Decode(f)
		} else {
			streamer, format, err = mp3.Decode(f)
		}
		if nil != err {
			return err
		}
		defer streamer.Close()

		speaker.Init(
			beep.SampleRate(math.Round(float64(format.SampleRate)**config.Rate)),
			format.SampleRate.N(time.Second/60),
		)
		go func() {
			time.Sleep(*config.Delay)
			speaker.Play(streamer)
		}()
	}

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	held := make([]bool, keyCount)
	saved := false
	var best *score.Result

	r.RenderLoop(*config.Delay, *config.FramePeriod, func(_ time.Time, duration time.Duration) bool {
		elapsed := int64(float64((duration + *config.Offset).Milliseconds()) * *config.Rate)

		// Apply this tick's input events before the sweep runs
		if *config.Device != "" {
			for {
				select {
				case ev := <-deviceEvents:
					if ev.Code == keyEsc && ev.Pressed {
						return false
					}
					lane := config.CodeColumn(ev.Code, keyCount)
					if lane < 0 {
						continue
					}
					if ev.Pressed {
						session.Press(lane, elapsed)
					} else if ev.Released {
						session.Release(lane, elapsed)
					}
				default:
					goto swept
				}
			}
		}
		for i := 0; i < len(keyChannel); i++ {
			key := <-keyChannel
			if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
				return false
			}
			ch := key.Rune
			if key.Key == keyboard.KeySpace {
				ch = ' '
			}
			lane := config.KeyColumn(ch, keyCount)
			if lane < 0 {
				continue
			}
			// No key-release events in terminal mode, so a key on an
			// active hold acts as its release
			if held[lane] {
				held[lane] = false
				session.Release(lane, elapsed)
				continue
			}
			session.Press(lane, elapsed)
			held[lane] = laneHolding(session, lane)
		}

	swept:
		session.Advance(elapsed)

		renderField(r, th, session, cis, hitRow, rows, elapsed)
		renderHud(r, th, session, chart, sideCol)

		if session.Complete() {
			if !saved {
				scr.Save(chart, session.Summary())
				best = scr.Best(chart)
				saved = true
			}
			renderResult(r, session, best, mc, rows)
		}
		return true
	})
	return nil
}

func renderField(r render.Renderer, th theme.Theme, session *score.Session,
	cis []int, hitRow, rows int, elapsed int64) {
	rowFor := func(t int64) int {
		return hitRow - int((t-elapsed)/int64(*config.ScrollSpeed))
	}

	for _, col := range cis {
		for row := 1; row < rows; row++ {
			if row == hitRow {
				continue
			}
			r.Fill(row, col, " ")
		}
	}
	for i, col := range cis {
		r.Fill(hitRow, col, th.RenderHitField(i))
	}

	for _, n := range session.Notes() {
		if n.Resolved() {
			continue
		}
		col := cis[n.Lane]
		headRow := rowFor(n.Time)
		if n.IsHold() {
			tailRow := rowFor(n.TailTime())
			bottom := headRow
			if n.HoldActive() {
				bottom = hitRow
			}
			for row := bottom - 1; row > tailRow; row-- {
				if row > 0 && row < rows && row != hitRow {
					r.Fill(row, col, th.RenderHoldBody(n.Lane, n.HoldActive()))
				}
			}
			if tailRow > 0 && tailRow < rows {
				r.Fill(tailRow, col, th.RenderNote(n.Lane, n.Kind, n.HoldActive()))
			}
			if !n.HoldActive() && headRow > 0 && headRow < rows {
				r.Fill(headRow, col, th.RenderNote(n.Lane, n.Kind, false))
			}
			continue
		}
		if headRow > 0 && headRow < rows {
			r.Fill(headRow, col, th.RenderNote(n.Lane, n.Kind, false))
		}
	}
}

func renderHud(r render.Renderer, th theme.Theme, session *score.Session,
	chart *game.Chart, sideCol int) {
	s := session.Summary()
	r.Fill(2, sideCol, fmt.Sprintf("%v (%vK)", chart.Title, chart.KeyCount))
	r.Fill(4, sideCol, fmt.Sprintf("      Score:  %7v", s.Score))
	r.Fill(5, sideCol, fmt.Sprintf("      Combo:  %7v", s.Combo))
	r.Fill(6, sideCol, fmt.Sprintf("  Max Combo:  %7v", s.MaxCombo))
	r.Fill(7, sideCol, fmt.Sprintf("      Units:  %7v", s.TotalUnits))
	for i, count := range []int{s.Critical, s.Justice, s.Attack, s.Miss} {
		j := game.Judgement(i)
		r.Fill(9+i, sideCol, fmt.Sprintf("%v:  %6v", th.RenderJudgement(j), count))
	}
}

func renderResult(r render.Renderer, session *score.Session, best *score.Result,
	mc, rows int) {
	s := session.Summary()
	cen := rows >> 1
	col := mc - 18
	r.Fill(cen-3, col, "────────── CLEAR ──────────")
	r.Fill(cen-2, col, fmt.Sprintf("      Grade:  %v", s.Grade))
	r.Fill(cen-1, col, fmt.Sprintf("      Score:  %v", s.Score))
	r.Fill(cen, col, fmt.Sprintf("  CJ:%v  J:%v  ATK:%v  MISS:%v",
		s.Critical, s.Justice, s.Attack, s.Miss))
	r.Fill(cen+1, col, fmt.Sprintf("  Max Combo:  %v", s.MaxCombo))
	if nil != best {
		r.Fill(cen+2, col, fmt.Sprintf("       Best:  %v (%v)", best.Score, best.Grade))
	}
	r.Fill(cen+4, col, "      [Esc] Exit")
}
