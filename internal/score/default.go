package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"

	"github.com/trilleo/rhythmcraft/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	db *sql.DB
}

// counts is the verdict breakdown column, stored as JSON.
type counts struct {
	Critical int
	Justice  int
	Attack   int
	Miss     int
}

func (s *DefaultScorer) Init() error {
	db, err := sql.Open("sqlite3", "./results.db")
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists results
	  (
		  id integer not null primary key,
		  sum text,
		  title text,
		  score integer,
		  grade text,
		  max_combo integer,
		  counts bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// hashChart identifies a chart by its note data, so retitled copies of the
// same notes share a history.
func (s *DefaultScorer) hashChart(c *game.Chart) string {
	data, err := json.Marshal(c.Notes)
	if nil != err {
		return c.Title
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Save(c *game.Chart, result Summary) {
	data, err := json.Marshal(counts{
		Critical: result.Critical,
		Justice:  result.Justice,
		Attack:   result.Attack,
		Miss:     result.Miss,
	})
	if nil != err {
		log.Println("unable to marshal verdict counts", err)
		return
	}
	_, err = s.db.Exec(
		"insert into results(sum, title, score, grade, max_combo, counts) values(?, ?, ?, ?, ?, ?)",
		s.hashChart(c), c.Title, result.Score, result.Grade, result.MaxCombo, data)
	if nil != err {
		log.Println("unable to save result", err)
		return
	}
}

func (s *DefaultScorer) Load(c *game.Chart) []Result {
	results := []Result{}
	rows, err := s.db.Query(
		"select sum, title, score, grade, max_combo, counts from results where sum = ?",
		s.hashChart(c))
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load results", err)
		return results
	}
	defer rows.Close()
	for rows.Next() {
		var result Result
		var data []byte
		rows.Scan(&result.Sum, &result.Title, &result.Score, &result.Grade, &result.MaxCombo, &data)
		var cs counts
		if err := json.Unmarshal(data, &cs); nil != err {
			log.Println("unable to unmarshal verdict counts")
			continue
		}
		result.Critical = cs.Critical
		result.Justice = cs.Justice
		result.Attack = cs.Attack
		result.Miss = cs.Miss
		results = append(results, result)
	}
	return results
}

// Best returns the highest persisted score for the chart, or nil if it has
// never been completed.
func (s *DefaultScorer) Best(c *game.Chart) *Result {
	var best *Result
	for _, r := range s.Load(c) {
		r := r
		if nil == best || r.Score > best.Score {
			best = &r
		}
	}
	return best
}
