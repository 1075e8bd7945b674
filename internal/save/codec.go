// Package save reads and writes the player's progress file.
//
// The format is line oriented and comma separated:
//
//	high_score,coins
//	<achievement name>,True|False      one line per achievement, declared order
//	True|False,YYYY-MM-DD|None         daily challenge completed flag and date
//
// Achievement lines are matched by position, not by name. Short files are
// accepted: anything missing keeps its default value.
package save

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrCorrupt is wrapped by every decode failure.
var ErrCorrupt = errors.New("save: corrupt progress data")

// DateLayout is the daily challenge date format.
const DateLayout = "2006-01-02"

const (
	trueText  = "True"
	falseText = "False"
	noneText  = "None"
)

// Flag is one persisted achievement.
type Flag struct {
	Name     string
	Achieved bool
}

// Record is the persisted progress.
type Record struct {
	HighScore      int
	Coins          int
	Achievements   []Flag
	DailyCompleted bool
	DailyDate      time.Time // zero when no challenge was ever assigned
}

// NewRecord returns the default progress for the given achievement names.
func NewRecord(names []string) Record {
	flags := make([]Flag, len(names))
	for i, name := range names {
		flags[i] = Flag{Name: name}
	}
	return Record{Achievements: flags}
}

// Achieved reports whether the named achievement is set.
func (r Record) Achieved(name string) bool {
	for _, f := range r.Achievements {
		if f.Name == name {
			return f.Achieved
		}
	}
	return false
}

// Encode writes r in the progress file format.
func Encode(w io.Writer, r Record) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d,%d\n", r.HighScore, r.Coins)
	for _, f := range r.Achievements {
		fmt.Fprintf(bw, "%s,%s\n", f.Name, boolText(f.Achieved))
	}
	date := noneText
	if !r.DailyDate.IsZero() {
		date = r.DailyDate.Format(DateLayout)
	}
	fmt.Fprintf(bw, "%s,%s\n", boolText(r.DailyCompleted), date)
	return bw.Flush()
}

// Marshal is Encode into a byte slice.
func Marshal(r Record) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, r) // bytes.Buffer writes cannot fail
	return buf.Bytes()
}

// Decode parses progress data. Achievement flags are assigned to names by
// line position. Empty input yields the default record. Any malformed
// numeric or date field fails the whole decode with ErrCorrupt.
func Decode(data []byte, names []string) (Record, error) {
	rec := NewRecord(names)
	lines := splitLines(data)
	if len(lines) == 0 {
		return rec, nil
	}

	head := strings.Split(lines[0], ",")
	if len(head) != 2 {
		return NewRecord(names), fmt.Errorf("%w: header %q", ErrCorrupt, lines[0])
	}
	high, err := strconv.Atoi(strings.TrimSpace(head[0]))
	if err != nil {
		return NewRecord(names), fmt.Errorf("%w: high score: %v", ErrCorrupt, err)
	}
	coins, err := strconv.Atoi(strings.TrimSpace(head[1]))
	if err != nil {
		return NewRecord(names), fmt.Errorf("%w: coins: %v", ErrCorrupt, err)
	}
	if high < 0 || coins < 0 {
		return NewRecord(names), fmt.Errorf("%w: negative value in %q", ErrCorrupt, lines[0])
	}
	rec.HighScore = high
	rec.Coins = coins

	for i := range rec.Achievements {
		if i+1 >= len(lines) {
			break
		}
		parts := strings.Split(lines[i+1], ",")
		if len(parts) > 1 {
			rec.Achievements[i].Achieved = strings.TrimSpace(parts[1]) == trueText
		}
	}

	if len(lines) > len(names)+1 {
		parts := strings.Split(lines[len(lines)-1], ",")
		if len(parts) > 1 {
			rec.DailyCompleted = strings.TrimSpace(parts[0]) == trueText
			if d := strings.TrimSpace(parts[1]); d != noneText {
				date, err := time.Parse(DateLayout, d)
				if err != nil {
					return NewRecord(names), fmt.Errorf("%w: daily date: %v", ErrCorrupt, err)
				}
				rec.DailyDate = date
			}
		}
	}

	return rec, nil
}

func boolText(b bool) string {
	if b {
		return trueText
	}
	return falseText
}

// splitLines splits on newlines, trimming carriage returns and dropping
// trailing blank lines.
func splitLines(data []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
