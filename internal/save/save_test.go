package save

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var testNames = []string{"First Flight", "Beginner", "Boss Slayer"}

func quietLogger() *log.Logger {
	return log.NewWithOptions(&strings.Builder{}, log.Options{})
}

func TestEncodeFormat(t *testing.T) {
	rec := NewRecord(testNames)
	rec.HighScore = 42
	rec.Coins = 17
	rec.Achievements[0].Achieved = true
	rec.DailyCompleted = true
	rec.DailyDate = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	expected := "42,17\nFirst Flight,True\nBeginner,False\nBoss Slayer,False\nTrue,2024-03-09\n"
	if got := string(Marshal(rec)); got != expected {
		t.Errorf("Encoded record:\n%q\nexpected:\n%q", got, expected)
	}

	rec.DailyDate = time.Time{}
	if !strings.HasSuffix(string(Marshal(rec)), "True,None\n") {
		t.Errorf("Missing daily date should encode as None, got %q", Marshal(rec))
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"defaults", NewRecord(testNames)},
		{"all achieved", Record{
			HighScore:    120,
			Coins:        999,
			Achievements: []Flag{{"First Flight", true}, {"Beginner", true}, {"Boss Slayer", true}},
		}},
		{"with daily", Record{
			HighScore:      3,
			Coins:          0,
			Achievements:   []Flag{{"First Flight", true}, {"Beginner", false}, {"Boss Slayer", true}},
			DailyCompleted: true,
			DailyDate:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(Marshal(tc.rec), testNames)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got.HighScore != tc.rec.HighScore || got.Coins != tc.rec.Coins {
				t.Errorf("Got high=%d coins=%d, expected high=%d coins=%d",
					got.HighScore, got.Coins, tc.rec.HighScore, tc.rec.Coins)
			}
			for i, f := range tc.rec.Achievements {
				if got.Achievements[i] != f {
					t.Errorf("Achievement %d = %+v, expected %+v", i, got.Achievements[i], f)
				}
			}
			if got.DailyCompleted != tc.rec.DailyCompleted || !got.DailyDate.Equal(tc.rec.DailyDate) {
				t.Errorf("Daily = (%v, %v), expected (%v, %v)",
					got.DailyCompleted, got.DailyDate, tc.rec.DailyCompleted, tc.rec.DailyDate)
			}
		})
	}
}

func TestDecodeTolerant(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		rec, err := Decode(nil, testNames)
		if err != nil || rec.HighScore != 0 || len(rec.Achievements) != len(testNames) {
			t.Errorf("Empty data should decode to defaults, got %+v, %v", rec, err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		rec, err := Decode([]byte("7,8\n"), testNames)
		if err != nil {
			t.Fatalf("Short file should decode: %v", err)
		}
		if rec.HighScore != 7 || rec.Coins != 8 || rec.Achieved("First Flight") {
			t.Errorf("Unexpected record %+v", rec)
		}
	})

	t.Run("positional achievements", func(t *testing.T) {
		rec, err := Decode([]byte("1,1\nRenamed,True\n"), testNames)
		if err != nil {
			t.Fatal(err)
		}
		if !rec.Achieved("First Flight") {
			t.Error("Achievement lines should be matched by position")
		}
	})

	t.Run("no daily line", func(t *testing.T) {
		data := "5,5\nFirst Flight,True\nBeginner,False\nBoss Slayer,False\n"
		rec, err := Decode([]byte(data), testNames)
		if err != nil {
			t.Fatal(err)
		}
		if rec.DailyCompleted || !rec.DailyDate.IsZero() {
			t.Error("Daily state should stay default without a trailing line")
		}
	})
}

func TestDecodeCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"non-numeric high score", "abc,5\n"},
		{"missing coins", "12\n"},
		{"negative coins", "1,-4\n"},
		{"bad daily date", "1,1\nA,True\nB,True\nC,True\nTrue,yesterday\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := Decode([]byte(tc.data), testNames)
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Expected ErrCorrupt, got %v", err)
			}
			if rec.HighScore != 0 || rec.Coins != 0 || rec.Achieved("First Flight") {
				t.Errorf("Corrupt data should yield defaults, got %+v", rec)
			}
		})
	}
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	store := NewStore(path, quietLogger())

	rec := NewRecord(testNames)
	rec.HighScore = 11
	rec.Coins = 30
	rec.Achievements[1].Achieved = true

	if err := store.Save(rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := store.Load(testNames)
	if got.HighScore != 11 || got.Coins != 30 || !got.Achieved("Beginner") {
		t.Errorf("Loaded %+v", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Temporary files should not be left behind, found %d entries", len(entries))
	}
}

func TestStoreLoadMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	missing := NewStore(filepath.Join(dir, "missing.txt"), quietLogger())
	if _, err := missing.Read(testNames); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read of missing file should wrap fs.ErrNotExist, got %v", err)
	}
	if rec := missing.Load(testNames); rec.HighScore != 0 || len(rec.Achievements) != 3 {
		t.Errorf("Missing file should load defaults, got %+v", rec)
	}

	path := filepath.Join(dir, "corrupt.txt")
	if err := os.WriteFile(path, []byte("lots,of\ngarbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	corrupt := NewStore(path, quietLogger())
	if rec := corrupt.Load(testNames); rec.Coins != 0 {
		t.Errorf("Corrupt file should load defaults, got %+v", rec)
	}
}
