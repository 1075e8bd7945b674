package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testMachine() *flappy.Machine {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return flappy.New(flappy.Options{
		Variant: flappy.Deluxe,
		Seed:    7,
		Clock:   func() time.Time { return now },
		Logger:  quietLogger(),
	})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActionPerMode(t *testing.T) {
	keys := DefaultKeyMap()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		mode     flappy.Mode
		expected core.Action
	}{
		{"space starts from menu", space, flappy.ModeMenu, core.ActionJump},
		{"s opens shop", runeKey('s'), flappy.ModeMenu, core.ActionOpenShop},
		{"a opens achievements", runeKey('a'), flappy.ModeMenu, core.ActionOpenAchievements},
		{"up flaps while playing", up, flappy.ModePlaying, core.ActionJump},
		{"w flaps while playing", runeKey('w'), flappy.ModePlaying, core.ActionJump},
		{"s does nothing while playing", runeKey('s'), flappy.ModePlaying, core.ActionNone},
		{"up moves the shop cursor", up, flappy.ModeShop, core.ActionUp},
		{"s moves the shop cursor down", runeKey('s'), flappy.ModeShop, core.ActionDown},
		{"enter buys", enter, flappy.ModeShop, core.ActionConfirm},
		{"b leaves the shop", runeKey('b'), flappy.ModeShop, core.ActionBack},
		{"m returns to menu after game over", runeKey('m'), flappy.ModeGameOver, core.ActionToMenu},
		{"space retries after game over", space, flappy.ModeGameOver, core.ActionJump},
		{"esc leaves achievements", tea.KeyMsg{Type: tea.KeyEsc}, flappy.ModeAchievements, core.ActionBack},
		{"space ignored on achievements", space, flappy.ModeAchievements, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg, tc.mode); got != tc.expected {
				t.Errorf("Action(%q, %s) = %s, expected %s", tc.msg.String(), tc.mode, got, tc.expected)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(80, 23, 400, 600)

	for _, cell := range [][2]int{{0, 1}, {40, 12}, {79, 22}} {
		x, y, ok := v.world(cell[0], cell[1])
		if !ok {
			t.Fatalf("Cell %v should be inside the field", cell)
		}
		if v.col(x) != cell[0] || v.row(y) != cell[1] {
			t.Errorf("Cell %v maps to world (%.1f, %.1f) and back to (%d, %d)", cell, x, y, v.col(x), v.row(y))
		}
	}

	if _, _, ok := v.world(10, 0); ok {
		t.Error("HUD row should be outside the field")
	}
	if _, _, ok := v.world(80, 5); ok {
		t.Error("Column past the edge should be outside the field")
	}

	r := v.rect(core.BoxAt(0, 0, 1, 1))
	if r.W < 1 || r.H < 1 {
		t.Errorf("Tiny boxes should cover at least one cell, got %+v", r)
	}
}

func TestDrawMenu(t *testing.T) {
	scr := core.NewScreen(80, 23)
	drawFrame(scr, testMachine().Snapshot(), "")

	text := scr.String()
	for _, want := range []string{"F L A P P Y", "Flappy Deluxe", "S  shop", "A  achievements", "Daily: Score"} {
		if !strings.Contains(text, want) {
			t.Errorf("Menu should contain %q", want)
		}
	}
}

func TestDrawPlayingHUD(t *testing.T) {
	m := testMachine()
	m.Step(core.NewInputFrame(core.ActionJump))

	scr := core.NewScreen(80, 23)
	drawFrame(scr, m.Snapshot(), "")
	if !strings.HasPrefix(scr.Row(0), "Score 0  Level 1") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.ContainsRune(scr.String(), avatarRune) {
		t.Error("Avatar should be drawn")
	}
}

func TestShopLabelsAreClickable(t *testing.T) {
	m := testMachine()
	m.Step(core.NewInputFrame(core.ActionOpenShop))
	if m.Mode() != flappy.ModeShop {
		t.Fatalf("Expected shop mode, got %s", m.Mode())
	}

	scr := core.NewScreen(80, 23)
	snap := m.Snapshot()
	drawFrame(scr, snap, "")
	v := newViewport(scr.Width(), scr.Height(), snap.WorldW, snap.WorldH)

	for i, entry := range snap.Shop {
		row, col := -1, -1
		for y := 0; y < scr.Height(); y++ {
			if x := strings.Index(scr.Row(y), entry.Item.Name); x >= 0 {
				row, col = y, len([]rune(scr.Row(y)[:x]))
				break
			}
		}
		if row < 0 {
			t.Fatalf("Label %q not drawn", entry.Item.Name)
		}

		x, y, ok := v.world(col+1, row)
		if !ok {
			t.Fatalf("Label %q is outside the field", entry.Item.Name)
		}
		var f core.InputFrame
		f.Click(x, y)
		res := m.Step(f)

		found := false
		for _, ev := range res.Events {
			if ev.Kind == flappy.EventPurchase && ev.Item == i {
				found = true
			}
		}
		if !found {
			t.Errorf("Clicking %q at world (%.0f, %.0f) did not hit item %d", entry.Item.Name, x, y, i)
		}
	}
}

func TestModelRecordsFinishedRun(t *testing.T) {
	runs, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer runs.Close()

	var model tea.Model = NewModel(Options{
		Machine: testMachine(),
		Runs:    runs,
		Profile: "tester",
		Logger:  quietLogger(),
		Width:   80,
		Height:  24,
	})
	id := model.(Model).id

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 600 && model.(Model).snap.Mode != flappy.ModeGameOver; i++ {
		model, _ = model.Update(TickMsg{ID: id})
	}
	if model.(Model).snap.Mode != flappy.ModeGameOver {
		t.Fatal("Avatar should fall out of the world without input")
	}

	n, err := runs.RunCount("tester")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 recorded run, got %d", n)
	}

	// A stale tick from another model is ignored
	before := model.(Model).machine.State().Tick
	model, _ = model.Update(TickMsg{ID: id + 1000})
	if model.(Model).machine.State().Tick != before {
		t.Error("Ticks addressed to another model should be ignored")
	}
}

func TestEmbeddedModelQuitsWithoutEndingProgram(t *testing.T) {
	var model tea.Model = NewModel(Options{
		Machine:  testMachine(),
		Logger:   quietLogger(),
		Embedded: true,
	})

	model, cmd := model.Update(runeKey('q'))
	if !model.(Model).Done() {
		t.Error("Embedded model should be done after quit")
	}
	if cmd != nil {
		t.Error("Embedded model should not quit the program")
	}
	if model.View() != "" {
		t.Error("Finished model should render nothing")
	}
}

func TestSaveFileName(t *testing.T) {
	tests := map[string]string{
		"alice":      "alice.txt",
		"bob smith":  "bob_smith.txt",
		"../../etc":  "_.._etc.txt",
		"":           "anonymous.txt",
		"user@host":  "user_host.txt",
	}
	for in, want := range tests {
		if got := saveFileName(in); got != want {
			t.Errorf("saveFileName(%q) = %q, expected %q", in, got, want)
		}
	}
}
