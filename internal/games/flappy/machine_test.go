package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func TestModeTransitions(t *testing.T) {
	tests := []struct {
		name    string
		variant registry.Variant
		setup   []core.Action
		action  core.Action
		want    Mode
	}{
		{"menu jump starts run", Classic, nil, core.ActionJump, ModePlaying},
		{"menu confirm starts run", Classic, nil, core.ActionConfirm, ModePlaying},
		{"menu opens shop", Classic, nil, core.ActionOpenShop, ModeShop},
		{"shop disabled", BossRush, nil, core.ActionOpenShop, ModeMenu},
		{"menu opens achievements", BossRush, nil, core.ActionOpenAchievements, ModeAchievements},
		{"achievements disabled", Classic, nil, core.ActionOpenAchievements, ModeMenu},
		{"shop back", Classic, []core.Action{core.ActionOpenShop}, core.ActionBack, ModeMenu},
		{"achievements back", BossRush, []core.Action{core.ActionOpenAchievements}, core.ActionBack, ModeMenu},
		{"achievements to menu", BossRush, []core.Action{core.ActionOpenAchievements}, core.ActionToMenu, ModeMenu},
		{"menu ignores back", Classic, nil, core.ActionBack, ModeMenu},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine(tc.variant, nil)
			for _, a := range tc.setup {
				step(m, a)
			}
			step(m, tc.action)
			if m.Mode() != tc.want {
				t.Errorf("Mode = %v, expected %v", m.Mode(), tc.want)
			}
		})
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	store := &memStore{}
	m := newTestMachine(bare, store)
	m.state.Progress.HighScore = 2
	step(m, core.ActionJump)

	m.state.Progress.Score = 3
	m.state.Avatar.Y = 650
	res := step(m, core.ActionJump) // the jump on the fatal tick is dropped

	if m.Mode() != ModeGameOver {
		t.Fatalf("Leaving the world should end the run, mode=%v", m.Mode())
	}
	if store.saves != 1 {
		t.Errorf("GameOver should save exactly once, got %d", store.saves)
	}
	if store.rec.HighScore != 3 || m.State().Progress.HighScore != 3 {
		t.Errorf("High score should rise to 3, saved %d", store.rec.HighScore)
	}
	if !hasEvent(res.Events, EventGameOver) || hasEvent(res.Events, EventJump) {
		t.Errorf("Unexpected events on the fatal tick: %v", res.Events)
	}

	var summary *RunSummary
	for _, e := range res.Events {
		if e.Kind == EventRunEnded {
			summary = e.Run
		}
	}
	if summary == nil || summary.Score != 3 || !summary.NewHighScore || summary.Variant != "bare" {
		t.Errorf("Run summary = %+v", summary)
	}

	for i := 0; i < 10; i++ {
		step(m)
	}
	if store.saves != 1 {
		t.Errorf("Idle GameOver ticks must not save again, got %d saves", store.saves)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	store := &memStore{}
	m := newTestMachine(bare, store)
	m.state.Progress.HighScore = 50
	step(m, core.ActionJump)
	m.state.Progress.Score = 4
	m.state.Avatar.Y = -50
	res := step(m)

	if m.State().Progress.HighScore != 50 {
		t.Errorf("Lower score replaced the high score: %d", m.State().Progress.HighScore)
	}
	for _, e := range res.Events {
		if e.Kind == EventRunEnded && e.Run.NewHighScore {
			t.Error("Run should not be flagged as a new high score")
		}
	}
}

func TestRestartResetsRun(t *testing.T) {
	m := newTestMachine(Deluxe, nil)
	step(m, core.ActionJump)
	m.state.Progress.Score = 12
	m.state.Progress.Level = 5
	m.state.Pickups = append(m.state.Pickups, Pickup{Type: PowerUpImmunity, X: 200, Y: 200})
	m.state.Clouds = append(m.state.Clouds, Cloud{X: 200, Y: 10, Width: 80, Height: 40})
	m.state.Avatar.Y = 700
	step(m)
	if m.Mode() != ModeGameOver {
		t.Fatalf("Expected GameOver, got %v", m.Mode())
	}
	coins := m.State().Progress.Coins

	step(m, core.ActionJump)
	s := m.State()
	if s.Mode != ModePlaying || s.Progress.Score != 0 || s.Progress.Level != 1 {
		t.Errorf("Restart should reset score and level, got %+v", s.Progress)
	}
	if len(s.Pickups) != 0 || len(s.Clouds) != 0 || s.Boss.Active {
		t.Error("Restart should clear transient entities")
	}
	if s.Avatar.Y != 300 || s.Avatar.Velocity != 0 || s.Obstacle.X != 400 {
		t.Errorf("Restart should reset avatar and obstacle, avatar=%+v obstacle=%+v", s.Avatar, s.Obstacle)
	}
	if s.Progress.Coins != coins {
		t.Error("Coins persist across runs")
	}
}

func TestGameOverToMenu(t *testing.T) {
	m := newTestMachine(bare, nil)
	step(m, core.ActionJump)
	m.state.Avatar.Y = 700
	step(m)

	step(m, core.ActionToMenu)
	if m.Mode() != ModeMenu {
		t.Errorf("ToMenu from GameOver should return to the menu, got %v", m.Mode())
	}
}

func TestSimulationDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		if i%15 == 0 {
			inputs[i] = core.NewInputFrame(core.ActionJump)
		}
	}

	run := func() GameState {
		m := newTestMachine(Deluxe, nil)
		for _, in := range inputs {
			m.Step(in)
		}
		return m.State()
	}

	s1, s2 := run(), run()
	if s1.Progress != s2.Progress {
		t.Errorf("Progress differs between runs: %+v vs %+v", s1.Progress, s2.Progress)
	}
	if s1.Obstacle != s2.Obstacle || s1.Avatar != s2.Avatar {
		t.Error("Entity state differs between identical runs")
	}
	if len(s1.Pickups) != len(s2.Pickups) || len(s1.Clouds) != len(s2.Clouds) {
		t.Error("Spawned entities differ between identical runs")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := newTestMachine(Deluxe, nil)
	step(m, core.ActionJump)
	m.state.Pickups = append(m.state.Pickups, Pickup{Type: PowerUpSlowMotion, X: 200, Y: 200})

	snap := m.Snapshot()
	snap.Pickups[0].X = -500
	snap.Achievements[0].Achieved = true

	if m.state.Pickups[0].X != 200 || m.state.Achievements[0].Achieved {
		t.Error("Modifying a snapshot must not affect the machine")
	}
	if snap.WorldW != 400 || snap.WorldH != 600 || snap.Avatar.CosmeticName != "Blue" {
		t.Errorf("Snapshot world/avatar = %vx%v %q", snap.WorldW, snap.WorldH, snap.Avatar.CosmeticName)
	}
	if len(snap.Shop) != 5 || !snap.Shop[0].Hitbox.Contains(200, 120) {
		t.Errorf("Snapshot shop = %+v", snap.Shop)
	}
}

func TestSnapshotShopAffordability(t *testing.T) {
	m := New(Options{
		Variant:  Classic,
		Seed:     1,
		Logger:   quietLogger(),
		Owned:    []int{2},
		Equipped: 2,
	})
	m.state.Progress.Coins = 35

	snap := m.Snapshot()
	if snap.Avatar.Cosmetic != 2 || snap.Avatar.CosmeticColor != "yellow" {
		t.Errorf("Equipped cosmetic = %d (%s)", snap.Avatar.Cosmetic, snap.Avatar.CosmeticColor)
	}
	for _, e := range snap.Shop {
		switch e.Item.Name {
		case "Yellow Bird":
			if !e.Owned || !e.Equipped {
				t.Error("Yellow Bird should be owned and equipped")
			}
		case "Immunity":
			if !e.Affordable {
				t.Error("Immunity (30) should be affordable with 35 coins")
			}
		case "Slow Motion":
			if e.Affordable {
				t.Error("Slow Motion (40) should not be affordable with 35 coins")
			}
		}
	}
	if got := m.OwnedCosmetics(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("OwnedCosmetics = %v", got)
	}
}

func TestCloseSaves(t *testing.T) {
	store := &memStore{}
	m := newTestMachine(bare, store)
	m.state.Progress.Coins = 77
	m.state.Achievements[2].Achieved = true

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 || store.rec.Coins != 77 || !store.rec.Achieved("High Flyer") {
		t.Errorf("Close should save progress, got %+v after %d saves", store.rec, store.saves)
	}

	if err := newTestMachine(bare, nil).Close(); err != nil {
		t.Errorf("Close without a store should succeed, got %v", err)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "boss-rush", "deluxe"} {
		if !registry.Exists(id) {
			t.Errorf("Variant %q should be registered", id)
		}
	}
	v, err := registry.Lookup("boss-rush")
	if err != nil || !v.Features.Boss || v.Features.Shop {
		t.Errorf("boss-rush lookup = %+v, %v", v, err)
	}
}

func TestEventNames(t *testing.T) {
	tests := map[EventKind]string{
		EventJump:             "jump",
		EventScore:            "score",
		EventGameOver:         "game_over",
		EventPowerUpCollected: "power_up_collected",
		EventBossHit:          "boss_hit",
	}
	for kind, name := range tests {
		if kind.String() != name || !kind.Sound() {
			t.Errorf("%v should be the audio cue %q", kind, name)
		}
	}
	if EventPurchase.Sound() {
		t.Error("Purchases have no audio cue")
	}
}
