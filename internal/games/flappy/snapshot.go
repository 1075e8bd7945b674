package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ShopEntry is a catalog item with its state for display.
type ShopEntry struct {
	Item       ShopItem
	Affordable bool
	Owned      bool // cosmetics only
	Equipped   bool // cosmetics only
	Hitbox     core.Rect
}

// AvatarView is the renderer's view of the avatar.
type AvatarView struct {
	X, Y          float64
	Velocity      float64
	Radius        float64
	Cosmetic      int
	CosmeticName  string
	CosmeticColor string
	PowerUp       PowerUp
	PowerUpTicks  int
}

// Snapshot is a read-only copy of everything the renderer needs for one
// frame. It shares no memory with the machine.
type Snapshot struct {
	Mode     Mode
	Variant  string
	Title    string
	Features core.Features

	WorldW, WorldH float64
	TickRate       int

	Avatar   AvatarView
	Obstacle ObstaclePair
	Boss     Boss
	Pickups  []Pickup
	Clouds   []Cloud
	IsDay    bool

	Score     int
	Level     int
	Coins     int
	HighScore int
	Speed     float64

	Achievements []Achievement
	Daily        DailyChallenge
	Shop         []ShopEntry
	ShopCursor   int
	Armed        PowerUp
}

// Snapshot returns the current render view.
func (m *Machine) Snapshot() Snapshot {
	s := &m.state
	snap := Snapshot{
		Mode:     s.Mode,
		Variant:  m.variant.ID,
		Title:    m.variant.Title,
		Features: m.features,
		WorldW:   m.cfg.World.Width,
		WorldH:   m.cfg.World.Height,
		TickRate: m.cfg.World.TickRate,
		Avatar: AvatarView{
			X:            s.Avatar.X,
			Y:            s.Avatar.Y,
			Velocity:     s.Avatar.Velocity,
			Radius:       s.Avatar.Radius,
			Cosmetic:     s.Avatar.Cosmetic,
			PowerUp:      s.Avatar.Effect.Type,
			PowerUpTicks: s.Avatar.Effect.Remaining,
		},
		Obstacle:     s.Obstacle,
		Boss:         s.Boss,
		Pickups:      append([]Pickup(nil), s.Pickups...),
		Clouds:       append([]Cloud(nil), s.Clouds...),
		IsDay:        s.Sky.IsDay,
		Score:        s.Progress.Score,
		Level:        s.Progress.Level,
		Coins:        s.Progress.Coins,
		HighScore:    s.Progress.HighScore,
		Speed:        m.obstacleSpeed(),
		Achievements: append([]Achievement(nil), s.Achievements...),
		Daily:        s.Daily,
		ShopCursor:   s.ShopCursor,
		Armed:        s.Armed.Type,
	}

	if c := s.Avatar.Cosmetic; c >= 0 && c < len(m.cfg.Cosmetics) {
		snap.Avatar.CosmeticName = m.cfg.Cosmetics[c].Name
		snap.Avatar.CosmeticColor = m.cfg.Cosmetics[c].Color
	}

	snap.Shop = make([]ShopEntry, len(m.catalog))
	for i, item := range m.catalog {
		entry := ShopEntry{
			Item:       item,
			Affordable: s.Progress.Coins >= item.Cost,
			Hitbox:     ItemHitbox(i, m.cfg.World.Width),
		}
		if item.Kind == ItemCosmetic && item.Cosmetic < len(s.Wardrobe.Owned) {
			entry.Owned = s.Wardrobe.Owned[item.Cosmetic]
			entry.Equipped = s.Wardrobe.Equipped == item.Cosmetic
		}
		snap.Shop[i] = entry
	}
	return snap
}

// OwnedCosmetics returns the indexes of owned cosmetics.
func (m *Machine) OwnedCosmetics() []int {
	var owned []int
	for i, ok := range m.state.Wardrobe.Owned {
		if ok {
			owned = append(owned, i)
		}
	}
	return owned
}
