package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ItemKind distinguishes one-time cosmetics from repeatable power-ups.
type ItemKind int

const (
	ItemCosmetic ItemKind = iota
	ItemPowerUp
)

// ShopItem is one catalog entry.
type ShopItem struct {
	Name     string
	Kind     ItemKind
	Cost     int
	Cosmetic int     // index into the cosmetics list, for ItemCosmetic
	PowerUp  PowerUp // for ItemPowerUp
}

// PurchaseResult is the outcome of a purchase attempt. Rejections leave the
// state untouched.
type PurchaseResult int

const (
	PurchaseOK PurchaseResult = iota
	PurchaseInsufficientFunds
	PurchaseOwned       // cosmetic already owned; it is equipped instead
	PurchaseUnavailable // no such item
)

// String returns a short description of the result.
func (r PurchaseResult) String() string {
	switch r {
	case PurchaseOK:
		return "purchased"
	case PurchaseInsufficientFunds:
		return "not enough coins"
	case PurchaseOwned:
		return "already owned"
	case PurchaseUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// buildCatalog converts the configured shop into catalog items.
func buildCatalog(items []config.ShopItemConfig) []ShopItem {
	catalog := make([]ShopItem, 0, len(items))
	for _, it := range items {
		item := ShopItem{Name: it.Name, Cost: it.Cost}
		switch it.Kind {
		case config.KindCosmetic:
			item.Kind = ItemCosmetic
			item.Cosmetic = it.Cosmetic
		case config.KindPowerUp:
			item.Kind = ItemPowerUp
			item.PowerUp = parsePowerUp(it.PowerUp)
		default:
			continue
		}
		catalog = append(catalog, item)
	}
	return catalog
}

func parsePowerUp(name string) PowerUp {
	switch name {
	case config.PowerUpImmunity:
		return PowerUpImmunity
	case config.PowerUpSlowMotion:
		return PowerUpSlowMotion
	default:
		return PowerUpNone
	}
}

// ItemHitbox returns the click target of catalog item i in world units.
// Both edges count as inside.
func ItemHitbox(i int, worldW float64) core.Rect {
	return core.NewRect(int(worldW/2)-100, 100+50*i, 200, 40)
}

// hitItem returns the index of the item under (x, y), or -1.
func hitItem(n int, worldW, x, y float64) int {
	for i := 0; i < n; i++ {
		box := ItemHitbox(i, worldW)
		if x >= float64(box.X) && x <= float64(box.Right()) &&
			y >= float64(box.Y) && y <= float64(box.Bottom()) {
			return i
		}
	}
	return -1
}

// purchase validates and applies one purchase against s.
// effectTicks gives the duration of a bought power-up.
func purchase(s *GameState, item ShopItem, effectTicks int) PurchaseResult {
	switch item.Kind {
	case ItemCosmetic:
		if item.Cosmetic < 0 || item.Cosmetic >= len(s.Wardrobe.Owned) {
			return PurchaseUnavailable
		}
		if s.Wardrobe.Owned[item.Cosmetic] {
			equip(s, item.Cosmetic)
			return PurchaseOwned
		}
		if s.Progress.Coins < item.Cost {
			return PurchaseInsufficientFunds
		}
		s.Progress.Coins -= item.Cost
		s.Wardrobe.Owned[item.Cosmetic] = true
		equip(s, item.Cosmetic)

	case ItemPowerUp:
		if item.PowerUp == PowerUpNone {
			return PurchaseUnavailable
		}
		if s.Progress.Coins < item.Cost {
			return PurchaseInsufficientFunds
		}
		s.Progress.Coins -= item.Cost
		s.Armed = Effect{Type: item.PowerUp, Remaining: effectTicks}
	}

	s.Flags.Purchased = true
	return PurchaseOK
}

func equip(s *GameState, cosmetic int) {
	s.Wardrobe.Equipped = cosmetic
	s.Avatar.Cosmetic = cosmetic
}

// buy attempts to purchase catalog item i and reports the outcome as an event.
func (m *Machine) buy(i int) PurchaseResult {
	if i < 0 || i >= len(m.catalog) {
		return PurchaseUnavailable
	}
	item := m.catalog[i]
	result := purchase(&m.state, item, m.effectTicks(item.PowerUp))

	m.emit(Event{Kind: EventPurchase, Name: item.Name, Item: i, Result: result})
	if result == PurchaseOK {
		m.dirty = true
		m.logger.Info("purchase", "item", item.Name, "cost", item.Cost, "coins", m.state.Progress.Coins)
		m.evaluateAchievements()
	} else {
		m.logger.Debug("purchase rejected", "item", item.Name, "reason", result)
	}
	return result
}
