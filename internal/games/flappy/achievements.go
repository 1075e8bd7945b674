package flappy

// achievementRule pairs an achievement with its unlock predicate.
type achievementRule struct {
	name        string
	description string
	unlocked    func(s *GameState) bool
}

func scoreAtLeast(n int) func(*GameState) bool {
	return func(s *GameState) bool { return s.Progress.Score >= n }
}

// achievementRules is the declared order; the save file depends on it.
var achievementRules = []achievementRule{
	{"First Flight", "Score your first point", scoreAtLeast(1)},
	{"Beginner", "Score 10 points", scoreAtLeast(10)},
	{"High Flyer", "Reach a score of 50", scoreAtLeast(50)},
	{"Expert", "Score 100 points", scoreAtLeast(100)},
	{"Night Owl", "Play during night time", func(s *GameState) bool { return s.Flags.NightReached }},
	{"Boss Slayer", "Defeat a boss", func(s *GameState) bool { return s.Flags.BossDefeated }},
	{"Shopaholic", "Make a purchase from the shop", func(s *GameState) bool { return s.Flags.Purchased }},
	{"Power Player", "Use a power-up", func(s *GameState) bool { return s.Flags.PowerUpUsed }},
}

// AchievementNames returns the achievement names in declared order.
func AchievementNames() []string {
	names := make([]string, len(achievementRules))
	for i, r := range achievementRules {
		names[i] = r.name
	}
	return names
}

func newAchievements() []Achievement {
	list := make([]Achievement, len(achievementRules))
	for i, r := range achievementRules {
		list[i] = Achievement{Name: r.name, Description: r.description}
	}
	return list
}

// evaluateAchievements unlocks every achievement whose predicate holds.
// Flags only ever go from false to true.
func (m *Machine) evaluateAchievements() {
	s := &m.state
	for i, rule := range achievementRules {
		if s.Achievements[i].Achieved || !rule.unlocked(s) {
			continue
		}
		s.Achievements[i].Achieved = true
		m.emit(Event{Kind: EventAchievementUnlocked, Name: rule.name})
		m.logger.Info("achievement unlocked", "name", rule.name)
	}
}
