// internal/advisor/rules.go
package advisor

import (
	"context"

	"balloon-tower-defense/internal/defs"
)

// RuleSuggester даёт совет без сети по простым правилам.
type RuleSuggester struct {
	Library *defs.Library
}

func (r RuleSuggester) Suggest(ctx context.Context, s Summary) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	total := 0
	for _, n := range s.Towers {
		total += n
	}
	cost := func(t defs.TowerType) int {
		if r.Library == nil {
			return 0
		}
		return r.Library.Towers[t].Cost
	}

	switch {
	case total == 0:
		return "Place a Dart Monkey near the first bend of the track.", nil
	case s.Lives < 30:
		return "Lives are low: add an Ice Tower to slow the leaks.", nil
	case s.Wave > 15 && s.Towers[defs.TowerCannon] == 0 && s.Gold >= cost(defs.TowerCannon):
		return "Pink and yellow balloons come in packs: a Bomb Cannon will pay off.", nil
	case s.Towers[defs.TowerIce] == 0 && s.Wave > 8 && s.Gold >= cost(defs.TowerIce):
		return "Fast balloons are coming: an Ice Tower will slow them down.", nil
	case s.Towers[defs.TowerTackShooter] == 0 && s.Gold >= cost(defs.TowerTackShooter):
		return "A Tack Shooter on a tight corner hits many balloons at once.", nil
	case s.Gold >= cost(defs.TowerDartMonkey):
		return "Upgrade your best-placed tower before buying a new one.", nil
	}
	return "Save gold and let the next wave pay for upgrades.", nil
}
