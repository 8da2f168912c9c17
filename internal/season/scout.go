package season

import (
	"context"
	"fmt"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/narrative"
)

// ScoutTeam produces a scouting report on an opponent. The collaborator's
// answer wins when it has one; otherwise the report is derived from varsity
// position group averages.
func (e *Engine) ScoutTeam(ctx context.Context, team *domain.Team) narrative.Report {
	if e.narr != nil {
		if rep, err := e.narr.Scout(ctx, team.Name); err == nil && rep.Strength != "" {
			return rep
		}
	}
	return scoutFallback(team)
}

func scoutFallback(team *domain.Team) narrative.Report {
	bestPos, worstPos := domain.QB, domain.QB
	bestAvg, worstAvg := -1, -1
	for _, pos := range domain.AllPositions {
		players := team.PlayersAt(pos, domain.Varsity)
		if len(players) == 0 {
			continue
		}
		sum := 0
		for _, p := range players {
			sum += p.Overall
		}
		avg := sum / len(players)
		if bestAvg < 0 || avg > bestAvg {
			bestPos, bestAvg = pos, avg
		}
		if worstAvg < 0 || avg < worstAvg {
			worstPos, worstAvg = pos, avg
		}
	}
	if bestAvg < 0 {
		return narrative.Report{
			Strength:   fmt.Sprintf("%s has no varsity roster to speak of.", team.Name),
			Weakness:   "Everything.",
			Suggestion: "Play your starters and run the score.",
		}
	}
	return narrative.Report{
		Strength:   fmt.Sprintf("The %s group is the backbone, averaging %d overall.", bestPos, bestAvg),
		Weakness:   fmt.Sprintf("The %s group lags the rest at %d overall.", worstPos, worstAvg),
		Suggestion: fmt.Sprintf("Attack the %s group early and often.", worstPos),
	}
}
