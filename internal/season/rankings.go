package season

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/bracket"
	"github.com/kofikwar/gridiron/internal/domain"
)

const rankedCount = 25

// recomputeRankings rebuilds the top 25 and emits a movement article when
// the user's team changed position.
func (e *Engine) recomputeRankings(gs *domain.GameState) {
	prev := rankOf(gs.Rankings, gs.UserTeamID)

	standings := bracket.Standings(gs.Teams)
	n := len(standings)
	if n > rankedCount {
		n = rankedCount
	}
	ranked := make([]uuid.UUID, 0, n)
	for _, t := range standings[:n] {
		ranked = append(ranked, t.ID)
	}
	gs.Rankings = ranked

	curr := rankOf(gs.Rankings, gs.UserTeamID)
	team := gs.UserTeam()
	if team == nil || curr == prev {
		return
	}
	switch {
	case curr > 0 && prev == 0:
		e.newArticle(gs, "rankings", fmt.Sprintf("%s cracks the top 25", team.Name),
			fmt.Sprintf("%s enters the rankings at #%d.", team.Name, curr))
	case curr == 0 && prev > 0:
		e.newArticle(gs, "rankings", fmt.Sprintf("%s drops out of the top 25", team.Name),
			fmt.Sprintf("%s falls from #%d out of the rankings.", team.Name, prev))
	case curr < prev:
		e.newArticle(gs, "rankings", fmt.Sprintf("%s climbs to #%d", team.Name, curr),
			fmt.Sprintf("%s moves up from #%d to #%d.", team.Name, prev, curr))
	default:
		e.newArticle(gs, "rankings", fmt.Sprintf("%s slips to #%d", team.Name, curr),
			fmt.Sprintf("%s drops from #%d to #%d.", team.Name, prev, curr))
	}
}

// rankOf returns the 1-based rank, 0 when unranked.
func rankOf(rankings []uuid.UUID, id uuid.UUID) int {
	for i, r := range rankings {
		if r == id {
			return i + 1
		}
	}
	return 0
}

// boxScore scoring weights per position group, used for player of the week.
func performanceScore(pos domain.Position, line domain.StatLine) float64 {
	switch pos {
	case domain.QB:
		return float64(line.PassYards)*0.04 + float64(line.PassTDs)*4 + float64(line.RushYards)*0.05 + float64(line.RushTDs)*5
	case domain.RB:
		return float64(line.RushYards)*0.06 + float64(line.RushTDs)*6 + float64(line.RecYards)*0.04
	case domain.WR, domain.TE:
		return float64(line.RecYards)*0.06 + float64(line.RecTDs)*6 + float64(line.Receptions)*0.5
	case domain.K:
		return float64(line.FieldGoals) * 4
	}
	return float64(line.Tackles)*1 + float64(line.Sacks)*4 + float64(line.Interceptions)*5
}

// playerOfTheWeek scans varsity games resolved in the played week and crowns
// the single best box score. Ties keep the first player encountered.
func (e *Engine) playerOfTheWeek(gs *domain.GameState, playedWeek int) {
	var best *domain.Player
	var bestTeam *domain.Team
	var bestScore float64

	for _, team := range gs.Teams {
		g := gs.VarsitySchedule.GameAt(team.ID, playedWeek)
		if !g.Resolved() {
			continue
		}
		// roster order keeps tie-breaking stable across runs
		for _, p := range team.Roster {
			line, ok := g.Result.TeamStats[p.ID]
			if !ok {
				continue
			}
			score := performanceScore(p.Position, line)
			if best == nil || score > bestScore {
				best, bestTeam, bestScore = p, team, score
			}
		}
	}
	if best == nil {
		return
	}
	e.newArticle(gs, "player-of-the-week",
		fmt.Sprintf("Player of the week: %s", best.Name),
		fmt.Sprintf("%s (%s, %s) turned in the week %d performance of the league.",
			best.Name, best.Position, bestTeam.Name, playedWeek))
}
