// Package roster owns tier assignment, depth charts and the derived team
// rating. Tier and depth must be recomputed after any roster mutation before
// the team rating is trusted, so Recompute bundles all three.
package roster

import (
	"sort"

	"github.com/kofikwar/gridiron/internal/domain"
)

const (
	// VarsityCap is the number of roster spots on the varsity tier.
	VarsityCap = 44
	// ratingContributors is how many top varsity players feed the team rating.
	ratingContributors = 22
)

// AssignTiers sorts the roster by class year then rating and puts the first
// 44 on varsity, the remainder on JV.
func AssignTiers(roster []*domain.Player) {
	sorted := make([]*domain.Player, len(roster))
	copy(sorted, roster)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year > sorted[j].Year
		}
		return sorted[i].Overall > sorted[j].Overall
	})
	for i, p := range sorted {
		if i < VarsityCap {
			p.Tier = domain.Varsity
		} else {
			p.Tier = domain.JV
		}
	}
}

// ComputeDepthChart orders every (position, tier) group and assigns depth
// ordinals starting at 1. On varsity the user-controlled player sorts first,
// then class year, then rating. JV depth is rating only.
func ComputeDepthChart(team *domain.Team) {
	for _, pos := range domain.AllPositions {
		varsity := team.PlayersAt(pos, domain.Varsity)
		sort.SliceStable(varsity, func(i, j int) bool {
			a, b := varsity[i], varsity[j]
			if a.UserControlled != b.UserControlled {
				// the user entity always leads its position group,
				// auto-start cheat or not
				return a.UserControlled
			}
			if a.Year != b.Year {
				return a.Year > b.Year
			}
			return a.Overall > b.Overall
		})
		for i, p := range varsity {
			p.DepthOrder = i + 1
		}

		jv := team.PlayersAt(pos, domain.JV)
		sort.SliceStable(jv, func(i, j int) bool {
			return jv[i].Overall > jv[j].Overall
		})
		for i, p := range jv {
			p.DepthOrder = i + 1
		}
	}
}

// ComputeTeamRating is the rounded mean rating of up to 22 best varsity
// players, zero for an empty tier.
func ComputeTeamRating(roster []*domain.Player) int {
	var varsity []*domain.Player
	for _, p := range roster {
		if p.Tier == domain.Varsity {
			varsity = append(varsity, p)
		}
	}
	if len(varsity) == 0 {
		return 0
	}
	sort.SliceStable(varsity, func(i, j int) bool {
		return varsity[i].Overall > varsity[j].Overall
	})
	n := len(varsity)
	if n > ratingContributors {
		n = ratingContributors
	}
	sum := 0
	for _, p := range varsity[:n] {
		sum += p.Overall
	}
	return (sum + n/2) / n
}

// Recompute runs the full pipeline for one team.
func Recompute(team *domain.Team) {
	AssignTiers(team.Roster)
	ComputeDepthChart(team)
	team.Rating = ComputeTeamRating(team.Roster)
}

// Starters returns available varsity players at a position in depth order,
// limited to count. Missing position groups return an empty slice, never an
// error.
func Starters(team *domain.Team, pos domain.Position, count int) []*domain.Player {
	players := team.PlayersAt(pos, domain.Varsity)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].DepthOrder < players[j].DepthOrder
	})
	var out []*domain.Player
	for _, p := range players {
		if !p.Available() {
			continue
		}
		out = append(out, p)
		if len(out) == count {
			break
		}
	}
	return out
}
