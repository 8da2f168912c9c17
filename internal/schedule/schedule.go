// Package schedule builds the regular season slate with a circle method
// round robin per class.
package schedule

import (
	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/rng"
)

// Rounds is the regular season length in weeks.
const Rounds = domain.RegularSeasonWeeks

// Generate builds the varsity schedule for all classes and a structurally
// identical JV copy. Every real matchup appears in both teams' lists with
// mirrored home/away; byes simply leave a hole in that team's week.
func Generate(src rng.Source, teams []*domain.Team, rivals map[uuid.UUID]uuid.UUID) (varsity, jv domain.Schedule) {
	varsity = make(domain.Schedule)
	for _, class := range domain.Classes {
		var classTeams []uuid.UUID
		for _, t := range teams {
			if t.Class == class {
				classTeams = append(classTeams, t.ID)
			}
		}
		generateClass(src, varsity, classTeams, rivals)
	}
	// make sure every team has a schedule entry even if its class was empty
	for _, t := range teams {
		if _, ok := varsity[t.ID]; !ok {
			varsity[t.ID] = nil
		}
	}
	return varsity, deepCopy(varsity)
}

// generateClass runs the circle method: one slot stays fixed while the rest
// rotate, producing at most one matchup per team per round. Odd team counts
// get a synthetic bye slot that never yields a real game.
func generateClass(src rng.Source, out domain.Schedule, ids []uuid.UUID, rivals map[uuid.UUID]uuid.UUID) {
	if len(ids) < 2 {
		return
	}
	ring := make([]uuid.UUID, len(ids))
	copy(ring, ids)
	if len(ring)%2 == 1 {
		ring = append(ring, uuid.Nil) // bye
	}
	n := len(ring)

	for round := 0; round < Rounds; round++ {
		week := round + 1
		for i := 0; i < n/2; i++ {
			a := ring[i]
			b := ring[n-1-i]
			if a == uuid.Nil || b == uuid.Nil {
				continue
			}
			home := rng.Chance(src, 0.5)
			rivalry := rivals[a] == b || rivals[b] == a
			addPair(out, a, b, week, home, rivalry)
		}
		// rotate everything but the first slot
		last := ring[n-1]
		copy(ring[2:], ring[1:n-1])
		ring[1] = last
	}
}

func addPair(out domain.Schedule, a, b uuid.UUID, week int, aHome, rivalry bool) {
	out.Append(a, &domain.Game{
		ID:         uuid.New(),
		Week:       week,
		OpponentID: b,
		Home:       aHome,
		Rivalry:    rivalry,
	})
	out.Append(b, &domain.Game{
		ID:         uuid.New(),
		Week:       week,
		OpponentID: a,
		Home:       !aHome,
		Rivalry:    rivalry,
	})
}

// deepCopy clones a schedule into an independently resolvable instance.
func deepCopy(s domain.Schedule) domain.Schedule {
	out := make(domain.Schedule, len(s))
	for teamID, games := range s {
		cloned := make([]*domain.Game, 0, len(games))
		for _, g := range games {
			cloned = append(cloned, &domain.Game{
				ID:         uuid.New(),
				Week:       g.Week,
				OpponentID: g.OpponentID,
				Home:       g.Home,
				Rivalry:    g.Rivalry,
			})
		}
		out[teamID] = cloned
	}
	return out
}
