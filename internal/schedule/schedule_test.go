package schedule

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/rng"
)

func classOf(n int, class domain.Class) []*domain.Team {
	teams := make([]*domain.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, &domain.Team{ID: uuid.New(), Class: class})
	}
	return teams
}

func TestGenerateNoDoubleBookedWeeks(t *testing.T) {
	for _, count := range []int{6, 7, 8, 11} {
		teams := classOf(count, domain.ClassAA)
		varsity, _ := Generate(rng.New(7), teams, nil)

		for _, team := range teams {
			weeks := make(map[int]bool)
			for _, g := range varsity[team.ID] {
				if weeks[g.Week] {
					t.Errorf("%d teams: team %s has two games in week %d", count, team.ID, g.Week)
				}
				weeks[g.Week] = true
			}
		}
	}
}

func TestGenerateSymmetric(t *testing.T) {
	teams := classOf(8, domain.ClassA)
	varsity, _ := Generate(rng.New(8), teams, nil)

	for teamID, games := range varsity {
		for _, g := range games {
			mirror := varsity.GameAt(g.OpponentID, g.Week)
			if mirror == nil {
				t.Fatalf("no mirrored entry for week %d opponent %s", g.Week, g.OpponentID)
			}
			if mirror.OpponentID != teamID {
				t.Errorf("mirror points at %s, want %s", mirror.OpponentID, teamID)
			}
			if mirror.Home == g.Home {
				t.Errorf("week %d: both sides claim home=%v", g.Week, g.Home)
			}
		}
	}
}

func TestGenerateOddTeamCountByes(t *testing.T) {
	teams := classOf(7, domain.ClassAAA)
	varsity, _ := Generate(rng.New(9), teams, nil)

	for _, team := range teams {
		for _, g := range varsity[team.ID] {
			if g.OpponentID == uuid.Nil {
				t.Errorf("bye placeholder leaked into real schedule for %s", team.ID)
			}
		}
	}
}

func TestGenerateRivalryFlag(t *testing.T) {
	teams := classOf(4, domain.ClassA)
	rivals := map[uuid.UUID]uuid.UUID{teams[0].ID: teams[1].ID}
	varsity, _ := Generate(rng.New(10), teams, rivals)

	found := false
	for _, g := range varsity[teams[0].ID] {
		if g.OpponentID == teams[1].ID {
			found = true
			if !g.Rivalry {
				t.Error("rivalry matchup not flagged")
			}
			mirror := varsity.GameAt(teams[1].ID, g.Week)
			if mirror == nil || !mirror.Rivalry {
				t.Error("rivalry flag missing on mirrored entry")
			}
		}
	}
	if !found {
		t.Fatal("rivals never scheduled against each other")
	}
}

func TestJVCopyIsIndependent(t *testing.T) {
	teams := classOf(6, domain.ClassAA)
	varsity, jv := Generate(rng.New(11), teams, nil)

	for _, team := range teams {
		vGames, jGames := varsity[team.ID], jv[team.ID]
		if len(vGames) != len(jGames) {
			t.Fatalf("JV schedule length %d != varsity %d", len(jGames), len(vGames))
		}
		for i := range vGames {
			if vGames[i].Week != jGames[i].Week || vGames[i].OpponentID != jGames[i].OpponentID {
				t.Errorf("JV copy diverges structurally at index %d", i)
			}
			if vGames[i].ID == jGames[i].ID {
				t.Errorf("JV game shares identity with varsity game")
			}
		}
	}

	jv[teams[0].ID][0].Result = &domain.Result{TeamScore: 14, OppScore: 7}
	if varsity[teams[0].ID][0].Result != nil {
		t.Error("resolving a JV game leaked into the varsity schedule")
	}
}
