package roster

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/gen"
	"github.com/kofikwar/gridiron/internal/rng"
)

func testTeam(t *testing.T, seed int64) *domain.Team {
	t.Helper()
	src := rng.New(seed)
	return gen.Team(src, uuid.New(), "Testville", domain.ClassAA)
}

func TestAssignTiersCap(t *testing.T) {
	team := testTeam(t, 1)
	AssignTiers(team.Roster)

	varsity := 0
	for _, p := range team.Roster {
		if p.Tier == domain.Varsity {
			varsity++
		}
	}
	if varsity > VarsityCap {
		t.Errorf("varsity count = %d, want <= %d", varsity, VarsityCap)
	}
	if varsity != VarsityCap {
		t.Errorf("full roster should fill varsity, got %d", varsity)
	}
}

func TestAssignTiersPrefersUpperClasses(t *testing.T) {
	team := testTeam(t, 2)
	AssignTiers(team.Roster)

	// no senior may sit on JV while a freshman with a lower rating is varsity
	for _, sr := range team.Roster {
		if sr.Year != domain.Senior || sr.Tier != domain.JV {
			continue
		}
		for _, fr := range team.Roster {
			if fr.Year == domain.Freshman && fr.Tier == domain.Varsity {
				t.Fatalf("senior %s on JV while freshman %s made varsity", sr.Name, fr.Name)
			}
		}
	}
}

func TestComputeDepthChartOrdinals(t *testing.T) {
	team := testTeam(t, 3)
	Recompute(team)

	for _, pos := range domain.AllPositions {
		for _, tier := range []domain.Tier{domain.Varsity, domain.JV} {
			group := team.PlayersAt(pos, tier)
			seen := make(map[int]bool)
			for _, p := range group {
				if p.DepthOrder < 1 || p.DepthOrder > len(group) {
					t.Errorf("%s %s %s: depth %d out of range 1..%d", pos, tier, p.Name, p.DepthOrder, len(group))
				}
				if seen[p.DepthOrder] {
					t.Errorf("%s %s: duplicate depth ordinal %d", pos, tier, p.DepthOrder)
				}
				seen[p.DepthOrder] = true
			}
		}
	}
}

func TestUserPlayerLeadsDepthChart(t *testing.T) {
	team := testTeam(t, 4)
	AssignTiers(team.Roster)

	var user *domain.Player
	for _, p := range team.Roster {
		if p.Position == domain.RB && p.Tier == domain.Varsity {
			user = p
		}
	}
	if user == nil {
		t.Fatal("no varsity RB generated")
	}
	user.UserControlled = true
	user.Year = domain.Freshman
	user.Attr.Speed = 40
	user.RecomputeOverall()

	ComputeDepthChart(team)
	if user.DepthOrder != 1 {
		t.Errorf("user player depth = %d, want 1", user.DepthOrder)
	}
}

func TestComputeTeamRating(t *testing.T) {
	if got := ComputeTeamRating(nil); got != 0 {
		t.Errorf("empty roster rating = %d, want 0", got)
	}

	var players []*domain.Player
	for i := 0; i < 3; i++ {
		p := &domain.Player{Tier: domain.Varsity}
		p.Attr = domain.Attributes{Speed: 80, Strength: 80, Stamina: 80, Tackle: 80, Catch: 80, Pass: 80, Block: 80, Consistency: 80, Potential: 80}
		p.RecomputeOverall()
		players = append(players, p)
	}
	if got := ComputeTeamRating(players); got != 80 {
		t.Errorf("rating = %d, want 80", got)
	}
}
