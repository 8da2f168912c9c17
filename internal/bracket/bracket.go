// Package bracket holds the pure playoff state machine: seeding, winner
// recording and round advancement. Scheduling the actual games is the season
// engine's job.
package bracket

import (
	"sort"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
)

// BracketSize is the number of teams seeded per class.
const BracketSize = 8

// Standings sorts teams for seeding and ranking: wins desc, losses asc,
// rating desc. The input slice is not modified.
func Standings(teams []*domain.Team) []*domain.Team {
	sorted := make([]*domain.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.Rating > b.Rating
	})
	return sorted
}

// Seed builds the quarterfinal round from final standings with the classic
// 1v8, 4v5, 3v6, 2v7 layout. Fewer than 8 teams seed a short bracket where
// missing seeds collapse into byes decided immediately.
func Seed(class domain.Class, standings []*domain.Team) *domain.Bracket {
	seeds := make([]uuid.UUID, BracketSize)
	for i := 0; i < BracketSize; i++ {
		if i < len(standings) {
			seeds[i] = standings[i].ID
		}
	}
	pairs := [4][2]int{{0, 7}, {3, 4}, {2, 5}, {1, 6}}
	b := &domain.Bracket{Class: class}
	for _, pair := range pairs {
		b.Quarterfinals = append(b.Quarterfinals, newNode(seeds[pair[0]], seeds[pair[1]]))
	}
	return b
}

// newNode builds a bracket node, deciding one-sided byes on the spot. A node
// with no participants stays empty; Decided treats it as settled so a short
// bracket still runs every round.
func newNode(team1, team2 uuid.UUID) domain.Matchup {
	m := domain.Matchup{Team1: team1, Team2: team2}
	switch {
	case m.Team1 != uuid.Nil && m.Team2 == uuid.Nil:
		m.Winner = m.Team1
	case m.Team1 == uuid.Nil && m.Team2 != uuid.Nil:
		m.Winner = m.Team2
	}
	return m
}

// RecordWinner marks the node containing both participants as decided.
// Recording is idempotent and a decided node never flips, so re-applying a
// result is harmless.
func RecordWinner(ms []domain.Matchup, winner, loser uuid.UUID) bool {
	for i := range ms {
		if !ms[i].Has(winner) || !ms[i].Has(loser) {
			continue
		}
		if ms[i].Decided() {
			return false
		}
		ms[i].Winner = winner
		return true
	}
	return false
}

// RecordFinalWinner is RecordWinner for the single-node final round.
func RecordFinalWinner(m *domain.Matchup, winner, loser uuid.UUID) bool {
	if m == nil || !m.Has(winner) || !m.Has(loser) || m.Decided() {
		return false
	}
	m.Winner = winner
	return true
}

// AdvanceQuarterfinals seeds the semifinal round, pairing the winners of
// QF1/QF2 and QF3/QF4. It is a no-op until every quarterfinal is decided and
// once semifinals exist.
func AdvanceQuarterfinals(b *domain.Bracket) bool {
	if b == nil || len(b.Semifinals) > 0 || !b.QuarterfinalsComplete() {
		return false
	}
	b.Semifinals = []domain.Matchup{
		newNode(b.Quarterfinals[0].Winner, b.Quarterfinals[1].Winner),
		newNode(b.Quarterfinals[2].Winner, b.Quarterfinals[3].Winner),
	}
	return true
}

// AdvanceSemifinals seeds the final. Same guards as AdvanceQuarterfinals.
func AdvanceSemifinals(b *domain.Bracket) bool {
	if b == nil || b.Final != nil || !b.SemifinalsComplete() {
		return false
	}
	f := newNode(b.Semifinals[0].Winner, b.Semifinals[1].Winner)
	b.Final = &f
	return true
}

// CrownChampion records the class champion once the final is decided.
func CrownChampion(b *domain.Bracket) bool {
	if b == nil || !b.FinalComplete() || b.Champion != uuid.Nil {
		return false
	}
	b.Champion = b.Final.Winner
	return true
}

// SeedTournament builds the cross-class tournament of champions. Three
// champions: the top rated receives a bye and the other two meet in a
// semifinal. Two champions: straight to the final. One: champion outright.
func SeedTournament(champions []domain.ChampionEntry) *domain.Tournament {
	sorted := make([]domain.ChampionEntry, len(champions))
	copy(sorted, champions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	t := &domain.Tournament{Champions: sorted}
	switch len(sorted) {
	case 0:
	case 1:
		t.Winner = sorted[0].TeamID
	case 2:
		t.Final = &domain.Matchup{Team1: sorted[0].TeamID, Team2: sorted[1].TeamID}
	default:
		t.ByeTeam = sorted[0].TeamID
		t.Semifinal = &domain.Matchup{Team1: sorted[1].TeamID, Team2: sorted[2].TeamID}
	}
	return t
}

// AdvanceTournament seeds the final from a decided semifinal and the bye
// team, and records the overall winner once the final is decided.
func AdvanceTournament(t *domain.Tournament) bool {
	if t == nil {
		return false
	}
	advanced := false
	if t.Semifinal != nil && t.Semifinal.Decided() && t.Final == nil {
		t.Final = &domain.Matchup{Team1: t.ByeTeam, Team2: t.Semifinal.Winner}
		advanced = true
	}
	if t.Final != nil && t.Final.Decided() && t.Winner == uuid.Nil {
		t.Winner = t.Final.Winner
		advanced = true
	}
	return advanced
}
