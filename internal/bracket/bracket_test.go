package bracket

import (
	"testing"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
)

func seededTeams(n int) []*domain.Team {
	teams := make([]*domain.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, &domain.Team{
			ID:     uuid.New(),
			Wins:   n - i, // already in standings order
			Rating: 70,
		})
	}
	return teams
}

func TestSeedPairsTopAgainstBottom(t *testing.T) {
	teams := seededTeams(8)
	b := Seed(domain.ClassAA, teams)

	if len(b.Quarterfinals) != 4 {
		t.Fatalf("quarterfinals = %d, want 4", len(b.Quarterfinals))
	}
	qf1 := b.Quarterfinals[0]
	if qf1.Team1 != teams[0].ID || qf1.Team2 != teams[7].ID {
		t.Error("QF1 should pair seed 1 against seed 8")
	}
	qf4 := b.Quarterfinals[3]
	if qf4.Team1 != teams[1].ID || qf4.Team2 != teams[6].ID {
		t.Error("QF4 should pair seed 2 against seed 7")
	}
}

func TestStandingsOrdering(t *testing.T) {
	a := &domain.Team{ID: uuid.New(), Wins: 7, Losses: 3, Rating: 60}
	b := &domain.Team{ID: uuid.New(), Wins: 7, Losses: 2, Rating: 55}
	c := &domain.Team{ID: uuid.New(), Wins: 9, Losses: 1, Rating: 50}
	d := &domain.Team{ID: uuid.New(), Wins: 7, Losses: 3, Rating: 75}

	got := Standings([]*domain.Team{a, b, c, d})
	want := []*domain.Team{c, b, d, a}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("standings[%d] = %s, want %s", i, got[i].ID, want[i].ID)
		}
	}
}

func decideRound(ms []domain.Matchup) {
	for i := range ms {
		if !ms[i].Decided() {
			RecordWinner(ms, ms[i].Team1, ms[i].Team2)
		}
	}
}

func TestAdvanceRequiresCompleteRound(t *testing.T) {
	b := Seed(domain.ClassA, seededTeams(8))

	RecordWinner(b.Quarterfinals, b.Quarterfinals[0].Team1, b.Quarterfinals[0].Team2)
	if AdvanceQuarterfinals(b) {
		t.Fatal("advanced with three quarterfinals still pending")
	}
	if len(b.Semifinals) != 0 {
		t.Fatal("semifinals populated early")
	}

	decideRound(b.Quarterfinals)
	if !AdvanceQuarterfinals(b) {
		t.Fatal("complete quarterfinal round did not advance")
	}
	if len(b.Semifinals) != 2 {
		t.Fatalf("semifinals = %d, want 2", len(b.Semifinals))
	}
	if b.Semifinals[0].Team1 != b.Quarterfinals[0].Winner || b.Semifinals[0].Team2 != b.Quarterfinals[1].Winner {
		t.Error("SF1 should pair winners of QF1 and QF2")
	}
	if b.Semifinals[1].Team1 != b.Quarterfinals[2].Winner || b.Semifinals[1].Team2 != b.Quarterfinals[3].Winner {
		t.Error("SF2 should pair winners of QF3 and QF4")
	}
}

func TestAdvanceIsIdempotent(t *testing.T) {
	b := Seed(domain.ClassAAA, seededTeams(8))
	decideRound(b.Quarterfinals)
	AdvanceQuarterfinals(b)
	decideRound(b.Semifinals)
	AdvanceSemifinals(b)
	RecordFinalWinner(b.Final, b.Final.Team1, b.Final.Team2)
	CrownChampion(b)

	champion := b.Champion
	if champion == uuid.Nil {
		t.Fatal("no champion crowned")
	}
	if AdvanceQuarterfinals(b) || AdvanceSemifinals(b) || CrownChampion(b) {
		t.Error("advancing a fully decided bracket must be a no-op")
	}
	if b.Champion != champion {
		t.Error("champion changed on re-advance")
	}
}

func TestRecordWinnerGuards(t *testing.T) {
	b := Seed(domain.ClassA, seededTeams(8))
	qf := &b.Quarterfinals[0]

	if !RecordWinner(b.Quarterfinals, qf.Team1, qf.Team2) {
		t.Fatal("first record should succeed")
	}
	if RecordWinner(b.Quarterfinals, qf.Team2, qf.Team1) {
		t.Error("decided node flipped")
	}
	if qf.Winner != qf.Team1 {
		t.Error("winner changed after re-record")
	}
	if RecordWinner(b.Quarterfinals, uuid.New(), uuid.New()) {
		t.Error("recorded a winner for teams not in the round")
	}
}

func TestShortBracketRunsToChampion(t *testing.T) {
	teams := seededTeams(3)
	b := Seed(domain.ClassA, teams)

	// seeds 1-3 all draw byes, the {4,5} node is empty
	if !b.QuarterfinalsComplete() {
		t.Fatal("three-team quarterfinals should be all byes")
	}
	if !AdvanceQuarterfinals(b) {
		t.Fatal("bye-only quarterfinal round did not advance")
	}
	if !b.Semifinals[0].Decided() || b.Semifinals[0].Winner != teams[0].ID {
		t.Error("top seed should walk through the empty half")
	}
	if b.Semifinals[1].Decided() {
		t.Error("seeds 2 and 3 should have a real semifinal")
	}

	decideRound(b.Semifinals)
	if !AdvanceSemifinals(b) {
		t.Fatal("decided semifinals did not seed the final")
	}
	RecordFinalWinner(b.Final, b.Final.Team1, b.Final.Team2)
	if !CrownChampion(b) || b.Champion == uuid.Nil {
		t.Fatal("three-team bracket never crowned a champion")
	}
}

func TestSeedTournamentThreeChampions(t *testing.T) {
	champs := []domain.ChampionEntry{
		{TeamID: uuid.New(), Class: domain.ClassA, Rating: 60},
		{TeamID: uuid.New(), Class: domain.ClassAA, Rating: 82},
		{TeamID: uuid.New(), Class: domain.ClassAAA, Rating: 71},
	}
	tour := SeedTournament(champs)

	if tour.ByeTeam != champs[1].TeamID {
		t.Error("top rated champion should receive the bye")
	}
	if tour.Semifinal == nil {
		t.Fatal("no semifinal for three champions")
	}
	if tour.Final != nil {
		t.Error("final seeded before the semifinal resolved")
	}

	RecordFinalWinner(tour.Semifinal, tour.Semifinal.Team1, tour.Semifinal.Team2)
	if !AdvanceTournament(tour) {
		t.Fatal("decided semifinal did not seed the final")
	}
	if tour.Final.Team1 != tour.ByeTeam {
		t.Error("bye team missing from the final")
	}
}

func TestSeedTournamentTwoChampionsDirectFinal(t *testing.T) {
	champs := []domain.ChampionEntry{
		{TeamID: uuid.New(), Class: domain.ClassA, Rating: 66},
		{TeamID: uuid.New(), Class: domain.ClassAA, Rating: 74},
	}
	tour := SeedTournament(champs)

	if tour.Semifinal != nil {
		t.Error("two champions should skip the semifinal")
	}
	if tour.Final == nil {
		t.Fatal("no final seeded")
	}
	if tour.Final.Team1 != champs[1].TeamID {
		t.Error("higher rated champion should hold the top slot")
	}

	RecordFinalWinner(tour.Final, tour.Final.Team2, tour.Final.Team1)
	AdvanceTournament(tour)
	if tour.Winner != tour.Final.Team2 {
		t.Error("overall winner not recorded")
	}
}
