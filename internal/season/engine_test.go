package season

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/gen"
	"github.com/kofikwar/gridiron/internal/narrative"
	"github.com/kofikwar/gridiron/internal/rng"
	"github.com/kofikwar/gridiron/internal/roster"
	"github.com/kofikwar/gridiron/internal/schedule"
	"github.com/kofikwar/gridiron/internal/sim"
)

func newTestEngine(seed int64) *Engine {
	log := logrus.New()
	log.SetOutput(io.Discard)
	src := rng.New(seed)
	narr := narrative.NewGenerator(nil, time.Second, log.WithField("name", "narrative"))
	return New(src, narr, nil, log)
}

// newLeague builds a playable state with full generated rosters, tiers and
// schedules. counts maps a class to its team count; teams are numbered in
// creation order and the first one belongs to the user.
func newLeague(src rng.Source, counts map[domain.Class]int) *domain.GameState {
	gs := &domain.GameState{
		Mode:     domain.ModeCoach,
		Season:   1,
		Week:     1,
		Rivals:   map[uuid.UUID]uuid.UUID{},
		Brackets: map[domain.Class]*domain.Bracket{},
	}
	n := 0
	for _, class := range domain.Classes {
		for i := 0; i < counts[class]; i++ {
			team := gen.Team(src, uuid.New(), fmt.Sprintf("Team %d", n), class)
			roster.AssignTiers(team.Roster)
			roster.Recompute(team)
			gs.Teams = append(gs.Teams, team)
			n++
		}
	}
	gs.UserTeamID = gs.Teams[0].ID
	gs.VarsitySchedule, gs.JVSchedule = schedule.Generate(src, gs.Teams, gs.Rivals)
	return gs
}

type seasonSuite struct {
	suite.Suite
}

func TestSeasonSuite(t *testing.T) {
	suite.Run(t, new(seasonSuite))
}

func (s *seasonSuite) TestTwoClassSeasonDirectFinal() {
	e := newTestEngine(7)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 6, domain.ClassAA: 4})

	e.AdvanceToOffseason(context.Background(), gs)

	s.True(gs.Offseason)
	s.Equal(domain.WeekAwards, gs.Week)
	s.NotNil(gs.Awards)
	s.NotNil(gs.JVAwards)
	s.NotNil(gs.Awards.MVP)
	s.NotNil(gs.Awards.CoachOfYear)

	for _, class := range []domain.Class{domain.ClassA, domain.ClassAA} {
		b := gs.Brackets[class]
		s.Require().NotNil(b, "class %s bracket", class)
		s.NotEqual(uuid.Nil, b.Champion, "class %s champion", class)
	}

	t := gs.Tournament
	s.Require().NotNil(t)
	s.Equal(uuid.Nil, t.ByeTeam, "two champions play a final without a bye")
	s.Nil(t.Semifinal)
	s.Require().NotNil(t.Final)
	s.NotEqual(uuid.Nil, t.Winner)

	final := gs.VarsitySchedule.GameAt(t.Final.Team1, domain.WeekTOCFinal)
	s.Require().NotNil(final, "final must land on the cross-class final week")
	s.Equal(domain.RoundTOCFinal, final.Round)
	s.True(final.Resolved())
}

func (s *seasonSuite) TestThreeClassSeasonByeAndSemifinal() {
	e := newTestEngine(11)
	gs := newLeague(e.src, map[domain.Class]int{
		domain.ClassA: 4, domain.ClassAA: 4, domain.ClassAAA: 4,
	})

	e.AdvanceToOffseason(context.Background(), gs)

	t := gs.Tournament
	s.Require().NotNil(t)
	s.Len(t.Champions, 3)
	s.NotEqual(uuid.Nil, t.ByeTeam)
	s.Require().NotNil(t.Semifinal)
	s.Require().NotNil(t.Final)
	s.True(t.Final.Has(t.ByeTeam), "bye team waits in the final")
	s.NotEqual(uuid.Nil, t.Winner)

	semi := gs.VarsitySchedule.GameAt(t.Semifinal.Team1, domain.WeekTOCSemi)
	s.Require().NotNil(semi)
	s.Equal(domain.RoundTOCSemi, semi.Round)
}

func (s *seasonSuite) TestRolloverResetsLeague() {
	e := newTestEngine(3)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})

	e.AdvanceToOffseason(context.Background(), gs)
	s.Require().True(gs.Offseason)

	// training and recruiting weeks, then the rollover itself
	for i := 0; i < 3; i++ {
		e.AdvanceWeek(context.Background(), gs)
	}

	s.Equal(2, gs.Season)
	s.Equal(1, gs.Week)
	s.False(gs.Offseason)
	s.False(gs.Eliminated)
	s.Nil(gs.Tournament)
	s.Empty(gs.Brackets)
	s.Nil(gs.Awards)
	s.NotEmpty(gs.Recruits)

	for _, team := range gs.Teams {
		s.Zero(team.Wins)
		s.Zero(team.Losses)
		s.NotNil(gs.VarsitySchedule.GameAt(team.ID, 1))
		for _, p := range team.Roster {
			s.NotEqual(domain.Senior, p.Year, "seniors graduate at rollover")
			s.Equal(domain.StatLine{}, p.Season)
			s.Equal(domain.StatLine{}, p.SeasonJV)
			s.Zero(p.InjuryWeeks)
		}
	}
}

func (s *seasonSuite) TestBracketsSeededEnteringQuarterfinals() {
	e := newTestEngine(5)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 8})

	for gs.Week <= domain.RegularSeasonWeeks {
		e.AdvanceWeek(context.Background(), gs)
	}

	s.Equal(domain.WeekQuarterfinals, gs.Week)
	b := gs.Brackets[domain.ClassA]
	s.Require().NotNil(b)
	s.True(b.Seeded())
	for i := range b.Quarterfinals {
		m := b.Quarterfinals[i]
		s.Require().True(m.Ready())
		game := gs.VarsitySchedule.GameAt(m.Team1, domain.WeekQuarterfinals)
		s.Require().NotNil(game)
		s.Equal(domain.RoundQuarterfinal, game.Round)
	}
	s.NotEmpty(gs.Rankings)
}

func (s *seasonSuite) TestShortClassStillCrownsChampion() {
	e := newTestEngine(29)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 8, domain.ClassAA: 3})

	e.AdvanceToOffseason(context.Background(), gs)

	// three teams seed a bracket that is mostly byes; it must still finish
	b := gs.Brackets[domain.ClassAA]
	s.Require().NotNil(b)
	s.True(b.QuarterfinalsComplete())
	s.NotEqual(uuid.Nil, b.Champion, "short bracket never crowned a champion")

	s.Require().NotNil(gs.Tournament)
	s.NotEqual(uuid.Nil, gs.Tournament.Winner)
}

func TestChampionCrowningRetriesWithoutDoubleCounting(t *testing.T) {
	e := newTestEngine(31)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})
	team1, team2 := gs.Teams[0], gs.Teams[1]
	b := &domain.Bracket{
		Class: domain.ClassA,
		Final: &domain.Matchup{Team1: team1.ID, Team2: team2.ID},
	}
	gs.Brackets[domain.ClassA] = b

	gs.Week = domain.WeekTOCSemi
	e.runBracketSteps(gs)
	if b.Champion != uuid.Nil {
		t.Fatal("champion crowned while the final is undecided")
	}
	if gs.Tournament != nil {
		t.Fatal("tournament seeded without a champion")
	}

	b.Final.Winner = team1.ID
	gs.Week = domain.WeekTOCFinal
	e.runBracketSteps(gs)
	if b.Champion != team1.ID {
		t.Fatal("late-decided final never crowned its champion")
	}
	if team1.Championships != 1 {
		t.Fatalf("championships = %d, want 1", team1.Championships)
	}
	tour := gs.Tournament
	if tour == nil {
		t.Fatal("tournament not seeded from the late champion")
	}

	gs.Week = domain.WeekAwards
	e.runBracketSteps(gs)
	if team1.Championships != 1 {
		t.Fatalf("re-crowning double counted the title: %d", team1.Championships)
	}
	if gs.Tournament != tour {
		t.Fatal("tournament reseeded on a later pass")
	}
}

func TestUserPromotionFromJV(t *testing.T) {
	e := newTestEngine(9)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})
	gs.Mode = domain.ModePlayer

	user := gs.UserTeam()
	var target *domain.Player
	for _, p := range user.Roster {
		if p.Tier == domain.JV {
			target = p
			break
		}
	}
	if target == nil {
		t.Fatal("generated roster has no junior varsity players")
	}
	target.UserControlled = true
	gs.UserPlayerID = target.ID
	target.Attr = domain.Attributes{
		Speed: 80, Strength: 80, Stamina: 80, Tackle: 80, Catch: 80,
		Pass: 80, Block: 80, Consistency: 80, Potential: 80,
	}
	target.RecomputeOverall()

	note := e.AdvanceWeek(context.Background(), gs)

	if note == nil || note.Type != domain.MsgPromotion {
		t.Fatalf("want promotion notification, got %+v", note)
	}
	if target.Tier != domain.Varsity {
		t.Fatalf("player tier = %s, want varsity", target.Tier)
	}
	found := false
	for _, m := range gs.Inbox {
		if m.Type == domain.MsgPromotion {
			found = true
		}
	}
	if !found {
		t.Fatal("promotion inbox message missing")
	}
}

func TestGraduatingUserEndsCareer(t *testing.T) {
	e := newTestEngine(13)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})
	gs.Mode = domain.ModePlayer

	user := gs.UserTeam()
	target := user.Roster[0]
	target.UserControlled = true
	target.Year = domain.Senior
	gs.UserPlayerID = target.ID

	e.AdvanceToOffseason(context.Background(), gs)
	for i := 0; i < 3 && !gs.CareerOver; i++ {
		e.AdvanceWeek(context.Background(), gs)
	}

	if !gs.CareerOver {
		t.Fatal("career should end when the user player graduates")
	}
	if gs.CareerSummary == nil || gs.CareerSummary.PlayerName != target.Name {
		t.Fatalf("career summary = %+v", gs.CareerSummary)
	}
	if gs.Season != 1 {
		t.Fatalf("season advanced past a finished career: %d", gs.Season)
	}
}

func TestSpendSkillPoint(t *testing.T) {
	e := newTestEngine(37)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})
	gs.Mode = domain.ModePlayer

	user := gs.UserTeam()
	target := user.Roster[0]
	target.UserControlled = true
	gs.UserPlayerID = target.ID

	if e.SpendSkillPoint(gs, "catch") {
		t.Fatal("spend with no banked points must be rejected")
	}

	target.SkillPoints = 2
	target.Attr.Catch = 70
	target.RecomputeOverall()

	if !e.SpendSkillPoint(gs, "catch") {
		t.Fatal("spend with a banked point should succeed")
	}
	if target.Attr.Catch != 71 {
		t.Fatalf("catch = %d, want 71", target.Attr.Catch)
	}
	if target.SkillPoints != 1 {
		t.Fatalf("skill points = %d, want 1", target.SkillPoints)
	}
	if target.Overall != target.Attr.Overall() {
		t.Fatal("overall not recomputed after the spend")
	}
	if e.SpendSkillPoint(gs, "swagger") {
		t.Fatal("unknown attribute must be rejected")
	}
	if target.SkillPoints != 1 {
		t.Fatal("rejected spend consumed a point")
	}
}

func TestResultsMoveMorale(t *testing.T) {
	e := newTestEngine(41)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})
	teamA, teamB := gs.Teams[0], gs.Teams[1]
	for _, p := range teamA.Roster {
		p.Morale = 50
	}
	for _, p := range teamB.Roster {
		p.Morale = 50
	}
	gameA := &domain.Game{ID: uuid.New(), Week: 1, OpponentID: teamB.ID}
	gameB := &domain.Game{ID: uuid.New(), Week: 1, OpponentID: teamA.ID}

	e.applyGameResult(context.Background(), gs, domain.Varsity, teamA, teamB, gameA, gameB,
		sim.Outcome{ScoreA: 21, ScoreB: 7})

	for _, p := range teamA.Roster {
		if p.Morale <= 50 {
			t.Fatalf("winner morale = %d, want above 50", p.Morale)
		}
	}
	for _, p := range teamB.Roster {
		if p.Morale >= 50 {
			t.Fatalf("loser morale = %d, want below 50", p.Morale)
		}
	}
}

func TestTransferOffersMeetMinimum(t *testing.T) {
	e := newTestEngine(43)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 6})
	gs.Mode = domain.ModePlayer

	user := gs.UserTeam()
	target := user.Roster[0]
	target.UserControlled = true
	gs.UserPlayerID = target.ID
	// put the player squarely in every rival's rating band
	target.Overall = gs.Teams[1].Rating

	e.rollTransferOffers(gs)

	if n := len(gs.TransferOffers); n < 2 || n > 4 {
		t.Fatalf("transfer offers = %d, want between 2 and 4", n)
	}
	for _, offer := range gs.TransferOffers {
		if offer.TeamID == gs.UserTeamID {
			t.Fatal("offer from the player's own school")
		}
	}
}

func TestScoutFallsBackToRosterReport(t *testing.T) {
	e := newTestEngine(47)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})

	rep := e.ScoutTeam(context.Background(), gs.Teams[1])

	if rep.Strength == "" || rep.Weakness == "" || rep.Suggestion == "" {
		t.Fatalf("fallback report incomplete: %+v", rep)
	}
}

func TestTrainPlayerPreconditions(t *testing.T) {
	e := newTestEngine(17)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})
	user := gs.UserTeam()
	target := user.Roster[0]
	target.Attr.Speed = 70
	target.RecomputeOverall()

	if e.TrainPlayer(gs, target.ID, "speed") {
		t.Fatal("training outside the training week must be rejected")
	}

	gs.Week = domain.WeekTraining
	before := target.Attr.Speed
	if !e.TrainPlayer(gs, target.ID, "speed") {
		t.Fatal("training during the training week should succeed")
	}
	if target.Attr.Speed <= before {
		t.Fatalf("speed %d not raised from %d", target.Attr.Speed, before)
	}
	if e.TrainPlayer(gs, uuid.New(), "speed") {
		t.Fatal("unknown player must be rejected")
	}
	if e.TrainPlayer(gs, target.ID, "swagger") {
		t.Fatal("unknown attribute must be rejected")
	}
}
