package season

import (
	"context"
	"errors"
	"testing"

	"github.com/kofikwar/gridiron/internal/domain"
)

func TestInteractiveGameFoldsIntoSeason(t *testing.T) {
	e := newTestEngine(21)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})

	ag, err := e.StartInteractiveGame(gs)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.StartInteractiveGame(gs); !errors.Is(err, ErrGameInPlay) {
		t.Fatalf("second start: err = %v, want ErrGameInPlay", err)
	}
	if err := e.ApplyInteractiveResult(context.Background(), gs); !errors.Is(err, ErrGameNotOver) {
		t.Fatalf("early apply: err = %v, want ErrGameNotOver", err)
	}

	ag.Quarter = 5
	ag.TeamScore = 21
	ag.OppScore = 14
	if err := e.ApplyInteractiveResult(context.Background(), gs); err != nil {
		t.Fatal(err)
	}

	if gs.ActiveGame != nil {
		t.Fatal("overlay must be cleared after folding in")
	}
	game := gs.VarsitySchedule.GameAt(gs.UserTeamID, gs.Week)
	if game == nil || !game.Resolved() {
		t.Fatal("user game not resolved")
	}
	if game.Result.TeamScore != 21 || game.Result.OppScore != 14 {
		t.Fatalf("score = %d-%d, want 21-14", game.Result.TeamScore, game.Result.OppScore)
	}
	user := gs.UserTeam()
	if user.Wins != 1 {
		t.Fatalf("user wins = %d, want 1", user.Wins)
	}
}

func TestPlayedLogAndStatsCarryIntoResult(t *testing.T) {
	e := newTestEngine(25)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})
	gs.Mode = domain.ModePlayer

	user := gs.UserTeam()
	target := user.Roster[0]
	target.UserControlled = true
	gs.UserPlayerID = target.ID

	ag, err := e.StartInteractiveGame(gs)
	if err != nil {
		t.Fatal(err)
	}
	if ag.UserPlayerID != target.ID {
		t.Fatal("overlay missing the user entity")
	}
	ag.Quarter = 5
	ag.TeamScore = 14
	ag.OppScore = 7
	ag.PlayLog = []string{"Q1 14:40 run for 8 yards"}
	ag.Stats[target.ID] = domain.StatLine{RushYards: 120, RushTDs: 2}

	if err := e.ApplyInteractiveResult(context.Background(), gs); err != nil {
		t.Fatal(err)
	}

	game := gs.VarsitySchedule.GameAt(gs.UserTeamID, 1)
	if len(game.Result.PlayLog) != 1 || game.Result.PlayLog[0] != "Q1 14:40 run for 8 yards" {
		t.Fatalf("play log not carried: %v", game.Result.PlayLog)
	}
	line, ok := game.Result.TeamStats[target.ID]
	if !ok || line.RushYards != 120 || line.RushTDs != 2 {
		t.Fatalf("played stat line not carried: %+v", line)
	}
	if target.Season.RushYards < 120 {
		t.Fatalf("season accumulator = %d rush yards, want at least 120", target.Season.RushYards)
	}
}

func TestInteractiveTieBreaksByRating(t *testing.T) {
	e := newTestEngine(22)
	gs := newLeague(e.src, map[domain.Class]int{domain.ClassA: 4})

	ag, err := e.StartInteractiveGame(gs)
	if err != nil {
		t.Fatal(err)
	}
	ag.Quarter = 5
	ag.TeamScore = 10
	ag.OppScore = 10
	if err := e.ApplyInteractiveResult(context.Background(), gs); err != nil {
		t.Fatal(err)
	}

	game := gs.VarsitySchedule.GameAt(gs.UserTeamID, 1)
	if game.Result.TeamScore == game.Result.OppScore {
		t.Fatal("ties cannot stand")
	}
}
