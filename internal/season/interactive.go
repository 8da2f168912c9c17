package season

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/sim"
)

var (
	ErrNoUserGame   = errors.New("no unresolved user game this week")
	ErrGameNotOver  = errors.New("interactive game still in progress")
	ErrGameInPlay   = errors.New("an interactive game is already open")
	ErrNoActiveGame = errors.New("no interactive game open")
)

// StartInteractiveGame opens the user team's varsity matchup of the current
// week for down-to-down play. An overlay left open when the week advances is
// discarded and the game simulated instead.
func (e *Engine) StartInteractiveGame(gs *domain.GameState) (*domain.ActiveGame, error) {
	if gs.ActiveGame != nil {
		return nil, ErrGameInPlay
	}
	game := gs.VarsitySchedule.GameAt(gs.UserTeamID, gs.Week)
	if game == nil || game.Resolved() {
		return nil, ErrNoUserGame
	}
	gs.ActiveGame = &domain.ActiveGame{
		GameID:       game.ID,
		OpponentID:   game.OpponentID,
		UserPlayerID: gs.UserPlayerID,
		Quarter:      1,
		Clock:        15 * 60,
		Down:         1,
		Distance:     10,
		BallOn:       20,
		Possession:   true,
		Stats:        make(map[uuid.UUID]domain.StatLine),
	}
	return gs.ActiveGame, nil
}

// ApplyInteractiveResult folds a finished interactive game back into the
// season. The played score, play log and user stat lines are kept as-is; the
// rest of the box score is synthesized around them and the normal result
// pipeline runs.
func (e *Engine) ApplyInteractiveResult(ctx context.Context, gs *domain.GameState) error {
	ag := gs.ActiveGame
	if ag == nil {
		return ErrNoActiveGame
	}
	if !ag.Over() {
		return ErrGameNotOver
	}
	gs.ActiveGame = nil

	teamA := gs.UserTeam()
	teamB := gs.TeamByID(ag.OpponentID)
	if teamA == nil || teamB == nil {
		return ErrNoUserGame
	}
	gameA := gs.VarsitySchedule.GameAt(teamA.ID, gs.Week)
	gameB := gs.VarsitySchedule.GameAt(teamB.ID, gs.Week)
	if gameA == nil || gameB == nil || gameA.Resolved() {
		return ErrNoUserGame
	}

	scoreA, scoreB := ag.TeamScore, ag.OppScore
	if scoreA == scoreB {
		// overtime nod to the stronger roster
		if teamA.Rating >= teamB.Rating {
			scoreA += 3
		} else {
			scoreB += 3
		}
	}

	cfg := sim.Config{
		UserTeamID:   gs.UserTeamID,
		UserPlayerID: gs.UserPlayerID,
		Cheats:       gs.Cheats,
	}
	out := sim.Outcome{
		ScoreA: scoreA,
		ScoreB: scoreB,
		StatsA: sim.BoxScore(e.src, teamA, domain.Varsity, scoreA, cfg),
		StatsB: sim.BoxScore(e.src, teamB, domain.Varsity, scoreB, sim.Config{}),
	}
	// the stat lines actually played beat the synthesized ones
	for id, line := range ag.Stats {
		out.StatsA[id] = line
	}
	e.applyGameResult(ctx, gs, domain.Varsity, teamA, teamB, gameA, gameB, out)
	gameA.Result.PlayLog = ag.PlayLog
	return nil
}
