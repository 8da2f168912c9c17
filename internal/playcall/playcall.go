// Package playcall is the boundary to the interactive down-to-down resolver.
// The season engine never looks inside a drive; it only accepts the terminal
// box score and play log an ActiveGame produced.
package playcall

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/rng"
)

// Call is the chosen offensive or defensive play descriptor.
type Call string

const (
	CallRun       Call = "run"
	CallShortPass Call = "short-pass"
	CallDeepPass  Call = "deep-pass"
	CallPunt      Call = "punt"
	CallFieldGoal Call = "field-goal"
	CallBlitz     Call = "blitz"
	CallCoverage  Call = "coverage"
)

// Resolver advances an ActiveGame by one play.
type Resolver interface {
	Resolve(game *domain.ActiveGame, call Call) error
}

// DeltaResolver is the simple delta-yardage stub: each play moves the ball
// by a bounded random gain and burns clock. It exists so an interactive game
// can run end to end; it is not a physics model.
type DeltaResolver struct {
	Src rng.Source
}

var _ Resolver = (*DeltaResolver)(nil)

func (r *DeltaResolver) Resolve(game *domain.ActiveGame, call Call) error {
	if game == nil || game.Over() {
		return nil
	}
	gain := 0
	switch call {
	case CallRun:
		gain = rng.Between(r.Src, -2, 9)
	case CallShortPass:
		gain = rng.Between(r.Src, 0, 12)
	case CallDeepPass:
		if rng.Chance(r.Src, 0.35) {
			gain = rng.Between(r.Src, 15, 45)
		}
	case CallFieldGoal:
		if game.BallOn >= 60 && rng.Chance(r.Src, 0.7) {
			game.TeamScore += 3
			credit(game, func(l *domain.StatLine) { l.FieldGoals++ })
			logPlay(game, "field goal is good")
		} else {
			logPlay(game, "field goal attempt is no good")
		}
		r.turnover(game)
		r.tick(game, 6)
		return nil
	case CallPunt:
		logPlay(game, "punt")
		r.turnover(game)
		r.tick(game, 8)
		return nil
	}

	switch call {
	case CallRun:
		credit(game, func(l *domain.StatLine) { l.RushYards += gain })
	case CallShortPass, CallDeepPass:
		credit(game, func(l *domain.StatLine) { l.PassYards += gain })
	}

	game.BallOn += gain
	game.Distance -= gain
	if game.BallOn >= 100 {
		game.TeamScore += 7
		credit(game, func(l *domain.StatLine) {
			switch call {
			case CallRun:
				l.RushTDs++
			case CallShortPass, CallDeepPass:
				l.PassTDs++
			}
		})
		logPlay(game, fmt.Sprintf("%s for %d yards, touchdown", call, gain))
		r.turnover(game)
	} else if game.Distance <= 0 {
		logPlay(game, fmt.Sprintf("%s for %d yards, first down", call, gain))
		game.Down = 1
		game.Distance = 10
	} else {
		logPlay(game, fmt.Sprintf("%s for %d yards", call, gain))
		game.Down++
		if game.Down > 4 {
			logPlay(game, "turnover on downs")
			r.turnover(game)
		}
	}
	r.tick(game, rng.Between(r.Src, 20, 40))
	return nil
}

// logPlay stamps the line with the game clock before the play's time burns.
func logPlay(game *domain.ActiveGame, text string) {
	game.PlayLog = append(game.PlayLog,
		fmt.Sprintf("Q%d %02d:%02d %s", game.Quarter, game.Clock/60, game.Clock%60, text))
}

// credit folds a delta into the user entity's in-game stat line.
func credit(game *domain.ActiveGame, apply func(*domain.StatLine)) {
	if game.UserPlayerID == uuid.Nil {
		return
	}
	if game.Stats == nil {
		game.Stats = make(map[uuid.UUID]domain.StatLine)
	}
	line := game.Stats[game.UserPlayerID]
	apply(&line)
	game.Stats[game.UserPlayerID] = line
}

func (r *DeltaResolver) turnover(game *domain.ActiveGame) {
	game.Possession = !game.Possession
	game.Down = 1
	game.Distance = 10
	game.BallOn = 100 - domain.Clamp(game.BallOn, 0, 99)
}

func (r *DeltaResolver) tick(game *domain.ActiveGame, seconds int) {
	game.Clock -= seconds
	if game.Clock <= 0 {
		game.Quarter++
		game.Clock = 15 * 60
	}
}
