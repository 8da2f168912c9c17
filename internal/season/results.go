package season

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/narrative"
	"github.com/kofikwar/gridiron/internal/rng"
	"github.com/kofikwar/gridiron/internal/sim"
)

// upsetMargin is how far the loser's rating must exceed the winner's before
// the result is framed as an upset.
const upsetMargin = 5

const rivalryBonus = 500

// applyGameResult writes a simulated outcome into both schedule entries,
// updates records, chemistry, brackets, player accumulators and derived
// artifacts. teamA owns gameA, teamB owns gameB.
func (e *Engine) applyGameResult(ctx context.Context, gs *domain.GameState, tier domain.Tier, teamA, teamB *domain.Team, gameA, gameB *domain.Game, out sim.Outcome) {
	gameA.Result = &domain.Result{
		TeamScore: out.ScoreA,
		OppScore:  out.ScoreB,
		TeamStats: out.StatsA,
		OppStats:  out.StatsB,
	}
	gameB.Result = &domain.Result{
		TeamScore: out.ScoreB,
		OppScore:  out.ScoreA,
		TeamStats: out.StatsB,
		OppStats:  out.StatsA,
	}

	winner, loser := teamA, teamB
	if out.ScoreB > out.ScoreA {
		winner, loser = teamB, teamA
	}

	// only varsity results count toward the official record
	if tier == domain.Varsity {
		winner.Wins++
		loser.Losses++
		if winner.Class == loser.Class && gameA.Round == domain.RoundNone {
			winner.ClassWins++
			loser.ClassLosses++
		}
	}

	winner.Chemistry = domain.Clamp(winner.Chemistry+rng.Between(e.src, 1, 5), 0, 100)
	loser.Chemistry = domain.Clamp(loser.Chemistry-rng.Between(e.src, 0, 4), 0, 100)

	// the whole program rides the result, not just the tier that played
	for _, p := range winner.Roster {
		p.Morale = domain.Clamp(p.Morale+rng.Between(e.src, 1, 3), 0, 100)
	}
	for _, p := range loser.Roster {
		p.Morale = domain.Clamp(p.Morale-rng.Between(e.src, 1, 3), 0, 100)
	}

	if gameA.Round != domain.RoundNone {
		e.recordBracketResult(gs, gameA.Round, winner.ID, loser.ID)
	}

	e.mergeStats(gs, tier, teamA, out.StatsA)
	e.mergeStats(gs, tier, teamB, out.StatsB)

	if tier == domain.Varsity {
		e.publishRecap(ctx, gs, winner, loser, gameA)
		e.applyFinances(gs, winner, gameA)
	}
}

// mergeStats folds box score deltas into every accumulator scope a player
// carries, feeds the user entity's experience track and rolls for injuries.
func (e *Engine) mergeStats(gs *domain.GameState, tier domain.Tier, team *domain.Team, stats map[uuid.UUID]domain.StatLine) {
	for playerID, line := range stats {
		p := team.PlayerByID(playerID)
		if p == nil {
			e.log.Errorf("player %s missing from roster of %s, dropping stat line", playerID, team.Name)
			continue
		}
		if tier == domain.Varsity {
			p.Season.Add(line)
		} else {
			p.SeasonJV.Add(line)
		}
		p.Career.Add(line)
		if p.UserControlled {
			p.UserCareer.Add(line)
			e.grantExperience(gs, p, line)
		}

		p.Stamina = domain.Clamp(p.Stamina-rng.Between(e.src, 10, 30), 0, 100)

		if rng.Chance(e.src, injuryChance) {
			p.InjuryWeeks = rng.Between(e.src, 1, 3)
			if team.ID == gs.UserTeamID {
				e.newInbox(gs, domain.MsgInjury, "Injury report",
					fmt.Sprintf("%s is out for %d week(s).", p.Name, p.InjuryWeeks))
			}
		}
	}
}

const injuryChance = 0.02

// grantExperience converts a box score into XP and levels the user entity
// up, banking skill points for the spend screen.
func (e *Engine) grantExperience(gs *domain.GameState, p *domain.Player, line domain.StatLine) {
	xp := line.PassYards/10 + line.RushYards/8 + line.RecYards/8 +
		line.TDs()*25 + line.Tackles*2 + line.Sacks*10 + line.Interceptions*15 +
		line.FieldGoals*10
	p.XP += xp
	for p.XPToLevel > 0 && p.XP >= p.XPToLevel {
		p.XP -= p.XPToLevel
		p.SkillPoints++
		p.XPToLevel += 25
		e.newInbox(gs, domain.MsgGeneral, "Level up",
			fmt.Sprintf("%s earned a skill point. %d unspent.", p.Name, p.SkillPoints))
	}
}

// publishRecap emits the news article for a resolved varsity game. Only the
// user's own games consult the narrative collaborator; every other recap is
// templated directly.
func (e *Engine) publishRecap(ctx context.Context, gs *domain.GameState, winner, loser *domain.Team, g *domain.Game) {
	winScore, loseScore := g.Result.TeamScore, g.Result.OppScore
	if winScore < loseScore {
		winScore, loseScore = loseScore, winScore
	}
	summary := narrative.Summary{
		WinnerName:  winner.Name,
		LoserName:   loser.Name,
		WinnerScore: winScore,
		LoserScore:  loseScore,
		Rivalry:     g.Rivalry,
		Upset:       loser.Rating > winner.Rating+upsetMargin,
	}

	body := narrative.Fallback(summary)
	userGame := winner.ID == gs.UserTeamID || loser.ID == gs.UserTeamID
	if userGame && e.narr != nil {
		body = e.narr.Recap(ctx, summary)
	}
	g.Result.Recap = body

	tag := "recap"
	if summary.Upset {
		tag = "upset"
	}
	e.newArticle(gs, tag, fmt.Sprintf("%s %d, %s %d", winner.Name, winScore, loser.Name, loseScore), body)
}

// applyFinances pays out sponsor and rivalry money when the user team wins
// and nudges prestige both ways.
func (e *Engine) applyFinances(gs *domain.GameState, winner *domain.Team, g *domain.Game) {
	if winner.ID != gs.UserTeamID {
		return
	}
	payout := gs.Sponsor.WinPayout
	if g.Rivalry {
		payout += rivalryBonus
	}
	gs.Funds += payout
	winner.Prestige = domain.Clamp(winner.Prestige+1, 0, 100)
}
