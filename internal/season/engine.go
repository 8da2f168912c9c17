// Package season is the week-by-week progression engine: it resolves due
// games, maintains records and rankings, drives the playoff and tournament
// brackets and rolls the league into the next season.
package season

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/narrative"
	"github.com/kofikwar/gridiron/internal/rng"
	"github.com/kofikwar/gridiron/internal/roster"
	"github.com/kofikwar/gridiron/internal/sim"
)

// Notification is the single optional headline a week advance hands back to
// the caller; everything else lands in the inbox and news feeds.
type Notification struct {
	Type    domain.MessageType `json:"type"`
	Message string             `json:"message"`
}

type Engine struct {
	src   rng.Source
	narr  *narrative.Generator
	clock clock.Clock
	log   *logrus.Entry
}

func New(src rng.Source, narr *narrative.Generator, clk clock.Clock, log *logrus.Logger) *Engine {
	if clk == nil {
		clk = clock.New()
	}
	return &Engine{
		src:   src,
		narr:  narr,
		clock: clk,
		log:   log.WithField("name", "season"),
	}
}

// AdvanceWeek runs one tick of the state machine. Every sub-step degrades
// gracefully; the state is always left valid and one week further along
// (or rolled into the next season).
func (e *Engine) AdvanceWeek(ctx context.Context, gs *domain.GameState) *Notification {
	if gs.CareerOver {
		return nil
	}
	if gs.ActiveGame != nil {
		e.log.Warn("open interactive game discarded, resolving the week by simulation")
		gs.ActiveGame = nil
	}

	playedWeek := gs.Week

	e.resolveWeek(ctx, gs, domain.JV, playedWeek)
	e.resolveWeek(ctx, gs, domain.Varsity, playedWeek)

	gs.Week++

	var note *Notification
	if gs.Mode == domain.ModePlayer {
		note = e.checkTierEligibility(gs)
	}

	e.recomputeRankings(gs)
	e.playerOfTheWeek(gs, playedWeek)
	e.runBracketSteps(gs)

	if gs.Week == domain.WeekAwards {
		e.enterOffseason(gs)
	}

	e.tickHealth(gs)
	e.academicChecks(gs)

	if gs.Week > domain.WeekRecruiting {
		if n := e.PrepareNextSeason(gs); n != nil {
			note = n
		}
	}
	return note
}

// AdvanceToOffseason loops week advances until the offseason flag is up or
// the career ended. The last meaningful notification wins.
func (e *Engine) AdvanceToOffseason(ctx context.Context, gs *domain.GameState) *Notification {
	var note *Notification
	for !gs.Offseason && !gs.CareerOver {
		if n := e.AdvanceWeek(ctx, gs); n != nil {
			note = n
		}
	}
	return note
}

func pairKey(a, b uuid.UUID) string {
	if a.String() < b.String() {
		return a.String() + "/" + b.String()
	}
	return b.String() + "/" + a.String()
}

// resolveWeek resolves every unresolved matchup of one tier due in a week.
// Each distinct pairing runs exactly once: only the lower-id side processes,
// and a set of resolved pairs guards against schedules that disagree.
func (e *Engine) resolveWeek(ctx context.Context, gs *domain.GameState, tier domain.Tier, week int) {
	sched := gs.ScheduleFor(tier)
	done := mapset.NewSet[string]()

	for _, team := range gs.Teams {
		game := sched.GameAt(team.ID, week)
		if game == nil || game.Resolved() {
			continue
		}
		opp := gs.TeamByID(game.OpponentID)
		if opp == nil {
			e.log.WithField("team", team.Name).Errorf("opponent %s not found, skipping matchup", game.OpponentID)
			continue
		}
		if team.ID.String() > opp.ID.String() {
			continue
		}
		if !done.Add(pairKey(team.ID, opp.ID)) {
			continue
		}
		oppGame := sched.GameAt(opp.ID, week)
		if oppGame == nil || oppGame.Resolved() {
			e.log.WithField("team", opp.Name).Error("mirrored schedule entry missing or already resolved, skipping matchup")
			continue
		}

		cfg := sim.Config{
			UserTeamID:   gs.UserTeamID,
			UserPlayerID: gs.UserPlayerID,
			CoachBonus:   gs.Facilities.Coaching * 2,
			Cheats:       gs.Cheats,
		}
		out := sim.Simulate(e.src, team, opp, tier, cfg)
		e.applyGameResult(ctx, gs, tier, team, opp, game, oppGame, out)
	}
}

func (e *Engine) newInbox(gs *domain.GameState, t domain.MessageType, subject, body string) {
	gs.PushInbox(domain.InboxMessage{
		ID:        uuid.New(),
		Type:      t,
		Subject:   subject,
		Body:      body,
		Season:    gs.Season,
		Week:      gs.Week,
		CreatedAt: e.clock.Now(),
	})
}

func (e *Engine) newArticle(gs *domain.GameState, tag, headline, body string) {
	gs.PushNews(domain.NewsArticle{
		ID:       uuid.New(),
		Headline: headline,
		Body:     body,
		Tag:      tag,
		Season:   gs.Season,
		Week:     gs.Week,
	})
}

// checkTierEligibility promotes a JV user entity whose rating cleared the
// varsity bar and demotes a buried varsity entity. Demotion is skipped when
// the position group is too thin to lose a starter.
func (e *Engine) checkTierEligibility(gs *domain.GameState) *Notification {
	player := gs.UserPlayer()
	team := gs.UserTeam()
	if player == nil || team == nil {
		return nil
	}

	switch {
	case player.Tier == domain.JV && player.Overall > promoteRating:
		player.Tier = domain.Varsity
		e.recomputeTeam(gs, team)
		msg := fmt.Sprintf("%s has been called up to varsity.", player.Name)
		e.newInbox(gs, domain.MsgPromotion, "Called up to varsity", msg)
		return &Notification{Type: domain.MsgPromotion, Message: msg}

	case player.Tier == domain.Varsity && player.Overall < demoteRating && player.DepthOrder > 2:
		if len(team.PlayersAt(player.Position, domain.Varsity)) < 3 {
			return nil
		}
		player.Tier = domain.JV
		e.recomputeTeam(gs, team)
		msg := fmt.Sprintf("%s has been sent down to the JV squad.", player.Name)
		e.newInbox(gs, domain.MsgDemotion, "Sent down to JV", msg)
		return &Notification{Type: domain.MsgDemotion, Message: msg}
	}
	return nil
}

const (
	promoteRating = 68
	demoteRating  = 65
)

// recomputeTeam refreshes depth and rating after an in-season roster change
// without re-running tier assignment, which would undo manual tier moves.
func (e *Engine) recomputeTeam(gs *domain.GameState, team *domain.Team) {
	roster.ComputeDepthChart(team)
	team.Rating = roster.ComputeTeamRating(team.Roster)
}
