package season

import (
	"fmt"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/rng"
)

// enterOffseason raises the offseason flag, computes both tiers' awards and,
// in player mode, rolls the rival transfer offers.
func (e *Engine) enterOffseason(gs *domain.GameState) {
	gs.Offseason = true
	gs.Awards = e.computeAwards(gs, domain.Varsity)
	gs.JVAwards = e.computeAwards(gs, domain.JV)
	e.awardTrophies(gs, gs.Awards)
	if gs.Mode == domain.ModePlayer {
		e.rollTransferOffers(gs)
	}
	e.newArticle(gs, "awards", "Season awards are in",
		"The league has announced its end of season honors.")
}

type awardCandidate struct {
	player *domain.Player
	team   *domain.Team
	stats  domain.StatLine
	score  float64
}

// computeAwards fills every category in a single pass over all rosters,
// keeping the highest score per slot. Ties keep the first encountered.
func (e *Engine) computeAwards(gs *domain.GameState, tier domain.Tier) *domain.SeasonAwards {
	awards := &domain.SeasonAwards{}
	var mvp, qb, rb, wr, def, ol, k awardCandidate

	consider := func(slot *awardCandidate, c awardCandidate) {
		if slot.player == nil || c.score > slot.score {
			*slot = c
		}
	}

	for _, team := range gs.Teams {
		for _, p := range team.Roster {
			if p.Tier != tier {
				continue
			}
			stats := p.Season
			if tier == domain.JV {
				stats = p.SeasonJV
			}
			c := awardCandidate{player: p, team: team, stats: stats}

			switch p.Position {
			case domain.QB:
				c.score = float64(stats.PassYards)*0.04 + float64(stats.PassTDs)*4
				consider(&qb, c)
			case domain.RB:
				c.score = float64(stats.RushYards)*0.06 + float64(stats.RushTDs)*6
				consider(&rb, c)
			case domain.WR:
				c.score = float64(stats.RecYards)*0.06 + float64(stats.RecTDs)*6
				consider(&wr, c)
			case domain.OL:
				c.score = float64(p.Overall) + float64(p.Attr.Strength)*0.5
				consider(&ol, c)
			case domain.K:
				c.score = float64(p.Overall) + float64(p.Attr.Consistency)*0.5
				consider(&k, c)
			default:
				c.score = float64(stats.Tackles) + float64(stats.Sacks)*4 + float64(stats.Interceptions)*5
				consider(&def, c)
			}

			// MVP comes from the skill positions, weighted by rating and TDs
			switch p.Position {
			case domain.QB, domain.RB, domain.WR:
				m := c
				m.score = float64(p.Overall) + float64(stats.TDs())*3
				consider(&mvp, m)
			}
		}
	}

	awards.MVP = snapshot(mvp)
	awards.BestQB = snapshot(qb)
	awards.BestRB = snapshot(rb)
	awards.BestWR = snapshot(wr)
	awards.BestDefender = snapshot(def)
	awards.BestOL = snapshot(ol)
	awards.BestKicker = snapshot(k)
	if tier == domain.Varsity {
		awards.CoachOfYear = e.coachOfTheYear(gs)
	}
	return awards
}

func snapshot(c awardCandidate) *domain.AwardWinner {
	if c.player == nil {
		return nil
	}
	return &domain.AwardWinner{
		PlayerID: c.player.ID,
		Name:     c.player.Name,
		Position: c.player.Position,
		TeamID:   c.team.ID,
		TeamName: c.team.Name,
		Stats:    c.stats,
		Score:    c.score,
	}
}

// coachOfTheYear scores every coach on wins, titles and over-performance
// against the team's rating, with a small random tiebreak.
func (e *Engine) coachOfTheYear(gs *domain.GameState) *domain.CoachAward {
	var best *domain.CoachAward
	for _, team := range gs.Teams {
		expected := float64(team.Rating) / 10
		score := float64(team.Wins)*2 +
			float64(team.Championships)*6 +
			(float64(team.Wins)-expected)*1.5 +
			e.src.Float64()
		if best == nil || score > best.Score {
			best = &domain.CoachAward{
				CoachName: team.Coach.Name,
				TeamID:    team.ID,
				TeamName:  team.Name,
				Score:     score,
			}
		}
	}
	return best
}

// awardTrophies turns user-team award winners into trophy case entries and
// inbox mail.
func (e *Engine) awardTrophies(gs *domain.GameState, awards *domain.SeasonAwards) {
	if awards == nil {
		return
	}
	named := []struct {
		label  string
		winner *domain.AwardWinner
	}{
		{"League MVP", awards.MVP},
		{"Best Quarterback", awards.BestQB},
		{"Best Running Back", awards.BestRB},
		{"Best Receiver", awards.BestWR},
		{"Best Defender", awards.BestDefender},
		{"Best Lineman", awards.BestOL},
		{"Best Kicker", awards.BestKicker},
	}
	for _, a := range named {
		if a.winner == nil || a.winner.TeamID != gs.UserTeamID {
			continue
		}
		gs.TrophyCase = append(gs.TrophyCase, domain.Trophy{
			Season: gs.Season,
			Label:  fmt.Sprintf("%s: %s", a.label, a.winner.Name),
		})
		e.newInbox(gs, domain.MsgTrophy, a.label,
			fmt.Sprintf("%s has been named %s.", a.winner.Name, a.label))
	}
	if awards.CoachOfYear != nil && awards.CoachOfYear.TeamID == gs.UserTeamID {
		gs.TrophyCase = append(gs.TrophyCase, domain.Trophy{
			Season: gs.Season,
			Label:  "Coach of the Year",
		})
		e.newInbox(gs, domain.MsgTrophy, "Coach of the Year",
			fmt.Sprintf("%s has been named coach of the year.", awards.CoachOfYear.CoachName))
	}
}

const (
	transferOfferChance = 0.3
	transferRatingBand  = 15
	minTransferOffers   = 2
	maxTransferOffers   = 4
)

// rollTransferOffers drafts rival offers for the user player: teams within
// 15 rating points each roll independently, then the list is shuffled and
// held to the 2..4 band as long as enough schools qualify.
func (e *Engine) rollTransferOffers(gs *domain.GameState) {
	player := gs.UserPlayer()
	if player == nil {
		return
	}
	var offers, passed []domain.TransferOffer
	for _, team := range gs.Teams {
		if team.ID == gs.UserTeamID {
			continue
		}
		diff := team.Rating - player.Overall
		if diff < -transferRatingBand || diff > transferRatingBand {
			continue
		}
		offer := domain.TransferOffer{
			TeamID:   team.ID,
			TeamName: team.Name,
			Rating:   team.Rating,
		}
		if rng.Chance(e.src, transferOfferChance) {
			offers = append(offers, offer)
		} else {
			passed = append(passed, offer)
		}
	}
	// top the list back up when the rolls came in under the minimum
	for len(offers) < minTransferOffers && len(passed) > 0 {
		i := e.src.Intn(len(passed))
		offers = append(offers, passed[i])
		passed = append(passed[:i], passed[i+1:]...)
	}
	// shuffle, then cap
	for i := len(offers) - 1; i > 0; i-- {
		j := e.src.Intn(i + 1)
		offers[i], offers[j] = offers[j], offers[i]
	}
	if len(offers) > maxTransferOffers {
		offers = offers[:maxTransferOffers]
	}
	gs.TransferOffers = offers
	if len(offers) == 0 {
		return
	}
	e.newInbox(gs, domain.MsgTransferOffer, "Transfer interest",
		fmt.Sprintf("%d school(s) want %s on their roster next season.", len(offers), player.Name))
}
