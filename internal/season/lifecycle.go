package season

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/gen"
	"github.com/kofikwar/gridiron/internal/roster"
	"github.com/kofikwar/gridiron/internal/schedule"
)

const recruitPoolSize = 8

// Morale bands that move the offseason development curve.
const (
	highMorale = 80
	lowMorale  = 30
)

// PrepareNextSeason rolls the whole league over: players progress, seniors
// graduate, signed recruits arrive, records and brackets reset and a fresh
// schedule is drawn. In player mode a graduating user entity ends the
// campaign instead.
func (e *Engine) PrepareNextSeason(gs *domain.GameState) *Notification {
	if gs.Mode == domain.ModePlayer {
		if p := gs.UserPlayer(); p != nil && p.Year == domain.Senior {
			return e.endCareer(gs, p)
		}
	}

	for _, team := range gs.Teams {
		e.progressRoster(team)
		team.Roster = graduate(team.Roster)
		for _, p := range team.Roster {
			p.Year = p.Year.Next()
			p.Season = domain.StatLine{}
			p.SeasonJV = domain.StatLine{}
			p.InjuryWeeks = 0
			p.SuspensionWeeks = 0
			p.Stamina = 100
		}
	}

	e.signRecruits(gs)

	for _, team := range gs.Teams {
		team.Wins, team.Losses = 0, 0
		team.ClassWins, team.ClassLosses = 0, 0
		roster.AssignTiers(team.Roster)
		roster.Recompute(team)
	}

	gs.Season++
	gs.Week = 1
	gs.Offseason = false
	gs.Eliminated = false
	gs.RecruitingStarted = false
	gs.Brackets = map[domain.Class]*domain.Bracket{}
	gs.Tournament = nil
	gs.Awards = nil
	gs.JVAwards = nil
	gs.TransferOffers = nil
	gs.ActiveGame = nil

	gs.VarsitySchedule, gs.JVSchedule = schedule.Generate(e.src, gs.Teams, gs.Rivals)
	e.recomputeRankings(gs)
	e.refreshRecruitPool(gs)
	if user := gs.UserTeam(); user != nil {
		gs.Sponsor = gen.SponsorDeal(e.src, user.Prestige)
	}

	if gs.Mode == domain.ModePlayer {
		if p := gs.UserPlayer(); p != nil && p.Year == domain.Junior && !gs.RecruitingStarted {
			gs.RecruitingStarted = true
			e.newInbox(gs, domain.MsgRecruiting, "College interest",
				fmt.Sprintf("College scouts have started asking about %s.", p.Name))
		}
	}

	e.log.WithField("season", gs.Season).Info("season rolled over")
	e.newArticle(gs, "season", fmt.Sprintf("Season %d kicks off", gs.Season),
		"A new season is underway across the league.")
	return &Notification{
		Type:    domain.MsgGeneral,
		Message: fmt.Sprintf("Season %d has begun.", gs.Season),
	}
}

// progressRoster applies the offseason development pass. High-potential
// players grow faster, morale from the season shifts the curve and everyone
// gets a little noise.
func (e *Engine) progressRoster(team *domain.Team) {
	for _, p := range team.Roster {
		base := (p.Attr.Potential - 50) / 15
		if p.Morale >= highMorale {
			base++
		} else if p.Morale <= lowMorale {
			base--
		}
		bump := func(v int) int {
			delta := base + e.src.Intn(3) - 1
			return domain.Clamp(v+delta, 40, 99)
		}
		p.Attr.Speed = bump(p.Attr.Speed)
		p.Attr.Strength = bump(p.Attr.Strength)
		p.Attr.Stamina = bump(p.Attr.Stamina)
		p.Attr.Tackle = bump(p.Attr.Tackle)
		p.Attr.Catch = bump(p.Attr.Catch)
		p.Attr.Pass = bump(p.Attr.Pass)
		p.Attr.Block = bump(p.Attr.Block)
		p.Attr.Consistency = bump(p.Attr.Consistency)
		p.RecomputeOverall()
	}
}

func graduate(players []*domain.Player) []*domain.Player {
	kept := players[:0]
	for _, p := range players {
		if p.Year != domain.Senior {
			kept = append(kept, p)
		}
	}
	return kept
}

// signRecruits converts the user team's signed recruits into freshmen and
// draws a fresh pool for the coming cycle.
func (e *Engine) signRecruits(gs *domain.GameState) {
	user := gs.UserTeam()
	if user == nil {
		return
	}
	for _, r := range gs.Recruits {
		if !r.Signed {
			continue
		}
		user.Roster = append(user.Roster, gen.RecruitPlayer(e.src, r))
	}
}

func (e *Engine) refreshRecruitPool(gs *domain.GameState) {
	pool := make([]domain.Recruit, 0, recruitPoolSize)
	for i := 0; i < recruitPoolSize; i++ {
		pool = append(pool, gen.Recruit(e.src))
	}
	gs.Recruits = pool
}

// endCareer closes a player-mode campaign at the user entity's graduation.
func (e *Engine) endCareer(gs *domain.GameState, p *domain.Player) *Notification {
	team := gs.UserTeam()
	summary := &domain.CareerSummary{
		PlayerName: p.Name,
		Seasons:    gs.Season,
		Stats:      p.UserCareer,
		Trophies:   gs.TrophyCase,
	}
	if team != nil {
		summary.Wins = team.Wins
		summary.Losses = team.Losses
		summary.Championships = team.Championships
	}
	gs.CareerOver = true
	gs.CareerSummary = summary
	e.log.WithField("player", p.Name).Info("career over")
	return &Notification{
		Type:    domain.MsgGeneral,
		Message: fmt.Sprintf("%s has graduated. Career complete.", p.Name),
	}
}

// TrainPlayer raises one attribute of a user-team player during the training
// week. Preconditions that do not hold reject the call silently: callers
// learn nothing changed from the false return.
func (e *Engine) TrainPlayer(gs *domain.GameState, playerID uuid.UUID, attr string) bool {
	if gs.Phase() != domain.PhaseTraining {
		return false
	}
	team := gs.UserTeam()
	if team == nil {
		return false
	}
	p := team.PlayerByID(playerID)
	if p == nil {
		return false
	}

	gain := 1 + gs.Facilities.Training/3
	return raiseAttribute(p, attr, gain)
}

// SpendSkillPoint converts one banked skill point of the user entity into a
// permanent attribute raise. Unlike training it is not tied to a phase; the
// points were earned on the field and spend whenever.
func (e *Engine) SpendSkillPoint(gs *domain.GameState, attr string) bool {
	p := gs.UserPlayer()
	if p == nil || p.SkillPoints == 0 {
		return false
	}
	if !raiseAttribute(p, attr, 1) {
		return false
	}
	p.SkillPoints--
	return true
}

// raiseAttribute bumps one named attribute, clamped to the 40..99 band, and
// refreshes the derived overall. An unknown name or a maxed attribute is a
// silent no-op.
func raiseAttribute(p *domain.Player, attr string, gain int) bool {
	apply := func(v *int) bool {
		if *v >= 99 {
			return false
		}
		*v = domain.Clamp(*v+gain, 40, 99)
		return true
	}

	var ok bool
	switch attr {
	case "speed":
		ok = apply(&p.Attr.Speed)
	case "strength":
		ok = apply(&p.Attr.Strength)
	case "stamina":
		ok = apply(&p.Attr.Stamina)
	case "tackle":
		ok = apply(&p.Attr.Tackle)
	case "catch":
		ok = apply(&p.Attr.Catch)
	case "pass":
		ok = apply(&p.Attr.Pass)
	case "block":
		ok = apply(&p.Attr.Block)
	case "consistency":
		ok = apply(&p.Attr.Consistency)
	default:
		return false
	}
	if ok {
		p.RecomputeOverall()
	}
	return ok
}
