package season

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/bracket"
	"github.com/kofikwar/gridiron/internal/domain"
)

// runBracketSteps fires the playoff transitions keyed on the week the engine
// just entered. Rounds that are still partially decided block silently and
// complete on a later call.
func (e *Engine) runBracketSteps(gs *domain.GameState) {
	switch gs.Week {
	case domain.WeekQuarterfinals:
		e.seedPlayoffs(gs)
	case domain.WeekSemifinals, domain.WeekChampionship:
		e.advanceClassRounds(gs)
	case domain.WeekTOCSemi:
		e.crownClassChampions(gs)
	case domain.WeekTOCFinal:
		// a final left undecided crowns late, so crowning retries here
		e.crownClassChampions(gs)
		e.advanceTournament(gs)
	case domain.WeekAwards:
		e.crownClassChampions(gs)
		e.finishTournament(gs)
	}
}

// seedPlayoffs builds each class bracket from final standings and schedules
// the quarterfinals. A user team that missed the cut is flagged eliminated.
func (e *Engine) seedPlayoffs(gs *domain.GameState) {
	if gs.Brackets == nil {
		gs.Brackets = make(map[domain.Class]*domain.Bracket)
	}
	userIn := false
	for _, class := range domain.Classes {
		teams := gs.TeamsInClass(class)
		if len(teams) < 2 {
			continue
		}
		standings := bracket.Standings(teams)
		if len(standings) > bracket.BracketSize {
			standings = standings[:bracket.BracketSize]
		}
		b := bracket.Seed(class, standings)
		gs.Brackets[class] = b

		for i := range b.Quarterfinals {
			m := &b.Quarterfinals[i]
			if m.Ready() && !m.Decided() {
				e.scheduleBracketGame(gs, m, domain.WeekQuarterfinals, domain.RoundQuarterfinal)
			}
			if m.Has(gs.UserTeamID) {
				userIn = true
			}
		}
	}
	if gs.UserTeamID != uuid.Nil && !userIn {
		gs.Eliminated = true
		e.newInbox(gs, domain.MsgGeneral, "Season over",
			"The team missed the playoffs. You can simulate ahead to the offseason.")
	}
	e.newArticle(gs, "playoffs", "Playoff brackets are set",
		"Eight teams per class will battle for the championships.")
}

// advanceClassRounds advances each class bracket one round when the prior
// round is fully decided, and schedules the new games for the current week.
func (e *Engine) advanceClassRounds(gs *domain.GameState) {
	for _, class := range domain.Classes {
		b := gs.Brackets[class]
		if b == nil {
			continue
		}
		switch gs.Week {
		case domain.WeekSemifinals:
			if bracket.AdvanceQuarterfinals(b) {
				for i := range b.Semifinals {
					m := &b.Semifinals[i]
					if m.Ready() && !m.Decided() {
						e.scheduleBracketGame(gs, m, gs.Week, domain.RoundSemifinal)
					}
				}
			}
		case domain.WeekChampionship:
			if bracket.AdvanceSemifinals(b) && b.Final.Ready() && !b.Final.Decided() {
				e.scheduleBracketGame(gs, b.Final, gs.Week, domain.RoundChampionship)
			}
		}
		e.flagUserElimination(gs, b)
	}
}

// crownClassChampions records champions from decided finals, hands out the
// class trophies and seeds the tournament of champions. Calling it again is
// safe: honors go out once, at the moment a champion is first crowned.
func (e *Engine) crownClassChampions(gs *domain.GameState) {
	var champions []domain.ChampionEntry
	for _, class := range domain.Classes {
		b := gs.Brackets[class]
		if b == nil {
			continue
		}
		crowned := bracket.CrownChampion(b)
		if b.Champion == uuid.Nil {
			continue
		}
		team := gs.TeamByID(b.Champion)
		if team == nil {
			e.log.Errorf("champion team %s not found for class %s", b.Champion, class)
			continue
		}
		champions = append(champions, domain.ChampionEntry{
			TeamID: team.ID,
			Class:  class,
			Rating: team.Rating,
		})
		if !crowned {
			continue
		}
		team.Championships++
		e.newArticle(gs, "championship",
			fmt.Sprintf("%s wins the class %s title", team.Name, class),
			fmt.Sprintf("%s closes out the class %s bracket as champions.", team.Name, class))
		if team.ID == gs.UserTeamID {
			gs.TrophyCase = append(gs.TrophyCase, domain.Trophy{
				Season: gs.Season,
				Label:  fmt.Sprintf("Class %s Champions", class),
			})
			e.newInbox(gs, domain.MsgTrophy, "Champions!",
				fmt.Sprintf("Class %s champions. The trophy case grows.", class))
		}
	}
	if len(champions) == 0 || gs.Tournament != nil {
		return
	}

	gs.Tournament = bracket.SeedTournament(champions)
	if gs.Tournament.Semifinal != nil {
		e.scheduleBracketGame(gs, gs.Tournament.Semifinal, gs.Week, domain.RoundTOCSemi)
	} else if gs.Tournament.Final != nil {
		// two champions skip straight to a final the following week
		e.scheduleBracketGame(gs, gs.Tournament.Final, gs.Week+1, domain.RoundTOCFinal)
	}
	e.flagUserTournamentElimination(gs)
}

// advanceTournament seeds the cross-class final once the semifinal has a
// winner and schedules it.
func (e *Engine) advanceTournament(gs *domain.GameState) {
	t := gs.Tournament
	if t == nil || t.Final != nil {
		return
	}
	if bracket.AdvanceTournament(t) && t.Final != nil && !t.Final.Decided() {
		e.scheduleBracketGame(gs, t.Final, domain.WeekTOCFinal, domain.RoundTOCFinal)
	}
	e.flagUserTournamentElimination(gs)
}

// finishTournament records the overall champion after the final played.
func (e *Engine) finishTournament(gs *domain.GameState) {
	t := gs.Tournament
	if t == nil {
		return
	}
	bracket.AdvanceTournament(t)
	if t.Winner == uuid.Nil {
		return
	}
	team := gs.TeamByID(t.Winner)
	if team == nil {
		return
	}
	e.newArticle(gs, "championship",
		fmt.Sprintf("%s are the overall champions", team.Name),
		fmt.Sprintf("%s takes the tournament of champions.", team.Name))
	if team.ID == gs.UserTeamID {
		gs.TrophyCase = append(gs.TrophyCase, domain.Trophy{
			Season: gs.Season,
			Label:  "Tournament of Champions",
		})
		e.newInbox(gs, domain.MsgTrophy, "Overall champions!",
			"The team stands alone at the top of all classes.")
	}
}

// scheduleBracketGame writes a playoff matchup into both varsity schedules.
func (e *Engine) scheduleBracketGame(gs *domain.GameState, m *domain.Matchup, week int, round domain.PlayoffRound) {
	teamA := gs.TeamByID(m.Team1)
	teamB := gs.TeamByID(m.Team2)
	if teamA == nil || teamB == nil {
		e.log.Errorf("bracket matchup references missing team, not scheduling (%s vs %s)", m.Team1, m.Team2)
		return
	}
	if gs.VarsitySchedule.GameAt(teamA.ID, week) != nil || gs.VarsitySchedule.GameAt(teamB.ID, week) != nil {
		return
	}
	rivalry := gs.Rivals[teamA.ID] == teamB.ID || gs.Rivals[teamB.ID] == teamA.ID
	gs.VarsitySchedule.Append(teamA.ID, &domain.Game{
		ID:         uuid.New(),
		Week:       week,
		OpponentID: teamB.ID,
		Home:       true,
		Rivalry:    rivalry,
		Round:      round,
	})
	gs.VarsitySchedule.Append(teamB.ID, &domain.Game{
		ID:         uuid.New(),
		Week:       week,
		OpponentID: teamA.ID,
		Home:       false,
		Rivalry:    rivalry,
		Round:      round,
	})
}

// recordBracketResult routes a playoff game result into the right bracket
// node. Recording is idempotent so replays are harmless.
func (e *Engine) recordBracketResult(gs *domain.GameState, round domain.PlayoffRound, winner, loser uuid.UUID) {
	switch round {
	case domain.RoundTOCSemi:
		if gs.Tournament != nil {
			bracket.RecordFinalWinner(gs.Tournament.Semifinal, winner, loser)
		}
	case domain.RoundTOCFinal:
		if gs.Tournament != nil {
			bracket.RecordFinalWinner(gs.Tournament.Final, winner, loser)
		}
	default:
		for _, b := range gs.Brackets {
			switch round {
			case domain.RoundQuarterfinal:
				if bracket.RecordWinner(b.Quarterfinals, winner, loser) {
					return
				}
			case domain.RoundSemifinal:
				if bracket.RecordWinner(b.Semifinals, winner, loser) {
					return
				}
			case domain.RoundChampionship:
				if bracket.RecordFinalWinner(b.Final, winner, loser) {
					return
				}
			}
		}
	}
}

// flagUserElimination marks the user team eliminated once its deepest
// bracket appearance is a decided loss.
func (e *Engine) flagUserElimination(gs *domain.GameState, b *domain.Bracket) {
	if gs.UserTeamID == uuid.Nil || gs.Eliminated || !b.Seeded() {
		return
	}
	userTeam := gs.TeamByID(gs.UserTeamID)
	if userTeam == nil || userTeam.Class != b.Class {
		return
	}
	rounds := [][]domain.Matchup{b.Quarterfinals, b.Semifinals}
	if b.Final != nil {
		rounds = append(rounds, []domain.Matchup{*b.Final})
	}
	alive := false
	for _, round := range rounds {
		for _, m := range round {
			if !m.Has(gs.UserTeamID) {
				continue
			}
			// later rounds overwrite, so the deepest appearance decides
			alive = !m.Decided() || m.Winner == gs.UserTeamID
		}
	}
	if !alive {
		gs.Eliminated = true
		e.newInbox(gs, domain.MsgGeneral, "Playoff run over",
			"The team has been eliminated. You can simulate ahead to the offseason.")
	}
}

func (e *Engine) flagUserTournamentElimination(gs *domain.GameState) {
	t := gs.Tournament
	if gs.UserTeamID == uuid.Nil || gs.Eliminated || t == nil {
		return
	}
	for _, m := range []*domain.Matchup{t.Semifinal, t.Final} {
		if m != nil && m.Has(gs.UserTeamID) && m.Decided() && m.Winner != gs.UserTeamID {
			gs.Eliminated = true
			e.newInbox(gs, domain.MsgGeneral, "Tournament run over",
				"The team fell in the tournament of champions.")
		}
	}
}
