package web

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/season"
)

type errorResponse struct {
	Error string `json:"error"`
}

type newCareerRequest struct {
	Mode       string `json:"mode"`
	School     string `json:"school"`
	PlayerName string `json:"playerName"`
	Position   string `json:"position"`
}

func (r newCareerRequest) Validate() error {
	switch domain.Mode(r.Mode) {
	case domain.ModeCoach:
	case domain.ModePlayer:
		if r.PlayerName == "" {
			return errors.New("player mode needs a player name")
		}
		if !validPosition(domain.Position(r.Position)) {
			return errors.New("player mode needs a valid position")
		}
	default:
		return errors.New("mode must be coach or player")
	}
	return nil
}

func validPosition(pos domain.Position) bool {
	for _, p := range domain.AllPositions {
		if p == pos {
			return true
		}
	}
	return false
}

type playRequest struct {
	Call string `json:"call"`
}

type trainRequest struct {
	PlayerID  string `json:"playerId"`
	Attribute string `json:"attribute"`
}

type trainResponse struct {
	Trained bool `json:"trained"`
}

type spendSkillRequest struct {
	Attribute string `json:"attribute"`
}

type spendSkillResponse struct {
	Spent bool `json:"spent"`
}

type advanceResponse struct {
	Notification *season.Notification `json:"notification,omitempty"`
}

// stateResponse is the full client-facing state. Rosters and schedules ride
// along unmodified, the rest is summarized.
type stateResponse struct {
	Mode      string            `json:"mode"`
	Season    int               `json:"season"`
	Week      int               `json:"week"`
	Phase     string            `json:"phase"`
	Offseason bool              `json:"offseason"`
	UserTeam  *teamSummary      `json:"userTeam,omitempty"`
	NextGame  *gameSummary      `json:"nextGame,omitempty"`
	State     *domain.GameState `json:"state"`
}

type teamSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Class  string    `json:"class"`
	Wins   int       `json:"wins"`
	Losses int       `json:"losses"`
	Rating int       `json:"rating"`
}

type gameSummary struct {
	Week     int    `json:"week"`
	Opponent string `json:"opponent"`
	Home     bool   `json:"home"`
	Rivalry  bool   `json:"rivalry"`
	Playoff  bool   `json:"playoff"`
}

func toState(gs *domain.GameState) stateResponse {
	resp := stateResponse{
		Mode:      string(gs.Mode),
		Season:    gs.Season,
		Week:      gs.Week,
		Phase:     gs.Phase().String(),
		Offseason: gs.Offseason,
		State:     gs,
	}
	if team := gs.UserTeam(); team != nil {
		resp.UserTeam = &teamSummary{
			ID:     team.ID,
			Name:   team.Name,
			Class:  string(team.Class),
			Wins:   team.Wins,
			Losses: team.Losses,
			Rating: team.Rating,
		}
		resp.NextGame = nextGame(gs, team.ID)
	}
	return resp
}

func nextGame(gs *domain.GameState, teamID uuid.UUID) *gameSummary {
	game := gs.VarsitySchedule.GameAt(teamID, gs.Week)
	if game == nil || game.Resolved() {
		return nil
	}
	opp := gs.TeamByID(game.OpponentID)
	if opp == nil {
		return nil
	}
	return &gameSummary{
		Week:     game.Week,
		Opponent: opp.Name,
		Home:     game.Home,
		Rivalry:  game.Rivalry,
		Playoff:  game.Round != domain.RoundNone,
	}
}

// dashboard is the template model for the landing page.
type dashboard struct {
	Season    int
	Week      int
	Phase     string
	Team      string
	Record    string
	Headlines []string
}

func toDashboard(gs *domain.GameState) dashboard {
	d := dashboard{
		Season: gs.Season,
		Week:   gs.Week,
		Phase:  gs.Phase().String(),
	}
	if team := gs.UserTeam(); team != nil {
		d.Team = team.Name
		d.Record = recordString(team)
	}
	for i, article := range gs.News {
		if i == 5 {
			break
		}
		d.Headlines = append(d.Headlines, article.Headline)
	}
	return d
}

func recordString(t *domain.Team) string {
	return strconv.Itoa(t.Wins) + "-" + strconv.Itoa(t.Losses)
}
