package domain

import "github.com/google/uuid"

type PlayoffRound string

const (
	RoundNone         PlayoffRound = ""
	RoundQuarterfinal PlayoffRound = "quarterfinal"
	RoundSemifinal    PlayoffRound = "semifinal"
	RoundChampionship PlayoffRound = "championship"
	RoundTOCSemi      PlayoffRound = "toc-semifinal"
	RoundTOCFinal     PlayoffRound = "toc-final"
)

// Result is written once when a game resolves and is append-only after that.
// Scores and stat maps are from the owning team's perspective; the opponent's
// schedule entry holds the mirrored copy.
type Result struct {
	TeamScore int                    `json:"teamScore"`
	OppScore  int                    `json:"oppScore"`
	TeamStats map[uuid.UUID]StatLine `json:"teamStats"`
	OppStats  map[uuid.UUID]StatLine `json:"oppStats"`
	Recap     string                 `json:"recap,omitempty"`
	PlayLog   []string               `json:"playLog,omitempty"`
}

func (r *Result) Won() bool {
	return r.TeamScore > r.OppScore
}

type Game struct {
	ID         uuid.UUID    `json:"id"`
	Week       int          `json:"week"`
	OpponentID uuid.UUID    `json:"opponentId"`
	Home       bool         `json:"home"`
	Rivalry    bool         `json:"rivalry"`
	Round      PlayoffRound `json:"round,omitempty"`
	Result     *Result      `json:"result,omitempty"`
}

func (g *Game) Resolved() bool {
	return g != nil && g.Result != nil
}

// Schedule maps a team id to its ordered list of games. Varsity and JV keep
// structurally identical schedules that resolve independently.
type Schedule map[uuid.UUID][]*Game

// GameAt returns the team's game scheduled for a week, or nil.
func (s Schedule) GameAt(teamID uuid.UUID, week int) *Game {
	for _, g := range s[teamID] {
		if g.Week == week {
			return g
		}
	}
	return nil
}

// Append adds a game to a team's list keeping week order.
func (s Schedule) Append(teamID uuid.UUID, g *Game) {
	games := s[teamID]
	i := len(games)
	for i > 0 && games[i-1].Week > g.Week {
		i--
	}
	games = append(games, nil)
	copy(games[i+1:], games[i:])
	games[i] = g
	s[teamID] = games
}
