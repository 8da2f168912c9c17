package domain

import "github.com/google/uuid"

// ActiveGame is the state of an interactively played game. The season engine
// never drives it down-to-down; a playcall resolver mutates it and the engine
// only accepts the terminal box score.
type ActiveGame struct {
	GameID     uuid.UUID `json:"gameId"`
	OpponentID uuid.UUID `json:"opponentId"`

	// UserPlayerID is who the resolver credits play yardage to. Nil in
	// coach mode; stats then come from the post-game synthesis alone.
	UserPlayerID uuid.UUID `json:"userPlayerId"`

	Quarter    int  `json:"quarter"`
	Clock      int  `json:"clock"` // seconds remaining in the quarter
	Down       int  `json:"down"`
	Distance   int  `json:"distance"`
	BallOn     int  `json:"ballOn"` // yards from own goal line, 0..100
	Possession bool `json:"possession"`

	TeamScore int `json:"teamScore"`
	OppScore  int `json:"oppScore"`

	PlayLog []string `json:"playLog"`

	Stats map[uuid.UUID]StatLine `json:"stats"`
}

func (a *ActiveGame) Over() bool {
	return a.Quarter > 4
}
