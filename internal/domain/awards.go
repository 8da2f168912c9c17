package domain

import "github.com/google/uuid"

// AwardWinner is a snapshot of the winning player at the time the award was
// computed, not a live reference.
type AwardWinner struct {
	PlayerID uuid.UUID `json:"playerId"`
	Name     string    `json:"name"`
	Position Position  `json:"position"`
	TeamID   uuid.UUID `json:"teamId"`
	TeamName string    `json:"teamName"`
	Stats    StatLine  `json:"stats"`
	Score    float64   `json:"score"`
}

type CoachAward struct {
	CoachName string    `json:"coachName"`
	TeamID    uuid.UUID `json:"teamId"`
	TeamName  string    `json:"teamName"`
	Score     float64   `json:"score"`
}

// SeasonAwards holds one winner slot per category. It is recomputed wholly at
// season end, never incrementally.
type SeasonAwards struct {
	MVP          *AwardWinner `json:"mvp,omitempty"`
	BestQB       *AwardWinner `json:"bestQB,omitempty"`
	BestRB       *AwardWinner `json:"bestRB,omitempty"`
	BestWR       *AwardWinner `json:"bestWR,omitempty"`
	BestDefender *AwardWinner `json:"bestDefender,omitempty"`
	BestOL       *AwardWinner `json:"bestOL,omitempty"`
	BestKicker   *AwardWinner `json:"bestKicker,omitempty"`
	CoachOfYear  *CoachAward  `json:"coachOfYear,omitempty"`
}

type Trophy struct {
	Season int    `json:"season"`
	Label  string `json:"label"`
}
