package domain

import "github.com/google/uuid"

// Class is the league stratification teams are grouped into for scheduling,
// rankings and playoffs.
type Class string

const (
	ClassA   Class = "A"
	ClassAA  Class = "AA"
	ClassAAA Class = "AAA"
)

var Classes = []Class{ClassA, ClassAA, ClassAAA}

type Coach struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type Team struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Class Class     `json:"class"`

	Roster []*Player `json:"roster"`
	Coach  Coach     `json:"coach"`

	// Rating is derived from the top varsity contributors, see the roster
	// package. Stored only so serialized state carries it.
	Rating int `json:"rating"`

	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	ClassWins   int `json:"classWins"`
	ClassLosses int `json:"classLosses"`

	Prestige      int `json:"prestige"`
	Chemistry     int `json:"chemistry"`
	Championships int `json:"championships"`
}

func (t *Team) PlayerByID(id uuid.UUID) *Player {
	for _, p := range t.Roster {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayersAt returns the roster players of one position and tier, in depth
// order if depth has been computed.
func (t *Team) PlayersAt(pos Position, tier Tier) []*Player {
	var out []*Player
	for _, p := range t.Roster {
		if p.Position == pos && p.Tier == tier {
			out = append(out, p)
		}
	}
	return out
}

func (t *Team) TierPlayers(tier Tier) []*Player {
	var out []*Player
	for _, p := range t.Roster {
		if p.Tier == tier {
			out = append(out, p)
		}
	}
	return out
}

func (t *Team) Record() (int, int) {
	return t.Wins, t.Losses
}
