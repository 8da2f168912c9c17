package domain

import "github.com/google/uuid"

// Matchup is a single bracket node. A node is decided only once a winner id
// has been recorded; recording is guarded so a node never flips.
type Matchup struct {
	Team1  uuid.UUID `json:"team1"`
	Team2  uuid.UUID `json:"team2"`
	Winner uuid.UUID `json:"winner"`
}

func (m *Matchup) Ready() bool {
	return m.Team1 != uuid.Nil && m.Team2 != uuid.Nil
}

// Decided reports whether nothing is left to play in the node. A node with no
// participants at all counts as decided with no winner.
func (m *Matchup) Decided() bool {
	if m.Team1 == uuid.Nil && m.Team2 == uuid.Nil {
		return true
	}
	return m.Winner != uuid.Nil
}

func (m *Matchup) Has(id uuid.UUID) bool {
	return id != uuid.Nil && (m.Team1 == id || m.Team2 == id)
}

// Bracket is the per-class single elimination playoff: four quarterfinals,
// two semifinals, one final.
type Bracket struct {
	Class         Class     `json:"class"`
	Quarterfinals []Matchup `json:"quarterfinals"`
	Semifinals    []Matchup `json:"semifinals"`
	Final         *Matchup  `json:"final,omitempty"`
	Champion      uuid.UUID `json:"champion"`
}

func (b *Bracket) Seeded() bool {
	return b != nil && len(b.Quarterfinals) > 0
}

func roundComplete(ms []Matchup) bool {
	if len(ms) == 0 {
		return false
	}
	for i := range ms {
		if !ms[i].Decided() {
			return false
		}
	}
	return true
}

func (b *Bracket) QuarterfinalsComplete() bool { return roundComplete(b.Quarterfinals) }
func (b *Bracket) SemifinalsComplete() bool    { return roundComplete(b.Semifinals) }

func (b *Bracket) FinalComplete() bool {
	return b.Final != nil && b.Final.Decided()
}

// ChampionEntry records a class champion for tournament of champions seeding.
type ChampionEntry struct {
	TeamID uuid.UUID `json:"teamId"`
	Class  Class     `json:"class"`
	Rating int       `json:"rating"`
}

// Tournament is the cross-class bracket among class champions. With three
// champions the top rated one receives a bye into the final.
type Tournament struct {
	Champions []ChampionEntry `json:"champions"`
	ByeTeam   uuid.UUID       `json:"byeTeam"`
	Semifinal *Matchup        `json:"semifinal,omitempty"`
	Final     *Matchup        `json:"final,omitempty"`
	Winner    uuid.UUID       `json:"winner"`
}

func (t *Tournament) Seeded() bool {
	return t != nil && (t.Semifinal != nil || t.Final != nil)
}
