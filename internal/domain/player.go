package domain

import (
	"math"

	"github.com/google/uuid"
)

type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR"
	TE Position = "TE"
	OL Position = "OL"
	DL Position = "DL"
	LB Position = "LB"
	CB Position = "CB"
	S  Position = "S"
	K  Position = "K"
)

// OffensePositions and DefensePositions list the units used when box score
// stats are distributed.
var (
	OffensePositions = []Position{QB, RB, WR, TE, OL, K}
	DefensePositions = []Position{DL, LB, CB, S}
	AllPositions     = []Position{QB, RB, WR, TE, OL, DL, LB, CB, S, K}
)

func (p Position) Defensive() bool {
	for _, d := range DefensePositions {
		if p == d {
			return true
		}
	}
	return false
}

type ClassYear int

const (
	Freshman ClassYear = iota
	Sophomore
	Junior
	Senior
)

func (y ClassYear) String() string {
	switch y {
	case Freshman:
		return "FR"
	case Sophomore:
		return "SO"
	case Junior:
		return "JR"
	case Senior:
		return "SR"
	}
	return "??"
}

// Next returns the following class year. Seniors have no next year, callers
// are expected to graduate them instead.
func (y ClassYear) Next() ClassYear {
	if y >= Senior {
		return Senior
	}
	return y + 1
}

type Tier string

const (
	Varsity Tier = "varsity"
	JV      Tier = "jv"
)

type Trait string

const (
	TraitClutch     Trait = "clutch"
	TraitWorkhorse  Trait = "workhorse"
	TraitHotHead    Trait = "hothead"
	TraitFilmJunkie Trait = "film junkie"
	TraitNaturalCap Trait = "natural captain"
)

// Attributes are the raw player skills. Overall is never stored here, it is
// derived through Overall().
type Attributes struct {
	Speed       int `json:"speed"`
	Strength    int `json:"strength"`
	Stamina     int `json:"stamina"`
	Tackle      int `json:"tackle"`
	Catch       int `json:"catch"`
	Pass        int `json:"pass"`
	Block       int `json:"block"`
	Consistency int `json:"consistency"`
	Potential   int `json:"potential"`
}

// Overall computes the weighted overall rating. Potential counts toward the
// rating even though it never shows on the field.
func (a Attributes) Overall() int {
	v := 0.15*float64(a.Speed) +
		0.10*float64(a.Strength) +
		0.05*float64(a.Stamina) +
		0.10*float64(a.Tackle) +
		0.10*float64(a.Catch) +
		0.10*float64(a.Pass) +
		0.10*float64(a.Block) +
		0.20*float64(a.Consistency) +
		0.10*float64(a.Potential)
	return int(math.Round(v))
}

// StatLine is one accumulator scope of player statistics.
type StatLine struct {
	Games         int `json:"games"`
	PassYards     int `json:"passYards"`
	PassTDs       int `json:"passTDs"`
	RushYards     int `json:"rushYards"`
	RushTDs       int `json:"rushTDs"`
	Receptions    int `json:"receptions"`
	RecYards      int `json:"recYards"`
	RecTDs        int `json:"recTDs"`
	Tackles       int `json:"tackles"`
	Sacks         int `json:"sacks"`
	Interceptions int `json:"interceptions"`
	FieldGoals    int `json:"fieldGoals"`
}

func (s *StatLine) Add(d StatLine) {
	s.Games += d.Games
	s.PassYards += d.PassYards
	s.PassTDs += d.PassTDs
	s.RushYards += d.RushYards
	s.RushTDs += d.RushTDs
	s.Receptions += d.Receptions
	s.RecYards += d.RecYards
	s.RecTDs += d.RecTDs
	s.Tackles += d.Tackles
	s.Sacks += d.Sacks
	s.Interceptions += d.Interceptions
	s.FieldGoals += d.FieldGoals
}

func (s StatLine) TDs() int {
	return s.PassTDs + s.RushTDs + s.RecTDs
}

type Player struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Position Position   `json:"position"`
	Year     ClassYear  `json:"year"`
	Attr     Attributes `json:"attr"`
	Overall  int        `json:"overall"`
	Traits   []Trait    `json:"traits,omitempty"`

	Tier       Tier `json:"tier"`
	DepthOrder int  `json:"depthOrder"`

	Season     StatLine `json:"season"`
	SeasonJV   StatLine `json:"seasonJV"`
	Career     StatLine `json:"career"`
	UserCareer StatLine `json:"userCareer"`

	InjuryWeeks     int `json:"injuryWeeks"`
	SuspensionWeeks int `json:"suspensionWeeks"`
	Stamina         int `json:"stamina"`
	Morale          int `json:"morale"`
	Academics       int `json:"academics"`

	UserControlled bool `json:"userControlled"`
	XP             int  `json:"xp"`
	XPToLevel      int  `json:"xpToLevel"`
	SkillPoints    int  `json:"skillPoints"`
}

// RecomputeOverall must be called after every attribute mutation. The stored
// Overall field exists only so serialized state carries it, it is never the
// source of truth.
func (p *Player) RecomputeOverall() {
	p.Overall = p.Attr.Overall()
}

func (p *Player) Available() bool {
	return p.InjuryWeeks == 0 && p.SuspensionWeeks == 0
}

func (p *Player) HasTrait(t Trait) bool {
	for _, have := range p.Traits {
		if have == t {
			return true
		}
	}
	return false
}

// Clamp bounds v into [lo, hi]. Used for every bounded scalar update
// (chemistry, prestige, morale, attributes).
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
