// Package gen produces players, teams, recruits, coaches and sponsors from
// parameterized random distributions. Generators are pure: same source state
// in, same entities out, no shared state.
package gen

import (
	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/rng"
)

const (
	attrMin = 40
	attrMax = 99
)

// attrRange is the sampling window for one attribute at one position.
type attrRange struct {
	lo, hi int
}

type positionProfile struct {
	speed, strength, stamina, tackle, catch, pass, block, consistency attrRange
}

var profiles = map[domain.Position]positionProfile{
	domain.QB: {speed: attrRange{55, 80}, strength: attrRange{50, 75}, stamina: attrRange{60, 90}, tackle: attrRange{40, 55}, catch: attrRange{45, 65}, pass: attrRange{65, 95}, block: attrRange{40, 55}, consistency: attrRange{55, 90}},
	domain.RB: {speed: attrRange{70, 95}, strength: attrRange{60, 85}, stamina: attrRange{65, 90}, tackle: attrRange{45, 65}, catch: attrRange{55, 80}, pass: attrRange{40, 50}, block: attrRange{45, 65}, consistency: attrRange{55, 85}},
	domain.WR: {speed: attrRange{72, 97}, strength: attrRange{45, 70}, stamina: attrRange{60, 88}, tackle: attrRange{40, 55}, catch: attrRange{68, 95}, pass: attrRange{40, 50}, block: attrRange{42, 60}, consistency: attrRange{52, 85}},
	domain.TE: {speed: attrRange{58, 80}, strength: attrRange{62, 86}, stamina: attrRange{60, 85}, tackle: attrRange{48, 66}, catch: attrRange{60, 86}, pass: attrRange{40, 48}, block: attrRange{58, 82}, consistency: attrRange{52, 82}},
	domain.OL: {speed: attrRange{42, 60}, strength: attrRange{70, 96}, stamina: attrRange{58, 84}, tackle: attrRange{50, 70}, catch: attrRange{40, 48}, pass: attrRange{40, 45}, block: attrRange{70, 96}, consistency: attrRange{55, 85}},
	domain.DL: {speed: attrRange{52, 75}, strength: attrRange{70, 95}, stamina: attrRange{58, 84}, tackle: attrRange{65, 92}, catch: attrRange{40, 50}, pass: attrRange{40, 45}, block: attrRange{50, 70}, consistency: attrRange{52, 84}},
	domain.LB: {speed: attrRange{62, 85}, strength: attrRange{64, 88}, stamina: attrRange{62, 88}, tackle: attrRange{68, 94}, catch: attrRange{44, 60}, pass: attrRange{40, 45}, block: attrRange{46, 62}, consistency: attrRange{54, 85}},
	domain.CB: {speed: attrRange{72, 96}, strength: attrRange{45, 66}, stamina: attrRange{62, 88}, tackle: attrRange{55, 78}, catch: attrRange{55, 80}, pass: attrRange{40, 45}, block: attrRange{40, 52}, consistency: attrRange{52, 84}},
	domain.S:  {speed: attrRange{68, 92}, strength: attrRange{52, 74}, stamina: attrRange{62, 88}, tackle: attrRange{60, 85}, catch: attrRange{52, 76}, pass: attrRange{40, 45}, block: attrRange{40, 52}, consistency: attrRange{52, 84}},
	domain.K:  {speed: attrRange{45, 65}, strength: attrRange{55, 80}, stamina: attrRange{50, 75}, tackle: attrRange{40, 50}, catch: attrRange{40, 50}, pass: attrRange{40, 50}, block: attrRange{40, 50}, consistency: attrRange{60, 95}},
}

// yearModifier skews freshmen low and seniors slightly high.
func yearModifier(y domain.ClassYear) int {
	switch y {
	case domain.Freshman:
		return -6
	case domain.Sophomore:
		return -3
	case domain.Junior:
		return 0
	}
	return 2
}

func sample(src rng.Source, r attrRange, mod int) int {
	return domain.Clamp(rng.Between(src, r.lo, r.hi)+mod, attrMin, attrMax)
}

var traitTable = []struct {
	trait  domain.Trait
	chance float64
}{
	{domain.TraitClutch, 0.08},
	{domain.TraitWorkhorse, 0.10},
	{domain.TraitHotHead, 0.07},
	{domain.TraitFilmJunkie, 0.08},
	{domain.TraitNaturalCap, 0.05},
}

// Player generates one player for a position and class year. nameOverride may
// be empty to draw from the name pool.
func Player(src rng.Source, pos domain.Position, year domain.ClassYear, nameOverride string) *domain.Player {
	profile, ok := profiles[pos]
	if !ok {
		profile = profiles[domain.RB]
	}
	mod := yearModifier(year)
	attr := domain.Attributes{
		Speed:       sample(src, profile.speed, mod),
		Strength:    sample(src, profile.strength, mod),
		Stamina:     sample(src, profile.stamina, mod),
		Tackle:      sample(src, profile.tackle, mod),
		Catch:       sample(src, profile.catch, mod),
		Pass:        sample(src, profile.pass, mod),
		Block:       sample(src, profile.block, mod),
		Consistency: sample(src, profile.consistency, mod),
		Potential:   rng.Between(src, attrMin, attrMax),
	}

	name := nameOverride
	if name == "" {
		name = randomName(src)
	} else {
		name = NormalizeName(name)
	}

	p := &domain.Player{
		ID:        uuid.New(),
		Name:      name,
		Position:  pos,
		Year:      year,
		Attr:      attr,
		Stamina:   100,
		Morale:    rng.Between(src, 60, 95),
		Academics: rng.Between(src, 40, 100),
		XPToLevel: 100,
	}
	for _, entry := range traitTable {
		if rng.Chance(src, entry.chance) {
			p.Traits = append(p.Traits, entry.trait)
		}
	}
	p.RecomputeOverall()
	return p
}

// rosterTemplate is the position-count template each generated team fills.
// 60 players total: 44 make varsity, the rest start on JV.
var rosterTemplate = []struct {
	pos   domain.Position
	count int
}{
	{domain.QB, 4},
	{domain.RB, 6},
	{domain.WR, 8},
	{domain.TE, 4},
	{domain.OL, 10},
	{domain.DL, 8},
	{domain.LB, 8},
	{domain.CB, 6},
	{domain.S, 4},
	{domain.K, 2},
}

// Powerhouses get an upward attribute bias when their roster is generated.
var Powerhouses = map[string]bool{
	"Valley Central":  true,
	"St. Augustine":   true,
	"Washington Prep": true,
}

func randomYear(src rng.Source) domain.ClassYear {
	return domain.ClassYear(src.Intn(int(domain.Senior) + 1))
}

// Team builds a full roster from the position template. Tier and depth
// assignment is left to the roster package, ratings to its caller.
func Team(src rng.Source, id uuid.UUID, name string, class domain.Class) *domain.Team {
	t := &domain.Team{
		ID:        id,
		Name:      name,
		Class:     class,
		Coach:     Coach(src),
		Prestige:  rng.Between(src, 30, 80),
		Chemistry: rng.Between(src, 40, 85),
	}
	boost := 0
	if Powerhouses[name] {
		boost = 6
		t.Prestige = domain.Clamp(t.Prestige+15, 0, 100)
	}
	for _, slot := range rosterTemplate {
		for i := 0; i < slot.count; i++ {
			p := Player(src, slot.pos, randomYear(src), "")
			if boost > 0 {
				p.Attr.Speed = domain.Clamp(p.Attr.Speed+boost, attrMin, attrMax)
				p.Attr.Strength = domain.Clamp(p.Attr.Strength+boost, attrMin, attrMax)
				p.Attr.Consistency = domain.Clamp(p.Attr.Consistency+boost, attrMin, attrMax)
				p.RecomputeOverall()
			}
			t.Roster = append(t.Roster, p)
		}
	}
	return t
}

func Coach(src rng.Source) domain.Coach {
	return domain.Coach{
		Name:   randomCoachName(src),
		Rating: rng.Between(src, 45, 95),
	}
}

// Recruit rolls a recruiting pool entry. Star level drives cost and the
// quality of the player it converts into at signing.
func Recruit(src rng.Source) domain.Recruit {
	pos := domain.AllPositions[src.Intn(len(domain.AllPositions))]
	stars := 1 + src.Intn(5)
	return domain.Recruit{
		ID:       uuid.New(),
		Name:     randomName(src),
		Position: pos,
		Stars:    stars,
		Interest: rng.Between(src, 10, 90),
		Cost:     stars * 500,
	}
}

// RecruitPlayer converts a signed recruit into an entry-level player. Star
// quality lifts the sampled attributes.
func RecruitPlayer(src rng.Source, r domain.Recruit) *domain.Player {
	p := Player(src, r.Position, domain.Freshman, r.Name)
	lift := (r.Stars - 1) * 3
	p.Attr.Speed = domain.Clamp(p.Attr.Speed+lift, attrMin, attrMax)
	p.Attr.Consistency = domain.Clamp(p.Attr.Consistency+lift, attrMin, attrMax)
	p.Attr.Potential = domain.Clamp(p.Attr.Potential+lift*2, attrMin, attrMax)
	p.RecomputeOverall()
	return p
}

var sponsorNames = []string{
	"Hometown Hardware", "Riverside Diner", "Big Mike's Autos",
	"Sunrise Dairy", "Stateline Sporting Goods", "Crossroads Pharmacy",
}

func SponsorDeal(src rng.Source, prestige int) domain.Sponsor {
	return domain.Sponsor{
		Name:      sponsorNames[src.Intn(len(sponsorNames))],
		WinPayout: 200 + prestige*5,
	}
}
