package gen

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kofikwar/gridiron/internal/rng"
)

var firstNames = []string{
	"Jamal", "Tyler", "Marcus", "DeShawn", "Caleb", "Austin", "Malik", "Jordan",
	"Trevor", "Isaiah", "Brandon", "Xavier", "Logan", "Darius", "Hunter", "Elijah",
	"Cameron", "Devin", "Wyatt", "Andre", "Blake", "Terrell", "Cole", "Jalen",
	"Mason", "Dominic", "Carter", "Zion", "Gavin", "Tre",
}

var lastNames = []string{
	"Johnson", "Williams", "Smith", "Brown", "Jackson", "Davis", "Harris",
	"Thompson", "Robinson", "Walker", "Carter", "Mitchell", "Turner", "Phillips",
	"Campbell", "Parker", "Evans", "Edwards", "Collins", "Stewart", "Sanchez",
	"Morris", "Rogers", "Reed", "Cook", "Washington", "Bryant", "Griffin",
	"Hayes", "Ford",
}

var coachFirstNames = []string{
	"Bill", "Mike", "Dan", "Steve", "Tom", "Jim", "Bob", "Frank", "Chuck", "Rex",
}

// SchoolNames seeds a fresh league, six programs per class in order. The
// powerhouse schools are on this list and get their roster bias in Team.
var SchoolNames = []string{
	"Valley Central", "Riverside", "Oak Ridge", "Lincoln", "North Hills", "Summit",
	"St. Augustine", "Jefferson", "Central Catholic", "Millbrook", "Harbor View", "Piedmont",
	"Washington Prep", "Fairfield", "Canyon Springs", "West Monroe", "Lakeshore", "East Bakersfield",
}

var titleCaser = cases.Title(language.English)

func randomName(src rng.Source) string {
	return firstNames[src.Intn(len(firstNames))] + " " + lastNames[src.Intn(len(lastNames))]
}

func randomCoachName(src rng.Source) string {
	return "Coach " + coachFirstNames[src.Intn(len(coachFirstNames))] + " " + lastNames[src.Intn(len(lastNames))]
}

// NormalizeName title-cases a user supplied name override.
func NormalizeName(name string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
}
