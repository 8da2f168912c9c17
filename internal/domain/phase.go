package domain

// Phase is the season state machine position, derived purely from the week
// number. Nothing stores a phase, everything maps through PhaseForWeek.
type Phase int

const (
	PhaseRegular Phase = iota
	PhaseQuarterfinals
	PhaseSemifinals
	PhaseChampionship
	PhaseTOCSemi
	PhaseTOCFinal
	PhaseAwards
	PhaseTraining
	PhaseRecruiting
	PhaseRollover
)

const (
	RegularSeasonWeeks = 10
	WeekQuarterfinals  = 11
	WeekSemifinals     = 12
	WeekChampionship   = 13
	WeekTOCSemi        = 14
	WeekTOCFinal       = 15
	WeekAwards         = 16
	WeekTraining       = 17
	WeekRecruiting     = 18
)

func PhaseForWeek(week int) Phase {
	switch {
	case week <= RegularSeasonWeeks:
		return PhaseRegular
	case week == WeekQuarterfinals:
		return PhaseQuarterfinals
	case week == WeekSemifinals:
		return PhaseSemifinals
	case week == WeekChampionship:
		return PhaseChampionship
	case week == WeekTOCSemi:
		return PhaseTOCSemi
	case week == WeekTOCFinal:
		return PhaseTOCFinal
	case week == WeekAwards:
		return PhaseAwards
	case week == WeekTraining:
		return PhaseTraining
	case week == WeekRecruiting:
		return PhaseRecruiting
	}
	return PhaseRollover
}

func (p Phase) String() string {
	switch p {
	case PhaseRegular:
		return "regular season"
	case PhaseQuarterfinals:
		return "quarterfinals"
	case PhaseSemifinals:
		return "semifinals"
	case PhaseChampionship:
		return "championship"
	case PhaseTOCSemi:
		return "toc semifinal"
	case PhaseTOCFinal:
		return "toc final"
	case PhaseAwards:
		return "awards"
	case PhaseTraining:
		return "training"
	case PhaseRecruiting:
		return "recruiting"
	}
	return "rollover"
}

// Playoff reports whether games are still being played in this phase.
func (p Phase) Playoff() bool {
	switch p {
	case PhaseQuarterfinals, PhaseSemifinals, PhaseChampionship, PhaseTOCSemi, PhaseTOCFinal:
		return true
	}
	return false
}
