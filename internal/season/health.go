package season

import (
	"fmt"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/rng"
)

// tickHealth runs once per advanced week: injuries and suspensions count
// down, stamina recovers fully between games.
func (e *Engine) tickHealth(gs *domain.GameState) {
	for _, team := range gs.Teams {
		for _, p := range team.Roster {
			if p.InjuryWeeks > 0 {
				p.InjuryWeeks--
			}
			if p.SuspensionWeeks > 0 {
				p.SuspensionWeeks--
			}
			p.Stamina = 100
		}
	}
}

const (
	academicRiskFloor = 50
	academicBaseRisk  = 0.15
)

// academicChecks suspends struggling students. Academic facility upgrades
// shave the risk, and the no-suspensions cheat disables the check outright.
func (e *Engine) academicChecks(gs *domain.GameState) {
	if gs.Cheats.NoSuspensions {
		return
	}
	for _, team := range gs.Teams {
		risk := academicBaseRisk
		if team.ID == gs.UserTeamID {
			risk -= float64(gs.Facilities.Academics) * 0.02
			if risk < 0 {
				risk = 0
			}
		}
		for _, p := range team.Roster {
			if p.Academics >= academicRiskFloor || p.SuspensionWeeks > 0 {
				continue
			}
			if !rng.Chance(e.src, risk) {
				continue
			}
			p.SuspensionWeeks = rng.Between(e.src, 1, 2)
			if team.ID == gs.UserTeamID {
				e.newInbox(gs, domain.MsgSuspension, "Academic suspension",
					fmt.Sprintf("%s is suspended for %d week(s) over failing grades.", p.Name, p.SuspensionWeeks))
			}
		}
	}
}
