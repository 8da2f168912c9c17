// Package sim resolves a single game between two teams: final score first,
// then a per-player box score consistent with that score.
package sim

import (
	"math"

	"github.com/google/uuid"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/roster"
	"github.com/kofikwar/gridiron/internal/rng"
)

// Config carries the user-team context a simulation needs: coaching bonus
// from facilities and the cheat toggles that short-circuit normal resolution.
type Config struct {
	UserTeamID   uuid.UUID
	UserPlayerID uuid.UUID
	CoachBonus   int
	Cheats       domain.Cheats
}

// Outcome is the resolved game from team A's perspective.
type Outcome struct {
	ScoreA int
	ScoreB int
	StatsA map[uuid.UUID]domain.StatLine
	StatsB map[uuid.UUID]domain.StatLine
}

const upsetChance = 0.12

// power folds team rating, chemistry and the user coaching bonus into one
// scalar. Chemistry swings the result by up to ±10.
func power(t *domain.Team, cfg Config) float64 {
	p := 2*float64(t.Rating) + float64(t.Chemistry-50)/5
	if t.ID == cfg.UserTeamID {
		p += float64(cfg.CoachBonus)
	}
	return p
}

// Simulate produces a final score and box scores for both sides. tier picks
// which roster level plays.
func Simulate(src rng.Source, teamA, teamB *domain.Team, tier domain.Tier, cfg Config) Outcome {
	pa := power(teamA, cfg)
	pb := power(teamB, cfg)

	scoreA := float64(rng.Between(src, 0, 35))
	scoreB := float64(rng.Between(src, 0, 35))

	// superlinear shift: big rating gaps turn into blowouts
	diff := pa - pb
	shift := math.Pow(math.Abs(diff)/8, 1.6)
	if diff > 0 {
		scoreA += shift
	} else if diff < 0 {
		scoreB += shift
	}

	// occasional extra swing for the underdog
	if rng.Chance(src, upsetChance) {
		swing := float64(rng.Between(src, 7, 21))
		if diff > 0 {
			scoreB += swing
		} else {
			scoreA += swing
		}
	}

	a := int(math.Max(0, math.Round(scoreA)))
	b := int(math.Max(0, math.Round(scoreB)))

	// ties are settled in overtime with a field goal for the stronger side
	if a == b {
		if diff >= 0 {
			a += 3
		} else {
			b += 3
		}
	}

	if cfg.Cheats.ForceWin {
		if teamA.ID == cfg.UserTeamID && a <= b {
			a = b + rng.Between(src, 3, 17)
		} else if teamB.ID == cfg.UserTeamID && b <= a {
			b = a + rng.Between(src, 3, 17)
		}
	}

	out := Outcome{ScoreA: a, ScoreB: b}
	out.StatsA, out.ScoreA = distribute(src, teamA, tier, a, cfg)
	out.StatsB, out.ScoreB = distribute(src, teamB, tier, b, cfg)
	return out
}

// BoxScore splits an externally decided final score into per-player stats.
// The score itself is never changed; a forced user stat line is credited on
// top of whatever the score supports.
func BoxScore(src rng.Source, team *domain.Team, tier domain.Tier, score int, cfg Config) map[uuid.UUID]domain.StatLine {
	stats, _ := distribute(src, team, tier, score, cfg)
	return stats
}

// distribute splits a final score into per-player stats. It may raise the
// score when the elite-stats override forces a bigger user stat line than the
// rolled score supports, so it returns the (possibly adjusted) score.
func distribute(src rng.Source, team *domain.Team, tier domain.Tier, score int, cfg Config) (map[uuid.UUID]domain.StatLine, int) {
	stats := make(map[uuid.UUID]domain.StatLine)

	user := userOn(team, tier, cfg)
	if user != nil && cfg.Cheats.EliteStats {
		line, minScore := eliteLine(src, user.Position)
		if score < minScore {
			score = minScore
		}
		stats[user.ID] = line
	}

	tds := score / 7
	fieldGoals := (score - tds*7) / 3

	passTDs := 0
	for i := 0; i < tds; i++ {
		if rng.Chance(src, 0.55) {
			passTDs++
		}
	}
	rushTDs := tds - passTDs

	totalYards := 90 + tds*48 + src.Intn(130)
	passYards := totalYards * rng.Between(src, 45, 60) / 100
	rushYards := totalYards - passYards

	depth := chart(team, tier)

	// quarterback: all passing plus a slice of the ground game
	if qbs := depth(domain.QB, 1); len(qbs) > 0 {
		qb := qbs[0]
		if _, forced := stats[qb.ID]; !forced {
			qbRush := rushYards * rng.Between(src, 8, 22) / 100
			rushYards -= qbRush
			stats[qb.ID] = domain.StatLine{
				Games:     1,
				PassYards: passYards,
				PassTDs:   passTDs,
				RushYards: qbRush,
			}
		}
	}

	// running backs split the rest 70/30
	if rbs := depth(domain.RB, 2); len(rbs) > 0 {
		shares := []int{rushYards, 0}
		if len(rbs) == 2 {
			shares[0] = rushYards * 70 / 100
			shares[1] = rushYards - shares[0]
		}
		tdLeft := rushTDs
		for i, rb := range rbs {
			if _, forced := stats[rb.ID]; forced {
				continue
			}
			line := domain.StatLine{Games: 1, RushYards: shares[i]}
			for t := 0; t < tdLeft; t++ {
				if i == len(rbs)-1 || rng.Chance(src, 0.7) {
					line.RushTDs++
				}
			}
			tdLeft -= line.RushTDs
			stats[rb.ID] = line
		}
	}

	// receivers split passing yardage by independent random shares
	receivers := append(depth(domain.WR, 3), depth(domain.TE, 1)...)
	if len(receivers) > 0 {
		weights := make([]float64, len(receivers))
		var sum float64
		for i := range receivers {
			weights[i] = 0.2 + src.Float64()
			sum += weights[i]
		}
		tdLeft := passTDs
		for i, wr := range receivers {
			if _, forced := stats[wr.ID]; forced {
				continue
			}
			yards := int(float64(passYards) * weights[i] / sum)
			line := domain.StatLine{
				Games:      1,
				RecYards:   yards,
				Receptions: yards / 12,
			}
			if tdLeft > 0 && (i == len(receivers)-1 || rng.Chance(src, 0.45)) {
				line.RecTDs = 1 + src.Intn(tdLeft)
				tdLeft -= line.RecTDs
			}
			stats[wr.ID] = line
		}
	}

	// kicker
	if ks := depth(domain.K, 1); len(ks) > 0 {
		if _, forced := stats[ks[0].ID]; !forced {
			stats[ks[0].ID] = domain.StatLine{Games: 1, FieldGoals: fieldGoals}
		}
	}

	// defense: totals split uniformly within each unit; a forced user line
	// stays out of the normal distribution entirely
	front := append(depth(domain.DL, 4), depth(domain.LB, 3)...)
	back := append(depth(domain.CB, 2), depth(domain.S, 2)...)
	if user != nil && cfg.Cheats.EliteStats {
		front = exclude(front, user.ID)
		back = exclude(back, user.ID)
	}
	splitDefense(src, stats, front, rng.Between(src, 20, 35), rng.Between(src, 0, 5), 0)
	splitDefense(src, stats, back, rng.Between(src, 10, 22), 0, rng.Between(src, 0, 3))

	return stats, score
}

// splitDefense hands out unit totals one at a time to random eligible
// players. Empty units are skipped silently.
func splitDefense(src rng.Source, stats map[uuid.UUID]domain.StatLine, unit []*domain.Player, tackles, sacks, ints int) {
	if len(unit) == 0 {
		return
	}
	for _, p := range unit {
		line := stats[p.ID]
		line.Games = 1
		stats[p.ID] = line
	}
	for i := 0; i < tackles; i++ {
		p := unit[src.Intn(len(unit))]
		line := stats[p.ID]
		line.Tackles++
		stats[p.ID] = line
	}
	for i := 0; i < sacks; i++ {
		p := unit[src.Intn(len(unit))]
		line := stats[p.ID]
		line.Sacks++
		stats[p.ID] = line
	}
	for i := 0; i < ints; i++ {
		p := unit[src.Intn(len(unit))]
		line := stats[p.ID]
		line.Interceptions++
		stats[p.ID] = line
	}
}

func exclude(players []*domain.Player, id uuid.UUID) []*domain.Player {
	var out []*domain.Player
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func chart(team *domain.Team, tier domain.Tier) func(domain.Position, int) []*domain.Player {
	if tier == domain.Varsity {
		return func(pos domain.Position, n int) []*domain.Player {
			return roster.Starters(team, pos, n)
		}
	}
	return func(pos domain.Position, n int) []*domain.Player {
		players := team.PlayersAt(pos, domain.JV)
		var out []*domain.Player
		for _, p := range players {
			if !p.Available() {
				continue
			}
			out = append(out, p)
			if len(out) == n {
				break
			}
		}
		return out
	}
}

func userOn(team *domain.Team, tier domain.Tier, cfg Config) *domain.Player {
	if team.ID != cfg.UserTeamID || cfg.UserPlayerID == uuid.Nil {
		return nil
	}
	p := team.PlayerByID(cfg.UserPlayerID)
	if p == nil || p.Tier != tier || !p.Available() {
		return nil
	}
	return p
}

// eliteLine is the forced stat line for the elite-stats override, plus the
// minimum team score that keeps it internally consistent.
func eliteLine(src rng.Source, pos domain.Position) (domain.StatLine, int) {
	switch pos {
	case domain.QB:
		tds := rng.Between(src, 4, 6)
		return domain.StatLine{Games: 1, PassYards: rng.Between(src, 350, 480), PassTDs: tds}, tds * 7
	case domain.RB:
		tds := rng.Between(src, 3, 5)
		return domain.StatLine{Games: 1, RushYards: rng.Between(src, 180, 290), RushTDs: tds}, tds * 7
	case domain.WR, domain.TE:
		tds := rng.Between(src, 2, 4)
		yards := rng.Between(src, 140, 240)
		return domain.StatLine{Games: 1, RecYards: yards, Receptions: yards / 11, RecTDs: tds}, tds * 7
	case domain.K:
		fgs := rng.Between(src, 3, 5)
		return domain.StatLine{Games: 1, FieldGoals: fgs}, fgs * 3
	}
	return domain.StatLine{
		Games:         1,
		Tackles:       rng.Between(src, 12, 18),
		Sacks:         rng.Between(src, 2, 4),
		Interceptions: rng.Between(src, 1, 2),
	}, 0
}
