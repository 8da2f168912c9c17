// Package service owns the game state. Every mutation runs through one mutex
// so handlers and the notifier never observe a half-applied week.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kofikwar/gridiron/internal/cache/mem"
	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/gen"
	"github.com/kofikwar/gridiron/internal/narrative"
	"github.com/kofikwar/gridiron/internal/playcall"
	"github.com/kofikwar/gridiron/internal/rng"
	"github.com/kofikwar/gridiron/internal/roster"
	"github.com/kofikwar/gridiron/internal/schedule"
	"github.com/kofikwar/gridiron/internal/season"
	"github.com/kofikwar/gridiron/internal/storage"
)

var (
	ErrNoGame         = errors.New("no game in progress")
	ErrCareerOver     = errors.New("career is over")
	ErrNotFound       = errors.New("not found")
	ErrNotEnoughFunds = errors.New("not enough funds")
	ErrLocked         = errors.New("feature is locked")
	ErrBadRequest     = errors.New("bad request")
)

// UnlockCheats is the persistent flag earned by winning the tournament of
// champions. It survives deleting the save.
const UnlockCheats = "cheats"

const (
	startingFunds    = 1000
	recruitPoolSize  = 8
	maxFacilityLevel = 5
)

// Notifier relays fresh user inbox messages to an external channel. Nil is
// fine, relaying is best effort.
type Notifier interface {
	Notify(msg domain.InboxMessage)
}

type GameService struct {
	mu       sync.Mutex
	state    *domain.GameState
	engine   *season.Engine
	store    storage.GameStorage
	rankings *mem.Cache
	notifier Notifier
	resolver playcall.Resolver
	src      rng.Source
	log      *logrus.Entry
}

func New(engine *season.Engine, store storage.GameStorage, rankings *mem.Cache, notifier Notifier, src rng.Source, log *logrus.Logger) *GameService {
	return &GameService{
		engine:   engine,
		store:    store,
		rankings: rankings,
		notifier: notifier,
		resolver: &playcall.DeltaResolver{Src: src},
		src:      src,
		log:      log.WithField("name", "service"),
	}
}

// NewCareer bootstraps a fresh league and drops any game in progress. In
// player mode a user entity is generated onto the chosen school's roster.
func (s *GameService) NewCareer(mode domain.Mode, school, playerName string, pos domain.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs := &domain.GameState{
		Mode:     mode,
		Season:   1,
		Week:     1,
		Rivals:   map[uuid.UUID]uuid.UUID{},
		Brackets: map[domain.Class]*domain.Bracket{},
		Funds:    startingFunds,
	}

	perClass := len(gen.SchoolNames) / len(domain.Classes)
	for i, name := range gen.SchoolNames {
		class := domain.Classes[i/perClass]
		gs.Teams = append(gs.Teams, gen.Team(s.src, uuid.New(), name, class))
	}
	// rivalries pair neighbors inside each class
	for i := 0; i+1 < len(gs.Teams); i += 2 {
		a, b := gs.Teams[i], gs.Teams[i+1]
		if a.Class != b.Class {
			continue
		}
		gs.Rivals[a.ID] = b.ID
		gs.Rivals[b.ID] = a.ID
	}

	gs.UserTeamID = gs.Teams[0].ID
	school = gen.NormalizeName(school)
	for _, t := range gs.Teams {
		if t.Name == school {
			gs.UserTeamID = t.ID
			break
		}
	}

	if mode == domain.ModePlayer {
		p := gen.Player(s.src, pos, domain.Freshman, playerName)
		p.UserControlled = true
		gs.UserPlayerID = p.ID
		team := gs.TeamByID(gs.UserTeamID)
		team.Roster = append(team.Roster, p)
	}

	for _, team := range gs.Teams {
		roster.AssignTiers(team.Roster)
		roster.Recompute(team)
	}
	gs.VarsitySchedule, gs.JVSchedule = schedule.Generate(s.src, gs.Teams, gs.Rivals)
	for i := 0; i < recruitPoolSize; i++ {
		gs.Recruits = append(gs.Recruits, gen.Recruit(s.src))
	}
	gs.Sponsor = gen.SponsorDeal(s.src, gs.UserTeam().Prestige)

	s.state = gs
	s.refreshRankings()
	s.log.WithField("mode", mode).Info("new career started")
	return nil
}

// AdvanceWeek runs one engine tick, then autosaves, refreshes the poll cache
// and relays new inbox mail.
func (s *GameService) AdvanceWeek(ctx context.Context) (*season.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoGame
	}
	if s.state.CareerOver {
		return nil, ErrCareerOver
	}
	before := len(s.state.Inbox)
	note := s.engine.AdvanceWeek(ctx, s.state)
	s.afterMutation(before)
	return note, nil
}

// SimToOffseason fast-forwards to the awards week (or the end of a finished
// career).
func (s *GameService) SimToOffseason(ctx context.Context) (*season.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoGame
	}
	if s.state.CareerOver {
		return nil, ErrCareerOver
	}
	before := len(s.state.Inbox)
	note := s.engine.AdvanceToOffseason(ctx, s.state)
	s.afterMutation(before)
	return note, nil
}

func (s *GameService) afterMutation(inboxBefore int) {
	s.refreshRankings()
	s.relayInbox(inboxBefore)
	s.checkUnlocks()
	if err := s.store.Save(s.state); err != nil {
		s.log.WithError(err).Error("autosave failed")
	}
}

// Snapshot returns an independent deep copy of the current state.
func (s *GameService) Snapshot() (*domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoGame
	}
	data, err := json.Marshal(s.state)
	if err != nil {
		return nil, fmt.Errorf("copy game state: %w", err)
	}
	var out domain.GameState
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("copy game state: %w", err)
	}
	return &out, nil
}

func (s *GameService) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoGame
	}
	return s.store.Save(s.state)
}

func (s *GameService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs, err := s.store.Load()
	if err != nil {
		return err
	}
	s.state = gs
	s.refreshRankings()
	return nil
}

func (s *GameService) DeleteSave() error {
	return s.store.Delete()
}

// TrainPlayer forwards to the engine's training operation.
func (s *GameService) TrainPlayer(playerID uuid.UUID, attr string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return false, ErrNoGame
	}
	ok := s.engine.TrainPlayer(s.state, playerID, attr)
	if ok {
		s.refreshUserTeam()
	}
	return ok, nil
}

// refreshUserTeam refreshes depth and rating after a roster mutation. Tier
// assignment stays untouched in season so engine promotions survive.
func (s *GameService) refreshUserTeam() {
	team := s.state.UserTeam()
	if team == nil {
		return
	}
	roster.ComputeDepthChart(team)
	team.Rating = roster.ComputeTeamRating(team.Roster)
}

// SpendSkillPoint burns one banked skill point on the user entity's named
// attribute.
func (s *GameService) SpendSkillPoint(attr string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return false, ErrNoGame
	}
	ok := s.engine.SpendSkillPoint(s.state, attr)
	if ok {
		s.refreshUserTeam()
	}
	return ok, nil
}

// ScoutOpponent returns a scouting report on any other team in the league.
func (s *GameService) ScoutOpponent(ctx context.Context, teamID uuid.UUID) (narrative.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return narrative.Report{}, ErrNoGame
	}
	team := s.state.TeamByID(teamID)
	if team == nil {
		return narrative.Report{}, ErrNotFound
	}
	return s.engine.ScoutTeam(ctx, team), nil
}

// SignRecruit spends funds to lock a recruit in; they join as a freshman at
// the next rollover.
func (s *GameService) SignRecruit(recruitID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoGame
	}
	for i := range s.state.Recruits {
		r := &s.state.Recruits[i]
		if r.ID != recruitID {
			continue
		}
		if r.Signed {
			return nil
		}
		if s.state.Funds < r.Cost {
			return ErrNotEnoughFunds
		}
		s.state.Funds -= r.Cost
		r.Signed = true
		s.log.WithField("recruit", r.Name).Info("recruit signed")
		return nil
	}
	return ErrNotFound
}

// UpgradeFacility raises one facility level. Cost scales with the next level.
func (s *GameService) UpgradeFacility(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoGame
	}
	var level *int
	switch name {
	case "coaching":
		level = &s.state.Facilities.Coaching
	case "training":
		level = &s.state.Facilities.Training
	case "academics":
		level = &s.state.Facilities.Academics
	default:
		return fmt.Errorf("%w: unknown facility %q", ErrBadRequest, name)
	}
	if *level >= maxFacilityLevel {
		return fmt.Errorf("%w: facility maxed out", ErrBadRequest)
	}
	cost := (*level + 1) * 500
	if s.state.Funds < cost {
		return ErrNotEnoughFunds
	}
	s.state.Funds -= cost
	*level++
	return nil
}

// AcceptTransfer moves the user entity to an offering school during the
// offseason. The offer list is consumed either way.
func (s *GameService) AcceptTransfer(teamID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoGame
	}
	if s.state.Mode != domain.ModePlayer || !s.state.Offseason {
		return fmt.Errorf("%w: transfers only happen in the player-mode offseason", ErrBadRequest)
	}
	var offer *domain.TransferOffer
	for i := range s.state.TransferOffers {
		if s.state.TransferOffers[i].TeamID == teamID {
			offer = &s.state.TransferOffers[i]
			break
		}
	}
	if offer == nil {
		return ErrNotFound
	}
	player := s.state.UserPlayer()
	from := s.state.UserTeam()
	to := s.state.TeamByID(teamID)
	if player == nil || from == nil || to == nil {
		return ErrNotFound
	}

	kept := from.Roster[:0]
	for _, p := range from.Roster {
		if p.ID != player.ID {
			kept = append(kept, p)
		}
	}
	from.Roster = kept
	to.Roster = append(to.Roster, player)
	s.state.UserTeamID = to.ID
	for _, team := range []*domain.Team{from, to} {
		roster.AssignTiers(team.Roster)
		roster.Recompute(team)
	}
	s.state.TransferOffers = nil
	s.state.PushInbox(domain.InboxMessage{
		ID:      uuid.New(),
		Type:    domain.MsgTransferOffer,
		Subject: "Welcome to " + to.Name,
		Body:    fmt.Sprintf("%s has transferred to %s.", player.Name, to.Name),
		Season:  s.state.Season,
		Week:    s.state.Week,
	})
	return nil
}

// SetCheats applies cheat toggles. The toggles are earned: they stay locked
// until the tournament of champions has been won at least once.
func (s *GameService) SetCheats(c domain.Cheats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoGame
	}
	unlocked, err := s.store.IsUnlocked(UnlockCheats)
	if err != nil {
		return err
	}
	if !unlocked {
		return ErrLocked
	}
	s.state.Cheats = c
	return nil
}

func (s *GameService) CheatsUnlocked() (bool, error) {
	return s.store.IsUnlocked(UnlockCheats)
}

func (s *GameService) MarkInboxRead(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return ErrNoGame
	}
	for i := range s.state.Inbox {
		if s.state.Inbox[i].ID == id {
			s.state.Inbox[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

// Rankings serves the cached poll.
func (s *GameService) Rankings() ([]mem.RankingEntry, error) {
	if entries, ok := s.rankings.Get(); ok {
		return entries, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, ErrNoGame
	}
	s.refreshRankings()
	entries, _ := s.rankings.Get()
	return entries, nil
}

// refreshRankings rebuilds the poll cache. Movement is measured against the
// previous cache contents. Callers hold the mutex.
func (s *GameService) refreshRankings() {
	previous := map[uuid.UUID]int{}
	if old, ok := s.rankings.Get(); ok {
		for _, e := range old {
			previous[e.TeamID] = e.Rank
		}
	}
	entries := make([]mem.RankingEntry, 0, len(s.state.Rankings))
	for i, id := range s.state.Rankings {
		team := s.state.TeamByID(id)
		if team == nil {
			continue
		}
		rank := i + 1
		movement := 0
		if prev, ok := previous[id]; ok {
			movement = prev - rank
		}
		entries = append(entries, mem.RankingEntry{
			Rank:     rank,
			TeamID:   id,
			Name:     team.Name,
			Class:    string(team.Class),
			Wins:     team.Wins,
			Losses:   team.Losses,
			Rating:   team.Rating,
			Movement: movement,
		})
	}
	s.rankings.Update(entries)
}

// relayInbox pushes messages added since the last mutation to the notifier.
func (s *GameService) relayInbox(before int) {
	if s.notifier == nil {
		return
	}
	fresh := len(s.state.Inbox) - before
	if fresh <= 0 {
		return
	}
	if fresh > len(s.state.Inbox) {
		fresh = len(s.state.Inbox)
	}
	// newest first, relay in chronological order
	for i := fresh - 1; i >= 0; i-- {
		s.notifier.Notify(s.state.Inbox[i])
	}
}

// StartGame opens this week's user matchup for interactive play.
func (s *GameService) StartGame() (*domain.ActiveGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoGame
	}
	return s.engine.StartInteractiveGame(s.state)
}

// CallPlay runs one play of the open interactive game. When the game ends
// it is folded back into the season immediately.
func (s *GameService) CallPlay(ctx context.Context, call playcall.Call) (*domain.ActiveGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, ErrNoGame
	}
	ag := s.state.ActiveGame
	if ag == nil {
		return nil, season.ErrNoActiveGame
	}
	if err := s.resolver.Resolve(ag, call); err != nil {
		return nil, err
	}
	if ag.Over() {
		before := len(s.state.Inbox)
		if err := s.engine.ApplyInteractiveResult(ctx, s.state); err != nil {
			return nil, err
		}
		s.afterMutation(before)
	}
	return ag, nil
}

// checkUnlocks persists flags earned by the current state.
func (s *GameService) checkUnlocks() {
	t := s.state.Tournament
	if t == nil || t.Winner == uuid.Nil || t.Winner != s.state.UserTeamID {
		return
	}
	if err := s.store.Unlock(UnlockCheats); err != nil {
		s.log.WithError(err).Error("persisting unlock failed")
	}
}
