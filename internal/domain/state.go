package domain

import (
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeCoach  Mode = "coach"
	ModePlayer Mode = "player"
)

type MessageType string

const (
	MsgPromotion     MessageType = "promotion"
	MsgDemotion      MessageType = "demotion"
	MsgInjury        MessageType = "injury"
	MsgSuspension    MessageType = "suspension"
	MsgTrophy        MessageType = "trophy"
	MsgTransferOffer MessageType = "transfer-offer"
	MsgRecruiting    MessageType = "recruiting"
	MsgGeneral       MessageType = "general"
)

type InboxMessage struct {
	ID        uuid.UUID   `json:"id"`
	Type      MessageType `json:"type"`
	Subject   string      `json:"subject"`
	Body      string      `json:"body"`
	Season    int         `json:"season"`
	Week      int         `json:"week"`
	CreatedAt time.Time   `json:"createdAt"`
	Read      bool        `json:"read"`
}

type NewsArticle struct {
	ID       uuid.UUID `json:"id"`
	Headline string    `json:"headline"`
	Body     string    `json:"body"`
	Tag      string    `json:"tag,omitempty"`
	Season   int       `json:"season"`
	Week     int       `json:"week"`
}

type Recruit struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position Position  `json:"position"`
	Stars    int       `json:"stars"`
	Interest int       `json:"interest"`
	Cost     int       `json:"cost"`
	Signed   bool      `json:"signed"`
}

type Sponsor struct {
	Name      string `json:"name"`
	WinPayout int    `json:"winPayout"`
}

type TransferOffer struct {
	TeamID   uuid.UUID `json:"teamId"`
	TeamName string    `json:"teamName"`
	Rating   int       `json:"rating"`
}

type Facilities struct {
	Coaching  int `json:"coaching"`
	Training  int `json:"training"`
	Academics int `json:"academics"`
}

// Cheats are the optional override toggles. They bypass normal simulation
// rules but every path through them must still produce consistent state.
type Cheats struct {
	AutoStart     bool `json:"autoStart"`
	ForceWin      bool `json:"forceWin"`
	EliteStats    bool `json:"eliteStats"`
	NoSuspensions bool `json:"noSuspensions"`
}

// CareerSummary is produced when the user-controlled player graduates and the
// campaign ends.
type CareerSummary struct {
	PlayerName    string   `json:"playerName"`
	Seasons       int      `json:"seasons"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Championships int      `json:"championships"`
	Stats         StatLine `json:"stats"`
	Trophies      []Trophy `json:"trophies"`
}

// GameState is the root aggregate. It is exclusively owned by the single
// control loop in the service layer; nothing mutates it concurrently.
type GameState struct {
	Mode   Mode `json:"mode"`
	Season int  `json:"season"`
	Week   int  `json:"week"`

	Teams        []*Team                 `json:"teams"`
	Rivals       map[uuid.UUID]uuid.UUID `json:"rivals"`
	UserTeamID   uuid.UUID               `json:"userTeamId"`
	UserPlayerID uuid.UUID               `json:"userPlayerId"`

	VarsitySchedule Schedule `json:"varsitySchedule"`
	JVSchedule      Schedule `json:"jvSchedule"`

	Brackets   map[Class]*Bracket `json:"brackets"`
	Tournament *Tournament        `json:"tournament,omitempty"`
	Rankings   []uuid.UUID        `json:"rankings"`

	Awards   *SeasonAwards `json:"awards,omitempty"`
	JVAwards *SeasonAwards `json:"jvAwards,omitempty"`

	Funds      int        `json:"funds"`
	Facilities Facilities `json:"facilities"`
	Sponsor    Sponsor    `json:"sponsor"`
	Recruits   []Recruit  `json:"recruits"`

	Inbox []InboxMessage `json:"inbox"`
	News  []NewsArticle  `json:"news"`

	TransferOffers []TransferOffer `json:"transferOffers,omitempty"`
	TrophyCase     []Trophy        `json:"trophyCase"`

	Offseason         bool `json:"offseason"`
	Eliminated        bool `json:"eliminated"`
	RecruitingStarted bool `json:"recruitingStarted"`

	CareerOver    bool           `json:"careerOver"`
	CareerSummary *CareerSummary `json:"careerSummary,omitempty"`

	ActiveGame *ActiveGame `json:"activeGame,omitempty"`

	Cheats Cheats `json:"cheats"`
}

func (gs *GameState) TeamByID(id uuid.UUID) *Team {
	for _, t := range gs.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (gs *GameState) UserTeam() *Team {
	return gs.TeamByID(gs.UserTeamID)
}

func (gs *GameState) UserPlayer() *Player {
	team := gs.UserTeam()
	if team == nil || gs.UserPlayerID == uuid.Nil {
		return nil
	}
	return team.PlayerByID(gs.UserPlayerID)
}

func (gs *GameState) TeamsInClass(c Class) []*Team {
	var out []*Team
	for _, t := range gs.Teams {
		if t.Class == c {
			out = append(out, t)
		}
	}
	return out
}

func (gs *GameState) Phase() Phase {
	return PhaseForWeek(gs.Week)
}

const (
	maxNews  = 50
	maxInbox = 100
)

// PushNews prepends an article and trims the feed to its cap.
func (gs *GameState) PushNews(a NewsArticle) {
	gs.News = append([]NewsArticle{a}, gs.News...)
	if len(gs.News) > maxNews {
		gs.News = gs.News[:maxNews]
	}
}

func (gs *GameState) PushInbox(m InboxMessage) {
	gs.Inbox = append([]InboxMessage{m}, gs.Inbox...)
	if len(gs.Inbox) > maxInbox {
		gs.Inbox = gs.Inbox[:maxInbox]
	}
}

func (gs *GameState) ScheduleFor(tier Tier) Schedule {
	if tier == JV {
		return gs.JVSchedule
	}
	return gs.VarsitySchedule
}
