// Package narrative is the boundary to an optional text-generation
// collaborator. The engine only ever needs "given a structured summary, maybe
// a short string"; absence or failure of the collaborator always degrades to
// deterministic templated phrasing.
package narrative

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Summary is the structured payload handed to the collaborator.
type Summary struct {
	WinnerName  string
	LoserName   string
	WinnerScore int
	LoserScore  int
	Rivalry     bool
	Upset       bool
}

// Report is the strict three-field scouting answer.
type Report struct {
	Strength   string `json:"strength"`
	Weakness   string `json:"weakness"`
	Suggestion string `json:"suggestion"`
}

// Client is implemented by the external service adapter. Both methods are
// best effort; any error makes the caller fall back.
type Client interface {
	Recap(ctx context.Context, s Summary) (string, error)
	Scout(ctx context.Context, teamName string) (Report, error)
}

// NopClient always reports no text so callers use the fallback. It is the
// default wiring when no collaborator is configured.
type NopClient struct{}

var _ Client = NopClient{}

var ErrNoText = fmt.Errorf("narrative: no text available")

func (NopClient) Recap(context.Context, Summary) (string, error) {
	return "", ErrNoText
}

func (NopClient) Scout(context.Context, string) (Report, error) {
	return Report{}, ErrNoText
}

// Generator wraps a Client with a bounded timeout and the deterministic
// fallback, so a week advance always completes.
type Generator struct {
	client  Client
	timeout time.Duration
	log     *logrus.Entry
	warned  bool
}

func NewGenerator(client Client, timeout time.Duration, log *logrus.Entry) *Generator {
	if client == nil {
		client = NopClient{}
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Generator{client: client, timeout: timeout, log: log}
}

// Recap returns collaborator text when available, the templated fallback
// otherwise. Collaborator failures are logged at most once per generator.
func (g *Generator) Recap(ctx context.Context, s Summary) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.Recap(ctx, s)
	if err != nil || text == "" {
		if err != nil && !g.warned {
			g.warned = true
			if g.log != nil {
				g.log.WithError(err).Warn("narrative collaborator unavailable, using templated recaps")
			}
		}
		return Fallback(s)
	}
	return text
}

// Scout forwards a scouting request under the same bounded timeout. There is
// no templated fallback here; callers derive their own report from roster
// data when the collaborator has nothing.
func (g *Generator) Scout(ctx context.Context, teamName string) (Report, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.client.Scout(ctx, teamName)
}

// Fallback picks deterministic phrasing by score differential and rivalry
// buckets.
func Fallback(s Summary) string {
	margin := s.WinnerScore - s.LoserScore
	switch {
	case s.Upset:
		return fmt.Sprintf("Stunner: %s upsets %s %d-%d.", s.WinnerName, s.LoserName, s.WinnerScore, s.LoserScore)
	case s.Rivalry && margin <= 7:
		return fmt.Sprintf("%s edges rival %s in a classic, %d-%d.", s.WinnerName, s.LoserName, s.WinnerScore, s.LoserScore)
	case s.Rivalry:
		return fmt.Sprintf("%s owns the rivalry night, rolling %s %d-%d.", s.WinnerName, s.LoserName, s.WinnerScore, s.LoserScore)
	case margin >= 28:
		return fmt.Sprintf("%s blows out %s %d-%d.", s.WinnerName, s.LoserName, s.WinnerScore, s.LoserScore)
	case margin <= 3:
		return fmt.Sprintf("%s survives %s %d-%d.", s.WinnerName, s.LoserName, s.WinnerScore, s.LoserScore)
	}
	return fmt.Sprintf("%s beats %s %d-%d.", s.WinnerName, s.LoserName, s.WinnerScore, s.LoserScore)
}
