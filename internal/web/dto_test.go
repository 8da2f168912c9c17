package web

import (
	"testing"

	"github.com/kofikwar/gridiron/internal/domain"
)

func TestNewCareerRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     newCareerRequest
		wantErr bool
	}{
		{
			name: "coach mode needs nothing else",
			req:  newCareerRequest{Mode: "coach"},
		},
		{
			name: "player mode fully specified",
			req:  newCareerRequest{Mode: "player", PlayerName: "Jamal Carter", Position: "QB"},
		},
		{
			name:    "player mode without a name",
			req:     newCareerRequest{Mode: "player", Position: "QB"},
			wantErr: true,
		},
		{
			name:    "player mode with a bogus position",
			req:     newCareerRequest{Mode: "player", PlayerName: "Jamal Carter", Position: "GK"},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			req:     newCareerRequest{Mode: "spectator"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToStateSummarizesUserTeam(t *testing.T) {
	gs := &domain.GameState{
		Mode:   domain.ModeCoach,
		Season: 1,
		Week:   3,
	}
	resp := toState(gs)
	if resp.Phase != "regular season" {
		t.Fatalf("phase = %q, want regular season", resp.Phase)
	}
	if resp.UserTeam != nil {
		t.Fatal("no user team yet, summary must be nil")
	}
}
