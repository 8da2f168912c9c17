package domain

import "testing"

func TestPhaseForWeek(t *testing.T) {
	tests := []struct {
		name string
		week int
		want Phase
	}{
		{name: "opening week", week: 1, want: PhaseRegular},
		{name: "mid season", week: 6, want: PhaseRegular},
		{name: "last regular week", week: 10, want: PhaseRegular},
		{name: "quarterfinals", week: 11, want: PhaseQuarterfinals},
		{name: "semifinals", week: 12, want: PhaseSemifinals},
		{name: "championship", week: 13, want: PhaseChampionship},
		{name: "toc semifinal", week: 14, want: PhaseTOCSemi},
		{name: "toc final", week: 15, want: PhaseTOCFinal},
		{name: "awards", week: 16, want: PhaseAwards},
		{name: "training", week: 17, want: PhaseTraining},
		{name: "recruiting", week: 18, want: PhaseRecruiting},
		{name: "past season end", week: 19, want: PhaseRollover},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhaseForWeek(tt.week); got != tt.want {
				t.Errorf("PhaseForWeek(%d) = %v, want %v", tt.week, got, tt.want)
			}
		})
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name string
		attr Attributes
		want int
	}{
		{
			name: "uniform attributes",
			attr: Attributes{Speed: 80, Strength: 80, Stamina: 80, Tackle: 80, Catch: 80, Pass: 80, Block: 80, Consistency: 80, Potential: 80},
			want: 80,
		},
		{
			name: "floor everywhere",
			attr: Attributes{Speed: 40, Strength: 40, Stamina: 40, Tackle: 40, Catch: 40, Pass: 40, Block: 40, Consistency: 40, Potential: 40},
			want: 40,
		},
		{
			name: "consistency weighs double",
			attr: Attributes{Speed: 50, Strength: 50, Stamina: 50, Tackle: 50, Catch: 50, Pass: 50, Block: 50, Consistency: 90, Potential: 50},
			want: 58,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.Overall(); got != tt.want {
				t.Errorf("Overall() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(120, 0, 100); got != 100 {
		t.Errorf("Clamp(120) = %d, want 100", got)
	}
	if got := Clamp(-3, 0, 100); got != 0 {
		t.Errorf("Clamp(-3) = %d, want 0", got)
	}
	if got := Clamp(55, 0, 100); got != 55 {
		t.Errorf("Clamp(55) = %d, want 55", got)
	}
}
