package mastery

import "testing"

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Level
	}{
		{"advanced", []float64{90, 92, 95}, LevelAdvanced},
		{"intermediate", []float64{72, 68, 70}, LevelIntermediate},
		{"beginner", []float64{55, 52, 58}, LevelBeginner},
		{"struggling", []float64{30, 40, 35}, LevelStruggling},
		{"single score", []float64{85}, LevelAdvanced},
		{"two scores", []float64{60, 58}, LevelBeginner},
		{"boundary 85", []float64{85, 85, 85}, LevelAdvanced},
		{"boundary just under 85", []float64{84, 85, 85}, LevelIntermediate},
		{"boundary 70", []float64{70, 70, 70}, LevelIntermediate},
		{"boundary 50", []float64{50, 50, 50}, LevelBeginner},
		{"just under 50", []float64{49, 50, 50}, LevelStruggling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.scores); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}

func TestClassify_OnlyTrailingWindowMatters(t *testing.T) {
	base := []float64{90, 92, 95}
	got := Classify(base)

	// Prepending history must not change the result as long as the
	// last three scores are unchanged.
	padded := append([]float64{10, 20, 5, 95}, base...)
	if got2 := Classify(padded); got2 != got {
		t.Errorf("Classify with prior history = %s, want %s", got2, got)
	}
}

func TestClassify_Empty(t *testing.T) {
	if got := Classify(nil); got != LevelNone {
		t.Errorf("Classify(nil) = %q, want LevelNone", got)
	}
}

func TestScoreTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   Trend
	}{
		{"latest above first", []float64{50, 90, 70}, TrendImproving},
		{"latest below first", []float64{80, 95, 75}, TrendNeedsAttention},
		{"latest equals first", []float64{70, 80, 70}, TrendNeedsAttention},
		{"single score", []float64{70}, TrendNeedsAttention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreTrend(tt.scores); got != tt.want {
				t.Errorf("ScoreTrend(%v) = %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}
