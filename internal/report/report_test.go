package report

import (
	"encoding/json"
	"os"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/mastery"
)

func testClock() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func seededStore(t *testing.T) *learner.Store {
	t.Helper()
	s, err := learner.Open("reporter", learner.Paths{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Now = testClock

	score := func(v float64) *float64 { return &v }
	for _, v := range []float64{88, 90, 95} {
		if err := s.RecordActivity("Go", score(v), 20); err != nil {
			t.Fatal(err)
		}
	}
	for _, v := range []float64{50, 45, 40} {
		if err := s.RecordActivity("SQL", score(v), 10); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestBuild_Sections(t *testing.T) {
	s := seededStore(t)
	r := Build(s.Profile(), s.Progress(), testClock())

	if r.UserID != "reporter" {
		t.Errorf("UserID = %q", r.UserID)
	}
	if r.LearningSummary.TotalTopics != 2 || r.LearningSummary.TotalQuizzesTaken != 6 {
		t.Errorf("summary = %+v, want 2 topics / 6 quizzes", r.LearningSummary)
	}
	// (88+90+95+50+45+40)/6 = 68
	if r.LearningSummary.AverageScore != 68 {
		t.Errorf("AverageScore = %v, want 68", r.LearningSummary.AverageScore)
	}
	if r.LearningSummary.StudyTimeHours != 1.5 {
		t.Errorf("StudyTimeHours = %v, want 1.5", r.LearningSummary.StudyTimeHours)
	}
	if r.LearningSummary.MasteryDistribution[mastery.LevelAdvanced] != 1 ||
		r.LearningSummary.MasteryDistribution[mastery.LevelStruggling] != 1 {
		t.Errorf("distribution = %v", r.LearningSummary.MasteryDistribution)
	}

	if !reflect.DeepEqual(r.PerformanceAnalysis.TopPerformingTopics, []string{"Go"}) {
		t.Errorf("TopPerforming = %v, want [Go]", r.PerformanceAnalysis.TopPerformingTopics)
	}
	if !reflect.DeepEqual(r.PerformanceAnalysis.StrugglingTopics, []string{"SQL"}) {
		t.Errorf("Struggling = %v, want [SQL]", r.PerformanceAnalysis.StrugglingTopics)
	}

	if r.DifficultyProgression.TopicsMastered != 1 || r.DifficultyProgression.TopicsStruggling != 1 {
		t.Errorf("progression = %+v", r.DifficultyProgression)
	}
	if r.TimeAnalysis.ConsistencyRating != mastery.ConsistencyVeryActive {
		t.Errorf("consistency = %s", r.TimeAnalysis.ConsistencyRating)
	}

	if len(r.Achievements) == 0 {
		t.Error("expected achievements for a mastered topic")
	}
	found := false
	for _, rec := range r.Recommendations {
		if rec == "Focus extra attention on: SQL" {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendations missing struggling focus: %v", r.Recommendations)
	}
}

func TestBuild_FixedKeySet(t *testing.T) {
	s := seededStore(t)
	r := Build(s.Profile(), s.Progress(), testClock())

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	var keys []string
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	want := []string{
		"achievements", "difficulty_progression", "generated_at",
		"learning_summary", "performance_analysis", "recommendations",
		"time_analysis", "user_id",
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("top-level keys = %v, want %v", keys, want)
	}
}

func TestBuild_EmptyLedger(t *testing.T) {
	s, err := learner.Open("fresh", learner.Paths{Root: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	r := Build(s.Profile(), s.Progress(), testClock())

	if r.LearningSummary.AverageScore != 0 || r.LearningSummary.TotalQuizzesTaken != 0 {
		t.Errorf("summary = %+v, want zeroes", r.LearningSummary)
	}
	if r.PerformanceAnalysis.ImprovingTopics == nil {
		t.Error("empty performance sections must be [] not null")
	}
	if r.Recommendations == nil || r.Achievements == nil {
		t.Error("recommendations/achievements must never be null")
	}
}

func TestSave_OneFilePerGeneration(t *testing.T) {
	s := seededStore(t)
	dir := t.TempDir()

	r := Build(s.Profile(), s.Progress(), testClock())
	first, err := Save(r, dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := Save(r, dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Error("two generations wrote the same file")
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("have %d report files, want 2", len(files))
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	var round Report
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("saved report not valid JSON: %v", err)
	}
	if round.UserID != "reporter" {
		t.Errorf("round-trip UserID = %q", round.UserID)
	}
}
