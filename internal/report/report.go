package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/mastery"
)

// Report is one analytics snapshot. The top-level key set is fixed;
// sections may be empty but are never omitted.
type Report struct {
	UserID                string      `json:"user_id"`
	GeneratedAt           time.Time   `json:"generated_at"`
	LearningSummary       Summary     `json:"learning_summary"`
	PerformanceAnalysis   Performance `json:"performance_analysis"`
	TimeAnalysis          TimeUsage   `json:"time_analysis"`
	DifficultyProgression Progression `json:"difficulty_progression"`
	Recommendations       []string    `json:"recommendations"`
	Achievements          []string    `json:"achievements"`
}

// Summary is the high-level rollup.
type Summary struct {
	TotalTopics         int                   `json:"total_topics"`
	TotalQuizzesTaken   int                   `json:"total_quizzes_taken"`
	AverageScore        float64               `json:"average_score"`
	StudyTimeHours      float64               `json:"study_time_hours"`
	LearningStreak      int                   `json:"learning_streak"`
	MasteryDistribution map[mastery.Level]int `json:"mastery_distribution"`
}

// Performance groups topics by trend and overall level.
type Performance struct {
	ImprovingTopics     []string `json:"improving_topics"`
	DecliningTopics     []string `json:"declining_topics"`
	ConsistentTopics    []string `json:"consistent_topics"`
	TopPerformingTopics []string `json:"top_performing_topics"`
	StrugglingTopics    []string `json:"struggling_topics"`
}

// TimeUsage describes how study time is spent.
type TimeUsage struct {
	PreferredStudyDuration int                 `json:"preferred_study_duration"`
	TotalStudyTime         int                 `json:"total_study_time"`
	AverageSessionLength   int                 `json:"average_session_length"`
	ConsistencyRating      mastery.Consistency `json:"consistency_rating"`
}

// Progression counts topics along the path to mastery.
type Progression struct {
	TopicsMastered   int `json:"topics_mastered"`
	TopicsInProgress int `json:"topics_in_progress"`
	TopicsStruggling int `json:"topics_struggling"`
}

// defaultSessionLength is assumed when no per-session data exists.
const defaultSessionLength = 15

// Build assembles a report from the learner's documents as of now.
func Build(profile *learner.Profile, progress *learner.Progress, now time.Time) *Report {
	ledger := progress.MasteryView()
	ins := mastery.ComputeInsights(ledger, now)
	buckets := mastery.ComputeBuckets(ledger)
	prog := mastery.ComputeProgression(progress.MasteryLevels)

	return &Report{
		UserID:      profile.UserID,
		GeneratedAt: now,
		LearningSummary: Summary{
			TotalTopics:         len(progress.CurrentTopics),
			TotalQuizzesTaken:   totalQuizzes(progress),
			AverageScore:        averageScore(progress),
			StudyTimeHours:      mastery.StudyHours(progress.StudyMinutes),
			LearningStreak:      progress.Streak,
			MasteryDistribution: mastery.Distribution(progress.MasteryLevels),
		},
		PerformanceAnalysis: Performance{
			ImprovingTopics:     emptyNotNil(buckets.Improving),
			DecliningTopics:     emptyNotNil(buckets.Declining),
			ConsistentTopics:    emptyNotNil(buckets.Consistent),
			TopPerformingTopics: emptyNotNil(buckets.TopPerforming),
			StrugglingTopics:    emptyNotNil(buckets.Struggling),
		},
		TimeAnalysis: TimeUsage{
			PreferredStudyDuration: profile.TimeAvailability,
			TotalStudyTime:         progress.StudyMinutes,
			AverageSessionLength:   defaultSessionLength,
			ConsistencyRating:      ins.Consistency,
		},
		DifficultyProgression: Progression{
			TopicsMastered:   prog.Mastered,
			TopicsInProgress: prog.InProgress,
			TopicsStruggling: prog.Struggling,
		},
		Recommendations: recommendations(ins),
		Achievements:    achievements(ins),
	}
}

func totalQuizzes(p *learner.Progress) int {
	total := 0
	for _, entries := range p.QuizScores {
		total += len(entries)
	}
	return total
}

func averageScore(p *learner.Progress) float64 {
	var sum float64
	var n int
	for _, entries := range p.QuizScores {
		for _, e := range entries {
			sum += e.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*100) / 100
}

func recommendations(ins mastery.Insights) []string {
	recs := []string{}

	switch ins.Consistency {
	case mastery.ConsistencyInactive:
		recs = append(recs, "Consider setting up daily study reminders to maintain consistency")
	case mastery.ConsistencyModerate:
		recs = append(recs, "Try to increase study frequency to improve retention")
	}

	if len(ins.StrugglingTopics) > 0 {
		recs = append(recs, "Focus extra attention on: "+strings.Join(ins.StrugglingTopics, ", "))
	}
	if ins.StudyTimeHours < 5 {
		recs = append(recs, "Consider increasing weekly study time for better progress")
	}
	if ins.MasteredTopics == 0 {
		recs = append(recs, "Set a goal to master at least one topic this week")
	}

	return recs
}

func achievements(ins mastery.Insights) []string {
	achs := []string{}

	if ins.MasteredTopics > 0 {
		achs = append(achs, fmt.Sprintf("Mastered %d topics!", ins.MasteredTopics))
	}
	if ins.StudyTimeHours >= 10 {
		achs = append(achs, fmt.Sprintf("Logged %.2f hours of study time!", ins.StudyTimeHours))
	}
	if ins.Consistency == mastery.ConsistencyVeryActive || ins.Consistency == mastery.ConsistencyConsistent {
		achs = append(achs, "Maintaining excellent learning consistency!")
	}
	if ins.TotalTopics >= 5 {
		achs = append(achs, fmt.Sprintf("Actively learning %d topics!", ins.TotalTopics))
	}

	return achs
}

// emptyNotNil keeps empty sections as [] in the JSON document.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
