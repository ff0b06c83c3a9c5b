package mastery

import (
	"math"
	"time"
)

// Ledger is the slice of progress data the engine reads. It mirrors the
// shape of the stored progress document without depending on it.
type Ledger struct {
	// Topics is current_topics in first-seen order. It is the canonical
	// topic ordering for every derived list.
	Topics       []string
	Levels       map[string]Level
	Scores       map[string][]float64 // chronological per topic
	StudyMinutes int
	Streak       int
	LastActivity *time.Time
}

// Insights summarizes the learner's overall progress.
type Insights struct {
	TotalTopics      int
	MasteredTopics   int
	StrugglingTopics []string
	StudyTimeHours   float64
	Consistency      Consistency
}

// ComputeInsights derives the dashboard summary from the ledger.
func ComputeInsights(l Ledger, now time.Time) Insights {
	ins := Insights{
		TotalTopics:    len(l.Topics),
		StudyTimeHours: StudyHours(l.StudyMinutes),
		Consistency:    Rate(l.LastActivity, now),
	}

	for _, topic := range l.Topics {
		switch l.Levels[topic] {
		case LevelAdvanced:
			ins.MasteredTopics++
		case LevelStruggling:
			ins.StrugglingTopics = append(ins.StrugglingTopics, topic)
		}
	}

	return ins
}

// StudyHours converts accumulated study minutes to hours, rounded to
// two decimal places.
func StudyHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

// Distribution counts topics per mastery level.
func Distribution(levels map[string]Level) map[Level]int {
	dist := map[Level]int{
		LevelAdvanced:     0,
		LevelIntermediate: 0,
		LevelBeginner:     0,
		LevelStruggling:   0,
	}
	for _, lvl := range levels {
		if _, ok := dist[lvl]; ok {
			dist[lvl]++
		}
	}
	return dist
}

// Progression counts how topics are spread across the difficulty journey.
type Progression struct {
	Mastered   int
	InProgress int
	Struggling int
}

// ComputeProgression buckets topics by where they sit on the path to mastery.
func ComputeProgression(levels map[string]Level) Progression {
	var p Progression
	for _, lvl := range levels {
		switch lvl {
		case LevelAdvanced:
			p.Mastered++
		case LevelIntermediate, LevelBeginner:
			p.InProgress++
		case LevelStruggling:
			p.Struggling++
		}
	}
	return p
}
