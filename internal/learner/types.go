package learner

import (
	"time"

	"github.com/abhisek/learnix/internal/mastery"
)

// Learning styles a profile can declare.
const (
	StyleVisual      = "visual"
	StyleAuditory    = "auditory"
	StyleKinesthetic = "kinesthetic"
	StyleReading     = "reading"
)

// Explanation styles a profile can prefer.
const (
	ExplainSimple    = "simple"
	ExplainDetailed  = "detailed"
	ExplainAnalogies = "analogies"
	ExplainExamples  = "examples"
)

// Profile holds the learner's preferences and goals. It is only
// mutated by explicit update calls, never derived from activity.
type Profile struct {
	UserID               string    `json:"user_id"`
	LearningStyle        string    `json:"learning_style"`
	DifficultyPreference string    `json:"difficulty_preference"`
	Interests            []string  `json:"interests"`
	Goals                []string  `json:"goals"`
	TimeAvailability     int       `json:"time_availability"` // minutes per day
	ExplanationStyle     string    `json:"preferred_explanation_style"`
	Strengths            []string  `json:"strengths"`
	Weaknesses           []string  `json:"weaknesses"`
	CreatedAt            time.Time `json:"created_at"`
}

// ScoreEntry is one quiz result for a topic.
type ScoreEntry struct {
	Score float64   `json:"score"`
	Date  time.Time `json:"date"`
}

// Progress is the per-learner activity ledger. quiz_scores sequences
// are append-only and chronological; current_topics preserves
// first-seen order with no duplicates; mastery_levels is always
// recomputed from the trailing score window, never hand-edited.
type Progress struct {
	TopicsCompleted []string                 `json:"topics_completed"`
	QuizScores      map[string][]ScoreEntry  `json:"quiz_scores"`
	Streak          int                      `json:"learning_streaks"`
	StudyMinutes    int                      `json:"total_study_time"`
	LastActivity    *time.Time               `json:"last_activity"`
	CurrentTopics   []string                 `json:"current_topics"`
	MasteryLevels   map[string]mastery.Level `json:"mastery_levels"`
}

// ValidLearningStyle reports whether s is a recognized learning style.
func ValidLearningStyle(s string) bool {
	switch s {
	case StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading:
		return true
	}
	return false
}

// ValidExplanationStyle reports whether s is a recognized explanation style.
func ValidExplanationStyle(s string) bool {
	switch s {
	case ExplainSimple, ExplainDetailed, ExplainAnalogies, ExplainExamples:
		return true
	}
	return false
}

// defaultProfile builds the profile a brand-new learner starts with.
func defaultProfile(userID string, now time.Time) *Profile {
	return &Profile{
		UserID:               userID,
		LearningStyle:        StyleVisual,
		DifficultyPreference: "intermediate",
		Interests:            []string{},
		Goals:                []string{},
		TimeAvailability:     30,
		ExplanationStyle:     ExplainSimple,
		Strengths:            []string{},
		Weaknesses:           []string{},
		CreatedAt:            now,
	}
}

// defaultProgress builds an empty ledger.
func defaultProgress() *Progress {
	return &Progress{
		TopicsCompleted: []string{},
		QuizScores:      map[string][]ScoreEntry{},
		CurrentTopics:   []string{},
		MasteryLevels:   map[string]mastery.Level{},
	}
}

// fillDefaults repairs documents written by older versions: missing
// keys decode to nil and get their zero-value collections here, so the
// rest of the code never nil-checks.
func (p *Profile) fillDefaults(userID string, now time.Time) {
	if p.UserID == "" {
		p.UserID = userID
	}
	if p.LearningStyle == "" {
		p.LearningStyle = StyleVisual
	}
	if p.DifficultyPreference == "" {
		p.DifficultyPreference = "intermediate"
	}
	if p.ExplanationStyle == "" {
		p.ExplanationStyle = ExplainSimple
	}
	if p.TimeAvailability <= 0 {
		p.TimeAvailability = 30
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.Goals == nil {
		p.Goals = []string{}
	}
	if p.Strengths == nil {
		p.Strengths = []string{}
	}
	if p.Weaknesses == nil {
		p.Weaknesses = []string{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
}

func (p *Progress) fillDefaults() {
	if p.TopicsCompleted == nil {
		p.TopicsCompleted = []string{}
	}
	if p.QuizScores == nil {
		p.QuizScores = map[string][]ScoreEntry{}
	}
	if p.CurrentTopics == nil {
		p.CurrentTopics = []string{}
	}
	if p.MasteryLevels == nil {
		p.MasteryLevels = map[string]mastery.Level{}
	}
}

// clone returns a deep copy so RecordActivity can stage changes and
// throw them away on validation or persistence failure.
func (p *Progress) clone() *Progress {
	cp := *p
	cp.TopicsCompleted = append([]string(nil), p.TopicsCompleted...)
	cp.CurrentTopics = append([]string(nil), p.CurrentTopics...)
	cp.QuizScores = make(map[string][]ScoreEntry, len(p.QuizScores))
	for topic, entries := range p.QuizScores {
		cp.QuizScores[topic] = append([]ScoreEntry(nil), entries...)
	}
	cp.MasteryLevels = make(map[string]mastery.Level, len(p.MasteryLevels))
	for topic, lvl := range p.MasteryLevels {
		cp.MasteryLevels[topic] = lvl
	}
	if p.LastActivity != nil {
		ts := *p.LastActivity
		cp.LastActivity = &ts
	}
	return &cp
}

// TopicScores returns the raw score values for a topic, chronological.
func (p *Progress) TopicScores(topic string) []float64 {
	entries := p.QuizScores[topic]
	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = e.Score
	}
	return scores
}

// MasteryView projects the ledger into the shape the mastery engine reads.
func (p *Progress) MasteryView() mastery.Ledger {
	scores := make(map[string][]float64, len(p.QuizScores))
	for topic := range p.QuizScores {
		scores[topic] = p.TopicScores(topic)
	}
	return mastery.Ledger{
		Topics:       p.CurrentTopics,
		Levels:       p.MasteryLevels,
		Scores:       scores,
		StudyMinutes: p.StudyMinutes,
		Streak:       p.Streak,
		LastActivity: p.LastActivity,
	}
}

// Level returns the topic's mastery level, or LevelNone if unscored.
func (p *Progress) Level(topic string) mastery.Level {
	return p.MasteryLevels[topic]
}
