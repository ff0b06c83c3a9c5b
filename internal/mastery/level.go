package mastery

// Level is the mastery classification for a single topic.
type Level string

const (
	LevelAdvanced     Level = "advanced"
	LevelIntermediate Level = "intermediate"
	LevelBeginner     Level = "beginner"
	LevelStruggling   Level = "struggling"

	// LevelNone means no scored activity exists for the topic.
	LevelNone Level = ""
)

// classifyWindow is the number of trailing scores a classification
// looks at. Older scores never influence the current level.
const classifyWindow = 3

// Classification thresholds on the trailing-window average.
const (
	advancedMin     = 85.0
	intermediateMin = 70.0
	beginnerMin     = 50.0
)

// Classify maps a chronological score history to a mastery level using
// the average of the last three scores (or fewer if fewer exist).
// Scores must be non-empty; an empty history means the topic has no
// level and callers must not ask for one.
func Classify(scores []float64) Level {
	if len(scores) == 0 {
		return LevelNone
	}

	window := scores
	if len(window) > classifyWindow {
		window = window[len(window)-classifyWindow:]
	}

	var sum float64
	for _, s := range window {
		sum += s
	}
	avg := sum / float64(len(window))

	switch {
	case avg >= advancedMin:
		return LevelAdvanced
	case avg >= intermediateMin:
		return LevelIntermediate
	case avg >= beginnerMin:
		return LevelBeginner
	default:
		return LevelStruggling
	}
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	switch l {
	case LevelAdvanced, LevelIntermediate, LevelBeginner, LevelStruggling:
		return true
	}
	return false
}

// Title returns the level with its first letter capitalized, for display.
func (l Level) Title() string {
	switch l {
	case LevelAdvanced:
		return "Advanced"
	case LevelIntermediate:
		return "Intermediate"
	case LevelBeginner:
		return "Beginner"
	case LevelStruggling:
		return "Struggling"
	default:
		return "New"
	}
}

// Trend describes how a topic's latest score compares to its first.
type Trend string

const (
	TrendImproving      Trend = "improving"
	TrendNeedsAttention Trend = "needs attention"
)

// ScoreTrend compares the latest score against the first recorded score.
// The comparison is intentionally against the first score rather than
// the previous one, matching the established behavior of the progress
// analysis. Only meaningful when more than one score exists.
func ScoreTrend(scores []float64) Trend {
	if len(scores) > 1 && scores[len(scores)-1] > scores[0] {
		return TrendImproving
	}
	return TrendNeedsAttention
}
