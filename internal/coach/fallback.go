package coach

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/mastery"
)

// styleTips are quick suggestions per learning style, used by the
// explanation fallback.
var styleTips = map[string][]string{
	learner.StyleVisual: {
		"Try creating diagrams or mind maps",
		"Use colors to highlight important parts",
		"Look for visual examples online",
		"Draw connections between concepts",
	},
	learner.StyleAuditory: {
		"Read the explanation out loud",
		"Find podcasts or videos about this topic",
		"Discuss with others or teach someone else",
		"Create rhymes or songs to remember key points",
	},
	learner.StyleKinesthetic: {
		"Practice with hands-on examples",
		"Use physical models if possible",
		"Take notes while learning",
		"Apply the concept in real scenarios",
	},
	learner.StyleReading: {
		"Read multiple sources about this concept",
		"Take detailed written notes",
		"Create summaries and outlines",
		"Write your own explanations",
	},
}

// motivationalTips is the pool the motivation fallback draws one
// random entry from.
var motivationalTips = []string{
	"Remember: your brain grows stronger with every challenge!",
	"Break complex topics into smaller, manageable chunks.",
	"Set specific, achievable goals for each study session.",
	"Regular review is more effective than cramming.",
	"Teach others what you learn - it reinforces your knowledge!",
}

func fallbackExplain(profile *learner.Profile, topic, concept string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "EXPLAINING: %s in %s\n", concept, topic)
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Concept: %s\n", concept)
	fmt.Fprintf(&b, "Your learning style: %s\n", profile.LearningStyle)
	fmt.Fprintf(&b, "Preferred style: %s\n", profile.ExplanationStyle)

	b.WriteString("\nBasic explanation:\n")
	fmt.Fprintf(&b, "The concept '%s' is a key part of %s.\n", concept, topic)

	tips, ok := styleTips[profile.LearningStyle]
	if !ok {
		tips = styleTips[learner.StyleVisual]
	}
	fmt.Fprintf(&b, "\nLearning tips for %s learners:\n", profile.LearningStyle)
	for _, tip := range tips {
		fmt.Fprintf(&b, "  - %s\n", tip)
	}

	b.WriteString("\nNext steps:\n")
	b.WriteString("  - Break down complex parts into smaller pieces\n")
	b.WriteString("  - Practice with examples or exercises\n")
	b.WriteString("  - Connect to what you already know\n")
	b.WriteString("  - Test your understanding with questions\n")

	b.WriteString("\nRemember: understanding takes time - be patient with yourself!")
	return b.String()
}

func fallbackAnalyze(progress *learner.Progress, ins mastery.Insights, topic string) string {
	var b strings.Builder

	b.WriteString("LEARNING PROGRESS ANALYSIS\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")

	if topic != "" {
		fmt.Fprintf(&b, "Focus topic: %s\n", topic)
		if level := progress.Level(topic); level != mastery.LevelNone {
			fmt.Fprintf(&b, "Current level: %s\n", level.Title())
		}
		if scores := progress.TopicScores(topic); len(scores) > 0 {
			var sum float64
			for _, s := range scores {
				sum += s
			}
			fmt.Fprintf(&b, "Average score: %.1f%%\n", sum/float64(len(scores)))
			fmt.Fprintf(&b, "Latest score: %.0f%%\n", scores[len(scores)-1])
			if len(scores) > 1 {
				fmt.Fprintf(&b, "Trend: %s\n", mastery.ScoreTrend(scores))
			}
		}
	}

	b.WriteString("\nOverall statistics:\n")
	fmt.Fprintf(&b, "  - Total topics: %d\n", ins.TotalTopics)
	fmt.Fprintf(&b, "  - Mastered topics: %d\n", ins.MasteredTopics)
	fmt.Fprintf(&b, "  - Study time: %.2f hours\n", ins.StudyTimeHours)
	fmt.Fprintf(&b, "  - Consistency: %s\n", ins.Consistency)

	if len(ins.StrugglingTopics) > 0 {
		b.WriteString("\nTopics needing attention:\n")
		for _, t := range ins.StrugglingTopics {
			fmt.Fprintf(&b, "  - %s\n", t)
		}
	}

	b.WriteString("\nQuick recommendations:\n")
	switch {
	case ins.TotalTopics == 0:
		b.WriteString("  - Start with a topic you're interested in\n")
		b.WriteString("  - Set aside 15-30 minutes daily for learning\n")
	case ins.Consistency == mastery.ConsistencyInactive:
		b.WriteString("  - Resume regular study sessions\n")
		b.WriteString("  - Start with shorter sessions to build momentum\n")
	case len(ins.StrugglingTopics) > 0:
		b.WriteString("  - Focus extra time on challenging topics\n")
		b.WriteString("  - Break difficult concepts into smaller parts\n")
	default:
		b.WriteString("  - Keep up the great work!\n")
		b.WriteString("  - Consider adding new topics to expand knowledge\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// planDays orders the week for the plan fallback.
var planDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func fallbackPlan(profile *learner.Profile, topics []string) string {
	var b strings.Builder

	b.WriteString("WEEKLY LEARNING PLAN\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "Daily time budget: %d minutes\n", profile.TimeAvailability)

	if len(topics) == 0 {
		b.WriteString("\nNo focus topics yet. Pick one or two topics and take a quiz\n")
		b.WriteString("to seed your plan; Sunday stays a rest and review day.")
		return b.String()
	}

	fmt.Fprintf(&b, "Focus topics: %s\n\n", strings.Join(topics, ", "))

	for i, day := range planDays {
		if day == "Sunday" {
			fmt.Fprintf(&b, "%s: rest day - light review of the week's notes\n", day)
			continue
		}
		topic := topics[i%len(topics)]
		activity := "practice exercises"
		switch i % 3 {
		case 0:
			activity = "read and take notes"
		case 1:
			activity = "practice exercises"
		case 2:
			activity = "take a quiz and review mistakes"
		}
		fmt.Fprintf(&b, "%s: %s - %s (%d min)\n", day, topic, activity, profile.TimeAvailability)
	}

	b.WriteString("\nGoal: finish the week with at least one quiz per focus topic.")
	return b.String()
}

func fallbackMotivate(ins mastery.Insights, rng *rand.Rand) string {
	var messages []string

	if ins.TotalTopics == 0 {
		messages = append(messages,
			"Welcome to your learning journey! Every expert was once a beginner.",
			"The first step is always the hardest - you've already taken it by being here!",
			"Set your first learning goal and start with just 15 minutes of study today.")
	} else {
		messages = append(messages, fmt.Sprintf("Great job studying %d topic(s)!", ins.TotalTopics))
	}

	if ins.MasteredTopics > 0 {
		messages = append(messages, fmt.Sprintf("Congratulations! You've mastered %d topic(s)!", ins.MasteredTopics))
	}
	if ins.StudyTimeHours > 0 {
		messages = append(messages, fmt.Sprintf("You've invested %.2f hours in learning - time well spent!", ins.StudyTimeHours))
	}

	consistencyMessages := map[mastery.Consistency]string{
		mastery.ConsistencyVeryActive: "You're on fire! Your consistency is excellent!",
		mastery.ConsistencyConsistent: "Your regular study habits are paying off!",
		mastery.ConsistencyModerate:   "Try to study a bit more regularly for better results!",
		mastery.ConsistencyInactive:   "Let's get back on track! Start with just 10 minutes today.",
		mastery.ConsistencyNone:       "Every journey begins with a single step. Start today!",
	}
	if msg, ok := consistencyMessages[ins.Consistency]; ok {
		messages = append(messages, msg)
	} else {
		messages = append(messages, "Keep going!")
	}

	if len(ins.StrugglingTopics) > 0 {
		messages = append(messages, fmt.Sprintf(
			"Don't worry about %s - difficulty is temporary, giving up lasts forever!",
			strings.Join(ins.StrugglingTopics, ", ")))
	}

	messages = append(messages, motivationalTips[rng.IntN(len(motivationalTips))])
	return strings.Join(messages, "\n")
}

func fallbackTechniques(profile *learner.Profile, progress *learner.Progress, topic string) string {
	var b strings.Builder

	b.WriteString("STUDY TECHNIQUE RECOMMENDATIONS\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	if topic != "" {
		fmt.Fprintf(&b, "Focus topic: %s\n", topic)
	}
	fmt.Fprintf(&b, "Learning style: %s\n", profile.LearningStyle)
	fmt.Fprintf(&b, "Daily time budget: %d minutes\n", profile.TimeAvailability)

	fmt.Fprintf(&b, "\nTechniques for %s learners:\n", profile.LearningStyle)
	for _, t := range TechniquesForStyle(profile.LearningStyle) {
		fmt.Fprintf(&b, "  - %s: %s\n", t.Name, t.Description)
	}

	b.WriteString("\nRetention techniques:\n")
	for _, t := range RetentionTechniques() {
		fmt.Fprintf(&b, "  - %s: %s\n", t.Name, t.Description)
	}

	var struggling []string
	for _, t := range progress.CurrentTopics {
		if progress.Level(t) == mastery.LevelStruggling {
			struggling = append(struggling, t)
		}
	}
	if len(struggling) > 0 {
		fmt.Fprintf(&b, "\nFor struggling topics (%s):\n", strings.Join(struggling, ", "))
		b.WriteString("  - Shorten sessions and increase frequency\n")
		b.WriteString("  - Revisit prerequisites before new material\n")
		b.WriteString("  - Quiz yourself early and often\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
