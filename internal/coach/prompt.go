package coach

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/mastery"
)

const explainSystem = `You are a content personalizer for a self-directed learner.
Create clear, engaging explanations adapted to the learner's style and level.
Use plain text only. Include practical examples and suggest follow-up practice.`

const analyzeSystem = `You are a learning progress analyzer.
Study the learner's profile, progress data, and insights, then report:
current status and trends, strengths and weak areas, pattern insights,
optimization recommendations, and any specific concerns. Plain text only.`

const planSystem = `You are a learning planner creating a realistic 7-day study plan.
Distribute the available daily minutes across the week, balance review with new
content, name specific activities per day, include a rest day, and set a
measurable goal for each day. Plain text only.`

const motivateSystem = `You are a motivational learning coach.
Acknowledge the learner's progress, address struggles with empathy and concrete
next steps, and keep a growth mindset. Be genuine and specific, not saccharine.
Plain text only.`

const techniquesSystem = `You are a study skills advisor versed in spaced repetition,
active recall, elaborative interrogation, and other evidence-based strategies.
Recommend practical techniques with implementation steps for this learner.
Plain text only.`

func explainPrompt(profile *learner.Profile, progress *learner.Progress, topic, concept string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the concept '%s' in the topic '%s'.\n\n", concept, topic)
	fmt.Fprintf(&b, "Learning style: %s\n", profile.LearningStyle)
	fmt.Fprintf(&b, "Explanation style: %s\n", profile.ExplanationStyle)
	level := progress.Level(topic)
	if level == mastery.LevelNone {
		level = mastery.LevelBeginner
	}
	fmt.Fprintf(&b, "Current mastery level: %s\n", level)
	fmt.Fprintf(&b, "Time availability: %d minutes\n", profile.TimeAvailability)
	return b.String()
}

func analyzePrompt(profile *learner.Profile, progress *learner.Progress, ins mastery.Insights, topic string) string {
	var b strings.Builder
	b.WriteString("Analyze this learner's progress.\n\n")
	writeJSON(&b, "Profile", profile)
	writeJSON(&b, "Progress", progress)
	writeJSON(&b, "Insights", ins)
	if topic != "" {
		fmt.Fprintf(&b, "Focus topic: %s\n", topic)
	} else {
		b.WriteString("Focus topic: general analysis\n")
	}
	return b.String()
}

func planPrompt(profile *learner.Profile, ins mastery.Insights, topics []string) string {
	var b strings.Builder
	b.WriteString("Create a weekly learning plan.\n\n")
	fmt.Fprintf(&b, "Daily time available: %d minutes\n", profile.TimeAvailability)
	fmt.Fprintf(&b, "Learning style: %s\n", profile.LearningStyle)
	fmt.Fprintf(&b, "Focus topics: %s\n", strings.Join(topics, ", "))
	fmt.Fprintf(&b, "Learning consistency: %s\n", ins.Consistency)
	if len(ins.StrugglingTopics) > 0 {
		fmt.Fprintf(&b, "Struggling topics: %s\n", strings.Join(ins.StrugglingTopics, ", "))
	}
	return b.String()
}

func motivatePrompt(ins mastery.Insights) string {
	var b strings.Builder
	b.WriteString("Motivate this learner.\n\n")
	fmt.Fprintf(&b, "Topics being studied: %d\n", ins.TotalTopics)
	fmt.Fprintf(&b, "Mastered topics: %d\n", ins.MasteredTopics)
	fmt.Fprintf(&b, "Study time: %.2f hours\n", ins.StudyTimeHours)
	fmt.Fprintf(&b, "Consistency: %s\n", ins.Consistency)
	if len(ins.StrugglingTopics) > 0 {
		fmt.Fprintf(&b, "Current challenges: %s\n", strings.Join(ins.StrugglingTopics, ", "))
	}
	return b.String()
}

func techniquesPrompt(profile *learner.Profile, progress *learner.Progress, topic string) string {
	var b strings.Builder
	b.WriteString("Recommend study techniques.\n\n")
	fmt.Fprintf(&b, "Learning style: %s\n", profile.LearningStyle)
	fmt.Fprintf(&b, "Time availability: %d minutes/day\n", profile.TimeAvailability)
	if topic != "" {
		fmt.Fprintf(&b, "Focus topic: %s\n", topic)
	} else {
		b.WriteString("Focus: general study optimization\n")
	}
	var struggling []string
	for _, t := range progress.CurrentTopics {
		if progress.Level(t) == mastery.LevelStruggling {
			struggling = append(struggling, t)
		}
	}
	if len(struggling) > 0 {
		fmt.Fprintf(&b, "Struggling areas: %s\n", strings.Join(struggling, ", "))
	}
	writeJSON(&b, "Current performance", progress.MasteryLevels)
	return b.String()
}

func writeJSON(b *strings.Builder, label string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintf(b, "%s:\n%s\n\n", label, data)
}
