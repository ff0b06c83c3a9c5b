package coach

import "github.com/abhisek/learnix/internal/learner"

// Technique is one named study technique.
type Technique struct {
	Name        string
	Description string
}

// TechniquesForStyle returns the technique table for a learning style.
// Unknown styles get the visual table.
func TechniquesForStyle(style string) []Technique {
	if t, ok := styleTechniques[style]; ok {
		return t
	}
	return styleTechniques[learner.StyleVisual]
}

// RetentionTechniques returns techniques aimed at long-term retention,
// independent of learning style.
func RetentionTechniques() []Technique {
	return []Technique{
		{"Spaced Repetition", "Review material at increasing intervals"},
		{"Active Recall", "Test yourself without looking at notes"},
		{"Elaborative Interrogation", "Ask yourself 'why' and 'how' questions"},
		{"Interleaving", "Mix different topics in study sessions"},
		{"Dual Coding", "Combine verbal and visual information"},
	}
}

var styleTechniques = map[string][]Technique{
	learner.StyleVisual: {
		{"Mind Mapping", "Create visual diagrams connecting concepts"},
		{"Flashcards", "Use visual flashcards with images and colors"},
		{"Concept Diagrams", "Draw diagrams to represent relationships"},
		{"Color Coding", "Use different colors for different topics or concepts"},
	},
	learner.StyleAuditory: {
		{"Read Aloud", "Read study materials out loud"},
		{"Audio Recordings", "Record yourself explaining concepts"},
		{"Discussion Groups", "Discuss topics with others"},
		{"Music Mnemonics", "Set information to music or rhythm"},
	},
	learner.StyleKinesthetic: {
		{"Hands-on Practice", "Practice with real-world examples"},
		{"Walking Study", "Study while walking or moving"},
		{"Building Models", "Create physical models of concepts"},
		{"Active Note-taking", "Use interactive note-taking methods"},
	},
	learner.StyleReading: {
		{"Cornell Notes", "Use structured note-taking system"},
		{"Summarization", "Write summaries after reading"},
		{"Outline Creation", "Create detailed outlines of topics"},
		{"Text Annotation", "Actively annotate reading materials"},
	},
}
