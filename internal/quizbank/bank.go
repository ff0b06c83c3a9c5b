package quizbank

import (
	"fmt"

	"github.com/abhisek/learnix/internal/mastery"
)

// Bank maps topic → mastery level → question pool. Topics or levels
// not present simply yield empty pools.
type Bank map[string]map[mastery.Level][]Question

// levelOrder fixes the iteration order when flattening a topic's pools.
var levelOrder = []mastery.Level{
	mastery.LevelBeginner,
	mastery.LevelIntermediate,
	mastery.LevelAdvanced,
	mastery.LevelStruggling,
	mastery.LevelNone,
}

// Default returns the built-in question bank.
func Default() Bank {
	return Bank{
		"Machine Learning": {
			mastery.LevelBeginner: {
				{
					Kind:    KindMultipleChoice,
					Prompt:  "What is Machine Learning?",
					Options: []string{"A) A programming language", "B) A subset of Artificial Intelligence", "C) A type of database", "D) A web framework"},
					Correct: "B",
					Explanation: "Machine Learning is a subset of Artificial Intelligence that enables computers to learn " +
						"and make decisions from data without being explicitly programmed.",
				},
				{
					Kind:    KindMultipleChoice,
					Prompt:  "Which of the following is a supervised learning algorithm?",
					Options: []string{"A) K-means clustering", "B) Linear Regression", "C) Principal Component Analysis", "D) Association Rules"},
					Correct: "B",
					Explanation: "Linear Regression is a supervised learning algorithm that predicts continuous values " +
						"based on labeled training data.",
				},
				{
					Kind:    KindTrueFalse,
					Prompt:  "Machine Learning models can only work with numerical data.",
					Options: []string{"True", "False"},
					Correct: "False",
					Explanation: "Machine Learning models can work with various types of data including text, images, " +
						"categorical data, and numerical data.",
				},
				{
					Kind:    KindMultipleChoice,
					Prompt:  "What is overfitting in Machine Learning?",
					Options: []string{"A) When a model performs well on training data but poorly on new data", "B) When a model is too simple", "C) When there's too little training data", "D) When the algorithm runs too fast"},
					Correct: "A",
					Explanation: "Overfitting occurs when a model learns the training data too well, including noise, " +
						"making it perform poorly on new, unseen data.",
				},
				{
					Kind:    KindMultipleChoice,
					Prompt:  "Which of these is NOT a type of Machine Learning?",
					Options: []string{"A) Supervised Learning", "B) Unsupervised Learning", "C) Reinforcement Learning", "D) Deterministic Learning"},
					Correct: "D",
					Explanation: "Deterministic Learning is not a recognized type of Machine Learning. The main types are " +
						"Supervised, Unsupervised, and Reinforcement Learning.",
				},
			},
			mastery.LevelIntermediate: {
				{
					Kind:    KindMultipleChoice,
					Prompt:  "What is the purpose of cross-validation?",
					Options: []string{"A) To increase training speed", "B) To assess model performance and prevent overfitting", "C) To reduce dataset size", "D) To normalize data"},
					Correct: "B",
					Explanation: "Cross-validation is used to assess how well a model will generalize to new data and " +
						"helps prevent overfitting by testing on multiple data splits.",
				},
				{
					Kind:    KindMultipleChoice,
					Prompt:  "Which metric is most appropriate for evaluating a classification model with imbalanced classes?",
					Options: []string{"A) Accuracy", "B) F1-Score", "C) Mean Squared Error", "D) R-squared"},
					Correct: "B",
					Explanation: "F1-Score is better for imbalanced datasets as it considers both precision and recall, " +
						"unlike accuracy which can be misleading.",
				},
			},
		},
		"Python": {
			mastery.LevelBeginner: {
				{
					Kind:    KindMultipleChoice,
					Prompt:  "What is the correct way to create a list in Python?",
					Options: []string{"A) list = {1, 2, 3}", "B) list = [1, 2, 3]", "C) list = (1, 2, 3)", "D) list = <1, 2, 3>"},
					Correct: "B",
					Explanation: "Lists in Python are created using square brackets []. Curly braces {} create sets or " +
						"dictionaries, parentheses () create tuples.",
				},
				{
					Kind:        KindTrueFalse,
					Prompt:      "Python is case-sensitive.",
					Options:     []string{"True", "False"},
					Correct:     "True",
					Explanation: "Python is case-sensitive, meaning 'Variable' and 'variable' are treated as different identifiers.",
				},
				{
					Kind:        KindMultipleChoice,
					Prompt:      "Which of the following is used to define a function in Python?",
					Options:     []string{"A) function", "B) def", "C) define", "D) func"},
					Correct:     "B",
					Explanation: "The 'def' keyword is used to define functions in Python.",
				},
			},
		},
		"Mathematics": {
			mastery.LevelBeginner: {
				{
					Kind:        KindMultipleChoice,
					Prompt:      "What is the derivative of x²?",
					Options:     []string{"A) x", "B) 2x", "C) x²", "D) 2"},
					Correct:     "B",
					Explanation: "Using the power rule: d/dx(x²) = 2x¹ = 2x",
				},
				{
					Kind:    KindTrueFalse,
					Prompt:  "The integral of a derivative gives back the original function (plus a constant).",
					Options: []string{"True", "False"},
					Correct: "True",
					Explanation: "This is the Fundamental Theorem of Calculus - integration and differentiation are " +
						"inverse operations.",
				},
			},
		},
	}
}

// GenericQuestions synthesizes the two fallback questions used when a
// topic has no bank entries at all, parameterized by topic name.
func GenericQuestions(topic string) []Question {
	return []Question{
		{
			Kind:    KindMultipleChoice,
			Prompt:  fmt.Sprintf("Which of the following is most important when studying %s?", topic),
			Options: []string{"A) Memorization", "B) Understanding concepts", "C) Speed", "D) Copying examples"},
			Correct: "B",
			Explanation: fmt.Sprintf("Understanding core concepts is crucial for mastering %s. "+
				"This builds a strong foundation for advanced topics.", topic),
		},
		{
			Kind:        KindTrueFalse,
			Prompt:      fmt.Sprintf("Regular practice is important for learning %s.", topic),
			Options:     []string{"True", "False"},
			Correct:     "True",
			Explanation: fmt.Sprintf("Consistent practice helps reinforce concepts and build proficiency in %s.", topic),
		},
	}
}
