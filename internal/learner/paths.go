package learner

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths locates everything learnix persists under a single data root.
type Paths struct {
	Root string
}

// DefaultPaths resolves the data root in priority order:
// 1. LEARNIX_DATA environment variable
// 2. $XDG_DATA_HOME/learnix
// 3. ~/.local/share/learnix
func DefaultPaths() (Paths, error) {
	if p := os.Getenv("LEARNIX_DATA"); p != "" {
		return Paths{Root: p}, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return Paths{Root: filepath.Join(dataHome, "learnix")}, nil
}

// ProfileFile is the profile document for a user.
func (p Paths) ProfileFile(userID string) string {
	return filepath.Join(p.Root, "profiles", userID+"_profile.json")
}

// ProgressFile is the progress ledger document for a user.
func (p Paths) ProgressFile(userID string) string {
	return filepath.Join(p.Root, "profiles", userID+"_progress.json")
}

// ReportsDir holds generated analytics reports, one file per run.
func (p Paths) ReportsDir() string {
	return filepath.Join(p.Root, "reports")
}

// QuizzesDir archives LLM-generated quizzes.
func (p Paths) QuizzesDir() string {
	return filepath.Join(p.Root, "quizzes")
}

// LLMLogFile is the JSON-lines log of LLM requests.
func (p Paths) LLMLogFile() string {
	return filepath.Join(p.Root, "llm.log.jsonl")
}

// EnsureDirs creates the directory tree learnix writes into.
func (p Paths) EnsureDirs() error {
	for _, dir := range []string{
		filepath.Join(p.Root, "profiles"),
		p.ReportsDir(),
		p.QuizzesDir(),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
