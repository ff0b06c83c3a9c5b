package learner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/learnix/internal/mastery"
)

// ErrInvalidArgument rejects out-of-range input before any mutation.
var ErrInvalidArgument = errors.New("invalid argument")

// Store owns the durable per-user state: one profile document and one
// progress ledger document, both plain JSON. Single local user, no
// locking; concurrent processes against the same user are out of scope.
type Store struct {
	userID   string
	paths    Paths
	profile  *Profile
	progress *Progress

	// Now is the clock used for activity timestamps. Overridable in tests.
	Now func() time.Time
}

// Open loads the user's documents, creating defaults when the files
// don't exist yet. Any other read failure is returned: a corrupt or
// unreadable document must not be silently replaced with defaults.
func Open(userID string, paths Paths) (*Store, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id must not be empty", ErrInvalidArgument)
	}
	if err := paths.EnsureDirs(); err != nil {
		return nil, err
	}

	s := &Store{
		userID: userID,
		paths:  paths,
		Now:    time.Now,
	}

	now := s.Now()

	profile := defaultProfile(userID, now)
	if err := loadDocument(paths.ProfileFile(userID), profile); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	profile.fillDefaults(userID, now)

	progress := defaultProgress()
	if err := loadDocument(paths.ProgressFile(userID), progress); err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	progress.fillDefaults()

	s.profile = profile
	s.progress = progress
	return s, nil
}

// UserID returns the id this store was opened for.
func (s *Store) UserID() string { return s.userID }

// Profile returns the current profile.
func (s *Store) Profile() *Profile { return s.profile }

// Progress returns the current ledger.
func (s *Store) Progress() *Progress { return s.progress }

// Paths returns the data locations backing this store.
func (s *Store) Paths() Paths { return s.paths }

// RecordActivity records one unit of learning activity. score is
// optional (nil means study only, no quiz). The whole call is
// all-or-nothing: validation happens up front, changes are staged on a
// copy of the ledger, and nothing is kept unless both documents persist.
func (s *Store) RecordActivity(topic string, score *float64, studyMinutes int) error {
	if topic == "" {
		return fmt.Errorf("%w: topic must not be empty", ErrInvalidArgument)
	}
	if studyMinutes < 0 {
		return fmt.Errorf("%w: study minutes must not be negative, got %d", ErrInvalidArgument, studyMinutes)
	}
	if score != nil && (*score < 0 || *score > 100) {
		return fmt.Errorf("%w: score %.1f out of range [0, 100]", ErrInvalidArgument, *score)
	}

	now := s.Now()
	staged := s.progress.clone()

	staged.LastActivity = &now
	staged.StudyMinutes += studyMinutes

	if !containsTopic(staged.CurrentTopics, topic) {
		staged.CurrentTopics = append(staged.CurrentTopics, topic)
	}

	if score != nil {
		staged.QuizScores[topic] = append(staged.QuizScores[topic], ScoreEntry{Score: *score, Date: now})
		staged.MasteryLevels[topic] = mastery.Classify(staged.TopicScores(topic))
	}

	if err := s.persist(s.profile, staged); err != nil {
		return err
	}

	s.progress = staged
	return nil
}

// ProfileUpdate carries optional profile changes; nil fields are untouched.
type ProfileUpdate struct {
	LearningStyle    *string
	ExplanationStyle *string
	TimeAvailability *int
	Interests        []string
	Goals            []string
}

// UpdateProfile applies an update after validating every provided field,
// then persists. No field is applied if any field is invalid.
func (s *Store) UpdateProfile(u ProfileUpdate) error {
	if u.LearningStyle != nil && !ValidLearningStyle(*u.LearningStyle) {
		return fmt.Errorf("%w: unknown learning style %q", ErrInvalidArgument, *u.LearningStyle)
	}
	if u.ExplanationStyle != nil && !ValidExplanationStyle(*u.ExplanationStyle) {
		return fmt.Errorf("%w: unknown explanation style %q", ErrInvalidArgument, *u.ExplanationStyle)
	}
	if u.TimeAvailability != nil && *u.TimeAvailability <= 0 {
		return fmt.Errorf("%w: daily minutes must be positive, got %d", ErrInvalidArgument, *u.TimeAvailability)
	}

	if u.LearningStyle != nil {
		s.profile.LearningStyle = *u.LearningStyle
	}
	if u.ExplanationStyle != nil {
		s.profile.ExplanationStyle = *u.ExplanationStyle
	}
	if u.TimeAvailability != nil {
		s.profile.TimeAvailability = *u.TimeAvailability
	}
	if u.Interests != nil {
		s.profile.Interests = u.Interests
	}
	if u.Goals != nil {
		s.profile.Goals = u.Goals
	}

	return s.persist(s.profile, s.progress)
}

// Save persists both documents as they stand.
func (s *Store) Save() error {
	return s.persist(s.profile, s.progress)
}

// Reset deletes the user's documents. Missing files are not an error.
func (s *Store) Reset() error {
	for _, f := range []string{s.paths.ProfileFile(s.userID), s.paths.ProgressFile(s.userID)} {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", f, err)
		}
	}
	now := s.Now()
	s.profile = defaultProfile(s.userID, now)
	s.progress = defaultProgress()
	return nil
}

func (s *Store) persist(profile *Profile, progress *Progress) error {
	if err := writeDocument(s.paths.ProfileFile(s.userID), profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := writeDocument(s.paths.ProgressFile(s.userID), progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// loadDocument reads a JSON document into v. A missing file leaves v
// untouched (first-ever access starts from defaults).
func loadDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeDocument writes v as indented JSON via temp file + rename so a
// crash mid-write never leaves a truncated document behind.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func containsTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}
