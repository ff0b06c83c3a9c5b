package quizbank

import (
	"math/rand/v2"

	"github.com/abhisek/learnix/internal/mastery"
)

// Select draws up to count questions for a topic at the given mastery
// level: a uniform random sample without replacement, deterministic for
// a fixed rng seed. The bank is never mutated.
//
// Pool resolution: if the (topic, level) pool holds fewer than count
// questions, the pools for every level of the topic are merged; if the
// topic has no questions at all, two generic questions parameterized by
// the topic name are synthesized. The count cap applies to every pool,
// the synthesized pair included, so count=1 on an unknown topic yields
// a single generic question.
func (b Bank) Select(rng *rand.Rand, topic string, count int, level mastery.Level) []Question {
	qs, _ := b.selectPool(rng, topic, count, level, true)
	return qs
}

// SelectStrict behaves like Select with the generic fallback disabled:
// an unknown topic yields ErrNoQuestions instead of synthetic questions.
func (b Bank) SelectStrict(rng *rand.Rand, topic string, count int, level mastery.Level) ([]Question, error) {
	return b.selectPool(rng, topic, count, level, false)
}

func (b Bank) selectPool(rng *rand.Rand, topic string, count int, level mastery.Level, generic bool) ([]Question, error) {
	if count <= 0 {
		return nil, ErrNoQuestions
	}

	pool := b[topic][level]
	if len(pool) < count {
		if all := b.allLevels(topic); len(all) > 0 {
			pool = all
		}
	}

	if len(pool) == 0 {
		if !generic {
			return nil, ErrNoQuestions
		}
		pool = GenericQuestions(topic)
	}

	return sample(rng, pool, count), nil
}

// allLevels merges a topic's pools across every level, in a fixed
// level order so the result is stable.
func (b Bank) allLevels(topic string) []Question {
	var merged []Question
	for _, lvl := range levelOrder {
		merged = append(merged, b[topic][lvl]...)
	}
	return merged
}

// sample draws min(count, len(pool)) questions without replacement.
func sample(rng *rand.Rand, pool []Question, count int) []Question {
	if count > len(pool) {
		count = len(pool)
	}
	picked := make([]Question, 0, count)
	for _, i := range rng.Perm(len(pool))[:count] {
		picked = append(picked, pool[i])
	}
	return picked
}
