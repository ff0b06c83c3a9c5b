package mastery

// Buckets groups topics by performance trend and overall level.
// A topic can appear in one trend bucket and one overall bucket at once.
type Buckets struct {
	Improving     []string
	Declining     []string
	Consistent    []string
	TopPerforming []string
	Struggling    []string
}

// Trend bucket thresholds: the recent-vs-earlier average must move by
// more than this many points to count as improving or declining.
const trendDelta = 10.0

// Overall bucket thresholds on the all-time average.
const (
	topPerformingMin = 85.0
	strugglingMax    = 60.0
)

// ComputeBuckets analyzes every topic with at least three scores.
// Trend buckets compare the mean of the last three scores against the
// mean of everything before them (so they need more than three scores);
// overall buckets use the all-time mean. Topics are visited in ledger
// order so output is deterministic.
func ComputeBuckets(l Ledger) Buckets {
	var b Buckets

	for _, topic := range l.Topics {
		scores := l.Scores[topic]
		if len(scores) < 3 {
			continue
		}

		recent := scores[len(scores)-3:]
		earlier := scores[:len(scores)-3]

		if len(earlier) > 0 {
			diff := mean(recent) - mean(earlier)
			switch {
			case diff > trendDelta:
				b.Improving = append(b.Improving, topic)
			case diff < -trendDelta:
				b.Declining = append(b.Declining, topic)
			default:
				b.Consistent = append(b.Consistent, topic)
			}
		}

		overall := mean(scores)
		if overall >= topPerformingMin {
			b.TopPerforming = append(b.TopPerforming, topic)
		} else if overall < strugglingMax {
			b.Struggling = append(b.Struggling, topic)
		}
	}

	return b
}

// mean requires a non-empty slice.
func mean(scores []float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
