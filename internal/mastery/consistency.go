package mastery

import "time"

// Consistency rates how recently the learner has been active.
type Consistency string

const (
	ConsistencyNone       Consistency = "No activity"
	ConsistencyVeryActive Consistency = "Very Active"
	ConsistencyConsistent Consistency = "Consistent"
	ConsistencyModerate   Consistency = "Moderate"
	ConsistencyInactive   Consistency = "Inactive"
)

// Rate buckets the whole days elapsed since the last recorded activity.
// A nil lastActivity means the learner has never recorded anything.
// A lastActivity in the future (clock skew) clamps to zero days.
func Rate(lastActivity *time.Time, now time.Time) Consistency {
	if lastActivity == nil {
		return ConsistencyNone
	}

	days := int(now.Sub(*lastActivity).Hours() / 24)
	if days < 0 {
		days = 0
	}

	switch {
	case days == 0:
		return ConsistencyVeryActive
	case days <= 2:
		return ConsistencyConsistent
	case days <= 7:
		return ConsistencyModerate
	default:
		return ConsistencyInactive
	}
}
