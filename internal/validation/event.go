package validation

import (
	"sort"
	"strings"
	"time"

	"github.com/Izanmg/streamevents/internal/models"
)

// ValidateScheduledFor rejects event timestamps that lie in the past.
// A timestamp equal to now is accepted.
func ValidateScheduledFor(value, now time.Time) error {
	if value.Before(now) {
		return models.NewInvalidScheduleError()
	}
	return nil
}

// NormalizeTags canonicalizes a raw comma-separated tag string: segments are
// trimmed, empties dropped, duplicates removed, and the rest joined with
// ", " in ascending lexicographic order. Sorting is case-sensitive, so
// uppercase tags sort before lowercase ones. Normalizing an already
// normalized string returns it unchanged.
func NormalizeTags(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	sort.Strings(tags)
	return strings.Join(tags, ", ")
}
