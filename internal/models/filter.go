package models

import "strings"

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "All"

// NearbyFilter restricts events to a radius around a reference point.
type NearbyFilter struct {
	Center      Coordinates
	RadiusMiles float64
}

// EventFilter narrows an in-memory event collection. All active predicates
// are ANDed; inactive predicates match everything.
type EventFilter struct {
	// SearchQuery matches title or location, case-insensitively. Empty
	// matches everything.
	SearchQuery string
	// Category matches exactly, case-insensitively. Empty or "All"
	// disables the predicate.
	Category string
	// Near, when non-nil, keeps only events within RadiusMiles of Center.
	// Events without coordinates never match while this is set.
	Near *NearbyFilter
}

// Apply returns the events satisfying every active predicate, preserving
// the input order. One pass, no caching; callers re-run it whenever the
// filter changes.
func (f EventFilter) Apply(events []*Event) []*Event {
	query := strings.ToLower(f.SearchQuery)
	filterCategory := f.Category != "" && !strings.EqualFold(f.Category, CategoryAll)

	matched := make([]*Event, 0, len(events))
	for _, event := range events {
		if query != "" {
			title := strings.ToLower(event.Title)
			location := strings.ToLower(event.Location)
			if !strings.Contains(title, query) && !strings.Contains(location, query) {
				continue
			}
		}

		if filterCategory && !strings.EqualFold(event.Category, f.Category) {
			continue
		}

		if f.Near != nil {
			coords := event.Coordinates()
			if coords == nil {
				continue
			}
			if f.Near.Center.DistanceMiles(*coords) > f.Near.RadiusMiles {
				continue
			}
		}

		matched = append(matched, event)
	}

	return matched
}
