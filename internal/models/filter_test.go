package models

import "testing"

func coordPtr(v float64) *float64 { return &v }

func filterFixture() []*Event {
	return []*Event{
		{
			Title:     "Jazz Night Live",
			Location:  "San Francisco, CA",
			Category:  CategoryMusic,
			Latitude:  coordPtr(37.7749),
			Longitude: coordPtr(-122.4194),
		},
		{
			Title:     "Go Meetup",
			Location:  "Oakland, CA",
			Category:  CategoryTech,
			Latitude:  coordPtr(37.8044),
			Longitude: coordPtr(-122.2712),
		},
		{
			Title:     "Broadway Opening",
			Location:  "New York, NY",
			Category:  CategoryArt,
			Latitude:  coordPtr(40.7128),
			Longitude: coordPtr(-74.0060),
		},
		{
			Title:    "Online Cooking Class",
			Location: "Remote",
			Category: CategoryFood,
			// No coordinates; virtual events never pin a location.
		},
	}
}

func titles(events []*Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestFilterNoPredicatesReturnsAllInOrder(t *testing.T) {
	events := filterFixture()
	got := EventFilter{SearchQuery: "", Category: CategoryAll}.Apply(events)

	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if got[i] != events[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, events[i].Title)
		}
	}
}

func TestFilterSearchQueryCaseInsensitive(t *testing.T) {
	got := EventFilter{SearchQuery: "JAZZ"}.Apply(filterFixture())

	if len(got) != 1 || got[0].Title != "Jazz Night Live" {
		t.Fatalf("query JAZZ matched %v, want [Jazz Night Live]", titles(got))
	}
}

func TestFilterSearchQueryMatchesLocation(t *testing.T) {
	got := EventFilter{SearchQuery: "new york"}.Apply(filterFixture())

	if len(got) != 1 || got[0].Title != "Broadway Opening" {
		t.Fatalf("query new york matched %v, want [Broadway Opening]", titles(got))
	}
}

func TestFilterCategory(t *testing.T) {
	got := EventFilter{Category: "music"}.Apply(filterFixture())

	if len(got) != 1 || got[0].Title != "Jazz Night Live" {
		t.Fatalf("category music matched %v, want [Jazz Night Live]", titles(got))
	}
}

func TestFilterRadiusExcludesFarAndUnpinnedEvents(t *testing.T) {
	got := EventFilter{
		Near: &NearbyFilter{Center: sanFrancisco, RadiusMiles: 50},
	}.Apply(filterFixture())

	want := []string{"Jazz Night Live", "Go Meetup"}
	if len(got) != len(want) {
		t.Fatalf("50mi around SF matched %v, want %v", titles(got), want)
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestFilterPredicatesCombine(t *testing.T) {
	got := EventFilter{
		SearchQuery: "ca",
		Category:    CategoryTech,
		Near:        &NearbyFilter{Center: sanFrancisco, RadiusMiles: 50},
	}.Apply(filterFixture())

	if len(got) != 1 || got[0].Title != "Go Meetup" {
		t.Fatalf("combined filter matched %v, want [Go Meetup]", titles(got))
	}
}

func TestFilterNoMatchesReturnsEmpty(t *testing.T) {
	got := EventFilter{SearchQuery: "quantum chess"}.Apply(filterFixture())

	if len(got) != 0 {
		t.Fatalf("got %v, want no matches", titles(got))
	}
}
