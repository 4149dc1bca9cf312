package models

import (
	"math"
	"testing"
)

var (
	sanFrancisco = Coordinates{Latitude: 37.7749, Longitude: -122.4194}
	newYork      = Coordinates{Latitude: 40.7128, Longitude: -74.0060}
)

func TestDistanceMilesIdenticalPoints(t *testing.T) {
	points := []Coordinates{
		sanFrancisco,
		{Latitude: 0, Longitude: 0},
		{Latitude: -90, Longitude: 180},
	}

	for _, p := range points {
		if d := p.DistanceMiles(p); d != 0 {
			t.Errorf("distance from %+v to itself = %v, want 0", p, d)
		}
	}
}

func TestDistanceMilesSymmetric(t *testing.T) {
	pairs := [][2]Coordinates{
		{sanFrancisco, newYork},
		{{Latitude: 51.5074, Longitude: -0.1278}, {Latitude: -33.8688, Longitude: 151.2093}},
		{{Latitude: 0, Longitude: 0}, {Latitude: 1, Longitude: 1}},
	}

	for _, pair := range pairs {
		ab := pair[0].DistanceMiles(pair[1])
		ba := pair[1].DistanceMiles(pair[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceMilesKnownDistance(t *testing.T) {
	// San Francisco to New York is roughly 2570 miles great-circle.
	d := sanFrancisco.DistanceMiles(newYork)
	if d < 2500 || d > 2650 {
		t.Errorf("SF to NY distance = %v, want ~2570", d)
	}
}

func TestDistanceMilesAntipodal(t *testing.T) {
	a := Coordinates{Latitude: 0, Longitude: 0}
	b := Coordinates{Latitude: 0, Longitude: 180}

	// Half the Earth's circumference, ~12,440 miles.
	d := a.DistanceMiles(b)
	want := math.Pi * earthRadiusMiles
	if math.Abs(d-want) > 1 {
		t.Errorf("antipodal distance = %v, want %v", d, want)
	}
}

func TestEventCoordinates(t *testing.T) {
	lat, lng := 0.0, 0.0
	withCoords := &Event{Latitude: &lat, Longitude: &lng}
	if withCoords.Coordinates() == nil {
		t.Error("event at (0,0) should report coordinates; the origin is a real place")
	}

	withoutCoords := &Event{}
	if withoutCoords.Coordinates() != nil {
		t.Error("event without coordinates should report nil")
	}

	halfSet := &Event{Latitude: &lat}
	if halfSet.Coordinates() != nil {
		t.Error("event with only latitude should report nil")
	}
}
