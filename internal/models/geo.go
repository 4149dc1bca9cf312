package models

import "math"

// earthRadiusMiles is the mean Earth radius used for great-circle distances.
const earthRadiusMiles = 3959.0

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// DistanceMiles returns the great-circle distance to other in miles, using
// the haversine formula. Inputs outside [-90,90]/[-180,180] are not
// rejected; the result is simply meaningless.
func (c Coordinates) DistanceMiles(other Coordinates) float64 {
	lat1 := degreesToRadians(c.Latitude)
	lat2 := degreesToRadians(other.Latitude)
	dLat := degreesToRadians(other.Latitude - c.Latitude)
	dLon := degreesToRadians(other.Longitude - c.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	chord := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * chord
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
