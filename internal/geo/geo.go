package geo

import (
	"errors"
	"math"
)

// EarthRadiusKm is Earth's mean radius in kilometers for the Haversine formula.
const EarthRadiusKm = 6371.0

// ErrInvalidSteps is returned when a route is requested with fewer than one step.
var ErrInvalidSteps = errors.New("route steps must be at least 1")

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	// Lat is the latitude in decimal degrees.
	Lat float64 `json:"latitude"`
	// Lng is the longitude in decimal degrees.
	Lng float64 `json:"longitude"`
}

// BuildRoute produces steps+1 waypoints from origin to dest by linear
// interpolation of latitude and longitude independently. The first point
// equals origin and the last equals dest. Deterministic for equal inputs.
func BuildRoute(origin, dest Point, steps int) ([]Point, error) {
	if steps < 1 {
		return nil, ErrInvalidSteps
	}

	route := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		route = append(route, Point{
			Lat: origin.Lat + (dest.Lat-origin.Lat)*t,
			Lng: origin.Lng + (dest.Lng-origin.Lng)*t,
		})
	}
	return route, nil
}

// Bearing calculates the initial bearing in degrees from one point to
// another. The result is wrapped into [0, 360). Bearing(p, p) is 0.
func Bearing(from, to Point) float64 {
	dLon := toRad(to.Lng - from.Lng)
	lat1 := toRad(from.Lat)
	lat2 := toRad(to.Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(toDeg(math.Atan2(y, x))+360, 360)
}

// HaversineKm calculates the great-circle distance between two points in
// kilometers. Symmetric in its arguments and zero for identical points.
func HaversineKm(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*sinLng*sinLng
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Midpoint returns the arithmetic midpoint between two points. Used to
// center a viewport between route endpoints; not a geodesic midpoint.
func Midpoint(a, b Point) Point {
	return Point{
		Lat: (a.Lat + b.Lat) / 2,
		Lng: (a.Lng + b.Lng) / 2,
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
