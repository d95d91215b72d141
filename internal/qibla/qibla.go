// Package qibla computes the direction and distance to the Kaaba and fuses
// live compass headings into a render angle for the qibla page.
package qibla

import (
	"fmt"
	"math"

	"github.com/Duvar1/vakit/internal/model"
)

const (
	kaabaLat = 21.4225
	kaabaLng = 39.8262

	earthRadiusKm = 6371
)

// LocationUnavailable is returned when a usable device position cannot be
// obtained. Callers must treat the reading as absent; a zero bearing is
// never a valid substitute.
type LocationUnavailable struct {
	Cause string
}

func (e *LocationUnavailable) Error() string {
	return fmt.Sprintf("location unavailable: %s", e.Cause)
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

// normalizeDeg maps any angle into [0,360). 360.0 collapses to 0.
func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Compute returns the great-circle initial bearing and haversine distance
// from (lat,lng) to the Kaaba. Bearing and distance are rounded to the
// nearest integer degree/km. At the Kaaba itself the bearing is 0 by
// convention and the distance is 0.
func Compute(lat, lng float64) (model.QiblaReading, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return model.QiblaReading{}, &LocationUnavailable{
			Cause: fmt.Sprintf("coordinates out of range: %.4f, %.4f", lat, lng),
		}
	}

	lat1 := toRad(lat)
	lat2 := toRad(kaabaLat)
	dLng := toRad(kaabaLng - lng)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	bearing := normalizeDeg(math.Atan2(y, x) * 180 / math.Pi)

	dLat := lat2 - lat1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c

	reading := model.QiblaReading{
		BearingDeg: normalizeDeg(math.Round(bearing)),
		DistanceKm: math.Round(distance),
		Lat:        lat,
		Lng:        lng,
	}
	if distance < 1e-6 {
		// bearing undefined when standing at the target; the raw distance
		// decides, so points inside the 0 km rounding band keep theirs
		reading.BearingDeg = 0
	}
	return reading, nil
}
