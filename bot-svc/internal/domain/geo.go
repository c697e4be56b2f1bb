package domain

import (
	"fmt"
	"math"
	"regexp"
)

const earthRadiusKm = 6371.0

// DeliveryZone is the serviceable circle around the city centre.
type DeliveryZone struct {
	CenterLat float64
	CenterLon float64
	MaxKm     float64
}

func (z DeliveryZone) Check(lat, lon float64) error {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return err
	}
	d := HaversineKm(z.CenterLat, z.CenterLon, lat, lon)
	if d > z.MaxKm {
		return &OutOfZoneError{DistanceKm: d, MaxKm: z.MaxKm}
	}
	return nil
}

func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: coordinates %f,%f out of range", ErrValidation, lat, lon)
	}
	return nil
}

func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func MapLink(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", lat, lon)
}

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: phone number %q", ErrValidation, phone)
	}
	return nil
}
