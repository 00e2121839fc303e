package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// String возвращает точку в формате AMap: "lng,lat" с 6 знаками после запятой
func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lon, p.Lat)
}

// Valid проверяет, что координаты в допустимых пределах
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// ParsePoint разбирает строку AMap "lng,lat"
func ParsePoint(s string) (Point, error) {
	lonStr, latStr, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("invalid location %q", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", lonStr, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", latStr, err)
	}
	return Point{Lat: lat, Lon: lon}, nil
}
