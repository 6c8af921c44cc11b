package geo

import (
	"math"
	"strings"
)

// Coordinate is a reference point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

type cityEntry struct {
	name  string
	coord Coordinate
}

// cities is the fixed reference table. Declaration order matters: the
// substring fallback in Resolve returns the first entry that matches.
var cities = []cityEntry{
	{"paris", Coordinate{48.8566, 2.3522}},
	{"marseille", Coordinate{43.2965, 5.3698}},
	{"lyon", Coordinate{45.7640, 4.8357}},
	{"toulouse", Coordinate{43.6047, 1.4442}},
	{"nice", Coordinate{43.7102, 7.2620}},
	{"nantes", Coordinate{47.2184, -1.5536}},
	{"montpellier", Coordinate{43.6108, 3.8767}},
	{"strasbourg", Coordinate{48.5734, 7.7521}},
	{"bordeaux", Coordinate{44.8378, -0.5792}},
	{"lille", Coordinate{50.6292, 3.0573}},
	{"rennes", Coordinate{48.1173, -1.6778}},
	{"reims", Coordinate{49.2583, 4.0317}},
	{"toulon", Coordinate{43.1242, 5.9280}},
	{"saint etienne", Coordinate{45.4397, 4.3872}},
	{"le havre", Coordinate{49.4944, 0.1079}},
	{"grenoble", Coordinate{45.1885, 5.7245}},
	{"dijon", Coordinate{47.3220, 5.0415}},
	{"angers", Coordinate{47.4784, -0.5632}},
	{"nîmes", Coordinate{43.8367, 4.3601}},
	{"villeurbanne", Coordinate{45.7719, 4.8902}},
	{"clermont ferrand", Coordinate{45.7772, 3.0870}},
	{"le mans", Coordinate{48.0061, 0.1996}},
	{"aix en provence", Coordinate{43.5297, 5.4474}},
	{"brest", Coordinate{48.3904, -4.4861}},
	{"tours", Coordinate{47.3941, 0.6848}},
	{"amiens", Coordinate{49.8941, 2.2958}},
	{"limoges", Coordinate{45.8336, 1.2611}},
	{"annecy", Coordinate{45.8992, 6.1294}},
	{"perpignan", Coordinate{42.6887, 2.8948}},
	{"boulogne billancourt", Coordinate{48.8397, 2.2399}},
}

func normalizeCity(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "st ") {
		s = "saint " + strings.TrimPrefix(s, "st ")
	}
	return s
}

// Resolve maps a free-text city name to its reference coordinate. An
// exact match against the table wins; otherwise the first entry (in
// table order) that contains the input, or is contained by it, is
// returned. Unknown cities resolve to absence, never an error.
func Resolve(name string) (Coordinate, bool) {
	key := normalizeCity(name)
	if key == "" {
		return Coordinate{}, false
	}

	for _, e := range cities {
		if e.name == key {
			return e.coord, true
		}
	}

	for _, e := range cities {
		if strings.Contains(key, e.name) || strings.Contains(e.name, key) {
			return e.coord, true
		}
	}

	return Coordinate{}, false
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates
// (haversine formula).
func DistanceKm(a, b Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180.0
	deltaLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
