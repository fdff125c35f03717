package domain

import (
	"math"
	"testing"
)

func TestDistanceKmKnownPair(t *testing.T) {
	seoul := Coordinates{Lat: 37.5665, Lon: 126.9780}
	busan := Coordinates{Lat: 35.1796, Lon: 129.0756}

	got := seoul.DistanceKm(busan)

	// Great-circle Seoul-Busan is roughly 325 km.
	if got < 315 || got > 335 {
		t.Fatalf("DistanceKm(seoul, busan) = %f, want ~325", got)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	pairs := [][2]Coordinates{
		{{Lat: 37.5665, Lon: 126.9780}, {Lat: 35.1796, Lon: 129.0756}},
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 180}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 51.5074, Lon: -0.1278}},
		{{Lat: 89.9, Lon: 10}, {Lat: -89.9, Lon: -170}},
	}

	for _, pair := range pairs {
		ab := pair[0].DistanceKm(pair[1])
		ba := pair[1].DistanceKm(pair[0])
		if math.Abs(ab-ba) > 1e-6 {
			t.Fatalf("distance not symmetric: %f vs %f for %v", ab, ba, pair)
		}
		if ab < 0 {
			t.Fatalf("negative distance %f for %v", ab, pair)
		}
	}
}

func TestDistanceKmZero(t *testing.T) {
	p := Coordinates{Lat: 37.5665, Lon: 126.9780}
	if got := p.DistanceKm(p); got != 0 {
		t.Fatalf("DistanceKm(p, p) = %f, want 0", got)
	}
}

func TestDistanceKmTriangleInequality(t *testing.T) {
	a := Coordinates{Lat: 37.5665, Lon: 126.9780}
	b := Coordinates{Lat: 35.1796, Lon: 129.0756}
	c := Coordinates{Lat: 36.3504, Lon: 127.3845}

	if a.DistanceKm(b) > a.DistanceKm(c)+c.DistanceKm(b)+1e-6 {
		t.Fatalf("triangle inequality violated: d(a,b)=%f > d(a,c)+d(c,b)=%f",
			a.DistanceKm(b), a.DistanceKm(c)+c.DistanceKm(b))
	}
}
