package geo

import (
	"math"
	"testing"
)

func TestResolve_Normalization(t *testing.T) {
	base, ok := Resolve("Paris")
	if !ok {
		t.Fatalf("expected Paris to resolve")
	}

	for _, in := range []string{"paris", " PARIS ", "Paris"} {
		got, ok := Resolve(in)
		if !ok {
			t.Fatalf("expected %q to resolve", in)
		}
		if got != base {
			t.Fatalf("expected %q to resolve to the same coordinate as Paris", in)
		}
	}
}

func TestResolve_HyphensAndSaintPrefix(t *testing.T) {
	want, ok := Resolve("saint etienne")
	if !ok {
		t.Fatalf("expected saint etienne to resolve")
	}

	for _, in := range []string{"Saint-Étienne", "St-Etienne", "st etienne"} {
		got, ok := Resolve(in)
		if !ok {
			t.Fatalf("expected %q to resolve", in)
		}
		if got != want {
			t.Fatalf("expected %q to resolve to saint etienne", in)
		}
	}
}

func TestResolve_SubstringFallback(t *testing.T) {
	want, _ := Resolve("aix en provence")

	got, ok := Resolve("Aix-en-Provence Centre")
	if !ok {
		t.Fatalf("expected substring match for Aix-en-Provence Centre")
	}
	if got != want {
		t.Fatalf("expected coordinate of aix en provence")
	}

	// Input contained by a table key also matches.
	got, ok = Resolve("etienne")
	if !ok {
		t.Fatalf("expected etienne to match saint etienne")
	}
	st, _ := Resolve("saint etienne")
	if got != st {
		t.Fatalf("expected coordinate of saint etienne")
	}
}

func TestResolve_Miss(t *testing.T) {
	if _, ok := Resolve(""); ok {
		t.Fatalf("expected empty input to resolve to absence")
	}
	if _, ok := Resolve("   "); ok {
		t.Fatalf("expected blank input to resolve to absence")
	}
	if _, ok := Resolve("Atlantis"); ok {
		t.Fatalf("expected unknown city to resolve to absence")
	}
}

func TestDistanceKm_Properties(t *testing.T) {
	paris, _ := Resolve("paris")
	lyon, _ := Resolve("lyon")

	if d := DistanceKm(paris, paris); d != 0 {
		t.Fatalf("expected zero distance for identical coordinates, got %f", d)
	}

	ab := DistanceKm(paris, lyon)
	ba := DistanceKm(lyon, paris)
	if ab != ba {
		t.Fatalf("expected symmetric distance, got %f vs %f", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("expected positive distance, got %f", ab)
	}
}

func TestDistanceKm_ParisLyon(t *testing.T) {
	paris, _ := Resolve("paris")
	lyon, _ := Resolve("lyon")

	d := DistanceKm(paris, lyon)
	if math.Abs(d-392) > 5 {
		t.Fatalf("expected Paris-Lyon around 392 km, got %f", d)
	}
}
