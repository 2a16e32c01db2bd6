package earthmath

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSphericalCartesianRoundTrip(t *testing.T) {
	cases := []struct {
		lon, lat, radius float64
	}{
		{0, 0, EarthRadius},
		{90, 0, EarthRadius},
		{180, 45, EarthRadius + 1000},
		{270, -30, EarthRadius + 5000},
		{359, 89, EarthRadius},
	}

	for _, c := range cases {
		v := SphericalToCartesian(c.lon, c.lat, c.radius)
		lon, lat, radius := CartesianToSpherical(v)

		if !almostEqual(radius, c.radius, 1e-6) {
			t.Errorf("radius round trip: got %v want %v", radius, c.radius)
		}
		if !almostEqual(lat, c.lat, 1e-6) {
			t.Errorf("lat round trip: got %v want %v", lat, c.lat)
		}
		wantLon := c.lon
		if !almostEqual(lon, wantLon, 1e-6) && !almostEqual(lon+360, wantLon, 1e-6) && !almostEqual(lon, wantLon+360, 1e-6) {
			t.Errorf("lon round trip: got %v want %v", lon, wantLon)
		}
	}
}

func TestNormalFromOrderMatters(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	n1 := NormalFrom(a, b)
	n2 := NormalFrom(b, a)

	if n1.Add(n2).Length() > 1e-9 {
		t.Fatalf("expected NormalFrom(a,b) == -NormalFrom(b,a), got %v and %v", n1, n2)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	if !almostEqual(n.Length(), 1.0, 1e-9) {
		t.Fatalf("expected unit length, got %v", n.Length())
	}

	zero := Vec3{}
	if zero.Normalize() != zero {
		t.Fatalf("expected zero vector normalize to stay zero")
	}
}
