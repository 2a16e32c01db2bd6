package tile

import "math"

// seaColor is the flat colour assigned to any sample at elevation
// zero or below, regardless of its surroundings.
var seaColor = [3]float32{0.2784, 0.6431, 0.7216}

// Elevation knees, in meters, where the colour ramp's hue/value slope
// changes.
const (
	elevKnee1 = 1500.0
	elevKnee2 = 3000.0
	elevKnee3 = 8000.0
)

// rampSaturation is the fixed HSV saturation used across the entire
// ramp (on a 0-255 scale, matching the source constant).
const rampSaturation = 170.0 / 255.0

// elevationColor maps a sample's elevation to an RGB triple in
// [0,1]^3 using the cascading hue/value clamp: a first hue ramp
// running out at knee1 falls through to a second hue ramp, which
// itself clamps at knee2 and falls through to a value ramp that runs
// out at knee3 and falls through to a final brightening ramp. Each
// stage only engages once the previous one has saturated.
func elevationColor(elev int16) [3]float32 {
	if elev <= 0 {
		return seaColor
	}

	e := float64(elev)

	val := 240.0
	hue := 170.0 - 170.0*(e/elevKnee1)
	if hue < 0.0 {
		hue = 360.0 - 100.0*((e-elevKnee1)/elevKnee1)
		if hue < 260.0 {
			hue = 260.0
			val = 240.0 - 200.0*((e-elevKnee2)/5000.0)
			if val < 40.0 {
				val = 40.0 + 215.0*((e-elevKnee3)/850.0)
			}
		}
	}

	r, g, b := hsvToRGB(hue, rampSaturation, val/255.0)
	return [3]float32{float32(r), float32(g), float32(b)}
}

// hsvToRGB converts hue in degrees [0,360), saturation and value in
// [0,1] to linear RGB in [0,1]^3.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	return r1 + m, g1 + m, b1 + m
}
