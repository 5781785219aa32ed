// Package geometry provides the math kernels shared by the keyboard
// proximity model and the gesture sampler: distance, angle, and the
// folded signed-angle difference used to detect corners in a touch trace.
package geometry

import "math"

// TwoPi is 2*Pi, used to fold angle differences into [0, Pi].
const TwoPi = math.Pi * 2

// Square returns x*x.
func Square(x float32) float32 {
	return x * x
}

// DistanceInt returns the rounded Euclidean distance between two integer points.
func DistanceInt(x1, y1, x2, y2 int32) int32 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return int32(math.Round(math.Hypot(dx, dy)))
}

// DistanceFloat returns the rounded Euclidean distance between two float points.
func DistanceFloat(x1, y1, x2, y2 float32) int32 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return int32(math.Round(math.Hypot(dx, dy)))
}

// Angle returns atan2(y1-y2, x1-x2). When both points coincide the angle is
// defined as 0 rather than relying on atan2's handling of (0,0).
func Angle(x1, y1, x2, y2 int32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	if dx == 0 && dy == 0 {
		return 0
	}
	return float32(math.Atan2(float64(dy), float64(dx)))
}

// AngleDiff returns the smaller non-negative angle between a1 and a2, folded
// into [0, Pi], then quantized to 4 decimal places so that nearby floats
// produced from different call sites compare equal downstream.
func AngleDiff(a1, a2 float32) float32 {
	delta := float64(a1 - a2)
	if delta < 0 {
		delta = -delta
	}
	if delta > TwoPi {
		delta -= TwoPi * math.Floor(delta/TwoPi)
	}
	if delta > math.Pi {
		delta = TwoPi - delta
	}
	return roundFloat10000(float32(delta))
}

func roundFloat10000(f float32) float32 {
	if f < 1000.0 && f > 0.001 {
		return float32(math.Floor(float64(f)*10000.0) / 10000.0)
	}
	return f
}

// ClampToRect clamps (x,y) to the rectangle [left,top]-[right,bottom] and
// returns the squared distance from the original point to the clamped point.
// Both the x and y edges clamp to their own axis; this is the fixed version
// of the original's edge-Y clamp, which (per the likely source bug it was
// transcribed from) compared against x instead of y.
func ClampToRect(x, y, left, top, right, bottom int32) int32 {
	edgeX := x
	if x < left {
		edgeX = left
	} else if x > right {
		edgeX = right
	}
	edgeY := y
	if y < top {
		edgeY = top
	} else if y > bottom {
		edgeY = bottom
	}
	dx := x - edgeX
	dy := y - edgeY
	return dx*dx + dy*dy
}
