package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// EaseToward moves current toward target by the given fraction of the gap.
func EaseToward(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}

// DampWithSnap multiplies v by factor and snaps it to zero once its magnitude
// falls under snap.
func DampWithSnap(v, factor, snap float64) float64 {
	v *= factor
	if math.Abs(v) < snap {
		return 0
	}
	return v
}

// DecayImpulse applies one tick of geometric impulse decay. It returns the
// amount to add to velocity this tick and the decayed impulse. Impulses at or
// below threshold contribute nothing and are left as is.
func DecayImpulse(impulse, factor, threshold float64) (applied, next float64) {
	if math.Abs(impulse) <= threshold {
		return 0, impulse
	}
	return impulse, impulse * factor
}

// ClampAxis clamps an input axis to [-1, 1]. NaN reads as centered.
func ClampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
