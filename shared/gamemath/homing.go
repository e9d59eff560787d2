package gamemath

// SteerToward nudges vy so that an object at y moves toward targetY, changing
// it by at most rate per call and never past ±maxVY.
func SteerToward(vy, y, targetY, rate, maxVY float64) float64 {
	delta := targetY - y
	switch {
	case delta > rate:
		delta = rate
	case delta < -rate:
		delta = -rate
	}
	return ClampSpeed(vy+delta, maxVY)
}

// MovingToward reports whether horizontal velocity vx carries x toward targetX.
func MovingToward(x, vx, targetX float64) bool {
	return (vx > 0 && targetX > x) || (vx < 0 && targetX < x)
}
