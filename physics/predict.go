package physics

// PredictPath forecasts a collision-free flight path by replaying the
// stepper's exact force and integration formulas: gravity, then damping,
// then position integration, per fixed tick. Any divergence from World.Step
// is a bug, since the path exists only to preview the real flight.
//
// velocity must already be launch-scaled (see Slingshot.EndAim). The replay
// stops after maxSteps points, when the point crosses the ground line, or
// when it leaves the horizontal range [minX, maxX].
func PredictPath(p Params, start, velocity Vec2, maxSteps int, groundY, minX, maxX float64) []Vec2 {
	points := make([]Vec2, 0, maxSteps)
	pos, vel := start, velocity

	for i := 0; i < maxSteps; i++ {
		vel.Y += p.Gravity * p.TimeStep
		vel = vel.Scale(p.Damping)
		pos = pos.Add(vel.Scale(p.TimeStep))

		points = append(points, pos)
		if pos.Y >= groundY || pos.X < minX || pos.X > maxX {
			break
		}
	}
	return points
}
