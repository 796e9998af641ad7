package flappy

// CheckCollisions tests the flyer against every obstacle in creation order.
// The first overlap stops the scan. Until then, each uncounted top obstacle
// whose right edge is left of the flyer's bounds is marked counted.
// It returns whether a collision happened and how many points were scored.
func CheckCollisions(f *Flyer, obstacles []*Obstacle) (hit bool, scored int) {
	fb := f.Bounds()
	for _, o := range obstacles {
		if fb.Intersects(o.Bounds()) {
			return true, scored
		}
		if o.Orientation == Top && !o.Counted && o.Right() < fb.X {
			o.Counted = true
			scored++
		}
	}
	return false, scored
}
