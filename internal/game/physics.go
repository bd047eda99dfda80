package game

import "math"

// maxPaddleReflect is the steepest reflection angle off the paddle,
// measured from straight up. A center hit returns the ball vertically;
// edge hits approach this angle.
const maxPaddleReflect = 75.0 * math.Pi / 180.0

// resolveWalls bounces the ball off the side and top walls. The bottom is
// open: falling past it is a miss, handled by the session.
func resolveWalls(b *Ball, fieldWidth float64) {
	if b.Left() <= 0 || b.Right() >= fieldWidth {
		b.BounceX()
	}
	if b.Top() <= 0 {
		b.BounceY()
	}
}

// resolvePaddle reflects the ball off the paddle. It triggers only when
// the ball's bottom edge has reached the paddle's top edge, the horizontal
// extents overlap, and the ball is moving downward; the downward check
// prevents re-triggering right after a bounce in the same contact.
//
// The hit offset from the paddle center, normalized by the half-width,
// maps linearly to a reflection angle within ±maxPaddleReflect of straight
// up. The ball leaves upward at its current target speed.
func resolvePaddle(b *Ball, p *Paddle) bool {
	if b.VY <= 0 {
		return false
	}
	if b.Bottom() < p.Top() {
		return false
	}
	if b.Right() < p.Left() || b.Left() > p.Right() {
		return false
	}

	offset := (b.X - p.X) / (p.Width / 2)
	angle := offset * maxPaddleReflect

	b.VX = b.Speed * math.Sin(angle)
	b.VY = -math.Abs(b.Speed * math.Cos(angle))
	return true
}

// resolveBricks hits every brick whose bounding box overlaps the ball's
// (broad-phase AABB test; per-tick displacement is small relative to brick
// size, so no sweep is needed). Each overlapping brick independently
// awards points and inverts the ball's vertical velocity, so two
// simultaneous overlaps cancel out vertically.
//
// Returns the points awarded and the surviving brick set.
func resolveBricks(b *Ball, bricks []Brick) (points int, remaining []Brick) {
	box := b.Bounds()

	remaining = bricks[:0]
	for i := range bricks {
		brick := bricks[i]
		if !box.Intersects(brick.Bounds()) {
			remaining = append(remaining, brick)
			continue
		}

		if brick.Hit() {
			points += PointsDestroyed
		} else {
			points += PointsSurvived
			remaining = append(remaining, brick)
		}
		b.BounceY()
	}
	return points, remaining
}
