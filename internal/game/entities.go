// Package game implements the Brick Breaker simulation: entities, collision
// resolution, level building, and the session state machine. It is pure
// logic with no rendering or input dependencies; the platform layer drives
// it through ticks and signals and reads state back through snapshots.
package game

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Brick dimensions are fixed regardless of level or field size.
const (
	BrickWidth  = 75.0
	BrickHeight = 20.0
)

// Points awarded per brick collision.
const (
	PointsDestroyed = 10
	PointsSurvived  = 5
)

// Brick is a destructible block. Position is the center of its box.
type Brick struct {
	X, Y float64
	Hits int // remaining hits, 1-3 while alive
}

// Hit registers one ball contact. It decrements the remaining hit count
// and reports whether the brick is destroyed. Surviving bricks change
// color through their tier (see Color).
func (b *Brick) Hit() bool {
	b.Hits--
	return b.Hits <= 0
}

// Bounds returns the brick's bounding box in field units.
func (b *Brick) Bounds() core.RectF {
	return core.NewRectF(b.X-BrickWidth/2, b.Y-BrickHeight/2, BrickWidth, BrickHeight)
}

// Color returns the display color for the brick's remaining-hits tier.
// Hit counts outside {1,2,3} should not occur; they fall back to a
// neutral color rather than failing.
func (b *Brick) Color() core.Color {
	switch b.Hits {
	case 1:
		return core.ColorBrickTier1
	case 2:
		return core.ColorBrickTier2
	case 3:
		return core.ColorBrickTier3
	default:
		return core.ColorBrickNeutral
	}
}

// Paddle is the player-controlled bat. Position is the center of its box;
// Y never changes during a session.
type Paddle struct {
	X, Y   float64
	Width  float64
	Height float64

	fieldWidth float64 // clamp limit for MoveTo
}

// NewPaddle creates a paddle centered at (x, y) that clamps its movement
// to [0, fieldWidth].
func NewPaddle(x, y, width, height, fieldWidth float64) Paddle {
	p := Paddle{Y: y, Width: width, Height: height, fieldWidth: fieldWidth}
	p.MoveTo(x)
	return p
}

// MoveTo sets the paddle center, clamped so both edges stay inside the
// field. No part of the paddle can ever leave [0, fieldWidth].
func (p *Paddle) MoveTo(xCenter float64) {
	half := p.Width / 2
	p.X = core.ClampF(xCenter, half, p.fieldWidth-half)
}

// Left returns the x-coordinate of the paddle's left edge.
func (p *Paddle) Left() float64 {
	return p.X - p.Width/2
}

// Right returns the x-coordinate of the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width/2
}

// Top returns the y-coordinate of the paddle's top edge.
func (p *Paddle) Top() float64 {
	return p.Y - p.Height/2
}

// Bounds returns the paddle's bounding box in field units.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.Left(), p.Top(), p.Width, p.Height)
}

// Ball is the bouncing ball. Position is its center; Speed is the target
// magnitude of the velocity vector.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Speed  float64
}

// Move advances the ball by one tick's worth of velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// SetSpeed rescales the velocity to the given magnitude while preserving
// direction. A zero-magnitude velocity cannot be rescaled; the call is a
// no-op then (that state never arises by construction, launch velocity is
// never zero).
func (b *Ball) SetSpeed(speed float64) {
	mag := math.Hypot(b.VX, b.VY)
	if mag == 0 {
		return
	}
	scale := speed / mag
	b.VX *= scale
	b.VY *= scale
	b.Speed = speed
}

// IncreaseSpeed adds delta to the current target speed, used once per
// level clear to ramp difficulty.
func (b *Ball) IncreaseSpeed(delta float64) {
	b.SetSpeed(b.Speed + delta)
}

// Left returns the x-coordinate of the ball's left edge.
func (b *Ball) Left() float64 {
	return b.X - b.Radius
}

// Right returns the x-coordinate of the ball's right edge.
func (b *Ball) Right() float64 {
	return b.X + b.Radius
}

// Top returns the y-coordinate of the ball's top edge.
func (b *Ball) Top() float64 {
	return b.Y - b.Radius
}

// Bottom returns the y-coordinate of the ball's bottom edge.
func (b *Ball) Bottom() float64 {
	return b.Y + b.Radius
}

// Bounds returns the ball's bounding box in field units.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.Left(), b.Top(), b.Radius*2, b.Radius*2)
}
