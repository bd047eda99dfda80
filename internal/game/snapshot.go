package game

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// Snapshot is a read-only copy of the session state for the renderer.
// The render frame rate may differ from the tick rate; the renderer always
// draws the latest snapshot and never touches the session itself.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	Level int

	State    string
	Started  bool // ticks active (playing or paused)
	Paused   bool
	GameOver bool

	FieldW, FieldH float64

	Paddle PaddleSnapshot
	Ball   BallSnapshot
	Bricks []BrickSnapshot
}

// PaddleSnapshot is the paddle's current geometry.
type PaddleSnapshot struct {
	X, Y          float64 // center
	Width, Height float64
}

// BallSnapshot is the ball's current geometry and velocity.
type BallSnapshot struct {
	X, Y   float64 // center
	Radius float64
	VX, VY float64
	Speed  float64
}

// BrickSnapshot is one brick's current geometry and tier.
type BrickSnapshot struct {
	X, Y          float64 // center
	Width, Height float64
	Hits          int
	Color         core.Color
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	bricks := make([]BrickSnapshot, len(s.bricks))
	for i := range s.bricks {
		b := &s.bricks[i]
		bricks[i] = BrickSnapshot{
			X:      b.X,
			Y:      b.Y,
			Width:  BrickWidth,
			Height: BrickHeight,
			Hits:   b.Hits,
			Color:  b.Color(),
		}
	}

	return Snapshot{
		Tick:  s.tick,
		Score: s.score,
		Lives: s.lives,
		Level: s.level,

		State:    s.state,
		Started:  s.state == StatePlaying || s.state == StatePaused,
		Paused:   s.state == StatePaused,
		GameOver: s.state == StateGameOver,

		FieldW: s.cfg.Field.Width,
		FieldH: s.cfg.Field.Height,

		Paddle: PaddleSnapshot{
			X:      s.paddle.X,
			Y:      s.paddle.Y,
			Width:  s.paddle.Width,
			Height: s.paddle.Height,
		},
		Ball: BallSnapshot{
			X:      s.ball.X,
			Y:      s.ball.Y,
			Radius: s.ball.Radius,
			VX:     s.ball.VX,
			VY:     s.ball.VY,
			Speed:  s.ball.Speed,
		},
		Bricks: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + math.Float64bits(snap.Paddle.Width)
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + math.Float64bits(snap.Ball.VX)
	h = h*31 + math.Float64bits(snap.Ball.VY)
	h = h*31 + math.Float64bits(snap.Ball.Speed)

	for _, b := range snap.Bricks {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + uint64(b.Hits) //#nosec G115 -- hash computation
	}
	return h
}
