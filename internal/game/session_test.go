package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreak/internal/config"
)

func newTestSession(seed int64) *Session {
	return NewSession(config.DefaultGameConfig(), seed)
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(42)

	assert.Equal(t, StateServe, s.State())
	assert.Zero(t, s.Score())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 1, s.Level())
	assert.Len(t, s.bricks, RowsForLevel(1)*LevelCols)

	// Ball parked above the paddle
	assert.Equal(t, s.paddle.X, s.ball.X)
	assert.Equal(t, s.cfg.Field.Height-ballParkOffset, s.ball.Y)
}

func TestLaunchAngleAlwaysUpwardAndNonDegenerate(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := newTestSession(seed)

		mag := math.Hypot(s.ball.VX, s.ball.VY)
		require.InDelta(t, s.cfg.Ball.Speed, mag, 1e-9, "seed %d: launch speed", seed)

		assert.Negative(t, s.ball.VY, "seed %d: launch must be upward", seed)

		// [30°, 150°] from horizontal means |vy| >= speed*sin(30°)
		minVertical := s.cfg.Ball.Speed * math.Sin(30*math.Pi/180)
		assert.GreaterOrEqual(t, -s.ball.VY, minVertical-1e-9, "seed %d: angle outside [30°,150°]", seed)
	}
}

func TestSignalStart(t *testing.T) {
	s := newTestSession(1)

	s.SignalStart()
	assert.Equal(t, StatePlaying, s.State())

	// Idempotent while playing
	s.SignalStart()
	assert.Equal(t, StatePlaying, s.State())

	// Ignored when paused
	s.SignalPause()
	s.SignalStart()
	assert.Equal(t, StatePaused, s.State())
}

func TestSignalPauseToggles(t *testing.T) {
	s := newTestSession(1)

	// No effect before start
	s.SignalPause()
	assert.Equal(t, StateServe, s.State())

	s.SignalStart()
	s.SignalPause()
	assert.Equal(t, StatePaused, s.State())
	s.SignalPause()
	assert.Equal(t, StatePlaying, s.State())
}

func TestAdvanceTickSuppressedUnlessPlaying(t *testing.T) {
	s := newTestSession(1)

	before := s.Snapshot()
	s.AdvanceTick() // serve state
	assert.Equal(t, before.Hash(), s.Snapshot().Hash(), "tick should be a no-op before start")

	s.SignalStart()
	s.SignalPause()
	paused := s.Snapshot()
	s.AdvanceTick()
	assert.Equal(t, paused.Hash(), s.Snapshot().Hash(), "tick should be a no-op while paused")
}

func TestFreeMovementAdvancesByVelocity(t *testing.T) {
	s := newTestSession(7)
	s.SignalStart()

	// Parked at (360, 460) moving upward: the first tick cannot touch
	// walls, paddle, or bricks (lowest brick row is far above the ball's
	// reach in one step... bricks end at y≈138, ball starts at 460).
	before := s.Snapshot()
	s.AdvanceTick()
	after := s.Snapshot()

	assert.InDelta(t, before.Ball.X+before.Ball.VX, after.Ball.X, 1e-12)
	assert.InDelta(t, before.Ball.Y+before.Ball.VY, after.Ball.Y, 1e-12)
	assert.Equal(t, before.Ball.VX, after.Ball.VX, "velocity unchanged without collision")
	assert.Equal(t, before.Ball.VY, after.Ball.VY)
}

func TestMissDecrementsLives(t *testing.T) {
	s := newTestSession(3)
	s.SignalStart()

	// Force the ball to fall past the bottom edge on the next tick
	s.ball.X = 100
	s.ball.Y = s.cfg.Field.Height
	s.ball.VX = 0
	s.ball.VY = s.ball.Speed

	s.AdvanceTick()

	assert.Equal(t, 2, s.Lives())
	assert.Equal(t, StateServe, s.State())
	assert.Equal(t, s.paddle.X, s.ball.X, "ball re-parked above the paddle")
	assert.Equal(t, s.cfg.Field.Height-ballParkOffset, s.ball.Y)
	assert.Negative(t, s.ball.VY, "re-parked ball launches upward again")
}

func TestMissWithLastLifeEndsGame(t *testing.T) {
	s := newTestSession(3)
	s.SignalStart()
	s.lives = 1

	s.ball.X = 100
	s.ball.Y = s.cfg.Field.Height
	s.ball.VX = 0
	s.ball.VY = s.ball.Speed

	s.AdvanceTick()

	assert.Equal(t, StateGameOver, s.State())
	assert.Zero(t, s.Lives())

	// Terminal except via restart
	s.SignalStart()
	assert.Equal(t, StateGameOver, s.State())
	s.SignalPause()
	assert.Equal(t, StateGameOver, s.State())
}

func TestLevelClear(t *testing.T) {
	s := newTestSession(9)
	s.SignalStart()
	speedBefore := s.ball.Speed

	// Reduce the level to one brick placed directly in the ball's path
	s.ball.X = 300
	s.ball.Y = 300
	s.ball.VX = 0
	s.ball.VY = -s.ball.Speed
	s.bricks = []Brick{{X: 300, Y: 295 - s.ball.Speed, Hits: 1}}

	s.AdvanceTick()

	assert.Equal(t, 2, s.Level())
	assert.Equal(t, PointsDestroyed, s.Score())
	assert.Greater(t, s.ball.Speed, speedBefore, "level clear must increase ball speed")
	assert.InDelta(t, speedBefore+s.cfg.Ball.SpeedUpPerLevel, s.ball.Speed, 1e-9)
	assert.Equal(t, StateServe, s.State())

	// New grid built for the new level
	assert.Len(t, s.bricks, RowsForLevel(2)*LevelCols)
	for i, b := range s.bricks {
		assert.Equal(t, HitsForBrick(2, i/LevelCols), b.Hits, "brick %d", i)
	}
}

func TestSignalRestart(t *testing.T) {
	s := newTestSession(11)
	s.SignalStart()

	// Mangle the session, then end it
	s.score = 170
	s.level = 4
	s.lives = 1
	s.ball.Y = s.cfg.Field.Height
	s.ball.VY = s.ball.Speed
	s.AdvanceTick()
	require.Equal(t, StateGameOver, s.State())

	s.SignalRestart()

	assert.Equal(t, StateServe, s.State())
	assert.Zero(t, s.Score())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 1, s.Level())
	assert.Zero(t, s.Tick())
	assert.Len(t, s.bricks, RowsForLevel(1)*LevelCols)
	assert.Equal(t, s.cfg.Ball.Speed, s.ball.Speed, "speed ramp resets with the session")
}

func TestSetPaddleTarget(t *testing.T) {
	s := newTestSession(5)

	// Parked ball follows the paddle before the serve
	s.SetPaddleTarget(200)
	assert.Equal(t, 200.0, s.paddle.X)
	assert.Equal(t, 200.0, s.ball.X)

	// Clamped at the edges
	s.SetPaddleTarget(-1000)
	assert.Equal(t, s.paddle.Width/2, s.paddle.X)
	s.SetPaddleTarget(1e9)
	assert.Equal(t, s.cfg.Field.Width-s.paddle.Width/2, s.paddle.X)

	// In play the ball no longer follows
	s.SignalStart()
	ballX := s.ball.X
	s.SetPaddleTarget(300)
	assert.Equal(t, 300.0, s.paddle.X)
	assert.Equal(t, ballX, s.ball.X)
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(12345)
		s.SignalStart()
		for i := 0; i < 600; i++ {
			if i%7 == 0 {
				s.SetPaddleTarget(float64(100 + (i*13)%500))
			}
			s.AdvanceTick()
			if s.State() == StateGameOver {
				break
			}
		}
		return s.Snapshot()
	}

	first := run()
	second := run()

	assert.Equal(t, first.Hash(), second.Hash(), "same seed and inputs must replay identically")
	assert.Equal(t, first, second)
}

func TestSnapshotReflectsSession(t *testing.T) {
	s := newTestSession(2)
	snap := s.Snapshot()

	assert.Equal(t, s.Score(), snap.Score)
	assert.Equal(t, s.Lives(), snap.Lives)
	assert.Equal(t, s.Level(), snap.Level)
	assert.Equal(t, StateServe, snap.State)
	assert.False(t, snap.Started)
	assert.False(t, snap.Paused)
	assert.False(t, snap.GameOver)
	assert.Equal(t, s.cfg.Field.Width, snap.FieldW)
	assert.Len(t, snap.Bricks, len(s.bricks))
	assert.Equal(t, s.bricks[0].Color(), snap.Bricks[0].Color)

	s.SignalStart()
	assert.True(t, s.Snapshot().Started)

	s.SignalPause()
	snap = s.Snapshot()
	assert.True(t, snap.Started)
	assert.True(t, snap.Paused)
}
