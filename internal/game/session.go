package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/brickbreak/internal/config"
)

// Session state constants.
const (
	StateServe    = "serve"    // Ball parked above paddle, waiting for start
	StatePlaying  = "playing"  // Ticks active
	StatePaused   = "paused"   // Ticks suppressed, resumable
	StateGameOver = "gameover" // Terminal; only restart leaves it
)

// Launch angles are drawn uniformly from [30°, 150°] measured from the
// horizontal, so the initial direction is always upward and never
// degenerate.
const (
	launchAngleMin  = 30.0 * math.Pi / 180.0
	launchAngleSpan = 120.0 * math.Pi / 180.0
)

// ballParkOffset is the parked ball's center distance from the bottom edge.
const ballParkOffset = 60.0

// Session is one full game: paddle, ball, the current level's brick set,
// and the score/lives/level state machine. It owns all entities; the
// platform layer reads them through Snapshot and never mutates them.
//
// All methods must be called from a single goroutine. Input methods
// (SetPaddleTarget, Signal*) are plain non-blocking mutations applied
// between ticks; AdvanceTick never waits on input.
type Session struct {
	cfg config.GameConfig
	rng *rand.Rand

	paddle Paddle
	ball   Ball
	bricks []Brick

	score int
	lives int
	level int
	state string
	tick  uint64
}

// NewSession creates a session in the serve state with a full brick grid
// for level 1. The seed drives launch-angle randomization; layouts are
// deterministic regardless.
func NewSession(cfg config.GameConfig, seed int64) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s
}

// reset restores the pristine level-1 state. SignalRestart reuses it, so
// restarting is equivalent to constructing a fresh session (the RNG stream
// carries over; only launch angles consume it).
func (s *Session) reset() {
	cfg := s.cfg

	s.score = 0
	s.lives = cfg.Gameplay.Lives
	s.level = 1
	s.tick = 0

	s.paddle = NewPaddle(
		cfg.Field.Width/2,
		cfg.Field.Height-cfg.Paddle.BottomOffset,
		cfg.Paddle.Width,
		cfg.Paddle.Height,
		cfg.Field.Width,
	)
	s.ball = Ball{
		Radius: cfg.Ball.Radius,
		Speed:  cfg.Ball.Speed,
	}
	s.bricks = BuildLevel(s.level, cfg.Field.Width)
	s.parkBall()
	s.state = StateServe
}

// parkBall repositions the ball above the paddle and gives it a fresh
// randomized upward launch direction at the current target speed.
func (s *Session) parkBall() {
	s.ball.X = s.paddle.X
	s.ball.Y = s.cfg.Field.Height - ballParkOffset

	angle := launchAngleMin + s.rng.Float64()*launchAngleSpan
	s.ball.VX = s.ball.Speed * math.Cos(angle)
	s.ball.VY = -math.Abs(s.ball.Speed * math.Sin(angle))
}

// AdvanceTick advances the simulation by one fixed step. It is a no-op
// unless the session is playing. Collision order is fixed: walls, then
// paddle, then bricks; later checks see the post-earlier-check velocity.
func (s *Session) AdvanceTick() {
	if s.state != StatePlaying {
		return
	}
	s.tick++

	s.ball.Move()

	resolveWalls(&s.ball, s.cfg.Field.Width)
	resolvePaddle(&s.ball, &s.paddle)

	points, remaining := resolveBricks(&s.ball, s.bricks)
	s.score += points
	s.bricks = remaining

	// Bottom is a miss, not a bounce.
	if s.ball.Bottom() >= s.cfg.Field.Height {
		s.handleMiss()
		return
	}

	if len(s.bricks) == 0 {
		s.handleLevelClear()
	}
}

// handleMiss consumes a life. With lives remaining the ball re-parks and
// the session waits for the next serve; at zero the session ends.
func (s *Session) handleMiss() {
	s.lives--
	if s.lives <= 0 {
		s.state = StateGameOver
		return
	}
	s.parkBall()
	s.state = StateServe
}

// handleLevelClear advances to the next level: harder bricks, faster ball,
// ball re-parked for the next serve.
func (s *Session) handleLevelClear() {
	s.level++
	s.ball.IncreaseSpeed(s.cfg.Ball.SpeedUpPerLevel)
	s.bricks = BuildLevel(s.level, s.cfg.Field.Width)
	s.parkBall()
	s.state = StateServe
}

// SetPaddleTarget moves the paddle center toward x, clamped to the field.
// While waiting for a serve the parked ball follows the paddle.
func (s *Session) SetPaddleTarget(x float64) {
	s.paddle.MoveTo(x)
	if s.state == StateServe {
		s.ball.X = s.paddle.X
	}
}

// SignalStart launches the ball. Idempotent while playing; ignored when
// paused or after game over.
func (s *Session) SignalStart() {
	if s.state == StateServe {
		s.state = StatePlaying
	}
}

// SignalPause toggles between playing and paused. No effect in other
// states.
func (s *Session) SignalPause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// SignalRestart fully resets the session: score, lives, level, entities,
// and brick grid. Valid in any state, including game over.
func (s *Session) SignalRestart() {
	s.reset()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Level returns the current level number, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// State returns the current state constant.
func (s *Session) State() string {
	return s.state
}

// Tick returns the number of simulation steps taken while playing.
func (s *Session) Tick() uint64 {
	return s.tick
}
