// Package engine is the tower-defense simulation core.
// It owns all mutable game state and advances it in fixed logic steps driven by a host frame loop.
// An Engine is not safe for concurrent use; hosts call it from a single goroutine.
package engine

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-siege/buff"
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/effect"
	"github.com/lixenwraith/tower-siege/maze"
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/status"
	"github.com/lixenwraith/tower-siege/vmath"
)

// ErrInvalidSpeed is returned by SetSpeed for multipliers outside the allowed set
var ErrInvalidSpeed = errors.New("invalid game speed")

// Config holds construction-time settings
type Config struct {
	Rows int
	Cols int

	StartingMoney int
	StartingLives int

	// MaxStepsPerCall bounds catch-up work per driver call
	MaxStepsPerCall int

	// Speed is the multiplier restored on new game
	Speed float64
}

// DefaultConfig returns the stock board and economy
func DefaultConfig() Config {
	return Config{
		Rows:            parameter.BoardRows,
		Cols:            parameter.BoardCols,
		StartingMoney:   parameter.StartingMoney,
		StartingLives:   parameter.StartingLives,
		MaxStepsPerCall: parameter.MaxStepsPerCall,
		Speed:           parameter.DefaultSpeed,
	}
}

// Engine owns one game session
type Engine struct {
	cfg     Config
	log     zerolog.Logger
	rng     *vmath.FastRand
	catalog *catalog.Catalog
	effects *effect.Manager
	ids     core.IDSource

	// Driver
	tick        uint64
	accumulator float64
	speed       float64
	paused      bool
	gameOver    bool

	// Economy
	money         int
	lives         int
	moneyEarned   int
	enemiesKilled int
	towersBuilt   int

	// Waves
	wave             int
	countdown        int
	waveInProgress   bool
	remainingToSpawn int
	spawnCooldown    int

	// Board
	grid  [][]maze.Cell
	start core.Point
	base  core.Point
	path  []core.Point
	theme catalog.Theme

	buffs   buff.Tracker
	runMods buff.Modifiers

	enemies     []*Enemy
	towers      []*Tower
	projectiles []*Projectile
	particles   []*Particle

	notification Notification
	hitFlash     int
	pending      *Action
	cues         []Cue

	status *status.Registry
	stats  telemetry
}

type telemetry struct {
	ticks       *atomic.Int64
	stepsLast   *atomic.Int64
	enemies     *atomic.Int64
	towers      *atomic.Int64
	projectiles *atomic.Int64
	particles   *atomic.Int64
	wave        *atomic.Int64
	money       *atomic.Int64
	lives       *atomic.Int64
	speed       *status.Float
	theme       *status.Text
}

// Option configures an Engine at construction
type Option func(*options)

type options struct {
	rng      *vmath.FastRand
	seed     uint64
	seeded   bool
	log      zerolog.Logger
	catalog  *catalog.Catalog
	registry *effect.Registry
	status   *status.Registry
}

// WithSeed makes every random draw reproducible
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRand injects a shared generator, takes precedence over WithSeed
func WithRand(rng *vmath.FastRand) Option {
	return func(o *options) { o.rng = rng }
}

// WithLogger sets the diagnostic logger
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithCatalog replaces the tower, enemy and theme tables
func WithCatalog(c *catalog.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithRegistry replaces the status effect registry
func WithRegistry(r *effect.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithStatus publishes telemetry into r
func WithStatus(r *status.Registry) Option {
	return func(o *options) { o.status = r }
}

// New constructs an engine in new-game state
func New(cfg Config, opts ...Option) *Engine {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	def := DefaultConfig()
	if cfg.Rows < 3 || cfg.Cols < 2 {
		cfg.Rows, cfg.Cols = def.Rows, def.Cols
	}
	if cfg.MaxStepsPerCall <= 0 {
		cfg.MaxStepsPerCall = def.MaxStepsPerCall
	}
	if !slices.Contains(parameter.AllowedSpeeds, cfg.Speed) {
		cfg.Speed = def.Speed
	}

	rng := o.rng
	if rng == nil {
		seed := o.seed
		if !o.seeded {
			seed = uint64(time.Now().UnixNano())
		}
		rng = vmath.NewFastRand(seed)
	}
	if o.catalog == nil {
		o.catalog = catalog.Default()
	}
	if o.registry == nil {
		o.registry = effect.DefaultRegistry()
	}
	if o.status == nil {
		o.status = status.NewRegistry()
	}

	e := &Engine{
		cfg:     cfg,
		log:     o.log,
		rng:     rng,
		catalog: o.catalog,
		effects: effect.NewManager(o.registry, o.log),
		status:  o.status,
	}
	e.stats = telemetry{
		ticks:       e.status.Ints.Get("engine.ticks"),
		stepsLast:   e.status.Ints.Get("engine.steps_last"),
		enemies:     e.status.Ints.Get("enemy.count"),
		towers:      e.status.Ints.Get("tower.count"),
		projectiles: e.status.Ints.Get("projectile.count"),
		particles:   e.status.Ints.Get("particle.count"),
		wave:        e.status.Ints.Get("wave.current"),
		money:       e.status.Ints.Get("money.current"),
		lives:       e.status.Ints.Get("lives.current"),
		speed:       e.status.Floats.Get("engine.speed"),
		theme:       e.status.Texts.Get("theme.current"),
	}

	e.log.Info().Uint64("seed", rng.Seed()).Int("rows", cfg.Rows).Int("cols", cfg.Cols).Msg("engine created")
	e.StartNewGame()
	return e
}

// StartNewGame resets all session state and builds a fresh map
func (e *Engine) StartNewGame() {
	e.ids.Reset()
	e.tick = 0
	e.accumulator = 0
	e.speed = e.cfg.Speed
	e.paused = false
	e.gameOver = false

	e.money = e.cfg.StartingMoney
	e.lives = e.cfg.StartingLives
	e.moneyEarned = 0
	e.enemiesKilled = 0
	e.towersBuilt = 0

	e.wave = 1
	e.countdown = parameter.WaveCountdownTicks
	e.waveInProgress = false
	e.remainingToSpawn = 0
	e.spawnCooldown = 0

	e.buffs.Reset()
	e.runMods = buff.Neutral()

	e.enemies = nil
	e.towers = nil
	e.projectiles = nil
	e.particles = nil
	e.notification = Notification{}
	e.hitFlash = 0
	e.pending = nil
	e.cues = nil

	e.buildMap(1)
	e.theme = e.catalog.ThemeForWave(e.wave)
	e.notify(fmt.Sprintf("Sector: %s", e.theme.Name))
	e.publish(0)
}

// buildMap replaces the board with a generated one for level
func (e *Engine) buildMap(level int) {
	res := maze.Generate(maze.Config{Rows: e.cfg.Rows, Cols: e.cfg.Cols, Level: level, Rand: e.rng})
	e.grid = res.Grid
	e.start = res.Start
	e.base = res.Base
	e.path = maze.Trace(res.Grid)
	if len(e.path) < 2 {
		e.log.Error().Int("level", level).Msg("generated map has no traversable path")
	}
}

// SetSpeed selects a multiplier from the allowed set
func (e *Engine) SetSpeed(speed float64) error {
	if !slices.Contains(parameter.AllowedSpeeds, speed) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}
	e.speed = speed
	return nil
}

// Speed returns the current multiplier
func (e *Engine) Speed() float64 { return e.speed }

// ApplyBuff activates a run-level buff and applies its flat lives change
func (e *Engine) ApplyBuff(d buff.Definition) {
	if e.gameOver {
		return
	}
	e.buffs.Add(d)
	e.runMods = e.buffs.Modifiers()
	if d.Lives != 0 {
		e.lives += d.Lives
		e.checkGameOver()
	}
	e.emit(CueEffect)
	e.notify(d.Name)
	e.log.Info().Str("buff", d.ID).Str("rarity", d.Rarity.String()).Msg("buff applied")
}

// Buffs returns the active run-level buffs
func (e *Engine) Buffs() []buff.Active {
	return e.buffs.Active()
}

func (e *Engine) Money() int           { return e.money }
func (e *Engine) Lives() int           { return e.lives }
func (e *Engine) Wave() int            { return e.wave }
func (e *Engine) IsGameOver() bool     { return e.gameOver }
func (e *Engine) WaveInProgress() bool { return e.waveInProgress }
func (e *Engine) IsPaused() bool       { return e.paused }
func (e *Engine) Theme() catalog.Theme { return e.theme }
func (e *Engine) Ticks() uint64        { return e.tick }

// Rand exposes the engine generator so hosts can draw buff choices from the same seeded stream
func (e *Engine) Rand() *vmath.FastRand { return e.rng }

// Catalog returns the tables the engine reads
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Effects returns the effect manager, used by hosts for aura lookups
func (e *Engine) Effects() *effect.Manager { return e.effects }

// Result is the persisted outcome record
type Result struct {
	Wave          int
	EnemiesKilled int
	MoneyEarned   int
	TowersBuilt   int
}

// Result returns the current outcome counters
func (e *Engine) Result() Result {
	return Result{
		Wave:          e.wave,
		EnemiesKilled: e.enemiesKilled,
		MoneyEarned:   e.moneyEarned,
		TowersBuilt:   e.towersBuilt,
	}
}

func (e *Engine) notify(text string) {
	e.notification = Notification{Text: text, Ticks: parameter.NotificationTicks}
}

func (e *Engine) addParticle(p Particle) {
	e.particles = append(e.particles, &p)
}

func (e *Engine) checkGameOver() {
	if e.gameOver || e.lives > 0 {
		return
	}
	e.lives = 0
	e.gameOver = true
	e.paused = true
	e.pending = nil
	e.emit(CueGameOver)
	e.notify("Game over")
	e.log.Info().Int("wave", e.wave).Int("kills", e.enemiesKilled).Int("earned", e.moneyEarned).Msg("game over")
}

func (e *Engine) publish(steps int) {
	e.stats.ticks.Store(int64(e.tick))
	e.stats.stepsLast.Store(int64(steps))
	e.stats.enemies.Store(int64(len(e.enemies)))
	e.stats.towers.Store(int64(len(e.towers)))
	e.stats.projectiles.Store(int64(len(e.projectiles)))
	e.stats.particles.Store(int64(len(e.particles)))
	e.stats.wave.Store(int64(e.wave))
	e.stats.money.Store(int64(e.money))
	e.stats.lives.Store(int64(e.lives))
	e.stats.speed.Store(e.speed)
	e.stats.theme.Store(e.theme.Key)
}
