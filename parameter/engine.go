package parameter

import "time"

// Tick Driver
const (
	// FrameUpdateInterval is the host frame interval at speed 1 (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxStepsPerCall bounds logic steps executed by one driver call, discards catch-up beyond it
	MaxStepsPerCall = 10

	// DefaultSpeed is the game-speed multiplier on new game
	DefaultSpeed = 1.0
)

// AllowedSpeeds lists the speed multipliers accepted by the engine setter
var AllowedSpeeds = []float64{0.5, 1, 1.5, 2, 3, 4}

// Visual Timers (decremented once per driver call, not per logic step)
const (
	// HitFlashTicks is the screen-hit pulse length when an enemy reaches the base
	HitFlashTicks = 20

	// NotificationTicks is the default lifetime of a notification line
	NotificationTicks = 150
)

// Economy
const (
	// StartingMoney is the money balance on new game
	StartingMoney = 600

	// StartingLives is the lives balance on new game
	StartingLives = 20

	// RefundPercent of cost*level is returned on sell and on map regeneration
	RefundPercent = 70

	// UpgradeCostPercent of base cost is charged per current level on upgrade
	UpgradeCostPercent = 75

	// EarnMoneyBase and EarnMoneyPerWave define the flat credit of the earn-money action
	EarnMoneyBase    = 25
	EarnMoneyPerWave = 5
)
