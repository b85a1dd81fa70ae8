package parameter

// Wave Lifecycle
const (
	// WaveCountdownTicks is the idle countdown before the first and every following wave
	WaveCountdownTicks = 180

	// WaveSpawnBase and WaveSpawnPerWave define spawn count: base + floor(wave*perWave)
	WaveSpawnBase    = 5
	WaveSpawnPerWave = 1.5

	// SpawnIntervalBase is ticks between spawns at wave 0, reduced by SpawnIntervalPerWave each wave
	SpawnIntervalBase    = 60
	SpawnIntervalPerWave = 2
	SpawnIntervalMin     = 20

	// WaveDifficultyGrowth is the per-wave exponential HP and reward factor
	WaveDifficultyGrowth = 1.1

	// MapRegenerationInterval is the number of completed waves between map regenerations
	MapRegenerationInterval = 10

	// WaveSectorLength is the number of waves sharing one environmental theme
	WaveSectorLength = 10
)

// Boss Waves
const (
	// BigBossWaveInterval marks waves whose last spawn is a big boss
	BigBossWaveInterval = 10

	// MiniBossWaveInterval marks waves whose last spawn is a mini boss
	MiniBossWaveInterval = 5

	// BossChanceLateWave is the per-spawn roll that lets a boss type into a regular wave
	BossChanceLateWave = 0.05

	// BossLateWaveThreshold is the wave after which boss types may appear in regular waves
	BossLateWaveThreshold = 20

	// HardAbilityWaveThreshold is the last wave that excludes hard-ability enemy types
	HardAbilityWaveThreshold = 10

	MiniBossHPMultiplier = 3.0
	BigBossHPMultiplier  = 8.0

	MiniBossScale = 0.7
	BigBossScale  = 0.5

	// MiniBossShieldRatio and BigBossShieldRatio give the shield pool as a fraction of max HP
	MiniBossShieldRatio = 0.25
	BigBossShieldRatio  = 0.5
)

// Lives lost per escaped enemy by boss class
const (
	EscapeLivesNormal   = 1
	EscapeLivesMiniBoss = 3
	EscapeLivesBigBoss  = 8
)

// Run Buffs
const (
	// BuffChoiceInterval is the number of completed waves between host buff offers
	BuffChoiceInterval = 5
)
