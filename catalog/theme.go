package catalog

import "github.com/lixenwraith/tower-siege/parameter"

// Theme is the environmental modifier set of one map sector
type Theme struct {
	Key  string
	Name string

	TowerDamage   float64
	TowerRange    float64
	TowerCooldown float64
	EnemySpeed    float64
	EnemyHP       float64

	// MoneyBonus is added to every kill reward
	MoneyBonus int

	// Ground and Path are host color hints
	Ground string
	Path   string
}

// DefaultThemes is ordered by sector
var DefaultThemes = []Theme{
	{Key: "meadow", Name: "Meadow", TowerDamage: 1, TowerRange: 1, TowerCooldown: 1, EnemySpeed: 1, EnemyHP: 1,
		Ground: "#1f3a1f", Path: "#8a7048"},
	{Key: "desert", Name: "Desert", TowerDamage: 1, TowerRange: 1.1, TowerCooldown: 1.05, EnemySpeed: 1.1, EnemyHP: 1,
		MoneyBonus: 2, Ground: "#5a4a20", Path: "#c8b070"},
	{Key: "tundra", Name: "Tundra", TowerDamage: 0.95, TowerRange: 1, TowerCooldown: 1.15, EnemySpeed: 0.85, EnemyHP: 1.15,
		MoneyBonus: 3, Ground: "#304050", Path: "#d0e0f0"},
	{Key: "volcano", Name: "Volcano", TowerDamage: 1.15, TowerRange: 0.95, TowerCooldown: 1, EnemySpeed: 1.15, EnemyHP: 1.2,
		MoneyBonus: 4, Ground: "#3a1a10", Path: "#a04020"},
	{Key: "void", Name: "Void", TowerDamage: 1.1, TowerRange: 1.1, TowerCooldown: 0.9, EnemySpeed: 1.2, EnemyHP: 1.35,
		MoneyBonus: 5, Ground: "#100818", Path: "#6040a0"},
}

// SectorIndex returns the theme index for wave
func SectorIndex(wave, themes int) int {
	if themes <= 0 {
		return 0
	}
	sector := (max(wave, 1) - 1) / parameter.WaveSectorLength
	return sector % themes
}
