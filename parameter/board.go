package parameter

// Board
const (
	// BoardRows and BoardCols are the fixed grid dimensions
	BoardRows = 12
	BoardCols = 20

	// WalkRightChance is the probability the path walk steps right instead of toward the base row
	WalkRightChance = 0.7

	// ObstacleDensityBase grows by ObstacleDensityPerLevel and is capped at ObstacleDensityMax
	ObstacleDensityBase     = 0.05
	ObstacleDensityPerLevel = 0.005
	ObstacleDensityMax      = 0.2
)
