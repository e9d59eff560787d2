package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks between decisions
	AttackRange      float64 // Distance to start attacking
	ChaseRange       float64 // Distance to start chasing
	RetreatThreshold float64 // Health fraction to start retreating
	DashChance       float64 // Chance per decision to dash toward the target
	ItemChance       float64 // Chance per decision to use the selected item
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// PathfindingConfig tunes the bot's navigation grid
type PathfindingConfig struct {
	CellSize       float64 // grid cell in pixels; keep it at or below the actor width
	RepathInterval int     // ticks between path searches while grounded
	JumpMargin     float64 // pixels kept in reserve below the double-jump apex
	MaxJumpReach   int     // cells an upward jump may drift sideways
	MaxDropReach   int     // cells a drop may drift sideways
	Arrive         float64 // horizontal distance at which a waypoint counts as reached
	HoldBand       float64 // dead band around the take-off point
	ApexSpeed      float64 // rise speed below which the bot spends its double jump
}

// Bot holds bot AI configuration
var Bot BotConfigData

// Pathfinding holds navigation grid tuning
var Pathfinding PathfindingConfig

func init() {
	Pathfinding = PathfindingConfig{
		CellSize:       20,
		RepathInterval: 20,
		JumpMargin:     10,
		MaxJumpReach:   1,
		MaxDropReach:   2,
		Arrive:         10,
		HoldBand:       3,
		ApexSpeed:      0.5,
	}

	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				AttackRange:      40.0,
				ChaseRange:       400.0,
				RetreatThreshold: 0.2,
				DashChance:       0.02,
				ItemChance:       0.05,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				AttackRange:      45.0,
				ChaseRange:       800.0,
				RetreatThreshold: 0.3,
				DashChance:       0.05,
				ItemChance:       0.1,
			},
			BotDifficultyHard: {
				ReactionDelay:    5, // Near-instant reaction
				AttackRange:      48.0,
				ChaseRange:       1200.0,
				RetreatThreshold: 0.15,
				DashChance:       0.1,
				ItemChance:       0.2,
			},
		},
	}
}

// ParseBotDifficulty maps "easy", "normal" or "hard" to a difficulty. Anything
// else is normal.
func ParseBotDifficulty(name string) BotDifficulty {
	switch name {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	}
	return BotDifficultyNormal
}
