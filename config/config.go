package config

// TickRate is the fixed simulation rate. Every duration in this package is
// counted in ticks at this rate.
const TickRate = 60

// ArenaConfig describes the default arena used when no TMX arena is loaded.
type ArenaConfig struct {
	Width  float64
	Height float64

	// Platforms in insertion order; the first entry is the ground.
	Platforms []Rect

	// Spawn points for actor 1 and actor 2
	Spawns [2]Point

	// Powerups spawn uniformly inside this zone
	PowerupZone Rect
}

// Rect is a plain axis-aligned rectangle used by configuration tables.
type Rect struct {
	X, Y, W, H float64
}

// Point is a plain 2D coordinate.
type Point struct {
	X, Y float64
}

// ActorConfig contains all actor-related configuration values
type ActorConfig struct {
	Width     float64
	Height    float64
	MaxHealth float64

	// Movement
	MaxSpeed          float64
	SpeedBuffMul      float64
	Acceleration      float64 // fraction of the gap to the target speed closed per tick
	Friction          float64 // multiplier applied per tick when no direction is held
	StopThreshold     float64 // |vx| below this snaps to zero
	MoveDeadZone      float64 // |x| must exceed this to count as a held direction
	JumpForce         float64
	DoubleJumpForce   float64
	WallJumpForceX    float64
	WallJumpForceY    float64
	JumpsPerLanding   int
	JumpsAfterWallJmp int
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	Gravity        float64
	WallSlideSpeed float64

	// Knockback impulse decay
	KnockbackDecay     float64
	KnockbackThreshold float64
}

// DashConfig contains dash tuning
type DashConfig struct {
	Distance      float64
	Duration      int
	Cooldown      int
	AxisThreshold float64
	DiagonalScale float64
	VerticalBurst float64 // scale of the initial vertical burst
}

// MeleeVariant is one row of the melee table.
type MeleeVariant struct {
	DamageMul    float64
	KnockbackMul float64
	Cooldown     int
	RangeMul     float64
	LaunchX      float64
	LaunchY      float64
	ResetsCombo  bool
	ShakeTicks   int
	ShakePower   float64
	Finisher     bool
}

// MeleeConfig contains melee combat tuning
type MeleeConfig struct {
	Damage           float64
	Range            float64
	ComboWindow      int
	ComboSteps       int
	ActiveWindow     int
	DirectiveThresh  float64
	LifestealPercent float64
	BerserkDamageMul float64
	Neutral          [3]MeleeVariant // indexed by combo step
	Up               MeleeVariant
	DownAir          MeleeVariant
	DownGround       MeleeVariant
}

// CombatConfig contains damage resolution values
type CombatConfig struct {
	KnockbackForce  float64
	ShieldDamageMul float64
	BlockDamageMul  float64
	DefaultLaunchY  float64
}

// ProjectileProfile describes the kinematics and hitbox of a projectile kind.
type ProjectileProfile struct {
	Width    float64
	Height   float64
	SpeedMul float64
	Life     int
	Piercing bool
	Homing   bool
	ColorTag string
}

// ProjectileConfig contains ranged combat tuning
type ProjectileConfig struct {
	Speed       float64
	Damage      float64
	HomingRate  float64 // max vy change per tick
	HomingMaxVY float64
	Profiles    map[ProjectileKind]ProjectileProfile
}

// ItemsConfig contains inventory and spawner tuning
type ItemsConfig struct {
	MaxSlots        int
	BuffDuration    int
	SpawnInterval   int
	PowerupSize     float64
	PowerupLifetime int // 0 disables timeout
}

// RoundConfig contains round flow values
type RoundConfig struct {
	Duration   int
	ResetDelay int
}

// NetworkConfig contains the sync contract timing
type NetworkConfig struct {
	SyncInterval int
	DefaultPort  uint
	DefaultAddr  string
}

// ScreenShakeConfig contains shake defaults for hits without a variant override
type ScreenShakeConfig struct {
	HitTicks int
	HitPower float64
	MaxPower float64
}

var Arena ArenaConfig
var Actor ActorConfig
var Physics PhysicsConfig
var Dash DashConfig
var Melee MeleeConfig
var Combat CombatConfig
var Projectile ProjectileConfig
var Items ItemsConfig
var Round RoundConfig
var Network NetworkConfig
var ScreenShake ScreenShakeConfig

// Actor slots
const (
	PlayerOne = 1
	PlayerTwo = 2
)

// Facing directions as multipliers
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Arena = ArenaConfig{
		Width:  1200,
		Height: 600,
		Platforms: []Rect{
			{X: 0, Y: 550, W: 1200, H: 50}, // ground
			{X: 300, Y: 400, W: 200, H: 20},
			{X: 700, Y: 400, W: 200, H: 20},
			{X: 500, Y: 250, W: 200, H: 20},
		},
		Spawns: [2]Point{
			{X: 200, Y: 300},
			{X: 1000, Y: 300},
		},
		PowerupZone: Rect{X: 200, Y: 100, W: 800, H: 300},
	}

	Actor = ActorConfig{
		Width:     20,
		Height:    40,
		MaxHealth: 100,

		MaxSpeed:          3,
		SpeedBuffMul:      1.5,
		Acceleration:      0.5,
		Friction:          0.85,
		StopThreshold:     0.1,
		MoveDeadZone:      0.2,
		JumpForce:         7,
		DoubleJumpForce:   6,
		WallJumpForceX:    6,
		WallJumpForceY:    8,
		JumpsPerLanding:   2,
		JumpsAfterWallJmp: 1,
	}

	Physics = PhysicsConfig{
		Gravity:        0.25,
		WallSlideSpeed: 2,

		KnockbackDecay:     0.9,
		KnockbackThreshold: 0.1,
	}

	Dash = DashConfig{
		Distance:      100,
		Duration:      10,
		Cooldown:      60,
		AxisThreshold: 0.2,
		DiagonalScale: 0.707,
		VerticalBurst: 0.6,
	}

	Melee = MeleeConfig{
		Damage:           15,
		Range:            50,
		ComboWindow:      40,
		ComboSteps:       3,
		ActiveWindow:     12, // 200ms
		DirectiveThresh:  0.5,
		LifestealPercent: 0.2,
		BerserkDamageMul: 1.5,
		Neutral: [3]MeleeVariant{
			{DamageMul: 1, KnockbackMul: 1, Cooldown: 20, RangeMul: 1, LaunchX: 1, LaunchY: 0.5},
			{DamageMul: 1.2, KnockbackMul: 1, Cooldown: 25, RangeMul: 1, LaunchX: 1, LaunchY: 0.5},
			{DamageMul: 2, KnockbackMul: 2, Cooldown: 45, RangeMul: 1.5, LaunchX: 1, LaunchY: 0.5,
				ShakeTicks: 15, ShakePower: 10, Finisher: true},
		},
		Up: MeleeVariant{
			DamageMul: 0.8, KnockbackMul: 1, Cooldown: 30, RangeMul: 1,
			LaunchX: 0.2, LaunchY: 2.5, ResetsCombo: true,
		},
		DownAir: MeleeVariant{
			DamageMul: 1.5, KnockbackMul: 1.5, Cooldown: 45, RangeMul: 1,
			LaunchX: 0.5, LaunchY: -3, ResetsCombo: true,
			ShakeTicks: 20, ShakePower: 10, Finisher: true,
		},
		DownGround: MeleeVariant{
			DamageMul: 0.7, KnockbackMul: 1, Cooldown: 20, RangeMul: 1,
			LaunchX: 0.5, LaunchY: 1.5, ResetsCombo: true,
		},
	}

	Combat = CombatConfig{
		KnockbackForce:  5,
		ShieldDamageMul: 0.5,
		BlockDamageMul:  0.4, // 60% reduction
		DefaultLaunchY:  0.5,
	}

	Projectile = ProjectileConfig{
		Speed:       10,
		Damage:      10,
		HomingRate:  0.3,
		HomingMaxVY: 4,
		Profiles: map[ProjectileKind]ProjectileProfile{
			ProjectileSwarm:    {Width: 8, Height: 4, SpeedMul: 1, Life: 80, Homing: true, ColorTag: "swarm"},
			ProjectileFireball: {Width: 25, Height: 15, SpeedMul: 1, Life: 120, Piercing: true, ColorTag: "fire"},
			ProjectileBolt:     {Width: 15, Height: 3, SpeedMul: 1.5, Life: 100, ColorTag: "bolt"},
		},
	}

	Items = ItemsConfig{
		MaxSlots:        2,
		BuffDuration:    5 * TickRate,
		SpawnInterval:   15 * TickRate,
		PowerupSize:     20,
		PowerupLifetime: 0,
	}

	Round = RoundConfig{
		Duration:   99 * TickRate,
		ResetDelay: 3 * TickRate,
	}

	Network = NetworkConfig{
		SyncInterval: 3, // 50ms
		DefaultPort:  7373,
		DefaultAddr:  "localhost:7373",
	}

	ScreenShake = ScreenShakeConfig{
		HitTicks: 6,
		HitPower: 3,
		MaxPower: 20,
	}

	buildCatalogue()
}
