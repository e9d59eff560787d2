package systems

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi/features/events"
)

// MeleePerformed fires for every swing, hit or whiff.
type MeleePerformed struct {
	ActorID     int
	ComboCount  int
	Directive   cfg.MeleeDirective
	X, Y        float64
	FacingRight bool
	Remote      bool // mirrored from the opponent's melee message
}

// HitOccurred is hit feedback for the render collaborator.
type HitOccurred struct {
	AttackerID int
	DefenderID int
	X, Y       float64
	ColorTag   string
	Damage     float64
	LaunchX    float64
	LaunchY    float64
	Finisher   bool
	Blocked    bool
}

// ScreenShakeRequested asks for a shake of Intensity pixels decaying over
// Duration ticks.
type ScreenShakeRequested struct {
	Duration  int
	Intensity float64
}

// SoundCued is a fire-and-forget audio trigger.
type SoundCued struct {
	ActorID int
	Cue     cfg.SoundCue
}

// ActorDamaged reports health lost by a simulated actor.
type ActorDamaged struct {
	ActorID      int
	Amount       float64 // after shield and block
	Health       float64
	KnockbackDir float64
	LaunchY      float64
	Blocked      bool
}

// RemoteHit is a local melee connecting with the shadow actor. The victim's
// peer applies the damage, so Damage is the raw value before its defences.
type RemoteHit struct {
	AttackerID   int
	DefenderID   int
	Damage       float64
	KnockbackDir float64
	LaunchY      float64
}

// ProjectileFired reports a projectile entering the world.
type ProjectileFired struct {
	Owner  int
	Kind   cfg.ProjectileKind
	X, Y   float64
	VX     float64
	Remote bool
}

// PowerupPicked reports a successful pickup.
type PowerupPicked struct {
	ActorID int
	Item    cfg.ItemID
}

// PowerupSpawned reports a new powerup in the arena.
type PowerupSpawned struct {
	Item cfg.ItemID
	X, Y float64
}

// LocalDefeated fires once per round when the locally simulated actor dies in
// online mode.
type LocalDefeated struct {
	ActorID  int
	WinnerID int
}

// RoundEnded reports a finished round.
type RoundEnded struct {
	Number int
	Winner int
	Scores [2]int
	Remote bool
}

// RoundStarted reports a fresh round after a reset.
type RoundStarted struct {
	Number int
}

var (
	MeleePerformedEvent       = events.NewEventType[MeleePerformed]()
	HitOccurredEvent          = events.NewEventType[HitOccurred]()
	ScreenShakeRequestedEvent = events.NewEventType[ScreenShakeRequested]()
	SoundCuedEvent            = events.NewEventType[SoundCued]()
	ActorDamagedEvent         = events.NewEventType[ActorDamaged]()
	RemoteHitEvent            = events.NewEventType[RemoteHit]()
	ProjectileFiredEvent      = events.NewEventType[ProjectileFired]()
	PowerupPickedEvent        = events.NewEventType[PowerupPicked]()
	PowerupSpawnedEvent       = events.NewEventType[PowerupSpawned]()
	LocalDefeatedEvent        = events.NewEventType[LocalDefeated]()
	RoundEndedEvent           = events.NewEventType[RoundEnded]()
	RoundStartedEvent         = events.NewEventType[RoundStarted]()
)
