package systems

import (
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Directive picks the melee variant from the vertical axis.
func Directive(y float64) cfg.MeleeDirective {
	switch {
	case y < -cfg.Melee.DirectiveThresh:
		return cfg.DirectiveUp
	case y > cfg.Melee.DirectiveThresh:
		return cfg.DirectiveDown
	}
	return cfg.DirectiveNeutral
}

// MeleeVariantFor returns the tuning row for an attack.
func MeleeVariantFor(directive cfg.MeleeDirective, comboCount int, onGround bool) cfg.MeleeVariant {
	switch directive {
	case cfg.DirectiveUp:
		return cfg.Melee.Up
	case cfg.DirectiveDown:
		if onGround {
			return cfg.Melee.DownGround
		}
		return cfg.Melee.DownAir
	}
	if comboCount < 0 || comboCount >= len(cfg.Melee.Neutral) {
		comboCount = 0
	}
	return cfg.Melee.Neutral[comboCount]
}

// PerformMelee swings attacker at defender. defender may be nil. The swing
// consumes cooldown and advances or resets the combo whether or not it lands.
// It returns the damage dealt before the defender's defences, or 0 on a whiff
// or while on cooldown.
func PerformMelee(w donburi.World, attacker, defender *donburi.Entry, cmd input.Command) float64 {
	melee := components.Melee.Get(attacker)
	if melee.Cooldown > 0 {
		return 0
	}
	player := components.Player.Get(attacker)
	physics := components.Physics.Get(attacker)

	directive := Directive(gamemath.ClampAxis(cmd.Y))

	if melee.ComboTimer > 0 && directive == cfg.DirectiveNeutral {
		melee.ComboCount = (melee.ComboCount + 1) % cfg.Melee.ComboSteps
	} else {
		melee.ComboCount = 0
	}
	melee.ComboTimer = cfg.Melee.ComboWindow

	variant := MeleeVariantFor(directive, melee.ComboCount, physics.OnGround)
	if variant.ResetsCombo {
		melee.ComboCount = 0
	}

	melee.Active = true
	melee.ActiveTimer = cfg.Melee.ActiveWindow
	melee.Cooldown = variant.Cooldown
	melee.LastDirective = directive

	obj := components.Object.Get(attacker).Object
	MeleePerformedEvent.Publish(w, MeleePerformed{
		ActorID:     player.ID,
		ComboCount:  melee.ComboCount,
		Directive:   directive,
		X:           obj.X,
		Y:           obj.Y,
		FacingRight: player.FacingRight,
	})
	SoundCuedEvent.Publish(w, SoundCued{ActorID: player.ID, Cue: cfg.CueAttack})

	if defender == nil || !defender.Valid() || defender == attacker {
		return 0
	}

	target := components.Object.Get(defender).Object
	if gamemath.Distance(obj.X, obj.Y, target.X, target.Y) >= cfg.Melee.Range*variant.RangeMul {
		return 0
	}

	damage := cfg.Melee.Damage * variant.DamageMul
	if components.Buff.Get(attacker).Has(cfg.ItemBerserk) {
		damage *= cfg.Melee.BerserkDamageMul
	}
	knockbackDir := player.Facing() * variant.KnockbackMul

	victim := components.Player.Get(defender)
	var blocked bool
	if victim.Shadow {
		blocked = blocksFrom(victim, knockbackDir)
		RemoteHitEvent.Publish(w, RemoteHit{
			AttackerID:   player.ID,
			DefenderID:   victim.ID,
			Damage:       damage,
			KnockbackDir: knockbackDir,
			LaunchY:      variant.LaunchY,
		})
	} else {
		_, blocked = TakeDamage(w, defender, damage, knockbackDir, variant.LaunchY)
	}

	HitOccurredEvent.Publish(w, HitOccurred{
		AttackerID: player.ID,
		DefenderID: victim.ID,
		X:          target.X + target.W/2,
		Y:          target.Y + target.H/2,
		ColorTag:   "blood",
		Damage:     damage,
		LaunchX:    variant.LaunchX,
		LaunchY:    variant.LaunchY,
		Finisher:   variant.Finisher,
		Blocked:    blocked,
	})

	if variant.ShakeTicks > 0 {
		ScreenShakeRequestedEvent.Publish(w, ScreenShakeRequested{Duration: variant.ShakeTicks, Intensity: variant.ShakePower})
	} else {
		ScreenShakeRequestedEvent.Publish(w, ScreenShakeRequested{Duration: cfg.ScreenShake.HitTicks, Intensity: cfg.ScreenShake.HitPower})
	}

	cue := cfg.CueHit
	if variant.Finisher {
		cue = cfg.CueFinisher
	}
	SoundCuedEvent.Publish(w, SoundCued{ActorID: player.ID, Cue: cue})

	// Lifesteal
	Heal(attacker, damage*cfg.Melee.LifestealPercent)

	return damage
}
