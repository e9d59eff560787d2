package systems

import (
	"math"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

// TakeDamage applies amount to defender. It returns the damage actually taken
// and whether the hit was blocked. knockbackDir is the signed horizontal
// knockback multiplier (0 for none) and launchY scales the vertical impulse
// against the base knockback force.
//
// Shield halves the amount first. A grounded, blocking defender hit from the
// side it faces takes a further reduction and no knockback. Shadow actors are
// never damaged locally; their health arrives from the network.
func TakeDamage(w donburi.World, defender *donburi.Entry, amount, knockbackDir, launchY float64) (float64, bool) {
	if defender == nil || !defender.Valid() {
		return 0, false
	}
	if math.IsNaN(amount) || amount <= 0 {
		return 0, false
	}
	player := components.Player.Get(defender)
	if player.Shadow {
		return 0, false
	}

	health := components.Health.Get(defender)
	physics := components.Physics.Get(defender)
	buff := components.Buff.Get(defender)

	if buff.Has(cfg.ItemShield) {
		amount *= cfg.Combat.ShieldDamageMul
	}

	blocked := physics.OnGround && blocksFrom(player, knockbackDir)
	if blocked {
		amount *= cfg.Combat.BlockDamageMul
		SoundCuedEvent.Publish(w, SoundCued{ActorID: player.ID, Cue: cfg.CueBlock})
	} else if knockbackDir != 0 {
		physics.KnockbackX = knockbackDir * cfg.Combat.KnockbackForce
		physics.KnockbackY = -cfg.Combat.KnockbackForce * launchY
	}

	before := health.Current
	health.Current -= amount
	health.Clamp()
	applied := before - health.Current

	ActorDamagedEvent.Publish(w, ActorDamaged{
		ActorID:      player.ID,
		Amount:       amount,
		Health:       health.Current,
		KnockbackDir: knockbackDir,
		LaunchY:      launchY,
		Blocked:      blocked,
	})

	return applied, blocked
}

// blocksFrom reports whether a blocking actor faces a hit travelling along
// knockbackDir. Blocking is only ever raised on the ground.
func blocksFrom(player *components.PlayerData, knockbackDir float64) bool {
	if !player.Blocking {
		return false
	}
	return (player.FacingRight && knockbackDir < 0) || (!player.FacingRight && knockbackDir > 0)
}

// Heal restores amount capped at max health. Negative or NaN amounts are
// ignored.
func Heal(entry *donburi.Entry, amount float64) {
	if entry == nil || !entry.Valid() || math.IsNaN(amount) || amount <= 0 {
		return
	}
	health := components.Health.Get(entry)
	health.Current = math.Min(health.Max, health.Current+amount)
}
