package systems

import (
	"math"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

// Pickup adds one item to the actor's inventory. A held type stacks, a new
// type takes a free slot, and a full inventory rejects the item and reports
// false.
func Pickup(entry *donburi.Entry, item cfg.ItemID) bool {
	if !item.Valid() {
		return false
	}
	inv := components.Inventory.Get(entry)
	for i := range inv.Slots {
		if inv.Slots[i].Item == item {
			inv.Slots[i].Count++
			return true
		}
	}
	if len(inv.Slots) >= cfg.Items.MaxSlots {
		return false
	}
	inv.Slots = append(inv.Slots, components.ItemStack{Item: item, Count: 1})
	return true
}

// UseItem consumes one of the selected item and applies its effect.
func UseItem(w donburi.World, entry *donburi.Entry) {
	inv := components.Inventory.Get(entry)
	stack, ok := inv.Current()
	if !ok {
		return
	}

	def, known := cfg.LookupItem(stack.Item)
	if known {
		applyEffect(w, entry, def.Effect)
	}

	stack.Count--
	if stack.Count <= 0 {
		inv.Slots = append(inv.Slots[:inv.Selected], inv.Slots[inv.Selected+1:]...)
		if inv.Selected > len(inv.Slots)-1 {
			inv.Selected = len(inv.Slots) - 1
		}
		if inv.Selected < 0 {
			inv.Selected = 0
		}
	}
}

func applyEffect(w donburi.World, entry *donburi.Entry, effect cfg.Effect) {
	switch e := effect.(type) {
	case cfg.HealEffect:
		Heal(entry, e.Amount)
	case cfg.BuffEffect:
		buff := components.Buff.Get(entry)
		buff.Active = e.Buff
		buff.Remaining = e.Duration
		if e.SelfDamage > 0 {
			health := components.Health.Get(entry)
			health.Current = math.Max(1, health.Current-e.SelfDamage)
		}
	case cfg.ProjectileEffect:
		SpawnProjectile(w, entry, e.Kind)
	}
}

// SwitchItem moves the selection by step, wrapping in both directions.
func SwitchItem(entry *donburi.Entry, step int) {
	inv := components.Inventory.Get(entry)
	n := len(inv.Slots)
	if n == 0 {
		inv.Selected = 0
		return
	}
	inv.Selected = ((inv.Selected+step)%n + n) % n
}

// TickBuff counts the active buff down and clears it exactly once when the
// timer reaches zero.
func TickBuff(entry *donburi.Entry) {
	buff := components.Buff.Get(entry)
	if buff.Remaining <= 0 {
		return
	}
	buff.Remaining--
	if buff.Remaining == 0 {
		buff.Active = cfg.ItemNone
	}
}
