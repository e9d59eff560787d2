package config

// ItemID identifies a consumable item type.
type ItemID int

const (
	ItemNone ItemID = iota
	ItemBloodOrb
	ItemBatSwarm
	ItemHellfire
	ItemCrossbow
	ItemSpeed
	ItemShield
	ItemBerserk
	ItemCount // Must be last
)

var itemNames = [ItemCount]string{
	ItemNone:     "NONE",
	ItemBloodOrb: "BLOOD_ORB",
	ItemBatSwarm: "BAT_SWARM",
	ItemHellfire: "HELLFIRE",
	ItemCrossbow: "CROSSBOW",
	ItemSpeed:    "SPEED",
	ItemShield:   "SHIELD",
	ItemBerserk:  "BERSERK",
}

func (i ItemID) String() string {
	if i < 0 || i >= ItemCount {
		return "UNKNOWN"
	}
	return itemNames[i]
}

// Valid reports whether i names a real catalogue item.
func (i ItemID) Valid() bool {
	return i > ItemNone && i < ItemCount
}

// ProjectileKind selects a projectile profile.
type ProjectileKind int

const (
	ProjectileSwarm ProjectileKind = iota
	ProjectileFireball
	ProjectileBolt
)

var projectileNames = map[ProjectileKind]string{
	ProjectileSwarm:    "SWARM",
	ProjectileFireball: "FIREBALL",
	ProjectileBolt:     "BOLT",
}

func (k ProjectileKind) String() string {
	if n, ok := projectileNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// ParseProjectileKind maps a wire name back to a kind. Unknown names fall back
// to the fireball, which is what a peer without a type tag fires.
func ParseProjectileKind(name string) ProjectileKind {
	for k, n := range projectileNames {
		if n == name {
			return k
		}
	}
	return ProjectileFireball
}

// Effect is what using an item does. The set of implementations is closed:
// HealEffect, BuffEffect and ProjectileEffect.
type Effect interface {
	isEffect()
}

// HealEffect restores a fixed amount of health.
type HealEffect struct {
	Amount float64
}

// BuffEffect sets the actor's active buff for Duration ticks. SelfDamage is
// paid immediately on use and can never drop health below 1.
type BuffEffect struct {
	Buff       ItemID
	Duration   int
	SelfDamage float64
}

// ProjectileEffect fires a projectile of the given kind.
type ProjectileEffect struct {
	Kind ProjectileKind
}

func (HealEffect) isEffect()       {}
func (BuffEffect) isEffect()       {}
func (ProjectileEffect) isEffect() {}

// ItemDef is a catalogue entry.
type ItemDef struct {
	ID       ItemID
	Effect   Effect
	ColorTag string
}

// Catalogue is the ordered set of items the spawner draws from.
var Catalogue []ItemDef

var catalogueByID map[ItemID]ItemDef

// LookupItem returns the catalogue entry for id.
func LookupItem(id ItemID) (ItemDef, bool) {
	def, ok := catalogueByID[id]
	return def, ok
}

// buildCatalogue fills the catalogue. Buff durations come from Items, so it
// runs after the tuning tables are set.
func buildCatalogue() {
	buff := Items.BuffDuration
	Catalogue = []ItemDef{
		{ID: ItemBloodOrb, Effect: HealEffect{Amount: 20}, ColorTag: "blood"},
		{ID: ItemBatSwarm, Effect: ProjectileEffect{Kind: ProjectileSwarm}, ColorTag: "bat"},
		{ID: ItemHellfire, Effect: ProjectileEffect{Kind: ProjectileFireball}, ColorTag: "fire"},
		{ID: ItemCrossbow, Effect: ProjectileEffect{Kind: ProjectileBolt}, ColorTag: "bolt"},
		{ID: ItemSpeed, Effect: BuffEffect{Buff: ItemSpeed, Duration: buff}, ColorTag: "speed"},
		{ID: ItemShield, Effect: BuffEffect{Buff: ItemShield, Duration: buff}, ColorTag: "shield"},
		{ID: ItemBerserk, Effect: BuffEffect{Buff: ItemBerserk, Duration: buff, SelfDamage: 5}, ColorTag: "berserk"},
	}

	catalogueByID = make(map[ItemID]ItemDef, len(Catalogue))
	for _, def := range Catalogue {
		catalogueByID[def.ID] = def
	}
}
