package components

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

// ItemStack is one inventory slot.
type ItemStack struct {
	Item  cfg.ItemID
	Count int
}

type InventoryData struct {
	Slots    []ItemStack
	Selected int
}

// Current returns the selected slot, if any.
func (inv *InventoryData) Current() (*ItemStack, bool) {
	if inv.Selected < 0 || inv.Selected >= len(inv.Slots) {
		return nil, false
	}
	return &inv.Slots[inv.Selected], true
}

// Count returns the total number of held items of the given type.
func (inv *InventoryData) Count(item cfg.ItemID) int {
	for _, s := range inv.Slots {
		if s.Item == item {
			return s.Count
		}
	}
	return 0
}

var Inventory = donburi.NewComponentType[InventoryData]()
