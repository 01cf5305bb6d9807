// Package build implements the PC builder: a fixed set of component slots
// and the pairwise compatibility checks over the selected parts. The
// checks are intentionally crude name and specification-string heuristics from
// the storefront; they report issues but never block a selection.
package build

import (
	"math"
	"strings"

	"github.com/pcforge/pcforge/pkg/catalog"
)

// Slot is a named position in the build that may hold one selected
// product. Slots are fixed; only Selected changes at runtime.
type Slot struct {
	Category string
	Label    string
	Required bool
	Selected *catalog.Product
}

// Build is the fixed ordered list of slots.
type Build struct {
	slots []Slot
}

// New returns a build with the standard seven slots and nothing selected.
func New() *Build {
	return &Build{slots: []Slot{
		{Category: "processors", Label: "Processor (CPU)", Required: true},
		{Category: "motherboards", Label: "Motherboard", Required: true},
		{Category: "graphics-cards", Label: "Graphics Card (GPU)", Required: true},
		{Category: "ram", Label: "Memory (RAM)", Required: true},
		{Category: "storage", Label: "Storage", Required: true},
		{Category: "cooling", Label: "Cooling", Required: false},
		{Category: "monitors", Label: "Monitor", Required: false},
	}}
}

// Slots returns the slots in their fixed order.
func (b *Build) Slots() []Slot {
	out := make([]Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

// Select places a product into the slot for its category. It reports false
// when no slot matches the product's category.
func (b *Build) Select(p catalog.Product) bool {
	for i := range b.slots {
		if b.slots[i].Category == p.Category {
			selected := p
			b.slots[i].Selected = &selected
			return true
		}
	}
	return false
}

// Remove clears the slot for the given category. Clearing an unknown or
// already empty slot is a no-op.
func (b *Build) Remove(category string) {
	for i := range b.slots {
		if b.slots[i].Category == category {
			b.slots[i].Selected = nil
			return
		}
	}
}

// selected returns the product in the slot for a category, or nil.
func (b *Build) selected(category string) *catalog.Product {
	for i := range b.slots {
		if b.slots[i].Category == category {
			return b.slots[i].Selected
		}
	}
	return nil
}

// CheckCompatibility evaluates the pairwise rules in fixed order and
// returns the triggered issue messages. An empty list means no issues
// detected. The checks are substring heuristics, not a real socket or
// chipset table, and their known false positives are part of the
// contract.
func (b *Build) CheckCompatibility() []string {
	var issues []string

	cpu := b.selected("processors")
	motherboard := b.selected("motherboards")
	gpu := b.selected("graphics-cards")
	ram := b.selected("ram")

	if cpu != nil && motherboard != nil {
		if cpu.Brand == "Intel" && !strings.Contains(motherboard.Name, "Intel") {
			issues = append(issues, "Intel CPU requires Intel-compatible motherboard")
		}
		if cpu.Brand == "AMD" && !strings.Contains(motherboard.Name, "AMD") {
			issues = append(issues, "AMD CPU requires AMD-compatible motherboard")
		}
	}

	if gpu != nil && motherboard != nil {
		if motherboard.Specifications["PCIe Slots"] == "" {
			issues = append(issues, "Motherboard may not have compatible PCIe slot for GPU")
		}
	}

	if ram != nil && motherboard != nil {
		if strings.Contains(ram.Name, "DDR5") && !strings.Contains(motherboard.Specifications["Memory"], "DDR5") {
			issues = append(issues, "DDR5 RAM requires DDR5-compatible motherboard")
		}
	}

	return issues
}

// CompletionPercent is the share of required slots with a selection,
// rounded to the nearest integer.
func (b *Build) CompletionPercent() int {
	required, selected := 0, 0
	for _, s := range b.slots {
		if !s.Required {
			continue
		}
		required++
		if s.Selected != nil {
			selected++
		}
	}
	if required == 0 {
		return 0
	}
	return int(math.Round(float64(selected) / float64(required) * 100))
}

// TotalPrice sums the unit prices of all selected components.
func (b *Build) TotalPrice() float64 {
	total := 0.0
	for _, s := range b.slots {
		if s.Selected != nil {
			total += s.Selected.Price
		}
	}
	return total
}

// Ready reports whether the build may be added to the cart: every required
// slot filled and no compatibility issues.
func (b *Build) Ready() bool {
	return b.CompletionPercent() == 100 && len(b.CheckCompatibility()) == 0
}

// Selections returns the selected product id per slot category, for
// persisting the build between invocations.
func (b *Build) Selections() map[string]string {
	out := make(map[string]string)
	for _, s := range b.slots {
		if s.Selected != nil {
			out[s.Category] = s.Selected.ID
		}
	}
	return out
}

// ApplySelections restores selections from persisted product ids, looking
// each id up in the catalog. Ids that no longer resolve are skipped.
func (b *Build) ApplySelections(selections map[string]string) {
	for category, id := range selections {
		p, ok := catalog.ProductByID(id)
		if !ok || p.Category != category {
			continue
		}
		b.Select(p)
	}
}
