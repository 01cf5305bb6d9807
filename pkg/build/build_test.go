package build

import (
	"testing"

	"github.com/pcforge/pcforge/pkg/catalog"
)

func cpu(brand string) catalog.Product {
	return catalog.Product{ID: "cpu-" + brand, Name: brand + " CPU", Category: "processors", Brand: brand, Price: 500}
}

func motherboard(name string, specs map[string]string) catalog.Product {
	return catalog.Product{ID: "mobo", Name: name, Category: "motherboards", Brand: "ASUS", Price: 300, Specifications: specs}
}

func TestIntelCPUMismatchedMotherboard(t *testing.T) {
	b := New()
	b.Select(cpu("Intel"))
	b.Select(motherboard("ROG Strix B550", nil))

	issues := b.CheckCompatibility()
	if len(issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d: %v", len(issues), issues)
	}
	if issues[0] != "Intel CPU requires Intel-compatible motherboard" {
		t.Fatalf("unexpected issue: %s", issues[0])
	}
}

func TestAMDCPUMismatchedMotherboard(t *testing.T) {
	b := New()
	b.Select(cpu("AMD"))
	b.Select(motherboard("Z790 Hero Intel Edition", nil))

	issues := b.CheckCompatibility()
	if len(issues) != 1 || issues[0] != "AMD CPU requires AMD-compatible motherboard" {
		t.Fatalf("expected the AMD mismatch issue, got %v", issues)
	}
}

func TestMatchingCPUNoIssue(t *testing.T) {
	b := New()
	b.Select(cpu("Intel"))
	b.Select(motherboard("ASUS Intel Z790 Board", nil))

	if issues := b.CheckCompatibility(); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestGPUNeedsPCIeSlotsSpec(t *testing.T) {
	gpu := catalog.Product{ID: "gpu", Name: "RTX 4090", Category: "graphics-cards", Price: 1500}

	b := New()
	b.Select(gpu)
	b.Select(motherboard("ASUS Intel Board", map[string]string{"Expansion Slots": "2x PCIe 5.0 x16"}))

	// The check is a literal key lookup; "Expansion Slots" does not count.
	issues := b.CheckCompatibility()
	if len(issues) != 1 || issues[0] != "Motherboard may not have compatible PCIe slot for GPU" {
		t.Fatalf("expected the PCIe slot issue, got %v", issues)
	}

	b2 := New()
	b2.Select(gpu)
	b2.Select(motherboard("ASUS Intel Board", map[string]string{"PCIe Slots": "2x PCIe 5.0 x16"}))
	if issues := b2.CheckCompatibility(); len(issues) != 0 {
		t.Fatalf("expected no issues with a PCIe Slots entry, got %v", issues)
	}
}

func TestDDR5RAMNeedsDDR5Motherboard(t *testing.T) {
	ram := catalog.Product{ID: "ram", Name: "Dominator 32GB DDR5-6000", Category: "ram", Price: 300}

	b := New()
	b.Select(ram)
	b.Select(motherboard("ASUS Intel Board", map[string]string{"Memory": "DDR4-3200, 4x DIMM"}))

	issues := b.CheckCompatibility()
	if len(issues) != 1 || issues[0] != "DDR5 RAM requires DDR5-compatible motherboard" {
		t.Fatalf("expected the DDR5 issue, got %v", issues)
	}

	b2 := New()
	b2.Select(ram)
	b2.Select(motherboard("ASUS Intel Board", map[string]string{"Memory": "DDR5-7800+ (OC)"}))
	if issues := b2.CheckCompatibility(); len(issues) != 0 {
		t.Fatalf("expected no issues with a DDR5 motherboard, got %v", issues)
	}
}

func TestIssuesKeepRuleOrder(t *testing.T) {
	b := New()
	b.Select(cpu("Intel"))
	b.Select(motherboard("ROG Strix B550", nil))
	b.Select(catalog.Product{ID: "gpu", Name: "RTX 4090", Category: "graphics-cards"})
	b.Select(catalog.Product{ID: "ram", Name: "Vengeance DDR5", Category: "ram"})

	issues := b.CheckCompatibility()
	expect := []string{
		"Intel CPU requires Intel-compatible motherboard",
		"Motherboard may not have compatible PCIe slot for GPU",
		"DDR5 RAM requires DDR5-compatible motherboard",
	}
	if len(issues) != len(expect) {
		t.Fatalf("expected %d issues, got %v", len(expect), issues)
	}
	for i := range expect {
		if issues[i] != expect[i] {
			t.Fatalf("issue %d out of order: want %q, got %q", i, expect[i], issues[i])
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	b := New()
	if got := b.CompletionPercent(); got != 0 {
		t.Fatalf("empty build should be 0%%, got %d", got)
	}

	b.Select(cpu("Intel"))
	b.Select(motherboard("ASUS Intel Board", nil))
	// 2 of 5 required slots.
	if got := b.CompletionPercent(); got != 40 {
		t.Fatalf("expected 40%%, got %d", got)
	}

	b.Select(catalog.Product{ID: "gpu", Category: "graphics-cards"})
	b.Select(catalog.Product{ID: "ram", Name: "DDR4 Kit", Category: "ram"})
	b.Select(catalog.Product{ID: "ssd", Category: "storage"})
	if got := b.CompletionPercent(); got != 100 {
		t.Fatalf("expected 100%%, got %d", got)
	}

	// Optional slots do not affect completion.
	b.Select(catalog.Product{ID: "cooler", Category: "cooling"})
	if got := b.CompletionPercent(); got != 100 {
		t.Fatalf("optional slots must not change completion, got %d", got)
	}
}

func TestReadyGating(t *testing.T) {
	b := New()
	b.Select(cpu("Intel"))
	b.Select(motherboard("ASUS Intel Board", map[string]string{"PCIe Slots": "2x", "Memory": "DDR5"}))
	b.Select(catalog.Product{ID: "gpu", Category: "graphics-cards"})
	b.Select(catalog.Product{ID: "ram", Name: "DDR5 Kit", Category: "ram"})

	if b.Ready() {
		t.Fatal("build missing a required slot must not be ready")
	}

	b.Select(catalog.Product{ID: "ssd", Category: "storage"})
	if !b.Ready() {
		t.Fatalf("complete, issue-free build should be ready (issues: %v)", b.CheckCompatibility())
	}

	// Swap in a mismatched CPU: completion stays 100 but issues gate it.
	b.Select(cpu("AMD"))
	if b.Ready() {
		t.Fatal("build with compatibility issues must not be ready")
	}
}

func TestSelectUnknownCategory(t *testing.T) {
	b := New()
	if b.Select(catalog.Product{ID: "desk", Category: "furniture"}) {
		t.Fatal("selecting a product with no slot must report false")
	}
}

func TestRemoveClearsSlot(t *testing.T) {
	b := New()
	b.Select(cpu("Intel"))
	b.Remove("processors")
	if got := b.CompletionPercent(); got != 0 {
		t.Fatalf("expected cleared slot, completion %d", got)
	}
	// Unknown and already-empty slots are no-ops.
	b.Remove("processors")
	b.Remove("furniture")
}

func TestSelectionsRoundTrip(t *testing.T) {
	gpu, ok := catalog.ProductByID("rtx-4090-gaming-x")
	if !ok {
		t.Fatal("catalog product missing")
	}
	ssd, ok := catalog.ProductByID("samsung-980-pro-2tb")
	if !ok {
		t.Fatal("catalog product missing")
	}

	b := New()
	b.Select(gpu)
	b.Select(ssd)

	restored := New()
	restored.ApplySelections(b.Selections())
	if restored.CompletionPercent() != b.CompletionPercent() {
		t.Fatal("restored build differs from original")
	}
	if restored.TotalPrice() != b.TotalPrice() {
		t.Fatalf("restored total %f != %f", restored.TotalPrice(), b.TotalPrice())
	}
}

func TestApplySelectionsSkipsUnknownIDs(t *testing.T) {
	b := New()
	b.ApplySelections(map[string]string{"processors": "discontinued-cpu"})
	if b.CompletionPercent() != 0 {
		t.Fatal("unknown product ids must be skipped on restore")
	}
}

func TestTotalPriceSumsSelections(t *testing.T) {
	b := New()
	b.Select(cpu("Intel"))                 // 500
	b.Select(motherboard("Intel B", nil))  // 300
	if got := b.TotalPrice(); got != 800 { // unit prices, one each
		t.Fatalf("expected 800, got %f", got)
	}
}
