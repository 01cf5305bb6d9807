package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pcforge/pcforge/internal/utils"
	"github.com/pcforge/pcforge/pkg/build"
	"github.com/pcforge/pcforge/pkg/catalog"
	"github.com/pcforge/pcforge/pkg/store"
)

// buildKey is the snapshot key the saved build lives under, next to the
// cart snapshot.
const buildKey = "pc-builder"

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Plan a PC build with compatibility checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := loadBuild()
		if err != nil {
			return err
		}
		printBuild(b)
		return nil
	},
}

var buildSelectCmd = &cobra.Command{
	Use:   "select <product-id>",
	Short: "Put a product into its build slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := catalog.ProductByID(args[0])
		if !ok {
			return fmt.Errorf("product not found: %s", args[0])
		}
		b, persister, err := loadBuild()
		if err != nil {
			return err
		}
		if !b.Select(p) {
			return fmt.Errorf("no build slot for category: %s", p.Category)
		}
		if err := saveBuild(b, persister); err != nil {
			return err
		}
		printBuild(b)
		return nil
	},
}

var buildRemoveCmd = &cobra.Command{
	Use:   "remove <category>",
	Short: "Clear a build slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, persister, err := loadBuild()
		if err != nil {
			return err
		}
		b.Remove(args[0])
		if err := saveBuild(b, persister); err != nil {
			return err
		}
		printBuild(b)
		return nil
	},
}

var buildAddToCartCmd = &cobra.Command{
	Use:   "add-to-cart",
	Short: "Add every selected component to the cart",
	Long: `Adds each selected component to the cart. Only allowed once all required
slots are filled and no compatibility issues remain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, persister, err := loadBuild()
		if err != nil {
			return err
		}
		if !b.Ready() {
			printBuild(b)
			return fmt.Errorf("build is not ready: complete all required slots and resolve compatibility issues first")
		}

		s := store.Load(persister)
		for _, slot := range b.Slots() {
			if slot.Selected != nil {
				s.AddToCart(*slot.Selected)
			}
		}
		fmt.Printf("Added %d components to the cart. Cart total: $%.2f\n",
			len(b.Selections()), s.TotalPrice())
		return nil
	},
}

func loadBuild() (*build.Build, *store.FilePersister, error) {
	persister, err := statePersister()
	if err != nil {
		return nil, nil, err
	}
	b := build.New()
	data, ok, err := persister.Load(buildKey)
	if err != nil {
		utils.Log.Warnf("loading saved build: %v", err)
		return b, persister, nil
	}
	if !ok {
		return b, persister, nil
	}
	var selections map[string]string
	if err := json.Unmarshal(data, &selections); err != nil {
		utils.Log.Warnf("saved build is malformed, starting fresh: %v", err)
		return b, persister, nil
	}
	b.ApplySelections(selections)
	return b, persister, nil
}

func saveBuild(b *build.Build, persister *store.FilePersister) error {
	data, err := json.Marshal(b.Selections())
	if err != nil {
		return err
	}
	return persister.Save(buildKey, data)
}

func printBuild(b *build.Build) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tREQUIRED\tSELECTED\tPRICE")
	for _, slot := range b.Slots() {
		required := ""
		if slot.Required {
			required = "yes"
		}
		if slot.Selected != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\n", slot.Label, required, slot.Selected.Name, slot.Selected.Price)
		} else {
			fmt.Fprintf(w, "%s\t%s\t-\t\n", slot.Label, required)
		}
	}
	w.Flush()

	fmt.Printf("\nCompletion: %d%%\n", b.CompletionPercent())
	fmt.Printf("Build total: $%.2f\n", b.TotalPrice())

	issues := b.CheckCompatibility()
	if len(issues) == 0 {
		fmt.Println("No compatibility issues detected")
		return
	}
	for _, issue := range issues {
		fmt.Printf("! %s\n", issue)
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.AddCommand(buildSelectCmd)
	buildCmd.AddCommand(buildRemoveCmd)
	buildCmd.AddCommand(buildAddToCartCmd)
}
