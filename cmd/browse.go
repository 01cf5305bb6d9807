package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pcforge/pcforge/pkg/catalog"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryID, _ := cmd.Flags().GetString("category")
		featured, _ := cmd.Flags().GetBool("featured")

		if featured {
			printProducts(catalog.FeaturedProducts())
			return nil
		}
		if categoryID != "" {
			printProducts(catalog.ProductsByCategory(categoryID))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRODUCTS")
		for _, c := range catalog.Categories() {
			fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Name, c.Count)
		}
		return w.Flush()
	},
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show full details for a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := catalog.ProductByID(args[0])
		if !ok {
			return fmt.Errorf("product not found: %s", args[0])
		}

		fmt.Printf("%s\n", p.Name)
		fmt.Printf("Brand: %s  Category: %s\n", p.Brand, p.Category)
		if p.Discounted() {
			fmt.Printf("Price: $%.2f (was $%.2f)\n", p.Price, p.OriginalPrice)
		} else {
			fmt.Printf("Price: $%.2f\n", p.Price)
		}
		fmt.Printf("Rating: %.1f (%d reviews)\n", p.Rating, p.Reviews)
		if !p.InStock {
			fmt.Println("Out of stock")
		}
		fmt.Printf("\n%s\n\nSpecifications:\n", p.Description)
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for k, v := range p.Specifications {
			fmt.Fprintf(w, "  %s\t%s\n", k, v)
		}
		return w.Flush()
	},
}

func printProducts(products []catalog.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tPRICE\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%.1f\n", p.ID, p.Name, p.Brand, p.Price, p.Rating)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(showCmd)
	browseCmd.Flags().StringP("category", "c", "", "List products in a category")
	browseCmd.Flags().BoolP("featured", "f", false, "List featured (discounted) products")
}
