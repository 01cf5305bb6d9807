package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcforge/pcforge/pkg/catalog"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search and filter the catalog",
	Long: `Search the catalog with the showcase filter pipeline: free-text query,
category, price range and brand filters, then a stable sort by name,
price or rating. With no flags and no query the whole catalog is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		full, _ := cmd.Flags().GetBool("full-text")
		if full {
			// Standalone search also matches descriptions.
			printProducts(catalog.SearchProducts(query))
			return nil
		}

		f := catalog.DefaultFilters()
		f.Category, _ = cmd.Flags().GetString("category")
		f.PriceRange[0], _ = cmd.Flags().GetFloat64("min-price")
		f.PriceRange[1], _ = cmd.Flags().GetFloat64("max-price")
		f.Brands, _ = cmd.Flags().GetStringSlice("brand")
		f.SortBy, _ = cmd.Flags().GetString("sort")

		switch f.SortBy {
		case catalog.SortByName, catalog.SortByPrice, catalog.SortByRating:
		default:
			return fmt.Errorf("invalid sort key: %s (use name, price or rating)", f.SortBy)
		}

		results := catalog.Filter(catalog.Products(), query, f)
		printProducts(results)
		fmt.Printf("\n%d products found\n", len(results))
		return nil
	},
}

// brandsCmd represents the brands command
var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List all brands in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, b := range catalog.Brands() {
			fmt.Println(b)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(brandsCmd)
	searchCmd.Flags().StringP("category", "c", "", "Filter by category id")
	searchCmd.Flags().Float64("min-price", 0, "Minimum price (inclusive)")
	searchCmd.Flags().Float64("max-price", 10000, "Maximum price (inclusive)")
	searchCmd.Flags().StringSliceP("brand", "b", nil, "Brand allow-list (repeatable)")
	searchCmd.Flags().StringP("sort", "s", "name", "Sort key: name, price or rating")
	searchCmd.Flags().Bool("full-text", false, "Plain search over name, description, brand and tags (no filters)")
}
