package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pcforge/pcforge/pkg/catalog"
	"github.com/pcforge/pcforge/pkg/checkout"
	"github.com/pcforge/pcforge/pkg/store"
)

// cartCmd represents the cart command
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and manage the shopping cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		printCart(s)
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := catalog.ProductByID(args[0])
		if !ok {
			return fmt.Errorf("product not found: %s", args[0])
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		s.AddToCart(p)
		printCart(s)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		s.RemoveFromCart(args[0])
		printCart(s)
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set the quantity of a cart line (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var quantity int
		if _, err := fmt.Sscanf(args[1], "%d", &quantity); err != nil {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		s.UpdateQuantity(args[0], quantity)
		printCart(s)
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		s.ClearCart()
		fmt.Println("Cart cleared.")
		return nil
	},
}

func printCart(s *store.Store) {
	items := s.Cart()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUNIT PRICE\tQTY\tLINE TOTAL")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d\t$%.2f\n",
			it.ID, it.Product.Name, it.Product.Price, it.Quantity, it.Product.Price*float64(it.Quantity))
	}
	w.Flush()

	fig := checkout.Calculate(s.TotalPrice())
	fmt.Printf("\nItems: %d\n", s.TotalItems())
	fmt.Printf("Subtotal: $%.2f\n", fig.Subtotal)
	if fig.Shipping == 0 {
		fmt.Println("Shipping: Free")
	} else {
		fmt.Printf("Shipping: $%.2f\n", fig.Shipping)
	}
	fmt.Printf("Tax: $%.2f\n", fig.Tax)
	fmt.Printf("Total: $%.2f\n", fig.Total)
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartClearCmd)
}
