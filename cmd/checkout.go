package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pcforge/pcforge/internal/utils"
	"github.com/pcforge/pcforge/pkg/checkout"
	"github.com/pcforge/pcforge/pkg/storage"
)

// checkoutCmd represents the checkout command
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Check out the cart with a simulated payment",
	Long: `Runs the checkout flow: validates the shipping and payment fields,
derives shipping, tax and the grand total from the cart subtotal, runs the
simulated payment (it always succeeds after a short delay), clears the
cart and records the order in the local order history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		if s.TotalItems() == 0 {
			return fmt.Errorf("cart is empty, nothing to check out")
		}

		shipping := checkout.ShippingInfo{}
		shipping.FirstName, _ = cmd.Flags().GetString("first-name")
		shipping.LastName, _ = cmd.Flags().GetString("last-name")
		shipping.Email, _ = cmd.Flags().GetString("email")
		shipping.Phone, _ = cmd.Flags().GetString("phone")
		shipping.Address, _ = cmd.Flags().GetString("address")
		shipping.City, _ = cmd.Flags().GetString("city")
		shipping.State, _ = cmd.Flags().GetString("state")
		shipping.ZipCode, _ = cmd.Flags().GetString("zip")
		if err := shipping.Validate(); err != nil {
			return err
		}

		payment := checkout.PaymentInfo{}
		payment.CardNumber, _ = cmd.Flags().GetString("card-number")
		payment.ExpiryDate, _ = cmd.Flags().GetString("card-expiry")
		payment.CVV, _ = cmd.Flags().GetString("card-cvv")
		payment.CardholderName, _ = cmd.Flags().GetString("card-holder")
		if err := payment.Validate(); err != nil {
			return err
		}

		fig := checkout.Calculate(s.TotalPrice())
		fmt.Printf("Subtotal: $%.2f\n", fig.Subtotal)
		if fig.Shipping == 0 {
			fmt.Println("Shipping: Free")
		} else {
			fmt.Printf("Shipping: $%.2f\n", fig.Shipping)
		}
		fmt.Printf("Tax: $%.2f\n", fig.Tax)
		fmt.Printf("Total: $%.2f\n\n", fig.Total)

		processor := checkout.NewProcessor()
		if fast, _ := cmd.Flags().GetBool("no-wait"); fast {
			processor.Delay = 0
		}
		processor.OnStatus = func(status checkout.Status) {
			utils.Log.Debugf("payment status: %s", status)
			if status == checkout.StatusProcessing {
				fmt.Println("Processing payment...")
			}
		}
		if _, err := processor.Process(cmd.Context()); err != nil {
			return err
		}

		order := storage.Order{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Name:      shipping.FirstName + " " + shipping.LastName,
			Email:     shipping.Email,
			Address:   shipping.Address,
			City:      shipping.City,
			State:     shipping.State,
			ZipCode:   shipping.ZipCode,
			Subtotal:  fig.Subtotal,
			Shipping:  fig.Shipping,
			Tax:       fig.Tax,
			Total:     fig.Total,
		}
		for _, it := range s.Cart() {
			order.Items = append(order.Items, storage.OrderItem{
				ProductID:   it.ID,
				ProductName: it.Product.Name,
				Category:    it.Product.Category,
				UnitPrice:   it.Product.Price,
				Quantity:    it.Quantity,
			})
		}

		if err := recordOrder(cmd.Context(), order); err != nil {
			// The payment already "succeeded"; history is best effort.
			utils.Log.Warnf("recording order: %v", err)
		}

		s.ClearCart()
		fmt.Printf("Order placed successfully! Order id: %s\n", order.ID)
		return nil
	},
}

func recordOrder(ctx context.Context, order storage.Order) error {
	dbPath, err := resolveDBPath()
	if err != nil {
		return err
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.InsertOrder(ctx, order)
}

func resolveDBPath() (string, error) {
	dbPath, _ := rootCmd.PersistentFlags().GetString("dbpath")
	if dbPath == "" {
		dbPath = viper.GetString("orders.dbpath")
	}
	return utils.GetAbsDBPath(dbPath)
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.PersistentFlags().String("dbpath", "", "Path to the order history database (default is $HOME/.config/pcforge/orders.sqlite)")

	checkoutCmd.Flags().String("first-name", "", "Shipping first name")
	checkoutCmd.Flags().String("last-name", "", "Shipping last name")
	checkoutCmd.Flags().String("email", "", "Contact email")
	checkoutCmd.Flags().String("phone", "", "Contact phone (optional)")
	checkoutCmd.Flags().String("address", "", "Street address")
	checkoutCmd.Flags().String("city", "", "City")
	checkoutCmd.Flags().String("state", "", "State")
	checkoutCmd.Flags().String("zip", "", "ZIP code")
	checkoutCmd.Flags().String("card-number", "", "Card number (never charged)")
	checkoutCmd.Flags().String("card-expiry", "", "Card expiry date")
	checkoutCmd.Flags().String("card-cvv", "", "Card CVV")
	checkoutCmd.Flags().String("card-holder", "", "Cardholder name")
	checkoutCmd.Flags().Bool("no-wait", false, "Skip the simulated processing delay")
}
