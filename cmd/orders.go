package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pcforge/pcforge/pkg/storage"
)

// ordersCmd represents the orders command
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List past orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("No orders yet.")
			return nil
		}

		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		email, _ := cmd.Flags().GetString("email")
		limit, _ := cmd.Flags().GetInt("limit")
		sinceStr, _ := cmd.Flags().GetString("since")
		since, err := parseSince(sinceStr)
		if err != nil {
			return err
		}
		orders, err := db.ListOrders(context.Background(), storage.ListOptions{
			EmailFilter: email,
			Since:       since,
			Limit:       limit,
		})
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tNAME\tITEMS\tTOTAL")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t$%.2f\n",
				o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Name, o.ItemCount(), o.Total)
		}
		return w.Flush()
	},
}

// ordersStatsCmd represents the stats command
var ordersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints per-category sales statistics from the order history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("order history database not found: %s", dbPath)
		}

		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tORDERS\tUNITS\tREVENUE")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t$%.2f\n", s.Category, s.OrderCount, s.UnitsSold, s.Revenue)
		}
		return w.Flush()
	},
}

// parseSince accepts a date or an RFC3339 timestamp. Empty means no
// lower bound.
func parseSince(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --since value %q (use YYYY-MM-DD or RFC3339)", s)
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersStatsCmd)
	ordersCmd.Flags().String("email", "", "Filter by contact email (substring)")
	ordersCmd.Flags().String("since", "", "Only orders at or after this date (YYYY-MM-DD or RFC3339)")
	ordersCmd.Flags().Int("limit", 50, "Maximum number of orders to list")
}
