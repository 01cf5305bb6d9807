package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pcforge/pcforge/internal/server"
	"github.com/pcforge/pcforge/internal/utils"
	"github.com/pcforge/pcforge/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		if username == "" {
			username = viper.GetString("server.username")
		}
		if password == "" {
			password = viper.GetString("server.password")
		}

		s, err := openStore()
		if err != nil {
			return err
		}

		// Order history is optional for the API; endpoints that need it
		// report unavailable when the database cannot be opened.
		var db *storage.DB
		dbPath, err := resolveDBPath()
		if err == nil {
			if _, statErr := os.Stat(dbPath); statErr == nil {
				db, err = storage.Open(dbPath)
				if err != nil {
					utils.Log.Warnf("opening order history: %v", err)
				}
			}
		}
		if db != nil {
			defer db.Close()
		}

		return server.New(s, db, username, password).Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().String("username", "", "Basic auth username (empty disables auth)")
	serveCmd.Flags().String("password", "", "Basic auth password")
}
