package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcforge/pcforge/internal/utils"
	"github.com/pcforge/pcforge/pkg/store"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	                 __
	 _ __   ___ / _| ___  _ __ __ _  ___
	| '_ \ / __| |_ / _ \| '__/ _` + "`" + ` |/ _ \
	| |_) | (__|  _| (_) | | | (_| |  __/
	| .__/ \___|_|  \___/|_|  \__, |\___|
	|_|                       |___/

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pcforge",
	Short: "A PC-components storefront in your terminal.",
	Long: LOGO + `pcforge lets you browse a PC-components catalog, manage a cart, plan a
build with compatibility checks, and run a checkout, right from your
command line. State persists between invocations.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pcforge.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("state-dir", "", "", "Directory for the persisted snapshot (default is $HOME/.config/pcforge)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".pcforge")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.pcforge.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("state.dir", "")
	viper.SetDefault("orders.dbpath", "")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// openStore loads the persisted store, creating the state directory on
// first run.
func openStore() (*store.Store, error) {
	dir, _ := rootCmd.PersistentFlags().GetString("state-dir")
	if dir == "" {
		dir = viper.GetString("state.dir")
	}
	resolved, err := utils.GetStateDir(dir)
	if err != nil {
		return nil, err
	}
	persister, err := store.NewFilePersister(resolved)
	if err != nil {
		return nil, err
	}
	return store.Load(persister), nil
}

// statePersister returns the persister alone, for state that lives next to
// the snapshot (the saved build).
func statePersister() (*store.FilePersister, error) {
	dir, _ := rootCmd.PersistentFlags().GetString("state-dir")
	if dir == "" {
		dir = viper.GetString("state.dir")
	}
	resolved, err := utils.GetStateDir(dir)
	if err != nil {
		return nil, err
	}
	return store.NewFilePersister(resolved)
}
