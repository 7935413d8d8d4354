package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the CLI version reported by the banner.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "nairamart",
	Short: "NairaMart is a cryptocurrency storefront client",
	Long: `A terminal client for the NairaMart storefront: browse listed
cryptocurrencies, check dual USD/NGN prices and start purchases that
complete on the hosted checkout page.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", "http://localhost:8000", "Backend base URL")
	rootCmd.PersistentFlags().String("data-dir", defaultDataDir(), "Directory for cookies and preferences")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig layers an optional ~/.nairamart.yaml config file and
// NAIRAMART_* environment variables under the flags.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".nairamart")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("NAIRAMART")
	viper.AutomaticEnv()

	// Absence of a config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(home, ".nairamart")
}
