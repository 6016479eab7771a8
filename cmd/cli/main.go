package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ahsanlabs/storefront-service/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront CLI - catalog administration tool",
	Long: `A CLI tool for administering the storefront's flat-file product
catalog: seeding defaults, validating the product list, exporting it to
a spreadsheet, and emitting the JSON Schema the admin UI validates
against.`,
	PersistentPreRun: persistentPreRun,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

func persistentPreRun(cmd *cobra.Command, args []string) {
	// Console format for CLI output
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// productsPath resolves the catalog path from flags or config.
func productsPath(override string) string {
	if override != "" {
		return override
	}
	if cfg != nil && cfg.Storage.ProductsPath != "" {
		return cfg.Storage.ProductsPath
	}
	return "./public/products.json"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
