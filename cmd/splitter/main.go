// Command splitter serves the receipt splitting API and allocates receipts
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/splitter/internal/config"
	"github.com/mmynk/splitter/pkg/logging"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// envFile is set by the --env-file flag.
	envFile string

	// v holds the merged settings, initialized on startup.
	v *viper.Viper
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splitter",
	Short: "Split receipts between the people who shared them",
	Long: `Splitter turns itemized receipts into what each person owes.

Items are assigned to participants with equal, portion or amount shares.
Bill-level adjustments such as tax and tip are spread in proportion to
each person's item spend.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: ./splitter.yaml if present)")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(allocateCmd)
}

// initConfig builds the viper instance, binds flags over it and installs the
// default logger.
func initConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	v, err = config.NewViper(envFile, configFile)
	if err != nil {
		return err
	}

	bindings := map[string]string{
		config.KeyLogLevel:      "log-level",
		config.KeyLogFormat:     "log-format",
		config.KeyPort:          "port",
		config.KeyDBPath:        "db-path",
		config.KeyPublicBaseURL: "public-base-url",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	logging.SetupWith(logging.Options{
		Level:  v.GetString(config.KeyLogLevel),
		Format: v.GetString(config.KeyLogFormat),
	})
	return nil
}
