package cli

import (
	"errors"
	"fmt"
	"os"

	"blended-advisor/internal/domain"
	"github.com/spf13/cobra"
)

var (
	port       string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	err := newRootCmd().Execute()
	// recommend and ask already print the user-facing message.
	if err != nil && !errors.Is(err, domain.ErrInvalidResponseCount) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	envPort := os.Getenv("PORT")
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:           "advisor",
		Short:         "Blended learning model advisor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&port, "port", envPort, "port to listen on (overrides config)")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewStartCmd(&configPath, &port))
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewRecommendCmd())
	return cmd
}
