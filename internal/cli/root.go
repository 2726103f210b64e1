package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecostep/internal/footprint"
	"github.com/rshade/ecostep/internal/logging"
)

// NewRootCmd creates the root Cobra command for the ecostep CLI.
// Running it starts one interactive session on the command's stdin/stdout.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ecostep",
		Short:         "Personal carbon footprint calculator",
		Long:          "EcoStep: estimate the carbon footprint of electronics usage, vehicle fuel or household electricity",
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
		RunE: runSession,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().Bool("equivalents", false,
		"also print the weekly footprint as miles driven and smartphones charged")

	return cmd
}

const rootCmdExample = `  # Start an interactive session
  ecostep

  # Same, with debug logging on stderr
  ecostep --debug

  # Also show miles-driven and smartphone-charge equivalents
  ecostep --equivalents

  # Non-interactive: vehicles, 10 liters per day
  printf 'V\n10\n' | ecostep`

// runSession builds the catalog and runs a single session.
func runSession(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	catalog, err := footprint.DefaultCatalog()
	if err != nil {
		log.Error().Err(err).Msg("loading catalog")
		return err
	}

	equivalents, _ := cmd.Flags().GetBool("equivalents")

	out := cmd.OutOrStdout()
	session := NewSession(catalog, cmd.InOrStdin(), out, NewRenderer(out), WithEquivalents(equivalents))
	if err := session.Run(ctx); err != nil {
		log.Debug().Err(err).Msg("session aborted")
		return err
	}
	return nil
}
