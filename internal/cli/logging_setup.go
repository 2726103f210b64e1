package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ecostep/internal/config"
	"github.com/rshade/ecostep/internal/logging"
)

// setupLogging attaches a stderr logger and a fresh session id to the
// command context.
func setupLogging(cmd *cobra.Command) error {
	loggingCfg := config.DefaultLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg = loggingCfg.WithDebug()
	}
	if err := loggingCfg.Validate(); err != nil {
		return err
	}

	logger := logging.ComponentLogger(
		logging.NewLogger(loggingCfg.ToLoggingConfig(), cmd.ErrOrStderr()), "cli")

	ctx := logger.WithContext(cmd.Context())
	ctx = logging.ContextWithSessionID(ctx, logging.NewSessionID())
	cmd.SetContext(ctx)

	log := logging.FromContext(ctx)
	log.Debug().Str("command", cmd.Name()).Msg("session started")

	return nil
}
