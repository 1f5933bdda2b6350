package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/logger"
	"github.com/spigell/recruit-console/internal/session"
	"github.com/spigell/recruit-console/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the backend session state and whether matching can start",
	Run: func(cmd *cobra.Command, _ []string) {
		watch, _ := cmd.Flags().GetDuration("watch")
		status(watch)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().DurationP("watch", "w", 0, "poll the backend with this interval until interrupted")
}

func status(watch time.Duration) {
	log, _, client := setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var enabled bool
	tracker := session.NewTracker(client, log, func(v bool) { enabled = v })

	var state session.State
	for {
		state = tracker.Refresh(ctx, state)

		log.Info("session state",
			logger.JDIDField(state.JDID),
			zap.Int("candidates", len(state.CandidateIDs)),
			zap.Ints("candidate_ids", state.CandidateIDs),
			zap.Bool("match_enabled", enabled),
		)

		if watch <= 0 {
			return
		}

		if err := utils.WaitFor(ctx, watch); err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Warn("waiting for the next poll", zap.Error(err))
			}
			log.Info("exiting", zap.String("reason", "interrupted"))
			return
		}
	}
}
