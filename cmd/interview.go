package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var interviewCmd = &cobra.Command{
	Use:   "interview --jd ID CANDIDATE_ID...",
	Short: "Request interviews with candidates for a job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jdID, _ := cmd.Flags().GetInt("jd")
		requestInterviews(jdID, args)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().Int("jd", 0, "job description id")
	interviewCmd.MarkFlagRequired("jd")
}

func requestInterviews(jdID int, args []string) {
	logger, _, client := setup()

	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			logger.Fatal("parsing candidate id", zap.String("value", arg), zap.Error(err))
		}
		ids = append(ids, id)
	}

	message, err := client.RequestInterviews(context.Background(), jdID, ids)
	if err != nil {
		logger.Fatal("requesting interviews", zap.Error(err))
	}

	logger.Info(message, zap.Int("jd_id", jdID), zap.Ints("candidate_ids", ids))
}
