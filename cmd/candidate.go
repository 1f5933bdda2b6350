package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/logger"
	"github.com/spigell/recruit-console/internal/session"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate [ID]",
	Short: "Show a candidate's details; without ID pick one of the uploaded candidates",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		showCandidate(args)
	},
}

func init() {
	rootCmd.AddCommand(candidateCmd)
}

func showCandidate(args []string) {
	log, _, client := setup()
	ctx := context.Background()

	var id int
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatal("parsing candidate id", zap.Error(err))
		}
		id = parsed
	} else {
		state := session.NewTracker(client, log, nil).Refresh(ctx, session.State{})
		if len(state.CandidateIDs) == 0 {
			log.Info("exiting", zap.String("reason", "no candidates uploaded"))
			return
		}

		picked, err := pickCandidate(state.CandidateIDs)
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}
		id = picked
	}

	detail, err := client.Candidate(ctx, id)
	if err != nil {
		log.Fatal("loading candidate details", logger.CandidateIDField(id), zap.Error(err))
	}

	log.Info("candidate",
		logger.CandidateIDField(id),
		zap.String("name", detail.Name),
		zap.String("email", detail.Email),
		zap.String("phone", detail.Phone),
		zap.Strings("skills", detail.Skills),
		zap.Strings("experience", detail.Experience),
		zap.Strings("education", detail.Education),
		zap.String("summary", detail.Summary),
	)
}

func pickCandidate(ids []int) (int, error) {
	items := make([]string, 0, len(ids))
	for _, id := range ids {
		items = append(items, strconv.Itoa(id))
	}

	prompt := promptui.Select{
		Label: "Candidate",
		Items: items,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("selecting candidate: %w", err)
	}

	return ids[idx], nil
}
