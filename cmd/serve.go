package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/server"
	"github.com/spigell/recruit-console/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recruit console web page",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (overrides server.listen)")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	logger, config, client := setup()

	logger.Info("starting the recruit-console", zap.String("version", version), zap.String("backend", config.Backend.URL))

	renderer, err := view.New()
	if err != nil {
		logger.Fatal("preparing templates", zap.Error(err))
	}

	srv := server.New(server.Config{
		Listen:        config.Server.Listen,
		MaxUploadSize: config.Server.MaxUploadSize,
		Version:       version,
	}, client, renderer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("serving the console", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "shutdown requested"))
}
