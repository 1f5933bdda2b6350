package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/document"
	"github.com/spigell/recruit-console/internal/logger"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Add candidate CVs to the session",
}

var cvUploadCmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Upload one or more CV files (.txt, .md, .pdf, .docx)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		uploadCVs(args)
	},
}

func init() {
	cvCmd.AddCommand(cvUploadCmd)
	rootCmd.AddCommand(cvCmd)
}

func uploadCVs(paths []string) {
	log, config, client := setup()

	for _, path := range paths {
		filename := filepath.Base(path)
		l := log.With(zap.String("filename", filename))

		content, err := os.ReadFile(path)
		if err != nil {
			l.Error("reading cv file", zap.Error(err))
			continue
		}

		if int64(len(content)) > config.Server.MaxUploadSize {
			l.Error("cv file too large",
				zap.Int("size", len(content)),
				zap.Int64("max", config.Server.MaxUploadSize),
			)
			continue
		}

		text, err := document.ExtractText(filename, content)
		if err != nil {
			l.Warn("extracting cv text, relaying the file only", zap.Error(err))
		}

		uploaded, err := client.UploadCV(context.Background(), backend.CVUpload{
			Filename: filename,
			Content:  content,
			Text:     text,
		})
		if err != nil {
			l.Error("uploading cv", zap.Error(err))
			continue
		}

		l.Info(uploaded.Message, logger.CandidateIDField(uploaded.CandidateID))
	}
}
