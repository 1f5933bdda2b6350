package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/document"
	"github.com/spigell/recruit-console/internal/jobdesc"
)

var jdCmd = &cobra.Command{
	Use:   "jd",
	Short: "Work with the session's job description",
}

var jdShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch the current job description and print its sections",
	Run: func(_ *cobra.Command, _ []string) {
		showJD()
	},
}

var jdUploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a job description file (.txt, .md, .pdf, .docx)",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		uploadJD(args[0])
	},
}

func init() {
	jdCmd.AddCommand(jdShowCmd, jdUploadCmd)
	rootCmd.AddCommand(jdCmd)
}

func showJD() {
	logger, _, client := setup()

	jd, err := client.CurrentJD(context.Background())
	if err != nil {
		logger.Fatal("getting current job description", zap.Error(err))
	}

	logJD(logger, jobdesc.Present(jd))
}

func uploadJD(path string) {
	logger, config, client := setup()

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading job description file", zap.Error(err))
	}

	if int64(len(content)) > config.Server.MaxUploadSize {
		logger.Fatal("job description file too large",
			zap.Int("size", len(content)),
			zap.Int64("max", config.Server.MaxUploadSize),
		)
	}

	filename := filepath.Base(path)

	text, err := document.ExtractText(filename, content)
	if err != nil {
		if !errors.Is(err, document.ErrUnsupported) {
			logger.Warn("extracting job description text", zap.Error(err))
		}
		logger.Info("relaying the file without extracted text", zap.String("filename", filename))
	}

	uploaded, err := client.UploadJD(context.Background(), backend.JDUpload{
		Filename: filename,
		Content:  content,
		Text:     text,
	})
	if err != nil {
		logger.Fatal("uploading job description", zap.Error(err))
	}

	logger.Info(uploaded.Message, zap.Int("jd_id", uploaded.ID))

	logJD(logger, jobdesc.Present(uploaded.Data))
}

func logJD(logger *zap.Logger, v *jobdesc.View) {
	logger.Info("job description",
		zap.Int("jd_id", v.ID),
		zap.String("title", v.Title),
		zap.String("company", v.Company),
		zap.String("summary", v.Summary),
		zap.Strings("responsibilities", v.Responsibilities),
		zap.Strings("qualifications", v.Qualifications),
		zap.String("experience", v.Experience),
		zap.String("education", v.Education),
	)
}
