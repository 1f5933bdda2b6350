package server

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/document"
	"github.com/spigell/recruit-console/internal/jobdesc"
	"github.com/spigell/recruit-console/internal/logger"
	"github.com/spigell/recruit-console/internal/view"
)

const (
	msgSelectJDFile    = "Please select a job description file to upload."
	msgJDUploaded      = "Job description uploaded successfully"
	msgSelectCVFile    = "Please select a CV file to upload."
	msgCVUploaded      = "CV uploaded successfully"
	msgCannotMatch     = "Upload a job description and candidates before matching."
	msgMatchingLoading = "Matching candidates..."
)

func (s *Server) handleIndex(c *fiber.Ctx) error {
	next := s.tracker.Refresh(c.UserContext(), s.console.State())
	s.console.SetState(next)

	return s.renderPage(c, fiber.StatusOK)
}

func (s *Server) handleUploadJD(c *fiber.Ctx) error {
	regions := s.console.Regions()

	header, err := c.FormFile("jd_file")
	if err != nil {
		s.notice(regions, view.AlertWarning, msgSelectJDFile)
		return s.renderPage(c, fiber.StatusBadRequest)
	}

	if header.Size > s.cfg.MaxUploadSize {
		s.notice(regions, view.AlertDanger,
			fmt.Sprintf("Job description file too large. Max size: %d bytes", s.cfg.MaxUploadSize))
		return s.renderPage(c, fiber.StatusRequestEntityTooLarge)
	}

	content, err := readFormFile(header)
	if err != nil {
		return err
	}

	log := s.logger.With(zap.String("filename", header.Filename), zap.Int("size", len(content)))

	text, err := document.ExtractText(header.Filename, content)
	if err != nil {
		log.Warn("extracting job description text, relaying the file only", zap.Error(err))
	}

	uploaded, err := s.backend.UploadJD(c.UserContext(), backend.JDUpload{
		Filename: header.Filename,
		Content:  content,
		Text:     text,
	})
	if err != nil {
		log.Warn("uploading job description", zap.Error(err))
		s.notice(regions, view.AlertDanger, uploadErrorMessage("Error uploading job description", err))
		return s.renderPage(c, fiber.StatusOK)
	}

	html, err := s.renderer.JobDescription(jobdesc.Present(uploaded.Data))
	if err != nil {
		return err
	}

	view.Write(regions.JobDescription, html)
	view.Write(regions.JobDescriptionModal, html)

	next := s.console.State().WithJD(uploaded.ID)
	s.console.SetState(next)

	log.Info("job description uploaded", logger.JDIDField(next.JDID))

	message := uploaded.Message
	if message == "" {
		message = msgJDUploaded
	}
	s.notice(regions, view.AlertSuccess, message)

	return s.renderPage(c, fiber.StatusOK)
}

func (s *Server) handleUploadCV(c *fiber.Ctx) error {
	regions := s.console.Regions()

	header, err := c.FormFile("cv_file")
	if err != nil {
		s.notice(regions, view.AlertWarning, msgSelectCVFile)
		return s.renderPage(c, fiber.StatusBadRequest)
	}

	if header.Size > s.cfg.MaxUploadSize {
		s.notice(regions, view.AlertDanger,
			fmt.Sprintf("CV file too large. Max size: %d bytes", s.cfg.MaxUploadSize))
		return s.renderPage(c, fiber.StatusRequestEntityTooLarge)
	}

	content, err := readFormFile(header)
	if err != nil {
		return err
	}

	log := s.logger.With(zap.String("filename", header.Filename), zap.Int("size", len(content)))

	text, err := document.ExtractText(header.Filename, content)
	if err != nil {
		log.Warn("extracting cv text, relaying the file only", zap.Error(err))
	}

	uploaded, err := s.backend.UploadCV(c.UserContext(), backend.CVUpload{
		Filename: header.Filename,
		Content:  content,
		Text:     text,
	})
	if err != nil {
		log.Warn("uploading cv", zap.Error(err))
		s.notice(regions, view.AlertDanger, uploadErrorMessage("Error uploading CV", err))
		return s.renderPage(c, fiber.StatusOK)
	}

	next := s.console.State().WithCandidate(uploaded.CandidateID)
	s.console.SetState(next)
	regions.MatchEnabled.Set(next.CanMatch())

	log.Info("cv uploaded", logger.CandidateIDField(uploaded.CandidateID), zap.Int("candidates", len(next.CandidateIDs)))

	message := uploaded.Message
	if message == "" {
		message = msgCVUploaded
	}
	s.notice(regions, view.AlertSuccess, message)

	return s.renderPage(c, fiber.StatusOK)
}

func (s *Server) handleMatch(c *fiber.Ctx) error {
	regions := s.console.Regions()
	state := s.console.State()

	jdID, ok := state.JD()
	if !ok || !state.CanMatch() {
		s.writeAlert(regions.Matches, view.AlertWarning, msgCannotMatch)
		return s.renderPage(c, fiber.StatusConflict)
	}

	if loading, err := s.renderer.Loading(msgMatchingLoading); err == nil {
		view.Write(regions.Matches, loading)
	}

	result, err := s.backend.Match(c.UserContext(), jdID)
	if err != nil {
		s.logger.Warn("matching candidates", logger.JDIDField(state.JDID), zap.Error(err))
		s.writeAlert(regions.Matches, view.AlertDanger, "Error matching candidates: "+reason(err))
		return s.renderPage(c, fiber.StatusOK)
	}

	html, err := s.renderer.Matches(result.Matches)
	if err != nil {
		return err
	}

	view.Write(regions.Matches, html)
	s.logger.Info("candidates matched", logger.JDIDField(state.JDID), zap.Int("count", len(result.Matches)))

	return s.renderPage(c, fiber.StatusOK)
}

func (s *Server) handleCandidate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid candidate id")
	}

	return sendHTML(c, fiber.StatusOK, s.overlay.Show(c.UserContext(), id))
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

func (s *Server) renderPage(c *fiber.Ctx, status int) error {
	html, err := s.renderer.Page(s.console.page(s.cfg.Version, s.cfg.MaxUploadSize))
	if err != nil {
		return err
	}

	// Notices are shown on one page only.
	view.Write(s.console.Regions().Notice, "")

	return sendHTML(c, status, html)
}

func (s *Server) notice(regions view.Regions, kind, message string) {
	s.writeAlert(regions.Notice, kind, message)
}

func (s *Server) writeAlert(region view.Region, kind, message string) {
	html, err := s.renderer.Alert(kind, message)
	if err != nil {
		s.logger.Error("rendering alert", zap.Error(err))
		return
	}

	view.Write(region, html)
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to read the uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to read the uploaded file")
	}

	return content, nil
}

func sendHTML(c *fiber.Ctx, status int, html template.HTML) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(string(html))
}

// reason is the user-facing text of a backend failure. Application errors are
// shown verbatim.
func reason(err error) string {
	var appErr *backend.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func uploadErrorMessage(prefix string, err error) string {
	var appErr *backend.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return prefix + ": " + err.Error()
}
