// Package server hosts the console page and relays its forms to the backend.
package server

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/logger"
	"github.com/spigell/recruit-console/internal/overlay"
	"github.com/spigell/recruit-console/internal/session"
	"github.com/spigell/recruit-console/internal/view"
)

//go:embed static
var staticFiles embed.FS

const (
	appName = "recruit-console"

	// Room for multipart framing on top of the file itself.
	bodyLimitSlack = 1 << 20
)

// Backend is the part of the backend API the console relays to.
type Backend interface {
	session.StatusSource
	overlay.Fetcher
	UploadJD(ctx context.Context, upload backend.JDUpload) (*backend.UploadedJD, error)
	UploadCV(ctx context.Context, upload backend.CVUpload) (*backend.UploadedCV, error)
	Match(ctx context.Context, jdID int) (*backend.MatchResult, error)
}

type Config struct {
	Listen        string
	MaxUploadSize int64
	Version       string
}

type Server struct {
	app      *fiber.App
	cfg      Config
	backend  Backend
	renderer *view.Renderer
	console  *Console
	tracker  *session.Tracker
	overlay  *overlay.Overlay
	logger   *zap.Logger
}

func New(cfg Config, client Backend, renderer *view.Renderer, log *zap.Logger) *Server {
	log = logger.WithFields(log, logger.Component("server"))

	s := &Server{
		cfg:      cfg,
		backend:  client,
		renderer: renderer,
		console:  &Console{},
		logger:   log,
	}

	regions := s.console.Regions()
	s.tracker = session.NewTracker(client, log, regions.MatchEnabled)
	s.overlay = overlay.New(client, renderer, regions.Overlay, log)

	s.app = fiber.New(fiber.Config{
		AppName:               appName,
		BodyLimit:             int(cfg.MaxUploadSize) + bodyLimitSlack,
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New())
	s.app.Use(requestLogger(log))

	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(staticFiles),
		PathPrefix: "static",
	}))

	s.app.Get("/", s.handleIndex)
	s.app.Post("/upload_jd", s.handleUploadJD)
	s.app.Post("/upload_cv", s.handleUploadCV)
	s.app.Post("/match", s.handleMatch)
	s.app.Get("/candidates/:id", s.handleCandidate)
	s.app.Get("/health", s.handleHealth)

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Console() *Console {
	return s.console
}

// Run serves until ctx is cancelled, then shuts the app down.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting the console", zap.String("listen", s.cfg.Listen))
		errCh <- s.app.Listen(s.cfg.Listen)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the console")

	if err := s.app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err), zap.String("path", c.Path()))
	}

	html, renderErr := s.renderer.Alert(view.AlertDanger, err.Error())
	if renderErr != nil {
		return c.Status(code).SendString(err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(code).SendString(string(html))
}
