package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/config"
	"github.com/vessel-monitor/internal/delivery/http/handler"
	"github.com/vessel-monitor/internal/delivery/http/middleware"
	"github.com/vessel-monitor/internal/pkg/errors"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	positionHandler  *handler.PositionHandler
	zoneHandler      *handler.ZoneHandler
	violationHandler *handler.ViolationHandler
	sessionHandler   *handler.SessionHandler
}

// NewServer wires the handlers into a configured Fiber app.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	positionHandler *handler.PositionHandler,
	zoneHandler *handler.ZoneHandler,
	violationHandler *handler.ViolationHandler,
	sessionHandler *handler.SessionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Vessel Boundary Monitor",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		positionHandler:  positionHandler,
		zoneHandler:      zoneHandler,
		violationHandler: violationHandler,
		sessionHandler:   sessionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Position ingest
	api.Post("/positions", s.positionHandler.SubmitPosition)
	api.Post("/positions/batch", s.positionHandler.SubmitBatch)

	// Zone registry. The static check route registers before the
	// parameterized one so "check" never resolves as a zone ID.
	api.Post("/zones/check", s.zoneHandler.CheckPoint)
	api.Get("/zones", s.zoneHandler.ListZones)
	api.Get("/zones/:id", s.zoneHandler.GetZone)

	// Violation ledger
	api.Get("/violations", s.violationHandler.Query)
	api.Get("/violations/:id", s.violationHandler.GetByID)
	api.Post("/violations/:id/acknowledge", s.violationHandler.Acknowledge)
	api.Post("/violations/:id/resolve", s.violationHandler.Resolve)

	// Monitoring sessions
	api.Post("/sessions", s.sessionHandler.StartSession)
	api.Get("/sessions", s.sessionHandler.ListSessions)
	api.Delete("/sessions/:boat_id", s.sessionHandler.StopSession)
}

// Start runs the listener until Shutdown.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders errors that escape the handlers, keeping the
// same envelope utils.SendError produces.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return c.Status(appErr.StatusCode).JSON(fiber.Map{
				"error": appErr,
			})
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
