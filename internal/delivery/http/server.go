package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/house-price-service/internal/config"
	"github.com/house-price-service/internal/delivery/http/handler"
	"github.com/house-price-service/internal/delivery/http/middleware"
	"github.com/house-price-service/internal/pkg/errors"
	"github.com/house-price-service/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	predictionHandler *handler.PredictionHandler
	stationHandler    *handler.StationHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	predictionHandler *handler.PredictionHandler,
	stationHandler *handler.StationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Toulouse House Price API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		predictionHandler: predictionHandler,
		stationHandler:    stationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов.
// Пути без префикса: фронтенд обращается к {API_URL}/predict.
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/", s.predictionHandler.Root)
	s.app.Get("/health", s.predictionHandler.Health)

	// Prediction routes
	s.app.Post("/predict", s.predictionHandler.Predict)
	s.app.Post("/predict_batch", s.predictionHandler.PredictBatch)

	// Station routes
	s.app.Get("/stations", s.stationHandler.List)
	s.app.Get("/stations/nearest", s.stationHandler.Nearest)
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки роутинга и паники в том же формате, что и ошибки API
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code := errors.CodeInternalServer
			switch {
			case fe.Code == fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fe.Code == fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fe.Code < fiber.StatusInternalServerError:
				code = errors.CodeInvalidRequest
			}
			return utils.SendError(c, errors.New(code, fe.Message, fe.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, err)
	}
}
