package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecom-dashboard/internal/api/handler"
	"github.com/vfg2006/ecom-dashboard/internal/api/handler/router"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/ecom-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecom-dashboard/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboard dashboarding.Dashboard,
	keepAlive handler.KeepAliver,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, dashboard, keepAlive),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares da aplicação
func NewHandler(config *config.Config, dashboard dashboarding.Dashboard, keepAlive handler.KeepAliver) http.Handler {
	rt := router.New(
		router.WithNotFound(apiErrors.NotFound()),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Static(config.App.StaticDir)...),
		router.WithRoutes(handler.Dashboard(dashboard)...),
		router.WithRoutes(handler.KeepAlive(keepAlive)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

const shutdownTimeout = 15 * time.Second

// Run atende até receber SIGINT/SIGTERM ou até o contexto ser cancelado e então desliga o servidor.
// Montagens em andamento têm shutdownTimeout para terminar.
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
	case <-ctx.Done():
		logrus.Info("Sinal de interrupção recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
