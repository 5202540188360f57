package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecom-dashboard/infrastructure/integrator/ecommerce"
	"github.com/vfg2006/ecom-dashboard/internal/config"
	"github.com/vfg2006/ecom-dashboard/pkg/metrics"
)

// KeepAliveConfig representa a configuração do agendador de keep-alive
type KeepAliveConfig struct {
	CronSchedule string
	Enabled      bool
	PingTimeout  time.Duration
}

// KeepAliveService consulta a API de métricas periodicamente para que o host não hiberne entre montagens do painel
type KeepAliveService struct {
	scheduler *gocron.Scheduler
	config    KeepAliveConfig
	ecommerce ecommerce.EcommerceIntegrator

	ctx context.Context

	pingRunning       bool
	pingMutex         sync.Mutex
	lastPingStartedAt time.Time
	lastPingAt        time.Time
	lastPingError     string
	consecutiveErrors int
}

func NewKeepAliveService(ecommerceIntegrator ecommerce.EcommerceIntegrator, appConfig *config.Config) *KeepAliveService {
	keepAliveConfig := KeepAliveConfig{
		CronSchedule: appConfig.KeepAlive.CronSchedule,
		Enabled:      appConfig.KeepAlive.Enabled,
		PingTimeout:  appConfig.Ecommerce.Timeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": keepAliveConfig.CronSchedule,
		"enabled":       keepAliveConfig.Enabled,
	}).Info("Configuração do agendador de keep-alive carregada")

	return &KeepAliveService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    keepAliveConfig,
		ecommerce: ecommerceIntegrator,
		ctx:       context.Background(),
	}
}

// Start agenda o keep-alive. O agendador para quando o contexto é cancelado.
func (s *KeepAliveService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Keep-alive da API de métricas desabilitado por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de keep-alive")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.ping()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar keep-alive: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de keep-alive")
		s.scheduler.Stop()
	}()

	return nil
}

// ping ignora a execução se a anterior ainda não terminou
func (s *KeepAliveService) ping() {
	if !s.claimPing() {
		logrus.Info("Keep-alive já em andamento, ignorando")
		return
	}
	s.runPing()
}

// claimPing marca o keep-alive como em andamento. Retorna false se outro já estiver rodando.
func (s *KeepAliveService) claimPing() bool {
	s.pingMutex.Lock()
	defer s.pingMutex.Unlock()

	if s.pingRunning {
		return false
	}
	s.pingRunning = true
	s.lastPingStartedAt = time.Now()
	return true
}

// runPing executa o keep-alive; deve ser chamado depois de claimPing
func (s *KeepAliveService) runPing() {
	ctx := s.ctx
	if s.config.PingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.PingTimeout)
		defer cancel()
	}

	err := s.ecommerce.Ping(ctx)
	metrics.ObserveKeepAlive(err)

	s.pingMutex.Lock()
	defer s.pingMutex.Unlock()

	s.pingRunning = false
	s.lastPingAt = time.Now()

	if err != nil {
		s.consecutiveErrors++
		s.lastPingError = err.Error()
		logrus.WithError(err).WithField("consecutive_errors", s.consecutiveErrors).Warn("Keep-alive: API de métricas não respondeu")
		return
	}

	s.consecutiveErrors = 0
	s.lastPingError = ""
	logrus.WithField("duration", time.Since(s.lastPingStartedAt).String()).Debug("Keep-alive: API de métricas respondeu")
}

// TriggerManualPing dispara um keep-alive fora da agenda. Retorna false se já houver um em andamento.
func (s *KeepAliveService) TriggerManualPing() bool {
	if !s.claimPing() {
		logrus.Info("Keep-alive já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando keep-alive manual")
	go s.runPing()
	return true
}

// GetStatus retorna o status atual do keep-alive
func (s *KeepAliveService) GetStatus() map[string]any {
	s.pingMutex.Lock()
	defer s.pingMutex.Unlock()

	return map[string]any{
		"running":            s.pingRunning,
		"cron":               s.config.CronSchedule,
		"enabled":            s.config.Enabled,
		"last_started_at":    s.lastPingStartedAt,
		"last_completed_at":  s.lastPingAt,
		"last_error":         s.lastPingError,
		"consecutive_errors": s.consecutiveErrors,
	}
}
