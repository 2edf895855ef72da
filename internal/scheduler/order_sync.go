// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/integrator/woocommerce"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

type OrderSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// OrderSyncService mantém o banco de pedidos em dia com a loja: busca na
// API apenas o que foi criado depois do último pedido salvo
type OrderSyncService struct {
	scheduler           *gocron.Scheduler
	orderRepo           repository.OrderRepository
	wcService           woocommerce.WooCommerceIntegrator
	config              OrderSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewOrderSyncService(
	orderRepo repository.OrderRepository,
	wcService woocommerce.WooCommerceIntegrator,
	cfg *config.Config,
) *OrderSyncService {
	syncConfig := OrderSyncConfig{
		CronSchedule: cfg.OrderSync.CronSchedule, // Default: 5h da manhã todos os dias
		SyncEnabled:  cfg.OrderSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de sincronização de pedidos carregada")

	return &OrderSyncService{
		scheduler: scheduler,
		orderRepo: orderRepo,
		wcService: wcService,
		config:    syncConfig,
	}
}

func (s *OrderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização de pedidos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de pedidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncOrders(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de pedidos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncOrders busca os pedidos novos na loja e os grava em lote. Também é
// chamado pelo endpoint de disparo manual. O mutex protege apenas a flag de
// execução e os timestamps; a busca e a gravação rodam fora do lock para que
// Status e disparos concorrentes não fiquem bloqueados atrás de uma
// sincronização longa.
func (s *OrderSyncService) SyncOrders() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de pedidos já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de pedidos")

	latestDate, err := s.orderRepo.GetLatestOrderDate()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar a data do último pedido salvo")
		return err
	}

	orders, err := s.wcService.FetchOrdersSince(latestDate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar pedidos novos na loja")
		return err
	}

	if len(orders) == 0 {
		logrus.Info("Nenhum pedido novo para sincronizar")
		return nil
	}

	if err := s.orderRepo.SaveOrUpdateBatch(orders); err != nil {
		logrus.WithError(err).Error("Erro ao salvar pedidos sincronizados")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"orders": len(orders),
	}).Info("Sincronização de pedidos concluída")

	return nil
}

// SyncStatus descreve o estado atual da sincronização para o endpoint de
// monitoramento
type SyncStatus struct {
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

func (s *OrderSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{Running: s.syncRunning}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}
