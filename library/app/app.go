package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/library/config"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/handler"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/repository"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/server"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/service"
	"github.com/FortunatoE/SistemaBiblioteca/library/migrations"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/circuit_breaker"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/logger"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/postgres"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/tracing"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")

	shutdownTracing, err := tracing.Init(context.Background(), cfg.Tracing, "library")
	if err != nil {
		log.Fatal("tracing init", zap.Error(err))
	}
	policy, err := NewPolicy(cfg.Policy)
	if err != nil {
		log.Fatal("policy", zap.Error(err))
	}

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	opts := []service.Option{service.WithPolicy(policy)}
	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		cb := circuit_breaker.New(100, time.Second, 0.2, 2)
		opts = append(opts, service.WithPublisher(service.NewKafkaPublisher(kafka.NewEnqueuer(producer, cb), log)))
	}
	svc := service.NewService(repo, log, opts...)

	h := handler.New(svc, log, handler.WithStaffToken(cfg.StaffToken))
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	if err = shutdownTracing(closeCtx); err != nil {
		log.Error("tracing shutdown", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// NewPolicy turns the configured circulation rules into a service policy.
func NewPolicy(cfg config.Policy) (service.Policy, error) {
	rate, err := decimal.NewFromString(cfg.DailyFineRate)
	if err != nil {
		return service.Policy{}, errors.Wrapf(err, "daily fine rate %q", cfg.DailyFineRate)
	}
	p := service.Policy{
		LoanPeriodDays: cfg.LoanPeriodDays,
		DailyFineRate:  rate,
		HoldMinDays:    cfg.HoldMinDays,
		HoldMaxDays:    cfg.HoldMaxDays,
		MaxActiveLoans: cfg.MaxActiveLoans,
	}
	if err = p.Validate(); err != nil {
		return service.Policy{}, err
	}
	return p, nil
}
