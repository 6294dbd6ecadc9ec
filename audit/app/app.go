package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/audit/config"
	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/handler"
	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/repository"
	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/server"
	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/service"
	"github.com/FortunatoE/SistemaBiblioteca/audit/migrations"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/logger"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "audit")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	svc := service.NewService(repo, log)

	group, err := kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}
	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	go func() {
		if err := kafka.Consume(consumeCtx, group, handler.NewConsumer(svc.Record, log), kafka.AuditTopic); err != nil {
			log.Error("kafka.Consume", zap.Error(err))
		}
	}()

	h := handler.New(svc, log)
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
	stopConsume()
	if err = group.Close(); err != nil {
		log.Error("group.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
