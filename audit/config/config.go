package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/logger"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `envconfig:"AUDIT_HTTP_HOST"`
	Port         string        `envconfig:"AUDIT_HTTP_PORT"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE"`
}

type Config struct {
	Server   HTTPServer
	Database postgres.DB
	Kafka    kafka.Config
	Log      logger.Log
}

var (
	once sync.Once
	cfg  *Config
)

func NewConfig() *Config {
	once.Do(func() {
		config := Config{
			Server: HTTPServer{
				Host:         "0.0.0.0",
				Port:         "8070",
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			},
			Database: postgres.DB{
				Host:   "localhost",
				Port:   "5432",
				User:   "postgres",
				NameDB: "audit",
			},
			Kafka: kafka.Config{Addrs: []string{"localhost:9092"}},
			Log:   logger.Log{LogLevel: zapcore.InfoLevel},
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
		fmt.Println(string(jscfg))
	})
	return cfg
}
