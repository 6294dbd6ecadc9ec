package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/logger"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/postgres"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/tracing"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const FileEnv = "LIBRARY_CONFIG_FILE"

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Policy holds the circulation rules.
type Policy struct {
	LoanPeriodDays int    `yaml:"loanPeriodDays" envconfig:"LOAN_PERIOD_DAYS"`
	DailyFineRate  string `yaml:"dailyFineRate" envconfig:"DAILY_FINE_RATE"`
	HoldMinDays    int    `yaml:"holdMinDays" envconfig:"HOLD_MIN_DAYS"`
	HoldMaxDays    int    `yaml:"holdMaxDays" envconfig:"HOLD_MAX_DAYS"`
	MaxActiveLoans int    `yaml:"maxActiveLoans" envconfig:"MAX_ACTIVE_LOANS"`
}

type Config struct {
	Server     HTTPServer     `yaml:"server"`
	Database   postgres.DB    `yaml:"database"`
	Kafka      kafka.Config   `yaml:"kafka"`
	Tracing    tracing.Config `yaml:"tracing"`
	Log        logger.Log     `yaml:"log"`
	Policy     Policy         `yaml:"policy"`
	StaffToken string         `yaml:"staffToken" envconfig:"STAFF_TOKEN" json:"-"`
}

var (
	once sync.Once
	cfg  *Config
)

func defaultConfig() Config {
	return Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: postgres.DB{
			Host:   "localhost",
			Port:   "5432",
			User:   "postgres",
			NameDB: "library",
		},
		Log: logger.Log{LogLevel: zapcore.InfoLevel},
		Policy: Policy{
			LoanPeriodDays: 15,
			DailyFineRate:  "2.00",
			HoldMinDays:    1,
			HoldMaxDays:    7,
			MaxActiveLoans: 5,
		},
	}
}

// NewConfig reads config once: defaults, then the optional YAML file named by
// LIBRARY_CONFIG_FILE, then options, then environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := load(os.Getenv(FileEnv), ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func load(path string, ops ...Option) (*Config, error) {
	config := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err = yaml.Unmarshal(data, &config); err != nil {
			return nil, errors.Wrap(err, "parse config file")
		}
	}
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.Wrap(err, "envconfig")
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
