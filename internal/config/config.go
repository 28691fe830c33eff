package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

/*
Sources, highest priority first:
environment variables, command line flags, YAML file (CONFIG_FILE or -c), defaults.
*/

const (
	MemoryQueue = "memory"
	KafkaQueue  = "kafka"
)

type ServerConfig struct {
	RunAddress  string `env:"RUN_ADDRESS" yaml:"run_address"`
	DatabaseDSN string `env:"DATABASE_URI" yaml:"database_uri"`
	LogLevel    string `env:"LOG_LEVEL" yaml:"log_level"`

	SecretKey           string `env:"SECRET" yaml:"secret"`
	Secret              []byte `env:"-" yaml:"-"`
	AdminLogin          string `env:"ADMIN_LOGIN" yaml:"admin_login"`
	AdminPassword       string `env:"ADMIN_PASSWORD" yaml:"admin_password"`
	AuthCookieExpiresIn int    `env:"AUTH_COOKIE_EXPIRES_IN" yaml:"auth_cookie_expires_in"`

	TenantID  string `env:"TENANT_ID" yaml:"tenant_id"`
	ProjectID string `env:"PROJECT_ID" yaml:"project_id"`

	QueueBackend  string   `env:"QUEUE_BACKEND" yaml:"queue_backend"`
	QueueSize     int      `env:"QUEUE_SIZE" yaml:"queue_size"`
	NotifyWorkers int      `env:"NOTIFY_WORKERS" yaml:"notify_workers"`
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envSeparator:"," yaml:"kafka_brokers"`
	KafkaTopic    string   `env:"KAFKA_TOPIC" yaml:"kafka_topic"`
	KafkaGroup    string   `env:"KAFKA_GROUP" yaml:"kafka_group"`

	EmailAPIURL     string `env:"EMAIL_API_URL" yaml:"email_api_url"`
	EmailAPIKey     string `env:"EMAIL_API_KEY" yaml:"email_api_key"`
	EmailFrom       string `env:"EMAIL_FROM" yaml:"email_from"`
	WhatsAppAPIURL  string `env:"WHATSAPP_API_URL" yaml:"whatsapp_api_url"`
	WhatsAppToken   string `env:"WHATSAPP_TOKEN" yaml:"whatsapp_token"`
	WhatsAppPhoneID string `env:"WHATSAPP_PHONE_ID" yaml:"whatsapp_phone_id"`
}

func defaultConfig() *ServerConfig {
	return &ServerConfig{
		RunAddress:          "localhost:8080",
		DatabaseDSN:         "postgres://postgres@localhost:5432/plaquexpress?sslmode=disable",
		LogLevel:            "info",
		AdminLogin:          "admin",
		AuthCookieExpiresIn: 12 * 60 * 60,
		TenantID:            "default",
		ProjectID:           "plaquexpress",
		QueueBackend:        MemoryQueue,
		QueueSize:           100,
		NotifyWorkers:       2,
		KafkaBrokers:        []string{"localhost:9092"},
		KafkaTopic:          "plaquexpress.notifications",
		KafkaGroup:          "plaquexpress-notifier",
		WhatsAppAPIURL:      "https://graph.facebook.com/v19.0",
	}
}

func NewConfig() (*ServerConfig, error) {
	return parse(os.Args[1:])
}

func parse(args []string) (*ServerConfig, error) {

	params := defaultConfig()

	var commandLineParams ServerConfig
	var brokers string

	fs := flag.NewFlagSet("plaquexpress", flag.ContinueOnError)
	configFile := fs.String("c", os.Getenv("CONFIG_FILE"), "YAML config file")
	fs.StringVar(&commandLineParams.RunAddress, "a", params.RunAddress, "Base address to listen on")
	fs.StringVar(&commandLineParams.DatabaseDSN, "d", params.DatabaseDSN, "Database DSN")
	fs.StringVar(&commandLineParams.LogLevel, "l", params.LogLevel, "Log level")
	fs.StringVar(&commandLineParams.SecretKey, "s", "", "Secret used to sign admin sessions")
	fs.StringVar(&commandLineParams.TenantID, "t", params.TenantID, "Tenant id")
	fs.StringVar(&commandLineParams.ProjectID, "p", params.ProjectID, "Project id")
	fs.StringVar(&commandLineParams.QueueBackend, "q", params.QueueBackend, "Notification queue backend: memory or kafka")
	fs.IntVar(&commandLineParams.NotifyWorkers, "w", params.NotifyWorkers, "Number of notification workers")
	fs.StringVar(&brokers, "k", strings.Join(params.KafkaBrokers, ","), "Comma separated Kafka brokers")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		if err := loadFile(*configFile, params); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			params.RunAddress = commandLineParams.RunAddress
		case "d":
			params.DatabaseDSN = commandLineParams.DatabaseDSN
		case "l":
			params.LogLevel = commandLineParams.LogLevel
		case "s":
			params.SecretKey = commandLineParams.SecretKey
		case "t":
			params.TenantID = commandLineParams.TenantID
		case "p":
			params.ProjectID = commandLineParams.ProjectID
		case "q":
			params.QueueBackend = commandLineParams.QueueBackend
		case "w":
			params.NotifyWorkers = commandLineParams.NotifyWorkers
		case "k":
			params.KafkaBrokers = strings.Split(brokers, ",")
		}
	})

	if err := env.Parse(params); err != nil {
		return nil, err
	}

	if err := params.validate(); err != nil {
		return nil, err
	}
	params.Secret = []byte(params.SecretKey)

	return params, nil
}

func loadFile(path string, params *ServerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	if err := yaml.Unmarshal(data, params); err != nil {
		return fmt.Errorf("failed to parse config file %w", err)
	}
	return nil
}

func (c *ServerConfig) validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET must be set")
	}
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD must be set")
	}
	if c.TenantID == "" || c.ProjectID == "" {
		return errors.New("TENANT_ID and PROJECT_ID must be set")
	}
	switch c.QueueBackend {
	case MemoryQueue:
	case KafkaQueue:
		if len(c.KafkaBrokers) == 0 || c.KafkaTopic == "" || c.KafkaGroup == "" {
			return errors.New("kafka queue needs KAFKA_BROKERS, KAFKA_TOPIC and KAFKA_GROUP")
		}
	default:
		return fmt.Errorf("unknown queue backend %q", c.QueueBackend)
	}
	if c.NotifyWorkers < 1 {
		return errors.New("NOTIFY_WORKERS must be at least 1")
	}
	return nil
}
