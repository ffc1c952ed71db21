package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Redis     RedisConfig     `yaml:"redis"     validate:"required"`
	Gateway   GatewayConfig   `yaml:"gateway"   validate:"required"`
	Notifier  NotifierConfig  `yaml:"notifier"  validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Mailjet   MailjetConfig   `yaml:"mailjet"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres mongo"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"havenhues" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type MongoConfig struct {
	URI      string `yaml:"uri"      env:"MONGO_URI"      env-default:"mongodb://localhost:27017/?replicaSet=rs0"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"havenhues"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"              validate:"min=0"`
}

type GatewayConfig struct {
	SecretKey string        `yaml:"secret_key" env:"STRIPE_SECRET_KEY" env-default:""`
	BaseURL   string        `yaml:"base_url"   env:"STRIPE_BASE_URL"   env-default:""`
	Timeout   time.Duration `yaml:"timeout"    env:"STRIPE_TIMEOUT"    env-default:"10s"   validate:"gt=0"`
	RPS       int           `yaml:"rps"        env:"STRIPE_RPS"        env-default:"20"    validate:"min=1"`
	Backoff   time.Duration `yaml:"backoff"    env:"STRIPE_BACKOFF"    env-default:"200ms" validate:"gt=0"`
}

type NotifierConfig struct {
	// Channels is a comma separated subset of telegram, mailjet and log.
	Channels string `yaml:"channels" env:"NOTIFIER_CHANNELS" env-default:"log" validate:"required"`
}

func (n NotifierConfig) Enabled(channel string) bool {
	for _, c := range strings.Split(n.Channels, ",") {
		if strings.EqualFold(strings.TrimSpace(c), channel) {
			return true
		}
	}
	return false
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type MailjetConfig struct {
	PublicKey  string `yaml:"public_key"  env:"MAILJET_PUBLIC_KEY"  env-default:""`
	PrivateKey string `yaml:"private_key" env:"MAILJET_PRIVATE_KEY" env-default:""`
	FromEmail  string `yaml:"from_email"  env:"MAILJET_FROM_EMAIL"  env-default:"noreply@havenhues.com"`
	FromName   string `yaml:"from_name"   env:"MAILJET_FROM_NAME"   env-default:"HavenHues"`
}

type SchedulerConfig struct {
	Interval          time.Duration `yaml:"interval"           env:"SCHEDULER_INTERVAL"          env-default:"24h" validate:"required,gt=0"`
	ReminderLookAhead time.Duration `yaml:"reminder_lookahead" env:"REMINDER_LOOKAHEAD"          env-default:"48h" validate:"gt=0"`
	ReminderTolerance time.Duration `yaml:"reminder_tolerance" env:"REMINDER_TOLERANCE"          env-default:"12h" validate:"gt=0"`
	ReminderAttempts  int           `yaml:"reminder_attempts"  env:"REMINDER_MAX_ATTEMPTS"       env-default:"3"   validate:"min=1"`
	ReminderWorkers   int           `yaml:"reminder_workers"   env:"REMINDER_WORKERS"            env-default:"4"   validate:"min=1"`
}

type BookingConfig struct {
	Currency      string        `yaml:"currency"       env:"BOOKING_CURRENCY"       env-default:"inr" validate:"required,len=3"`
	RefereeBonus  int64         `yaml:"referee_bonus"  env:"REFERRAL_REFEREE_BONUS"  env-default:"5000" validate:"min=0"`
	ReferrerBonus int64         `yaml:"referrer_bonus" env:"REFERRAL_REFERRER_BONUS" env-default:"10000" validate:"min=0"`
	OTPTTL        time.Duration `yaml:"otp_ttl"        env:"OTP_TTL"                env-default:"10m" validate:"gt=0"`
}

func MustLoad() *Config {
	// a missing .env is fine, the real environment still applies
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
