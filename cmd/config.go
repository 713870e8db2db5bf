package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"fulfillment/internal/adapters/out/rediscache"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Workload WorkloadConfig `mapstructure:"workload"`
	DayEnd   DayEndConfig   `mapstructure:"dayend"`
	Log      LogConfig      `mapstructure:"log"`
	Timezone string         `mapstructure:"timezone"`
	// Staff seeds the staff directory as "username:role" pairs.
	Staff []string `mapstructure:"staff"`
}

type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SslMode  string `mapstructure:"sslmode"`
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig is optional; an empty Addr disables the issued-number cache.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type WorkloadConfig struct {
	Cap int `mapstructure:"cap"`
}

type DayEndConfig struct {
	Cron      string `mapstructure:"cron"`
	ExportDir string `mapstructure:"export_dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StaffSeed is one parsed entry of Config.Staff.
type StaffSeed struct {
	Username string
	Role     string
}

// LoadConfig reads config.yaml from ./configs or the working directory when
// present, after loading an optional .env file. Environment variables win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.log_level", "warn")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", rediscache.DefaultTTL)
	v.SetDefault("workload.cap", services.DefaultWorkloadCap)
	v.SetDefault("dayend.cron", jobs.DefaultDayEndSchedule)
	v.SetDefault("dayend.export_dir", "./exports")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("timezone", "Asia/Kolkata")
	v.SetDefault("staff", []string{})
	// Keys without a default are invisible to AutomaticEnv during Unmarshal.
	for _, key := range []string{"db.user", "db.password", "db.name"} {
		v.SetDefault(key, "")
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d is out of range", c.HTTP.Port))
	}
	if c.DB.Name == "" {
		errs = append(errs, errors.New("db.name is required"))
	}
	if c.Workload.Cap != services.DefaultWorkloadCap {
		errs = append(errs, fmt.Errorf("workload.cap is fixed at %d, got %d", services.DefaultWorkloadCap, c.Workload.Cap))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if _, err := c.StaffSeeds(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Location is the business time zone. Validate has already checked it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) StaffSeeds() ([]StaffSeed, error) {
	seeds := make([]StaffSeed, 0, len(c.Staff))
	for _, entry := range c.Staff {
		username, role, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || username == "" || role == "" {
			return nil, fmt.Errorf("staff entry %q must be username:role", entry)
		}
		seeds = append(seeds, StaffSeed{Username: username, Role: role})
	}
	return seeds, nil
}

// DSN pins the session time zone so timestamptz values come back in the
// business zone.
func (c DBConfig) DSN(timezone string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode, timezone)
}
