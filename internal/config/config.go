package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverMemory   = "memory"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Config struct {
	AppName           string `yaml:"app_name" env:"APP_NAME" env-default:"besttodo"`
	AppVersion        string `yaml:"app_version" env:"APP_VERSION" env-default:"dev"`
	AppPort           string `yaml:"app_port" env:"APP_PORT" env-default:"8080"`
	LogLevel          string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	TranslationFolder string `yaml:"translation_folder" env:"TRANSLATION_FOLDER" env-default:"pkg/translator/translation"`

	StoreDriver   string `yaml:"store_driver" env:"STORE_DRIVER" env-default:"mysql"`
	DbHost        string `yaml:"db_host" env:"DB_HOST" env-default:"db"`
	DbPort        string `yaml:"db_port" env:"DB_PORT"`
	DbUser        string `yaml:"db_user" env:"DB_USER" env-default:"besttodo"`
	DbPassword    string `yaml:"db_password" env:"DB_PASSWORD" env-default:"besttodo"`
	DbName        string `yaml:"db_name" env:"DB_NAME" env-default:"besttodo"`
	DbParams      string `yaml:"db_params" env:"DB_PARAMS"`
	DbAutoMigrate bool   `yaml:"db_auto_migrate" env:"DB_AUTO_MIGRATE" env-default:"false"`
	TasksTable    string `yaml:"tasks_table" env:"TASKS_TABLE" env-default:"tasks"`
	FoldersTable  string `yaml:"folders_table" env:"FOLDERS_TABLE" env-default:"folders"`

	AuthSubjectHeader string `yaml:"auth_subject_header" env:"AUTH_SUBJECT_HEADER" env-default:"X-Auth-Subject"`
	CORSAllowOrigin   string `yaml:"cors_allow_origin" env:"CORS_ALLOW_ORIGIN" env-default:"*"`
	TrustedProxiesRaw string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES"`

	TrustedProxies []string `yaml:"-"`
}

// LoadConfig reads .env (if present), then an optional config file named by
// CONFIG_PATH, then the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := readConfig(os.Getenv("CONFIG_PATH"), &cfg); err != nil {
		return nil, err
	}

	cfg.TrustedProxies = parseTrustedProxies(cfg.TrustedProxiesRaw)
	if cfg.DbPort == "" {
		cfg.DbPort = defaultPort(cfg.StoreDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfig(path string, cfg *Config) error {
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("read env: %w", err)
		}
		return nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return fmt.Errorf("read env: %w", err)
			}
			return nil
		}
		return fmt.Errorf("read config %q: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMySQL, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unsupported store driver %q", c.StoreDriver)
	}
	for _, table := range []string{c.TasksTable, c.FoldersTable} {
		if !tableNamePattern.MatchString(table) {
			return fmt.Errorf("invalid table name %q", table)
		}
	}
	if c.TasksTable == c.FoldersTable {
		return errors.New("tasks and folders tables must differ")
	}
	if strings.TrimSpace(c.AuthSubjectHeader) == "" {
		return errors.New("auth subject header must not be empty")
	}
	return nil
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
