package db

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"besttodo/internal/config"
)

const defaultMySQLParams = "parseTime=true"

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := buildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(conf.StoreDriver, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func buildDSN(conf *config.Config) (string, error) {
	switch conf.StoreDriver {
	case config.DriverMySQL:
		return mysqlDSN(conf)
	case config.DriverPostgres:
		return postgresDSN(conf), nil
	default:
		return "", fmt.Errorf("no sql driver for %q", conf.StoreDriver)
	}
}

// mysqlDSN forces the options the repositories depend on: time scanning and
// matched (not changed) row counts for conditional updates.
func mysqlDSN(conf *config.Config) (string, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultMySQLParams
	}

	raw := fmt.Sprintf(
		"%s:%s@tcp(%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		net.JoinHostPort(conf.DbHost, conf.DbPort),
		conf.DbName,
		params,
	)

	cfg, err := mysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

func postgresDSN(conf *config.Config) string {
	params := conf.DbParams
	if params == "" {
		params = "sslmode=disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.DbUser, conf.DbPassword),
		Host:     net.JoinHostPort(conf.DbHost, conf.DbPort),
		Path:     "/" + conf.DbName,
		RawQuery: params,
	}
	return u.String()
}

type HealthChecker struct {
	db *sqlx.DB
}

func NewHealthChecker(db *sqlx.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	if h.db == nil {
		return fmt.Errorf("database not configured")
	}
	return h.db.PingContext(ctx)
}
