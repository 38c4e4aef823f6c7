package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/lib/pq"
)

const (
	defaultPingTimeout = 5 * time.Second
	connMaxIdleTime    = 2 * time.Minute
	connMaxLifetime    = 30 * time.Minute
	maxIdleConns       = 5
	maxOpenConns       = 25
)

// Config captures the settings required to open the connection pool.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	UseSSL   bool
}

// DSN renders the config as a postgres:// URL, also used by the migrator.
func (c Config) DSN() string {
	sslmode := "disable"
	if c.UseSSL {
		sslmode = "require"
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		User:   url.UserPassword(c.User, c.Password),
		Path:   c.Database,
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Connect opens the pool, applies sane limits and verifies connectivity
// with a ping. The *sql.DB is safe for concurrent use by all repositories.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	db.SetConnMaxIdleTime(connMaxIdleTime)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetMaxOpenConns(maxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// isUniqueViolation reports whether err is a unique-constraint failure
// (SQLSTATE 23505), the authoritative signal for a lost uniqueness race.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
