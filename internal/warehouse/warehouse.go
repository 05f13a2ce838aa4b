// Package warehouse provides read-only access to the census data warehouse.
package warehouse

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Pool wraps the process-wide warehouse connection pool. database/sql
// re-establishes closed connections on checkout, so callers never hold a
// stale handle across requests.
type Pool struct {
	db *sql.DB
}

// Open connects to the warehouse using the given driver and DSN.
func Open(driver, dsn string) (*Pool, error) {
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		driver = "sqlite3"
	case "mysql":
		driver = "mysql"
	default:
		return nil, fmt.Errorf("unsupported warehouse driver: %s", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping warehouse: %w", err)
	}
	return &Pool{db: db}, nil
}

// Close closes the underlying pool.
func (p *Pool) Close() error {
	return p.db.Close()
}
