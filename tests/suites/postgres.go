// Package suites holds shared integration test fixtures.
package suites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	dbName     = "atlas_test"
	dbUser     = "atlas"
	dbPassword = "atlas-test-pw"
)

// PostgresContainer is a throwaway Postgres started for one suite.
type PostgresContainer struct {
	testcontainers.Container
	ConnectionString string
}

// NewPostgresContainer starts Postgres and waits until it answers queries.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const port = "5432/tcp"

	dbURL := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port.Port(), dbName)
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.5-alpine3.21",
		ExposedPorts: []string{port},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		Env: map[string]string{
			"POSTGRES_DB":       dbName,
			"POSTGRES_USER":     dbUser,
			"POSTGRES_PASSWORD": dbPassword,
		},
		WaitingFor: wait.ForSQL(port, "postgres", dbURL).
			WithStartupTimeout(30 * time.Second).
			WithQuery("SELECT 1"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, port)
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &PostgresContainer{Container: container, ConnectionString: dbURL(host, mapped)}, nil
}

// RepositoryTestSuite runs the migrations once and empties every table
// between tests.
type RepositoryTestSuite struct {
	suite.Suite
	Container *PostgresContainer
	DB        *gorm.DB
	SQLDB     *sql.DB
}

func (s *RepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("Skipping database integration tests in short mode")
	}

	ctx := context.Background()
	container, err := NewPostgresContainer(ctx)
	s.Require().NoError(err)
	s.Container = container

	s.SQLDB, err = sql.Open("postgres", container.ConnectionString)
	s.Require().NoError(err)
	s.SQLDB.SetMaxOpenConns(5)
	s.SQLDB.SetMaxIdleConns(2)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	s.Require().NoError(s.SQLDB.PingContext(pingCtx))

	s.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: s.SQLDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.migrate())
}

func (s *RepositoryTestSuite) TearDownSuite() {
	if s.SQLDB != nil {
		_ = s.SQLDB.Close()
	}
	if s.Container != nil {
		_ = s.Container.Terminate(context.Background())
	}
}

func (s *RepositoryTestSuite) SetupTest() {
	var tables []string
	s.DB.Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
		AND table_name <> 'schema_migrations'
	`).Scan(&tables)

	for _, table := range tables {
		s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q CASCADE`, table))
	}
}

// CountRecords returns the row count of table.
func (s *RepositoryTestSuite) CountRecords(table string) int64 {
	var n int64
	s.DB.Table(table).Count(&n)
	return n
}

func (s *RepositoryTestSuite) migrate() error {
	dir := migrationsDir()
	if dir == "" {
		return errors.New("migrations directory not found")
	}

	m, err := migrate.New("file://"+dir, s.Container.ConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// migrationsDir walks up from the working directory to the module root.
func migrationsDir() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}
