//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"car-rental/cmd/bootstrap"
	"car-rental/cmd/bootstrap/components"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/infra/cache"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "rental"
	pgPassword = "rental"
)

// One postgres and one redis serve every suite in the process. Each suite
// gets its own database; redis keys are already scoped per customer.
var (
	containersOnce sync.Once
	containersErr  error
	pgEndpoint     endpoint
	redisEndpoint  endpoint
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) addr() string {
	return e.Host + ":" + e.Port.Port()
}

// SharedSuite boots the whole application against real containers.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	containersOnce.Do(startContainers)
	require.NoError(t, containersErr, "start containers")

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t)
	cfg.Redis.Addr = redisEndpoint.addr()
	cfg.Redis.IdempotencyEnabled = true

	pool, cleanup, err := db.Connect(cfg.DB)
	require.NoError(t, err, "connect test database")
	t.Cleanup(cleanup)

	require.NoError(t, applyMigrations(t.Context(), pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	redisClient, err := cache.NewRedisClient(t.Context(), cfg.Redis)
	require.NoError(t, err, "connect redis")
	t.Cleanup(func() { _ = redisClient.Close() })

	s.DB = pool
	s.Redis = redisClient
	s.Config = cfg
	s.Router = startApp(t, pool, cfg, cache.NewIdempotencyStore(redisClient, cfg.Redis.IdempotencyTTL))
}

// SetupSubTest gives every subtest an empty schema with reference data.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

// startApp wires the production modules around the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config, store middleware.IdempotencyStore) *gin.Engine {
	var router *gin.Engine

	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Provide(func() middleware.IdempotencyStore { return store }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(t.Context(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop application", "error", err.Error())
		}
	})

	return router
}

func startContainers() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for throwaway data
			Cmd: []string{"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return adminDSN(endpoint{Host: host, Port: port})
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "car-rental-e2e"},
		},
		Started: true,
	})
	if err != nil {
		containersErr = errs.Wrap(err, "postgres container")
		return
	}
	if pgEndpoint, err = endpointOf(ctx, pg, "5432/tcp"); err != nil {
		containersErr = err
		return
	}

	rd, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "car-rental-e2e"},
		},
		Started: true,
	})
	if err != nil {
		containersErr = errs.Wrap(err, "redis container")
		return
	}
	redisEndpoint, containersErr = endpointOf(ctx, rd, "6379/tcp")
}

func endpointOf(ctx context.Context, c testcontainers.Container, port nat.Port) (endpoint, error) {
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, errs.Wrapf(err, "mapped port %s", port)
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, errs.Wrap(err, "container host")
	}
	return endpoint{Host: host, Port: mapped}, nil
}

func adminDSN(e endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, e.addr())
}

// createDatabase makes a fresh database for one suite and drops it afterwards.
func createDatabase(t *testing.T) config.DBConfig {
	t.Helper()

	name := "rental_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := pgxpool.New(t.Context(), adminDSN(pgEndpoint))
	require.NoError(t, err, "admin connection")
	defer admin.Close()

	_, err = admin.Exec(t.Context(), "CREATE DATABASE "+name)
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		admin, err := pgxpool.New(ctx, adminDSN(pgEndpoint))
		if err != nil {
			slog.Warn("drop test database: connect failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database failed", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pgEndpoint.Host,
		Port:     pgEndpoint.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// applyMigrations runs every migrations/*.sql file in name order. The atlas
// CLI is not needed because the files are plain SQL.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, self, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(self), "..", "..", "migrations")

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return errs.Wrap(err, "list migrations")
	}
	if len(files) == 0 {
		return errs.Newf("no migrations found in %s", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return errs.Wrapf(err, "read %s", filepath.Base(file))
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return errs.Wrapf(err, "apply %s", filepath.Base(file))
		}
	}
	return nil
}
