package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/shelterops/shelter-api/internal/auth"
	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/env"
	"github.com/shelterops/shelter-api/internal/model"
	"github.com/shelterops/shelter-api/internal/scheduler"
	"github.com/shelterops/shelter-api/internal/version"
)

var _cfgFile = flag.String("cfg", "", "path to config file")

func init() {
	flag.Parse()
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	httpHost string
	httpPort int
	db       struct {
		dsn         string
		automigrate bool
	}
	session struct {
		ttl time.Duration
	}
}

type application struct {
	config config
	db     *database.DB
	auth   *auth.Manager
	sched  *scheduler.Scheduler
	logger *slog.Logger
	wg     sync.WaitGroup
}

func run(logger *slog.Logger) error {
	var cfg config

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return err
		}
	}

	cfg.httpHost = env.GetString("HTTP_HOST", "localhost")
	cfg.httpPort = env.GetInt("HTTP_PORT", 8080)
	cfg.db.dsn = env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.session.ttl = env.GetDuration("SESSION_TTL", auth.DefaultSessionTTL)

	showVersion := flag.Bool("version", false, "display version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	db, err := database.New(logger, cfg.db.dsn, cfg.db.automigrate)
	if err != nil {
		return err
	}
	defer db.Close()

	app := &application{
		config: cfg,
		db:     db,
		auth: auth.NewManager(
			logger,
			database.NewUserDAO(logger, db),
			database.NewSessionDAO(logger, db),
			cfg.session.ttl,
		),
		sched:  scheduler.New(logger, database.NewWalkDAO(logger, db)),
		logger: logger,
	}

	if err := app.seedRootAdmin(context.Background()); err != nil {
		return err
	}

	return app.serveHTTP()
}

// seedRootAdmin creates the bootstrap "admin" account on first start.
func (app *application) seedRootAdmin(ctx context.Context) error {
	dao := database.NewUserDAO(app.logger, app.db)

	if _, err := dao.GetByUsername(ctx, rootAdminUsername); err == nil {
		return nil
	}

	hash, err := auth.HashPassword("admin")
	if err != nil {
		return err
	}

	_, err = dao.Insert(ctx, database.InsertUserDTO{
		Name:     rootAdminUsername,
		Username: rootAdminUsername,
		Password: hash,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return err
	}

	app.logger.Info("root admin account created", "username", rootAdminUsername)

	return nil
}
