package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"myforum/config"
	"myforum/internal/adapter/in/rest"
	busmem "myforum/internal/adapter/out/pubsub/inmemory"
	sessionmem "myforum/internal/adapter/out/session/inmemory"
	sessionredis "myforum/internal/adapter/out/session/redis"
	memstore "myforum/internal/adapter/out/storage/inmemory"
	pgstore "myforum/internal/adapter/out/storage/postgres"
	"myforum/internal/service"
	"myforum/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const connectInterval = time.Second

type App struct {
	cfg   config.Config
	srv   *http.Server
	pool  *pgxpool.Pool
	redis redis.UniversalClient
}

type storages struct {
	posts     service.PostStorage
	replies   service.ReplyStorage
	tags      service.TagStorage
	users     service.UserStorage
	trManager service.TxManager
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)
	a := &App{cfg: cfg}

	st, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := a.openSessions(ctx)
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}

	bus := busmem.New(cfg.Replies.StreamBuffer)

	postSvc := service.NewPostService(st.posts, st.replies, st.tags, st.trManager)
	replySvc := service.NewReplyService(st.replies, st.posts, bus)
	tagSvc := service.NewTagService(st.tags, st.trManager)
	userSvc := service.NewUserService(st.users, sessions, service.WithSessionTTL(cfg.Sessions.TTL))

	h := rest.NewHandler(postSvc, replySvc, tagSvc, userSvc,
		rest.WithLogger(log),
		rest.WithKeepAlive(cfg.Replies.StreamKeepAlive),
	)

	addr := ":" + cfg.HTTP.Port
	// WriteTimeout stays zero: reply streams are long-lived and clear
	// their own deadline.
	a.srv = &http.Server{
		Addr:              addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	// Shutdown waits for handlers but never cancels them; open streams are
	// ended here so the drain can finish.
	a.srv.RegisterOnShutdown(h.CloseStreams)

	log.Info("app initialized",
		"addr", addr,
		"storage", cfg.StorageType,
		"sessions", cfg.Sessions.Store,
	)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (storages, error) {
	if a.cfg.StorageType != config.StoragePostgres {
		posts := memstore.NewPostStorage()
		replies := memstore.NewReplyStorage()
		tags := memstore.NewTagStorage()
		return storages{
			posts:     posts,
			replies:   replies,
			tags:      tags,
			users:     memstore.NewUserStorage(memstore.WithCascade(posts, replies, tags)),
			trManager: memstore.TxManager{},
		}, nil
	}

	pool, err := pgstore.Connect(ctx, a.cfg.Postgres.GetDSN(), a.cfg.Postgres.ConnectAttempts, connectInterval)
	if err != nil {
		return storages{}, err
	}
	a.pool = pool

	if err := pgstore.Migrate(ctx, pool, logger.FromContext(ctx)); err != nil {
		pool.Close()
		return storages{}, err
	}

	return storages{
		posts:     pgstore.NewPostStorage(pool, trmpgx.DefaultCtxGetter),
		replies:   pgstore.NewReplyStorage(pool, trmpgx.DefaultCtxGetter),
		tags:      pgstore.NewTagStorage(pool, trmpgx.DefaultCtxGetter),
		users:     pgstore.NewUserStorage(pool, trmpgx.DefaultCtxGetter),
		trManager: manager.Must(trmpgx.NewDefaultFactory(pool)),
	}, nil
}

func (a *App) openSessions(ctx context.Context) (service.SessionStore, error) {
	if a.cfg.Sessions.Store != config.SessionsRedis {
		return sessionmem.NewSessionStore(), nil
	}

	client, err := sessionredis.Open(ctx, a.cfg.Redis.URL, 5, connectInterval)
	if err != nil {
		return nil, err
	}
	a.redis = client
	return sessionredis.NewSessionStore(client), nil
}

// Run serves HTTP until ctx is cancelled or the server fails, then shuts down
// gracefully and releases the storage connections.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "addr", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := a.srv.Shutdown(shCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return errors.Join(g.Wait(), a.Close())
}

func (a *App) Close() error {
	var err error
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
	if a.redis != nil {
		err = a.redis.Close()
		a.redis = nil
	}
	return err
}

// Migrate applies the database migrations and exits.
func Migrate(ctx context.Context, cfg config.Config) error {
	if cfg.StorageType != config.StoragePostgres {
		return fmt.Errorf("migrations need STORAGE_TYPE=%s, got %q", config.StoragePostgres, cfg.StorageType)
	}

	pool, err := pgstore.Connect(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.ConnectAttempts, connectInterval)
	if err != nil {
		return err
	}
	defer pool.Close()

	return pgstore.Migrate(ctx, pool, logger.FromContext(ctx))
}
