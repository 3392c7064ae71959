package app

import (
	"context"
	"log"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"hostelez/internal/auth"
	"hostelez/internal/config"
	"hostelez/internal/errreport"
	"hostelez/internal/notify"
	"hostelez/internal/queue"
	"hostelez/internal/reminder"
	"hostelez/internal/store"
)

// Runtime holds the connected backends and the services built on them.
// Both binaries start from it.
type Runtime struct {
	Services *Services
	Signer   *auth.Signer
	Queue    queue.Queue
	Checks   map[string]func(context.Context) bool

	closers []func()
}

// Open connects the backends cfg selects. With STORE_BACKEND=memory the
// notification inbox is kept in memory too; otherwise documents live in
// MongoDB and notifications in Postgres.
func Open(ctx context.Context, cfg config.App) (*Runtime, error) {
	rt := &Runtime{Checks: map[string]func(context.Context) bool{}}
	signer := auth.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	rt.Signer = signer

	var (
		repos Repos
		inbox notify.Inbox
	)
	switch cfg.StoreBackend {
	case "memory":
		log.Println("store: using in-memory repositories")
		repos = MemoryRepos()
		inbox = notify.NewMemoryInbox()
	case "mongo":
		m, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			if m == nil {
				return nil, err
			}
			log.Printf("warning: mongo not reachable: %v", err)
		}
		rt.onClose(func() { _ = m.Close(context.Background()) })
		if err := m.EnsureIndexes(ctx); err != nil {
			log.Printf("warning: mongo indexes not ensured: %v", err)
		}
		rt.Checks["mongo"] = m.Healthy
		repos = MongoRepos(m.DB)

		db, err := store.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			if db == nil {
				rt.Close()
				return nil, err
			}
			log.Printf("warning: postgres not reachable: %v", err)
		}
		rt.onClose(func() { _ = db.Close() })
		pg := notify.NewPostgresInbox(db.Client)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Printf("warning: notifications schema not ensured: %v", err)
		}
		rt.Checks["postgres"] = db.Healthy
		inbox = pg
	default:
		return nil, errors.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	switch cfg.QueueBackend {
	case "memory":
		rt.Queue = queue.NewInMemory(256)
	case "redis":
		rdb, err := store.NewRedis(cfg.RedisAddr)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.onClose(func() { _ = rdb.Close() })
		rt.Checks["redis"] = rdb.Healthy
		rt.Queue = queue.NewRedisQueue(rdb.Client, queue.DefaultKey)
	default:
		rt.Close()
		return nil, errors.Errorf("unknown QUEUE_BACKEND %q", cfg.QueueBackend)
	}

	rt.Services = NewServices(repos, inbox, signer, clockwork.NewRealClock(), cfg.Location)
	return rt, nil
}

func (rt *Runtime) onClose(fn func()) {
	rt.closers = append(rt.closers, fn)
}

// Close releases the backends in reverse order of opening.
func (rt *Runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}

// RunWorker runs the reminder scheduler and the delivery pump until ctx is done.
func (rt *Runtime) RunWorker(ctx context.Context, cfg config.App, report *errreport.Reporter) {
	dispatch := reminder.NewQueueDispatcher(rt.Queue)
	sched := reminder.NewScheduler(clockwork.NewRealClock(), cfg.Location, report,
		rt.Services.Jobs(dispatch, cfg.Location, cfg.ClassReminderLead)...)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sched.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := reminder.Pump(ctx, rt.Queue, rt.Services.Notifications); err != nil {
			log.Printf("pump stopped: %v", err)
			report.Error(err, nil)
		}
	}()
	wg.Wait()
}
