package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-registry/docs"
	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/adapters/storage/sqlite"
	"pet-registry/internal/domain/activity"
	"pet-registry/internal/domain/animals"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/registry"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
)

type Options struct {
	// Opcional: si viene, se usa como Postgres ya abierto.
	// Si no, decide por env: DB_DSN => postgres, SQLITE_PATH => sqlite,
	// y en memoria si no hay nada (modo dev).
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		animalRepo   animals.Repository
		ownerRepo    owners.Repository
		activityRepo activity.Repository
		txRunner     registry.TxRunner
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Error("cannot open postgres, falling back", map[string]any{"error": err.Error()})
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		if err := pg.Migrate(context.Background(), db); err != nil {
			log.Error("postgres migration failed", map[string]any{"error": err.Error()})
		}
		animalRepo = pg.NewAnimalsRepo(db)
		ownerRepo = pg.NewOwnersRepo(db)
		activityRepo = pg.NewActivityRepo(db)
		txRunner = pg.NewTxRunner(db)
		log.Info("storage ready", map[string]any{"backend": "postgres"})
	} else if path := os.Getenv("SQLITE_PATH"); path != "" {
		sdb, err := sqlite.Open(path)
		if err != nil {
			log.Error("cannot open sqlite, falling back to memory", map[string]any{"error": err.Error(), "path": path})
		} else {
			animalRepo = sqlite.NewAnimalsRepo(sdb)
			ownerRepo = sqlite.NewOwnersRepo(sdb)
			activityRepo = sqlite.NewActivityRepo(sdb)
			txRunner = sqlite.NewTxRunner(sdb)
			log.Info("storage ready", map[string]any{"backend": "sqlite", "path": path})
		}
	}

	if animalRepo == nil {
		store := mem.NewStore()
		animalRepo = store.Animals()
		ownerRepo = store.Owners()
		activityRepo = store.Activity()
		txRunner = store
		log.Info("storage ready", map[string]any{"backend": "memory"})
	}

	// Services por módulo.
	// owners y animals se referencian mutuamente, así que se construyen
	// en dos fases: primero owners, luego animals, y al final el bind.
	activitySvc := activity.NewService(activityRepo)
	ownersSvc := owners.NewService(ownerRepo, activitySvc)
	animalsSvc := animals.NewService(animalRepo, ownersSvc, activitySvc)
	ownersSvc.BindAnimals(animalsSvc)
	registrySvc := registry.NewService(txRunner, animalsSvc)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		owners.RegisterRoutes(api, ownersSvc)
		animals.RegisterRoutes(api, animalsSvc)
		registry.RegisterRoutes(api, registrySvc)
		activity.RegisterRoutes(api, activitySvc, animalsSvc, ownersSvc)
	})

	return r
}
