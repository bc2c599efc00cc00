package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-companion/docs"
	"pet-care-companion/internal/config"
	"pet-care-companion/internal/confirm"
	"pet-care-companion/internal/domain/account"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/profile"
	"pet-care-companion/internal/domain/reports"
	"pet-care-companion/internal/domain/tasks"
	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/factory"
	"pet-care-companion/internal/platform/logger"
)

type Options struct {
	// Opcional: si es nil se usa config.NewForTesting().
	Config *config.Config
	Logger logger.Logger

	// Opcional: si viene vacío, repos in-memory.
	Repos factory.Repos
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewForTesting()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	repos := opts.Repos
	if repos.Tasks == nil || repos.Reports == nil || repos.Pets == nil || repos.Profile == nil {
		repos = factory.Memory()
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

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	petsSvc := pets.NewService(repos.Pets)
	tasksSvc := tasks.NewService(repos.Tasks, tasks.Options{
		Location:  cfg.Location(),
		WeekStart: cfg.FirstWeekday(),
		Logger:    log,
	})
	reportsSvc := reports.NewService(repos.Reports, petsSvc, reports.Options{
		Location:        cfg.Location(),
		DefaultLocation: cfg.DefaultReportLocation,
		Logger:          log,
	})
	profileSvc := profile.NewService(repos.Profile)

	// Rutas por módulo
	tasks.RegisterRoutes(r, tasksSvc, petsSvc)
	reports.RegisterRoutes(r, reportsSvc)
	pets.RegisterRoutes(r, petsSvc)
	profile.RegisterRoutes(r, profileSvc)
	account.RegisterRoutes(r)

	confirm.RegisterRoutes(r,
		tasks.NewDeleteAction(tasksSvc),
		reports.NewMarkFoundAction(reportsSvc),
	)

	return r
}
