package router

import (
	"net/http"
	"strings"

	"github.com/vkazankov/voicebank/internal/api/rest/handler"
	"github.com/vkazankov/voicebank/internal/api/rest/middleware"
	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
)

// Router wires HTTP handlers and middleware for the voicebank API.
type Router struct {
	authService    handler.AuthService
	datasetService handler.DatasetService
	sampleService  handler.SampleService
	blobOpener     handler.BlobOpener
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	datasetService handler.DatasetService,
	sampleService handler.SampleService,
	blobOpener handler.BlobOpener,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		datasetService: datasetService,
		sampleService:  sampleService,
		blobOpener:     blobOpener,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
	}
}

func authSkip(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/auth/")
}

// Handler registers all routes and middleware and returns the root
// handler.
func (r *Router) Handler() http.Handler {
	auth := handler.NewAuth(r.authService, r.logger)
	datasets := handler.NewDataset(r.datasetService, r.contextManager, r.logger)
	samples := handler.NewSample(r.sampleService, r.contextManager, r.logger)
	files := handler.NewFile(r.blobOpener, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)

	mux.HandleFunc("POST /datasets", datasets.Create)
	mux.HandleFunc("GET /datasets", datasets.List)
	mux.HandleFunc("GET /datasets/{id}", datasets.Get)
	mux.HandleFunc("PATCH /datasets/{id}", datasets.Update)
	mux.HandleFunc("DELETE /datasets/{id}", datasets.Delete)

	mux.HandleFunc("POST /datasets/{id}/samples", samples.Upload)
	mux.HandleFunc("GET /datasets/{id}/samples", samples.ListByDataset)
	mux.HandleFunc("GET /samples/{id}", samples.Get)
	mux.HandleFunc("PATCH /samples/{id}", samples.Update)
	mux.HandleFunc("DELETE /samples/{id}", samples.Delete)

	mux.HandleFunc("GET /files/{key}", files.Get)

	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, authSkip, r.logger)
	logging := middleware.NewLogging(r.logger)

	return logging.Handle(authenticate.Handle(mux))
}
