package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/RedPaladin7/pokerhands/poker"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	defaultListenAddr = "localhost:8080"
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type ServerConfig struct {
	Version    string
	ListenAddr string
	// MaxPlayers caps a table. Anything outside 1..poker.MaxPlayers falls
	// back to poker.MaxPlayers.
	MaxPlayers int
	// Seed fixes every shuffle when non-zero. Zero draws a new seed per round.
	Seed uint64
}

type Server struct {
	ServerConfig
	router *mux.Router
}

func NewServer(cfg ServerConfig) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.MaxPlayers <= 0 || cfg.MaxPlayers > poker.MaxPlayers {
		cfg.MaxPlayers = poker.MaxPlayers
	}
	s := &Server{ServerConfig: cfg}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)
	r.Use(enableCORS)

	r.HandleFunc("/api/players/{playerNames}", makeHTTPHandlerFunc(s.handleDealPlayers)).Methods("GET", "OPTIONS")
	// No names at all still gets the empty-name envelope rather than a 404.
	r.HandleFunc("/api/players", makeHTTPHandlerFunc(s.handleDealPlayers)).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/players/", makeHTTPHandlerFunc(s.handleDealPlayers)).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/evaluate", makeHTTPHandlerFunc(s.handleEvaluate)).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/health", makeHTTPHandlerFunc(s.handleHealth)).Methods("GET", "OPTIONS")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, newErrorResponse(http.StatusNotFound, "No route for "+r.URL.Path))
	})
	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":       s.ListenAddr,
			"version":    s.Version,
			"maxPlayers": s.MaxPlayers,
		}).Info("API Server starting...")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logrus.Info("API Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) roundOptions() []poker.RoundOption {
	opts := []poker.RoundOption{poker.WithMaxPlayers(s.MaxPlayers)}
	if s.Seed != 0 {
		opts = append(opts, poker.WithSeed(s.Seed))
	}
	return opts
}
