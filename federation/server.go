package federation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/devices"
)

// Server is the inbound federation transport. It only decodes and routes;
// all semantics live behind the handler interfaces.
type Server struct {
	logger  *zap.Logger
	updates updateHandler
	queries deviceQuerier
	onPoke  func(origin string)
}

// ServerOpt configures a Server.
type ServerOpt func(*Server)

// WithServerLogger sets the logger.
func WithServerLogger(logger *zap.Logger) ServerOpt {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPokeHook installs a callback invoked for every inbound poke.
func WithPokeHook(hook func(origin string)) ServerOpt {
	return func(s *Server) {
		s.onPoke = hook
	}
}

// NewServer creates a Server routing inbound federation traffic to updates
// and queries.
func NewServer(updates updateHandler, queries deviceQuerier, opts ...ServerOpt) *Server {
	s := &Server{
		logger:  zap.NewNop(),
		updates: updates,
		queries: queries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router returns the federation endpoints mounted on a chi router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Put("/federation/v1/updates", s.handleUpdate)
	r.Get("/federation/v1/users/{userID}/devices", s.handleDevicesQuery)
	r.Post("/federation/v1/poke", s.handlePoke)
	return r
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get(originHeader)
	if origin == "" {
		http.Error(w, "missing origin", http.StatusBadRequest)
		return
	}
	var update devices.DeviceListUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "malformed update", http.StatusBadRequest)
		return
	}
	if !update.UserID.Valid() {
		http.Error(w, "malformed user id", http.StatusBadRequest)
		return
	}
	if err := s.updates.HandleDeviceListUpdate(r.Context(), origin, update); err != nil {
		s.logger.Error("failed to process device list update",
			zap.String("origin", origin),
			zap.Stringer("user", update.UserID),
			zap.Error(err),
		)
		http.Error(w, "update not processed", http.StatusInternalServerError)
		return
	}
	updatesReceived.Inc()
	writeJSON(w, struct{}{})
}

func (s *Server) handleDevicesQuery(w http.ResponseWriter, r *http.Request) {
	user := types.UserID(chi.URLParam(r, "userID"))
	if !user.Valid() {
		http.Error(w, "malformed user id", http.StatusBadRequest)
		return
	}
	result, err := s.queries.QueryUserDevices(r.Context(), user)
	if err != nil {
		s.logger.Error("failed to list devices",
			zap.Stringer("user", user),
			zap.Error(err),
		)
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	queriesServed.Inc()
	writeJSON(w, result)
}

func (s *Server) handlePoke(w http.ResponseWriter, r *http.Request) {
	var poke pokeRequest
	if err := json.NewDecoder(r.Body).Decode(&poke); err != nil {
		http.Error(w, "malformed poke", http.StatusBadRequest)
		return
	}
	if poke.Origin == "" {
		poke.Origin = r.Header.Get(originHeader)
	}
	pokesReceived.Inc()
	s.logger.Debug("device poke received", zap.String("origin", poke.Origin))
	if s.onPoke != nil {
		s.onPoke(poke.Origin)
	}
	writeJSON(w, struct{}{})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}
