package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/hoopstats/hoop-services/internal/playersvc/models"
	"github.com/hoopstats/hoop-services/internal/playersvc/service"
)

type Handler struct {
	playerService  *service.PlayerService
	networkService *service.NetworkService
}

func NewHandler(playerService *service.PlayerService, networkService *service.NetworkService) *Handler {
	return &Handler{
		playerService:  playerService,
		networkService: networkService,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, ErrorResponse{Error: msg})
}

// decodeError maps a body decoding failure to a client error. A type
// mismatch on a known field gets field-level detail, anything else is
// reported as a malformed body.
func (h *Handler) decodeError(w http.ResponseWriter, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{typeErr.Field: "must be of type " + typeErr.Type.String()},
		})
		return
	}
	h.writeError(w, http.StatusBadRequest, "invalid request body")
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "player service is running"})
}

// ListPlayers handles GET /api/players
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		log.Errorf("list players: %v", err)
		h.writeError(w, http.StatusInternalServerError, "failed to fetch players")
		return
	}

	h.writeJSON(w, http.StatusOK, players)
}

// CreatePlayer handles POST /api/players
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.PlayerCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.decodeError(w, err)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), req)
	if err != nil {
		log.Errorf("create player: %v", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create player")
		return
	}

	h.writeJSON(w, http.StatusCreated, player)
}

// NetworkRelations handles POST /api/network
func (h *Handler) NetworkRelations(w http.ResponseWriter, r *http.Request) {
	var req models.NetworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.decodeError(w, err)
		return
	}

	if req.PlayerIDs == nil {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"player_ids": "required"},
		})
		return
	}

	h.writeJSON(w, http.StatusOK, h.networkService.Relations(req.PlayerIDs))
}

// SampleData handles POST /api/sample-data
func (h *Handler) SampleData(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.SeedSampleData(r.Context()); err != nil {
		log.Errorf("seed sample data: %v", err)
		h.writeError(w, http.StatusInternalServerError, "failed to create sample data")
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "Sample data created successfully"})
}
