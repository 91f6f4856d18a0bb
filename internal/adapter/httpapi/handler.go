package httpapi

import (
	"encoding/json"
	"net/http"

	"orbit-assistant/internal/application/port/input"
	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 20 << 20

type ChatRequest struct {
	Messages []entity.Message `json:"messages"`
	// Config is optional; the server's own settings are used when it is absent.
	Config *entity.Config `json:"config,omitempty"`
}

type ChatHandler struct {
	chat          input.ChatService
	defaultConfig func() entity.Config
	logger        output.LoggerPort
}

func NewChatHandler(chat input.ChatService, defaultConfig func() entity.Config, logger output.LoggerPort) *ChatHandler {
	return &ChatHandler{
		chat:          chat,
		defaultConfig: defaultConfig,
		logger:        logger,
	}
}

func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/chat", h.Chat)
	r.Get("/healthz", h.Health)
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode chat request", "error", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if len(req.Messages) == 0 {
		h.writeErrorResponse(w, http.StatusBadRequest, "At least one message is required")
		return
	}

	cfg := h.defaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	result := h.chat.Chat(r.Context(), req.Messages, cfg)
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ChatHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *ChatHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSONResponse(w, statusCode, entity.Result{Error: message})
}
