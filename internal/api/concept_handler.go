package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/axiome/firstprinciples-api/internal/api/shared"
	"github.com/axiome/firstprinciples-api/internal/explain"
)

// Explainer produces an explanation envelope for a topic.
// *explain.Service satisfies it.
type Explainer interface {
	Explain(ctx context.Context, topic string) explain.Envelope
}

// ConceptHandler handles the concept explanation endpoints.
type ConceptHandler struct {
	explainer Explainer
	logger    *slog.Logger
}

// NewConceptHandler creates a new ConceptHandler.
func NewConceptHandler(explainer Explainer, logger *slog.Logger) *ConceptHandler {
	if explainer == nil {
		panic("explainer cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ConceptHandler{
		explainer: explainer,
		logger:    logger.With(slog.String("component", "concept_handler")),
	}
}

// Message handles POST /api/concepts/message.
//
// Once the body is accepted the response is always HTTP 200 carrying the
// envelope, whether generation succeeded or not. Malformed bodies and empty
// messages get HTTP 400 with an invalid_request envelope.
func (h *ConceptHandler) Message(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MessageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.DebugContext(ctx, "rejecting malformed request body", "error", err)
		h.rejectRequest(w, r, "request body must be a JSON object with a message field")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if err := shared.ValidateRequest(&req); err != nil {
		h.logger.DebugContext(ctx, "rejecting invalid request", "error", err)
		h.rejectRequest(w, r, SanitizeValidationError(err))
		return
	}

	h.logger.InfoContext(ctx, "explaining concept", "topic_length", len(req.Message))

	env := h.explainer.Explain(ctx, req.Message)

	if env.OK() {
		h.logger.InfoContext(ctx, "concept explained",
			"processing_time_ms", env.Elapsed().Milliseconds())
	} else {
		h.logger.WarnContext(ctx, "concept explanation failed",
			"error_type", string(env.Failure.Kind),
			"error_reason", string(env.Failure.Reason),
			"processing_time_ms", env.Elapsed().Milliseconds())
	}

	shared.RespondWithJSON(w, r, http.StatusOK, env)
}

func (h *ConceptHandler) rejectRequest(w http.ResponseWriter, r *http.Request, detail string) {
	shared.RespondWithJSON(w, r, http.StatusBadRequest,
		explain.Failed(explain.KindInvalidRequest, detail, 0))
}

// Root handles GET /.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{Message: RootMessage})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: HealthHealthy})
}
