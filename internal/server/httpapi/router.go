// Package httpapi serves the public, read-only verification surface: a
// shared proof link resolves to the anchored fingerprints and the sealed
// envelope they point at. Nothing here requires an access token.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

type proofReader interface {
	GetProof(ctx context.Context, id string) (*models.Proof, error)
}

type envelopeReader interface {
	Get(ctx context.Context, uri string) (*cryptox.Envelope, error)
}

type Handler struct {
	proofs    proofReader
	envelopes envelopeReader
	logger    logging.Logger
}

func NewHandler(p proofReader, e envelopeReader, l logging.Logger) *Handler {
	return &Handler{proofs: p, envelopes: e, logger: l.With("module", "http_api")}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.HandleFunc("/v/{proofID}", h.getProof).Methods(http.MethodGet)
	r.HandleFunc("/v/{proofID}/envelope", h.getEnvelope).Methods(http.MethodGet)
	return r
}

type proofView struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	SessionHash string    `json:"session_hash"`
	ReportHash  string    `json:"report_hash"`
	URI         string    `json:"uri"`
	TxHandle    string    `json:"tx_handle"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *Handler) getProof(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, proofView{
		ID:          p.ID,
		Owner:       p.Owner,
		SessionHash: p.SessionHash,
		ReportHash:  p.ReportHash,
		URI:         p.URI,
		TxHandle:    p.TxHandle,
		CreatedAt:   p.CreatedAt,
	})
}

func (h *Handler) getEnvelope(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	env, err := h.envelopes.Get(r.Context(), p.URI)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*models.Proof, bool) {
	id := mux.Vars(r)["proofID"]
	p, err := h.proofs.GetProof(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return p, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		http.Error(w, "invalid proof id", http.StatusBadRequest)
	case errors.Is(err, common.ErrorNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.logger.Error(r.Context(), "public lookup failed", "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
