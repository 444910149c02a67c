package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/dmitrijs2005/astroproof/internal/cryptox"
	"github.com/dmitrijs2005/astroproof/internal/logging"
	"github.com/dmitrijs2005/astroproof/internal/server/models"
)

type stubProofs struct {
	proof *models.Proof
	err   error
}

func (s stubProofs) GetProof(_ context.Context, id string) (*models.Proof, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.proof == nil || s.proof.ID != id {
		return nil, common.ErrorNotFound
	}
	return s.proof, nil
}

type stubEnvelopes map[string]*cryptox.Envelope

func (s stubEnvelopes) Get(_ context.Context, uri string) (*cryptox.Envelope, error) {
	env, ok := s[uri]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return env, nil
}

var sample = &models.Proof{
	ID:          "8d0f3a3e-8a8b-4c59-9a77-1f1b0d6c2f10",
	Owner:       "0xabc",
	SessionHash: "aa",
	ReportHash:  "bb",
	URI:         "s3://readings/envelopes/x.json",
	TxHandle:    "ledger:8d0f3a3e-8a8b-4c59-9a77-1f1b0d6c2f10",
	CreatedAt:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	h := NewHandler(stubProofs{}, stubEnvelopes{}, logging.NewNop())
	rec := serve(h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestGetProof_Found(t *testing.T) {
	h := NewHandler(stubProofs{proof: sample}, stubEnvelopes{}, logging.NewNop())

	rec := serve(h, "/v/"+sample.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got proofView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sample.ReportHash, got.ReportHash)
	assert.Equal(t, sample.TxHandle, got.TxHandle)
	assert.True(t, sample.CreatedAt.Equal(got.CreatedAt))
}

func TestGetProof_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing", nil, http.StatusNotFound},
		{"malformed", common.ErrValidation, http.StatusBadRequest},
		{"backend", errors.New("db error: down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(stubProofs{err: tc.err}, stubEnvelopes{}, logging.NewNop())
			assert.Equal(t, tc.code, serve(h, "/v/nope").Code)
		})
	}
}

func TestGetEnvelope_FollowsProofURI(t *testing.T) {
	env := &cryptox.Envelope{Ciphertext: "Y3Q=", IV: "aXY=", Salt: "c2FsdA==", Algorithm: cryptox.AlgorithmAESGCM, Version: 1}
	h := NewHandler(stubProofs{proof: sample}, stubEnvelopes{sample.URI: env}, logging.NewNop())

	rec := serve(h, "/v/"+sample.ID+"/envelope")
	require.Equal(t, http.StatusOK, rec.Code)

	var got cryptox.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *env, got)
}

func TestGetEnvelope_BlobMissing(t *testing.T) {
	h := NewHandler(stubProofs{proof: sample}, stubEnvelopes{}, logging.NewNop())
	assert.Equal(t, http.StatusNotFound, serve(h, "/v/"+sample.ID+"/envelope").Code)
}

func TestRouter_RejectsPost(t *testing.T) {
	h := NewHandler(stubProofs{proof: sample}, stubEnvelopes{}, logging.NewNop())
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v/"+sample.ID, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
