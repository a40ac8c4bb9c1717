package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mindgrove/cortex/pkg/models"
	"github.com/mindgrove/cortex/pkg/repository"
	"github.com/qri-io/jsonschema"
)

//go:embed result_schema.json
var resultSchemaJSON []byte

type ReportsHandler struct {
	testRepo     repository.TestRepo
	resultSchema *jsonschema.Schema
}

func NewReportsHandler(tr repository.TestRepo) (*ReportsHandler, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(resultSchemaJSON, rs); err != nil {
		return nil, fmt.Errorf("compile result schema: %w", err)
	}

	return &ReportsHandler{testRepo: tr, resultSchema: rs}, nil
}

type startSessionRequest struct {
	TestType string `json:"test_type"`
	Age      *int64 `json:"age,omitempty"`
}

// StartSession creates a test session keyed by a fresh uuid.
func (h *ReportsHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	session := &models.TestSession{
		ID:       uuid.New().String(),
		TestType: strings.TrimSpace(req.TestType),
		Age:      req.Age,
	}

	if err := h.testRepo.CreateSession(r.Context(), session); err != nil {
		logger.Error("create test session", slog.Any("err", err))
		writeError(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"id": session.ID}, http.StatusCreated)
}

type submitResultRequest struct {
	SessionID        string          `json:"session_id"`
	TotalScore       float64         `json:"total_score"`
	DomainScores     json.RawMessage `json:"domain_scores"`
	CognitiveProfile json.RawMessage `json:"cognitive_profile,omitempty"`
	Percentile       float64         `json:"percentile"`
}

// SubmitResult validates the payload against the embedded JSON schema and
// stores a result row for an existing session.
func (h *ReportsHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	verrs, err := h.resultSchema.ValidateBytes(r.Context(), body)
	if err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if len(verrs) > 0 {
		writeError(w, verrs[0].Message, http.StatusBadRequest)
		return
	}

	var req submitResultRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	session, err := h.testRepo.GetSession(r.Context(), req.SessionID)
	if err != nil {
		logger.Error("get test session", slog.Any("err", err))
		writeError(w, "failed to store result", http.StatusInternalServerError)
		return
	}
	if session == nil {
		writeError(w, "session not found", http.StatusNotFound)
		return
	}

	result := &models.TestResult{
		SessionID:        req.SessionID,
		TotalScore:       req.TotalScore,
		DomainScores:     req.DomainScores,
		CognitiveProfile: req.CognitiveProfile,
		Percentile:       req.Percentile,
	}
	if len(result.CognitiveProfile) == 0 {
		result.CognitiveProfile = []byte(`{}`)
	}

	id, err := h.testRepo.CreateResult(r.Context(), result)
	if err != nil {
		logger.Error("create test result", slog.Any("err", err))
		writeError(w, "failed to store result", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"id": id}, http.StatusCreated)
}

type reportResponse struct {
	TotalScore       float64         `json:"total_score"`
	DomainScores     json.RawMessage `json:"domain_scores"`
	CognitiveProfile json.RawMessage `json:"cognitive_profile"`
	Percentile       float64         `json:"percentile"`
	Completed        int64           `json:"completed"`
	Age              *int64          `json:"age"`
}

// GetReport returns the stored result summary. The owning session is
// looked up only to enrich the response with age; a missing session does
// not fail the request.
func (h *ReportsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "result id is required", http.StatusBadRequest)
		return
	}

	result, err := h.testRepo.GetResult(r.Context(), id)
	if err != nil {
		logger.Error("get test result", slog.Any("err", err))
		writeError(w, "failed to load report", http.StatusInternalServerError)
		return
	}
	if result == nil {
		writeError(w, "result not found", http.StatusNotFound)
		return
	}

	resp := reportResponse{
		TotalScore:       result.TotalScore,
		DomainScores:     result.DomainScores,
		CognitiveProfile: result.CognitiveProfile,
		Percentile:       result.Percentile,
		Completed:        result.Created,
	}

	session, err := h.testRepo.GetSession(r.Context(), result.SessionID)
	if err != nil {
		logger.Error("get session for report", slog.Any("err", err))
	}
	if session != nil {
		resp.Age = session.Age
	}

	writeJSON(w, resp, http.StatusOK)
}
