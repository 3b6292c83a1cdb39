package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// ExtractRequest is the body of POST /v1/extract.
type ExtractRequest struct {
	Text    string   `json:"text"`
	Anchors []string `json:"anchors,omitempty"`
	Stops   []string `json:"stops,omitempty"`
}

// ExtractResponse is the body returned by POST /v1/extract.
type ExtractResponse struct {
	Block  string `json:"block"`
	Found  bool   `json:"found"`
	Anchor string `json:"anchor,omitempty"`
	Stop   string `json:"stop,omitempty"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// StatusResponse is the scan session state.
type StatusResponse struct {
	Scanning bool               `json:"scanning"`
	Ready    bool               `json:"ready"`
	Record   *domain.ScanRecord `json:"record,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

var errScanUnavailable = errors.New("scan service not configured")

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	block, err := s.ports.Extract.ExtractWith(req.Text, req.Anchors, req.Stops)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ExtractResponse{
		Block:  block.Text,
		Found:  block.Found(),
		Anchor: block.Anchor,
		Stop:   block.Stop,
		Start:  block.Start,
		End:    block.End,
	})
}

func (s *Server) handleScanStart(w http.ResponseWriter, r *http.Request) {
	if s.ports.Scan == nil {
		writeError(w, http.StatusServiceUnavailable, errScanUnavailable.Error())
		return
	}

	record, err := s.ports.Scan.Start(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := s.status()
	resp.Record = record
	code := http.StatusOK
	if record == nil {
		code = http.StatusAccepted
	}
	writeJSON(w, code, resp)
}

func (s *Server) handleScanStop(w http.ResponseWriter, _ *http.Request) {
	if s.ports.Scan == nil {
		writeError(w, http.StatusServiceUnavailable, errScanUnavailable.Error())
		return
	}
	s.ports.Scan.Stop()
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleScanStatus(w http.ResponseWriter, _ *http.Request) {
	if s.ports.Scan == nil {
		writeError(w, http.StatusServiceUnavailable, errScanUnavailable.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeJSON(w, http.StatusOK, []domain.ScanRecord{})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := s.ports.History.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []domain.ScanRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}

	record, err := s.ports.History.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}
	if err := s.ports.History.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := s.ports.History.Clear(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) status() StatusResponse {
	return StatusResponse{
		Scanning: s.ports.Scan.IsScanning(),
		Ready:    s.ports.Scan.IsReady(),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Error: message})
}

// writeServiceError maps domain errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrScanInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrScreenUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
