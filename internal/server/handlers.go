package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"alecheck/internal/export"
	"alecheck/internal/ledger"
	"alecheck/internal/logging"
	"alecheck/internal/preflight"
)

const uploadField = "ale_file"

type healthResponse struct {
	Status string             `json:"status"`
	Checks []preflight.Result `json:"checks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	checks := preflight.RunAll(s.cfg, preflight.Target{
		CSV: strings.TrimSpace(s.cfg.Paths.CSVDir) != "",
		XML: true,
	})
	if checks == nil {
		checks = []preflight.Result{}
	}
	if len(preflight.Failed(checks)) > 0 {
		s.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Checks: checks})
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Checks: checks})
}

// handleAnalyze accepts a multipart upload in the ale_file field or the raw
// document as the request body.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	document, data, err := readDocument(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.svc.Analyze(r.Context(), document, ledger.OriginHTTP, data)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.remember(a)
	s.writeJSON(w, http.StatusOK, a)
}

var errNoFile = errors.New("Aucun fichier sélectionné.")

func readDocument(r *http.Request) (string, []byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile(uploadField)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return "", nil, errNoFile
			}
			return "", nil, err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, err
		}
		if len(data) == 0 {
			return "", nil, errNoFile
		}
		return header.Filename, data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, err
	}
	if len(data) == 0 {
		return "", nil, errNoFile
	}
	document := strings.TrimSpace(r.URL.Query().Get("document"))
	if document == "" {
		document = "upload.ale"
	}
	return document, data, nil
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if a, ok := s.recall(id); ok {
		s.writeJSON(w, http.StatusOK, a)
		return
	}
	if s.history == nil {
		s.writeError(w, http.StatusNotFound, "run not found")
		return
	}
	detail, err := s.history.GetRun(r.Context(), id)
	if errors.Is(err, ledger.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, ok := s.recall(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "run not found or no longer held in memory; analyze the document again")
		return
	}
	report, err := s.svc.ExportXML(r.Context(), a)
	if err != nil {
		s.writeExportError(w, id, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ingestResponse(id, report))
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, ok := s.recall(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "run not found or no longer held in memory; analyze the document again")
		return
	}
	path, err := s.svc.ExportCSV(r.Context(), a)
	if err != nil {
		s.writeExportError(w, id, err)
		return
	}
	s.writeJSON(w, http.StatusOK, manifestResponse(id, path))
}

func (s *Server) writeExportError(w http.ResponseWriter, runID string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, export.ErrNoRecords):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, export.ErrOutputUnavailable):
		status = http.StatusServiceUnavailable
	}
	s.logger.Warn("export failed",
		logging.String(logging.FieldRunID, runID),
		logging.Error(err),
		logging.String(logging.FieldEventType, "export_failed"),
	)
	s.writeError(w, status, err.Error())
}
