package ui

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"francadash/domain/metrics"
	"francadash/domain/tenant"
	"francadash/internal/errors"
)

type companyInfo struct {
	ID   tenant.ID `json:"id"`
	Name string    `json:"name"`
}

func (a *App) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	var companies []companyInfo
	for _, t := range tenant.All() {
		companies = append(companies, companyInfo{ID: t.ID, Name: t.Name})
	}
	writeJSON(w, http.StatusOK, companies)
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	payload, err := a.dashboard.Dashboard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	payload, err := a.dashboard.Export(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// handleUpload accepts a multipart spreadsheet and runs it through the
// pipeline. With ?commit=false the parse result is returned without
// replacing the stored record, which backs the confirm dialog in the UI.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, a.config.Uploads.MaxFileBytes)
	if err := r.ParseMultipartForm(a.config.Uploads.MaxFileBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	tempPath, err := a.saveTemp(file, header.Filename)
	if err != nil {
		log.Printf("[App] Failed to stage upload: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to stage upload")
		return
	}
	defer os.Remove(tempPath)

	commit := r.URL.Query().Get("commit") != "false"

	result, err := a.uploads.ProcessFile(r.Context(), tenantID, tempPath, header.Filename, commit)
	ObserveUpload(tenantID, err)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleSaveInsights(w http.ResponseWriter, r *http.Request) {
	var ins metrics.Insights
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		writeError(w, http.StatusBadRequest, "invalid insights payload")
		return
	}

	if err := a.dashboard.SaveInsights(r.Context(), chi.URLParam(r, "id"), ins); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ins)
}

// saveTemp stages the uploaded file on disk so the spreadsheet reader can
// open it by path. The extension is preserved for format detection.
func (a *App) saveTemp(file io.Reader, name string) (string, error) {
	ext := filepath.Ext(name)
	tmp, err := os.CreateTemp(a.config.Uploads.TempDir, "upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[App] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeAppError maps application error codes onto HTTP statuses.
func writeAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeFileParse, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeUploadInFlight:
		status = http.StatusConflict
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeUnauthorized:
		status = http.StatusUnauthorized
	}
	writeError(w, status, err.Error())
}
