package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/moneypal/moneypal/internal/rest"
	"github.com/moneypal/moneypal/pkg/google"
	log "github.com/sirupsen/logrus"
)

// maxBundleSize caps uploaded backup files. Bundles embed base64 images, so
// the limit is generous.
const maxBundleSize = 256 << 20

type Handler struct {
	service Service
	drive   google.Service
}

func NewHandler(service Service, drive google.Service) *Handler {
	return &Handler{service: service, drive: drive}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log.Debug("Exporting backup")

	result, err := h.service.Export(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		log.Errorf("failed to write backup response: %v", err)
	}
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	log.Debug("Importing backup")
	w.Header().Set("Content-Type", "application/json")

	data, ok := readBundle(w, r)
	if !ok {
		return
	}

	report, err := h.service.Import(r.Context(), data)
	if err != nil {
		writeImportError(w, report, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Share exports the current state and uploads the bundle to Google Drive.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	log.Debug("Sharing backup to Google Drive")
	w.Header().Set("Content-Type", "application/json")

	result, err := h.service.Export(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fileId, err := h.drive.Share(r.Context(), result.Data, result.FileName)
	if err != nil {
		if errors.Is(err, google.ErrUnauthenticated) {
			http.Error(w, "Google Drive is not connected", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"fileId": fileId, "fileName": result.FileName}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// readBundle accepts either a multipart upload with a "file" field or a raw
// JSON body.
func readBundle(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBundleSize)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBundleSize); err != nil {
			http.Error(w, "backup file is too large", http.StatusBadRequest)
			return nil, false
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		defer file.Close()
		log.Debugf("Uploaded backup file: %s (%d bytes)", header.Filename, header.Size)

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		return data, true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

// writeImportError distinguishes "bad file, nothing changed" from "restore
// partially applied" so the caller can decide whether a retry is safe.
func writeImportError(w http.ResponseWriter, report *ImportReport, err error) {
	var restoreErr *RestoreError
	switch {
	case errors.Is(err, ErrInvalidFormat), errors.Is(err, ErrInvalidBackup):
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   err.Error(),
			Details: "No data was changed. Pick a valid MoneyPal backup file and try again.",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
	case errors.As(err, &restoreErr):
		completed := "none"
		if report != nil && len(report.CompletedStages) > 0 {
			completed = strings.Join(report.CompletedStages, ", ")
		}
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   err.Error(),
			Details: "The restore is not transactional. Fully restored stages: " + completed + ". Re-running the restore with the same file is safe.",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
