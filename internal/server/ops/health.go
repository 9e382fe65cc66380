package ops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/go-chi/chi/v5"
)

const readyTimeout = 2 * time.Second

type handler struct {
	db    dbx.Pinger
	files FileInfoGetter
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message,omitempty"`
}

type fileInfoResponse struct {
	FileID            string    `json:"file_id"`
	FileName          string    `json:"file_name"`
	FileSize          int64     `json:"file_size"`
	MimeType          string    `json:"mime_type"`
	Description       string    `json:"description,omitempty"`
	UploadedAt        time.Time `json:"uploaded_at"`
	OTPExpiresAt      time.Time `json:"otp_expires_at"`
	AccessCount       int       `json:"access_count"`
	MaxAccessAttempts int       `json:"max_access_attempts"`
	OneTimeAccess     bool      `json:"one_time_access"`
	Status            string    `json:"status"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func (h *handler) live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: now()})
}

// ready reports 503 while the database does not answer a ping.
func (h *handler) ready(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "fail", Timestamp: now(), Message: "database not initialized"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "fail", Timestamp: now(), Message: "database unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: now()})
}

// fileInfo is where share links land: the non-secret description of the
// file. Downloading still needs the OTP over gRPC.
func (h *handler) fileInfo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "fileID")

	info, err := h.files.GetFileInfo(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, healthResponse{Status: "not_found", Timestamp: now()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", Timestamp: now()})
		return
	}

	writeJSON(w, http.StatusOK, fileInfoResponse{
		FileID:            info.ID,
		FileName:          info.OriginalFilename,
		FileSize:          info.FileSize,
		MimeType:          info.MimeType,
		Description:       info.Description,
		UploadedAt:        info.UploadTimestamp,
		OTPExpiresAt:      info.OTPExpiresAt,
		AccessCount:       info.AccessCount,
		MaxAccessAttempts: info.MaxAccessAttempts,
		OneTimeAccess:     info.OneTimeAccess,
		Status:            string(info.Status),
	})
}
