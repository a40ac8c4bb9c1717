package api

import (
	"fmt"
	"net/http"

	"log/slog"

	"github.com/mindgrove/cortex/pkg/repository"
)

type SystemHandler struct {
	userRepo repository.UserRepo
}

func NewSystemHandler(ur repository.UserRepo) *SystemHandler {
	return &SystemHandler{userRepo: ur}
}

// HealthHandler probes store connectivity by counting user rows.
func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.userRepo.CountUsers(r.Context())
	if err != nil {
		logger.Error("health probe", slog.Any("err", err))
		writeError(w, "database unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"status": "ok", "users": count}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}
