package api

import (
	"net/http"

	"linkhub/internal/store"
)

type HealthHandler struct {
	store store.DocumentStore
}

func NewHealthHandler(st store.DocumentStore) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	storeStatus := "ok"
	status := http.StatusOK

	if err := h.store.Ping(r.Context()); err != nil {
		storeStatus = "error"
		status = http.StatusServiceUnavailable
	}

	result := "ok"
	if status != http.StatusOK {
		result = "degraded"
	}

	writeJSON(w, status, map[string]any{
		"status": result,
		"checks": map[string]string{
			"store": storeStatus,
		},
	})
}
