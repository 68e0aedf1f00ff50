package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/budget-ledger/internal/logging"
)

// storageChecker reads the stored document without decoding it.
type storageChecker interface {
	Snapshot(ctx context.Context) (string, bool, error)
}

type Handler struct {
	Storage storageChecker
}

func NewHandler(storage storageChecker) Handler {
	return Handler{Storage: storage}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	endTimer := logData.AddTiming("storageCheckMs")
	_, found, err := h.Storage.Snapshot(req.Context())
	endTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: storage unavailable: %w", err)
	}
	logData.AddData("initialized", found)

	w.WriteHeader(http.StatusOK)
	return nil
}
