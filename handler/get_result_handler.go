package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (h *ReconciliationHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}

	rows, err := h.Usecase.GetReconciliationResult(runID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to get result",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   rows,
	})
}

func (h *ReconciliationHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}

	summary, err := h.Usecase.GetReconciliationSummary(runID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to get summary",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   summary,
	})
}

func (h *ReconciliationHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	runs, err := h.Usecase.GetReconciliationRuns()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to list runs",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   runs,
	})
}

func parseRunID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	runIDStr := r.URL.Query().Get("run_id")
	if runIDStr == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "run_id is required",
		})
		return 0, false
	}

	runID, err := strconv.ParseInt(runIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "run_id must be a valid integer",
		})
		return 0, false
	}
	return runID, true
}
