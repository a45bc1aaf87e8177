package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/neoglobal/pnl-reconciliation/entity"
)

func (h *ReconciliationHandler) ProcessReconciliation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.ProcessReconciliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	if err := validateProcessReconciliationRequest(req); err != nil {
		log.Infof("[ProcessReconciliation] Invalid input: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	run, err := h.Usecase.ProcessReconciliationInit(req.BillingCSVPath, req.LedgerCSVPath, req.Operator)
	if err != nil {
		log.Errorf("[ProcessReconciliation] Failed to register run: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(APIResponse{
			Status:  "error",
			Message: "Failed to process reconciliation",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   run,
	})
}

func validateProcessReconciliationRequest(req entity.ProcessReconciliationRequest) error {
	if req.BillingCSVPath == "" {
		return errors.New("billing CSV path is required")
	}
	if _, err := os.Stat(req.BillingCSVPath); os.IsNotExist(err) {
		return fmt.Errorf("billing CSV file does not exist: %s", req.BillingCSVPath)
	}
	if req.LedgerCSVPath == "" {
		return errors.New("ledger CSV path is required")
	}
	if _, err := os.Stat(req.LedgerCSVPath); os.IsNotExist(err) {
		return fmt.Errorf("ledger CSV file does not exist: %s", req.LedgerCSVPath)
	}
	if strings.TrimSpace(req.Operator) == "" {
		return errors.New("operator must be specified")
	}
	return nil
}
