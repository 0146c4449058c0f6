package http

import (
	"encoding/json"
	"net/http"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	if err := h.customerSvc.Add(r.Context(), &customer); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "customer created", customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid customer id", nil, nil)
		return
	}
	customer, err := h.customerSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "customer", customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid customer id", nil, nil)
		return
	}
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	customer.ID = id
	if err := h.customerSvc.Update(r.Context(), &customer); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "customer updated", customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid customer id", nil, nil)
		return
	}
	if err := h.customerSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "customer deleted", nil)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	customers, total, err := h.customerSvc.List(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "customers", map[string]any{
		"items": customers,
		"total": total,
	})
}
