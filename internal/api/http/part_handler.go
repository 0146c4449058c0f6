package http

import (
	"encoding/json"
	"net/http"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/service"
)

type PartHandler struct {
	partSvc service.PartService
}

func NewPartHandler(partSvc service.PartService) *PartHandler {
	return &PartHandler{partSvc: partSvc}
}

func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var part domain.Part
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	if err := h.partSvc.Add(r.Context(), &part); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "part created", part)
}

func (h *PartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid part id", nil, nil)
		return
	}
	part, err := h.partSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "part", part)
}

func (h *PartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid part id", nil, nil)
		return
	}
	var part domain.Part
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	part.ID = id
	if err := h.partSvc.Update(r.Context(), &part); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "part updated", part)
}

func (h *PartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid part id", nil, nil)
		return
	}
	if err := h.partSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "part deleted", nil)
}

func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	parts, total, err := h.partSvc.List(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "parts", map[string]any{
		"items": parts,
		"total": total,
	})
}

type adjustStockRequest struct {
	Delta int32 `json:"delta"`
}

func (h *PartHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid part id", nil, nil)
		return
	}
	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	part, err := h.partSvc.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "stock adjusted", part)
}
