package http

import (
	"encoding/json"
	"net/http"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	if err := h.carSvc.Add(r.Context(), &car); err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "car created", car)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid car id", nil, nil)
		return
	}
	car, err := h.carSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "car", car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid car id", nil, nil)
		return
	}
	var car domain.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	car.ID = id
	if err := h.carSvc.Update(r.Context(), &car); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "car updated", car)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid car id", nil, nil)
		return
	}
	if err := h.carSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "car deleted", nil)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	cars, total, err := h.carSvc.List(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "cars", map[string]any{
		"items": cars,
		"total": total,
	})
}
