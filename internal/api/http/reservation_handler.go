package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentadesk-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	reservationSvc service.ReservationService
}

func NewReservationHandler(reservationSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationSvc: reservationSvc}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

func pagination(r *http.Request) (page, pageSize int32) {
	page = 1
	pageSize = 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form service.CreateReservationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	rsv, err := h.reservationSvc.Create(r.Context(), form)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "reservation created", rsv)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid reservation id", nil, nil)
		return
	}
	detail, err := h.reservationSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "reservation", detail)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")
	var customerID int32
	if v, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 32); err == nil {
		customerID = int32(v)
	}

	reservations, total, err := h.reservationSvc.List(r.Context(), status, customerID, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "reservations", map[string]any{
		"items": reservations,
		"total": total,
	})
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid reservation id", nil, nil)
		return
	}
	rsv, err := h.reservationSvc.Cancel(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "reservation cancelled", rsv)
}

func (h *ReservationHandler) RegisterCheckout(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid reservation id", nil, nil)
		return
	}
	var form service.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	rec, err := h.reservationSvc.RegisterCheckout(r.Context(), id, form)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "checkout registered", rec)
}

func (h *ReservationHandler) RegisterCheckin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid reservation id", nil, nil)
		return
	}
	var form service.CheckinForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, false, "invalid request body", nil, nil)
		return
	}
	rec, err := h.reservationSvc.RegisterCheckin(r.Context(), id, form)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "checkin registered", rec)
}
