package http

import (
	"net/http"
	"time"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	ProductID int32     `json:"product_id"`
	FromDate  time.Time `json:"from_date"`
	EndDate   time.Time `json:"end_date"`
	Address   string    `json:"address"`
}

type updateStatusRequest struct {
	Status domain.RequestStatus `json:"status"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req createRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	request, err := h.rentalSvc.CreateRequest(r.Context(), actor, req.ProductID, req.FromDate, req.EndDate, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	request, err := h.rentalSvc.GetRequest(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

// ListForSupplier returns the caller's incoming rental requests, optionally
// filtered with ?status=.
func (h *RentalHandler) ListForSupplier(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	status := domain.RequestStatus(r.URL.Query().Get("status"))
	requests, err := h.rentalSvc.ListSupplierRequests(r.Context(), actor, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RentalHandler) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	status := domain.RequestStatus(r.URL.Query().Get("status"))
	requests, err := h.rentalSvc.ListCustomerRequests(r.Context(), actor, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	request, err := h.rentalSvc.UpdateStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}
