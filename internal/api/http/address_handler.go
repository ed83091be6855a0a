package http

import (
	"net/http"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/service"
)

type AddressHandler struct {
	addressSvc service.AddressService
}

func NewAddressHandler(addressSvc service.AddressService) *AddressHandler {
	return &AddressHandler{addressSvc: addressSvc}
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var addr domain.Address
	if !decodeBody(w, r, &addr) {
		return
	}
	if err := h.addressSvc.CreateAddress(r.Context(), actor, &addr); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	addresses, err := h.addressSvc.ListAddresses(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid address id")
		return
	}

	var addr domain.Address
	if !decodeBody(w, r, &addr) {
		return
	}
	addr.ID = id
	if err := h.addressSvc.UpdateAddress(r.Context(), actor, &addr); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid address id")
		return
	}

	if err := h.addressSvc.DeleteAddress(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "address deleted")
}
