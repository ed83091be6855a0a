package http

import (
	"net/http"

	"rentez-backend/internal/service"
)

type FavoriteHandler struct {
	favoriteSvc service.FavoriteService
}

func NewFavoriteHandler(favoriteSvc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteSvc: favoriteSvc}
}

type setFavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

func (h *FavoriteHandler) Set(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	productID, ok := pathID(r, "productId")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req setFavoriteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.favoriteSvc.SetFavorite(r.Context(), actor, productID, req.IsFavorite); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "favorite updated")
}

func (h *FavoriteHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	productID, ok := pathID(r, "productId")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	fav, err := h.favoriteSvc.GetFavorite(r.Context(), actor, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	products, err := h.favoriteSvc.ListFavorites(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}
