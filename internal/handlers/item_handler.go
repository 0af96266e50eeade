package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"invenBack/internal/models"
	"invenBack/internal/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

type createItemRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	page := intQueryParam(r, "page", 1)
	limit := intQueryParam(r, "limit", 5)

	items, err := h.Service.GetItems(r.Context(), requester, page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	item, err := h.Service.GetItemByID(r.Context(), requester, id)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "quantity must be a number")
		return
	}

	item := models.Item{Name: req.Name}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	created, err := h.Service.CreateItem(r.Context(), requester, item)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var upd models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateItem(r.Context(), requester, id, upd)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	requester, ok := requesterFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	if err := h.Service.DeleteItem(r.Context(), requester, id); err != nil {
		h.writeItemError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

func (h *ItemHandler) writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, models.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrEmptyItemName), errors.Is(err, models.ErrNegativeQuantity):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
