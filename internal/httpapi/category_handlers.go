package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/mesh-intelligence/stockroom/internal/xmlstore"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

type categoryHandler struct {
	categories *xmlstore.CategoryStore
}

func (h *categoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var c types.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	id, err := h.categories.Create(c)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	c.ID = id
	respondJSON(w, http.StatusCreated, c)
}

func (h *categoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *categoryHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	category, err := h.categories.GetByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (h *categoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var c types.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.categories.Update(c); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "category was updated"})
}

func (h *categoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	if err := h.categories.Delete(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "category was deleted"})
}

func (h *categoryHandler) listWithProductCount(w http.ResponseWriter, r *http.Request) {
	counts, err := h.categories.ListWithProductCount()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}
