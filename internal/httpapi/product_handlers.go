package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/mesh-intelligence/stockroom/internal/xmlstore"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

type productHandler struct {
	products *xmlstore.ProductStore
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var p types.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	id, err := h.products.Create(p)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	p.ID = id
	respondJSON(w, http.StatusCreated, p)
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *productHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	product, err := h.products.GetByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	var p types.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.products.Update(p); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "product was updated"})
}

func (h *productHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	if err := h.products.Delete(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "product was deleted"})
}

func (h *productHandler) listByCategoryName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("categoryName")
	if name == "" {
		respondError(w, http.StatusBadRequest, "categoryName is required")
		return
	}
	products, err := h.products.ListByCategoryName(name)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *productHandler) listByMaxQuantity(w http.ResponseWriter, r *http.Request) {
	maxQuantity, ok := queryInt(r, "maxQuantity")
	if !ok {
		respondError(w, http.StatusBadRequest, "maxQuantity must be an integer")
		return
	}
	products, err := h.products.ListByMaxQuantity(maxQuantity)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *productHandler) detailsByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	details, err := h.products.DetailsByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

func (h *productHandler) mostOrdered(w http.ResponseWriter, r *http.Request) {
	minOrders, ok := queryInt(r, "minOrders")
	if !ok {
		respondError(w, http.StatusBadRequest, "minOrders must be an integer")
		return
	}
	products, err := h.products.MostOrdered(minOrders)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}
