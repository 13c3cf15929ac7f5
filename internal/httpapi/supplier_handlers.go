package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/mesh-intelligence/stockroom/internal/xmlstore"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

type supplierHandler struct {
	suppliers *xmlstore.SupplierStore
}

func (h *supplierHandler) create(w http.ResponseWriter, r *http.Request) {
	var s types.Supplier
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	id, err := h.suppliers.Create(s)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	s.ID = id
	respondJSON(w, http.StatusCreated, s)
}

func (h *supplierHandler) list(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.List()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}

func (h *supplierHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	supplier, err := h.suppliers.GetByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}

func (h *supplierHandler) update(w http.ResponseWriter, r *http.Request) {
	var s types.Supplier
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.suppliers.Update(s); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "supplier was updated"})
}

func (h *supplierHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	if err := h.suppliers.Delete(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "supplier was deleted"})
}

func (h *supplierHandler) listWithMinProductQuantity(w http.ResponseWriter, r *http.Request) {
	minQuantity, ok := queryInt(r, "minQuantity")
	if !ok {
		respondError(w, http.StatusBadRequest, "minQuantity must be an integer")
		return
	}
	suppliers, err := h.suppliers.ListWithMinProductQuantity(minQuantity)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}
