package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mesh-intelligence/stockroom/internal/xmlstore"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

type orderHandler struct {
	orders *xmlstore.OrderStore
}

func (h *orderHandler) create(w http.ResponseWriter, r *http.Request) {
	var o types.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	id, err := h.orders.Create(o)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	o.ID = id
	respondJSON(w, http.StatusCreated, o)
}

func (h *orderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List()
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *orderHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	order, err := h.orders.GetByID(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *orderHandler) update(w http.ResponseWriter, r *http.Request) {
	var o types.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.orders.Update(o); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "order was updated"})
}

func (h *orderHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "id is invalid")
		return
	}
	if err := h.orders.Delete(id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageBody{Message: "order was deleted"})
}

func (h *orderHandler) listBySupplierAndStatus(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := queryInt(r, "supplierId")
	if !ok {
		respondError(w, http.StatusBadRequest, "supplierId must be an integer")
		return
	}
	status, err := types.ParseOrderStatus(r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	orders, err := h.orders.ListBySupplierAndStatus(supplierID, status)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *orderHandler) listByDateRange(w http.ResponseWriter, r *http.Request) {
	start, err := parseDateParam(r.URL.Query().Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "start must be a date")
		return
	}
	end, err := parseDateParam(r.URL.Query().Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "end must be a date")
		return
	}
	orders, err := h.orders.ListByDateRange(start, end)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// parseDateParam accepts RFC 3339 timestamps or bare dates.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
