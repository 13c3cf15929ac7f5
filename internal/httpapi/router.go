package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/stockroom/internal/xmlstore"
)

// NewRouter wires the entity handlers onto the API routes and wraps the
// tree in the age-gate and request-logging middleware.
func NewRouter(store *xmlstore.Store, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	ch := &categoryHandler{categories: store.Categories()}
	api.HandleFunc("/category", ch.create).Methods(http.MethodPost)
	api.HandleFunc("/category", ch.list).Methods(http.MethodGet)
	api.HandleFunc("/category", ch.update).Methods(http.MethodPut)
	api.HandleFunc("/category/with-product-count", ch.listWithProductCount).Methods(http.MethodGet)
	api.HandleFunc("/category/{id:[0-9]+}", ch.getByID).Methods(http.MethodGet)
	api.HandleFunc("/category/{id:[0-9]+}", ch.delete).Methods(http.MethodDelete)

	ph := &productHandler{products: store.Products()}
	api.HandleFunc("/product", ph.create).Methods(http.MethodPost)
	api.HandleFunc("/product", ph.list).Methods(http.MethodGet)
	api.HandleFunc("/product", ph.update).Methods(http.MethodPut)
	api.HandleFunc("/product/by-category-name", ph.listByCategoryName).Methods(http.MethodGet)
	api.HandleFunc("/product/by-max-quantity", ph.listByMaxQuantity).Methods(http.MethodGet)
	api.HandleFunc("/product/most-ordered", ph.mostOrdered).Methods(http.MethodGet)
	api.HandleFunc("/product/{id:[0-9]+}", ph.getByID).Methods(http.MethodGet)
	api.HandleFunc("/product/{id:[0-9]+}", ph.delete).Methods(http.MethodDelete)
	api.HandleFunc("/product/{id:[0-9]+}/details", ph.detailsByID).Methods(http.MethodGet)

	sh := &supplierHandler{suppliers: store.Suppliers()}
	api.HandleFunc("/supplier", sh.create).Methods(http.MethodPost)
	api.HandleFunc("/supplier", sh.list).Methods(http.MethodGet)
	api.HandleFunc("/supplier", sh.update).Methods(http.MethodPut)
	api.HandleFunc("/supplier/with-min-product-quantity", sh.listWithMinProductQuantity).Methods(http.MethodGet)
	api.HandleFunc("/supplier/{id:[0-9]+}", sh.getByID).Methods(http.MethodGet)
	api.HandleFunc("/supplier/{id:[0-9]+}", sh.delete).Methods(http.MethodDelete)

	oh := &orderHandler{orders: store.Orders()}
	api.HandleFunc("/order", oh.create).Methods(http.MethodPost)
	api.HandleFunc("/order", oh.list).Methods(http.MethodGet)
	api.HandleFunc("/order", oh.update).Methods(http.MethodPut)
	api.HandleFunc("/order/by-supplier", oh.listBySupplierAndStatus).Methods(http.MethodGet)
	api.HandleFunc("/order/by-date", oh.listByDateRange).Methods(http.MethodGet)
	api.HandleFunc("/order/{id:[0-9]+}", oh.getByID).Methods(http.MethodGet)
	api.HandleFunc("/order/{id:[0-9]+}", oh.delete).Methods(http.MethodDelete)

	return requestLog(log, ageCheck(r))
}
