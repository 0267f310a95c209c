package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cars24/c2b-pre-inspection-service/internal/app"
	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/internal/shared"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// handler bundles the HTTP endpoints of the platform API.
type handler struct {
	app *app.Application
	log *logger.Logger
}

// health reports the aggregate module health. Degradation is a fact the
// probe observed, not a probe failure, so the status is always 200.
func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.AggregateHealth())
}

// liveness is the bare process probe.
func (h *handler) liveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// modules lists every registered module with its descriptor and health.
func (h *handler) modules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, shared.Success(h.app.Modules()))
}

// module reports one module's status. An unknown name degrades to a 404
// error envelope instead of failing the request pipeline.
func (h *handler) module(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	status, err := h.app.Module(name)
	if err != nil {
		var notFound *module.ModuleNotFoundError
		if errors.As(err, &notFound) {
			writeJSON(w, http.StatusNotFound, shared.Error[any](err.Error()))
			return
		}
		h.log.WithContext(r.Context()).WithError(err).Error("module status lookup failed")
		writeJSON(w, http.StatusInternalServerError, shared.Error[any]("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, shared.Success(status))
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, shared.Error[any]("not found"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
