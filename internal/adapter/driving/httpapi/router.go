package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"github.com/gorilla/mux"
)

// Dashboard is the read side served over HTTP. Every call derives a fresh view
// from the merged records loaded at startup.
type Dashboard interface {
	Provinces() []string
	View(q entity.Query) entity.DashboardView
}

type api struct {
	dashboard Dashboard
	charts    repository.ChartRepository
}

// NewRouter registra as rotas da API do dashboard.
func NewRouter(dashboard Dashboard, charts repository.ChartRepository) *mux.Router {
	a := &api{dashboard: dashboard, charts: charts}

	r := mux.NewRouter()
	r.HandleFunc("/health", a.health).Methods(http.MethodGet)
	r.HandleFunc("/api/provinces", a.provinces).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard", a.view).Methods(http.MethodGet)
	r.HandleFunc("/api/charts/{kind}.png", a.chart).Methods(http.MethodGet)

	return r
}

func (a *api) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) provinces(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.dashboard.Provinces())
}

func (a *api) view(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.dashboard.View(queryFrom(r)))
}

func (a *api) chart(w http.ResponseWriter, r *http.Request) {
	kind := entity.ChartKind(mux.Vars(r)["kind"])

	view := a.dashboard.View(queryFrom(r))
	series, ok := view.Series(kind)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown chart: "+string(kind))
		return
	}
	if view.Empty {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	handle, err := a.charts.Render(series, "")
	if errors.Is(err, entity.ErrEmptySeries) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer handle.Dispose()

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(handle.Bytes())
}

func queryFrom(r *http.Request) entity.Query {
	values := r.URL.Query()
	return entity.Query{
		Province: values.Get("province"),
		Search:   values.Get("search"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
