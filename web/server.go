// Package web serves the catalog page and its JSON API.
package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"recipecatalog/catalog"
	"recipecatalog/display"
	"recipecatalog/tools"
)

const pageTitle = "Recipes"

// Options configures a Server. Catalog may be nil when the load failed; the
// recipe routes then answer 503 and the favorites routes keep working.
type Options struct {
	Catalog        *catalog.Service
	Tools          *tools.Registry
	AllowedOrigins []string
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

type Server struct {
	catalog      *catalog.Service
	difficulties []string
	tools        *tools.Registry
	html         *display.HTML
	router       *mux.Router
	handler      http.Handler
}

func NewServer(opts Options) *Server {
	s := &Server{
		catalog: opts.Catalog,
		tools:   opts.Tools,
		html:    display.NewHTML(),
		router:  mux.NewRouter(),
	}
	if opts.Catalog != nil {
		s.difficulties = catalog.DifficultyLabels(opts.Catalog.Recipes())
	}

	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc(display.DetailPath, s.handleDetail).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/recipes", s.handleRecipes).Methods(http.MethodGet)
	api.HandleFunc("/recipes/{id:[0-9]+}", s.handleRecipe).Methods(http.MethodGet)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/ingredients", s.handleIngredients).Methods(http.MethodGet)
	api.HandleFunc("/favorites", s.handleFavorites).Methods(http.MethodGet)
	api.HandleFunc("/favorites/{id:[0-9]+}", s.handleToggleFavorite).Methods(http.MethodPost)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	var otelOpts []otelhttp.Option
	if opts.TracerProvider != nil {
		otelOpts = append(otelOpts, otelhttp.WithTracerProvider(opts.TracerProvider))
	}
	if opts.MeterProvider != nil {
		otelOpts = append(otelOpts, otelhttp.WithMeterProvider(opts.MeterProvider))
	}

	s.handler = otelhttp.NewHandler(requestID(c.Handler(s.router)), "recipe-catalog", otelOpts...)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		http.Error(w, "Unable to load recipes. Please try again later.", http.StatusServiceUnavailable)
		return
	}

	criteria := catalog.ParseCriteria(r.URL.Query())
	recipes := s.catalog.Filter(r.Context(), criteria)
	page := display.NewPage(pageTitle, criteria, s.difficulties, s.catalog.Ingredients(r.Context()), display.NewList(recipes))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.html.RenderPage(w, page); err != nil {
		slog.Error("REQUEST: Failed to render page", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]any{"status": "ok", "recipes": 0}
	if s.catalog == nil {
		status = http.StatusServiceUnavailable
		body["status"] = "recipes unavailable"
	} else {
		body["recipes"] = len(s.catalog.Recipes())
	}
	writeJSON(w, status, body)
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.dispatch(w, r, tools.Call{Name: "recipe_search", Input: map[string]any{
		"category":   q.Get("category"),
		"difficulty": q.Get("difficulty"),
		"time":       q.Get("time"),
		"search":     q.Get("q"),
		"vegetarian": catalog.ParseCriteria(q).VegetarianOnly,
	}})
}

func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, tools.ErrNoCatalog)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	recipe, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("recipe not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"recipe": recipe,
		"card":   display.NewCard(recipe),
	})
}

// handleDetail sends card links on to the recipe's JSON representation.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/api/recipes/"+strconv.Itoa(id), http.StatusFound)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, tools.Call{Name: "recipe_text_search", Input: map[string]any{"q": r.URL.Query().Get("q")}})
}

func (s *Server) handleIngredients(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, tools.Call{Name: "ingredient_list"})
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, tools.Call{Name: "favorite_list"})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, tools.Call{Name: "favorite_toggle", Input: map[string]any{"id": mux.Vars(r)["id"]}})
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, call tools.Call) {
	out, err := s.tools.Dispatch(r.Context(), call)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, out)
	case errors.Is(err, tools.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, tools.ErrNoCatalog):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		slog.Error("REQUEST: Tool failed", "tool", call.Name, "error", err)
		writeError(w, http.StatusInternalServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("REQUEST: Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
