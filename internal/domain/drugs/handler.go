package drugs

import (
	"net/http"
	"strconv"
	"strings"

	"medirecord/internal/middleware"
	"medirecord/internal/platform/apperr"
	"medirecord/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/drugs", suggestHandler(svc))
	r.Get("/drugs/interactions", checkInteractionsHandler(svc))
	r.Get("/medications/interactions", userInteractionsHandler(svc))
	r.Get("/drugs/{name}", lookupHandler(svc))
}

type drugResponse struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	OverTheCounter bool   `json:"over_the_counter"`
	GenericName    string `json:"generic_name,omitempty"`
	Source         string `json:"source"`
}

type interactionResponse struct {
	DrugA          string `json:"drug_a"`
	DrugB          string `json:"drug_b"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation,omitempty"`
	Source         string `json:"source"`
}

func toInteractionResponses(items []Interaction) []interactionResponse {
	out := make([]interactionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, interactionResponse{
			DrugA:          it.DrugA,
			DrugB:          it.DrugB,
			Severity:       string(it.Severity),
			Description:    it.Description,
			Recommendation: it.Recommendation,
			Source:         it.Source,
		})
	}
	return out
}

// suggestHandler godoc
// @Summary Sugerencias de medicamentos
// @Description Autocompletado por nombre parcial.
// @Tags drugs
// @Produce json
// @Param q query string true "Texto a buscar"
// @Param limit query int false "Máximo de sugerencias (default 5)"
// @Success 200 {array} string
// @Router /drugs [get]
func suggestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				web.WriteError(w, apperr.InvalidInput("limit must be a positive integer"))
				return
			}
			limit = n
		}

		names, err := svc.Suggest(r.Context(), r.URL.Query().Get("q"), limit)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, names)
	}
}

// lookupHandler godoc
// @Summary Información de un medicamento
// @Tags drugs
// @Produce json
// @Param name path string true "Nombre exacto"
// @Success 200 {object} drugResponse
// @Failure 404 {object} object "drug not found"
// @Router /drugs/{name} [get]
func lookupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		info, err := svc.Lookup(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, drugResponse(info))
	}
}

// checkInteractionsHandler godoc
// @Summary Interacciones entre medicamentos
// @Description Revisa todos los pares de la lista; los nombres desconocidos se ignoran.
// @Tags drugs
// @Produce json
// @Param names query string true "Nombres separados por coma"
// @Success 200 {array} interactionResponse
// @Router /drugs/interactions [get]
func checkInteractionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("names"))
		if raw == "" {
			web.WriteError(w, apperr.InvalidInput("names is required"))
			return
		}

		items, err := svc.CheckInteractions(r.Context(), strings.Split(raw, ","))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toInteractionResponses(items))
	}
}

// userInteractionsHandler godoc
// @Summary Interacciones entre mis medicamentos activos
// @Tags drugs
// @Produce json
// @Success 200 {array} interactionResponse
// @Router /medications/interactions [get]
func userInteractionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.UserInteractions(r.Context(), userID)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toInteractionResponses(items))
	}
}
