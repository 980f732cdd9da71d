package activity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// AnimalDirectory y OwnerDirectory comprueban existencia sin importar los
// módulos de dominio (evita ciclos de imports: ellos importan activity).
type AnimalDirectory interface {
	Exists(ctx context.Context, animalID int64) (bool, error)
}

type OwnerDirectory interface {
	Exists(ctx context.Context, ownerID int64) (bool, error)
}

func RegisterRoutes(r chi.Router, svc *Service, animals AnimalDirectory, owners OwnerDirectory) {
	r.Route("/activity", func(ar chi.Router) {
		ar.Get("/", listActivityHandler(svc))
	})

	r.Route("/animals/{animalID}/activity", func(ar chi.Router) {
		ar.Get("/", listAnimalActivityHandler(svc, animals))
	})

	r.Route("/owners/{ownerID}/activity", func(ar chi.Router) {
		ar.Get("/", listOwnerActivityHandler(svc, owners))
	})
}

// entryResponse representa una entrada del historial devuelta por la API.
type entryResponse struct {
	ID         string    `json:"id"`
	Type       EntryType `json:"type"`
	AnimalID   int64     `json:"animal_id,omitempty"`
	OwnerID    int64     `json:"owner_id,omitempty"`
	Summary    string    `json:"summary"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// listActivityHandler godoc
// @Summary Listar el historial global
// @Description Lista las entradas del historial del registro. Permite filtrar por tipos, rango de fechas y texto.
// @Tags activity
// @Produce json
// @Param limit query int false "Máximo de entradas a devolver (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos a incluir (ej: ANIMAL_REGISTERED,WEIGHT_ALERT)"
// @Param from query string false "Fecha/hora mínima occurred_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima occurred_at (RFC3339)"
// @Param q query string false "Texto de búsqueda libre en resumen/detalle"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /activity [get]
func listActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEntryResponses(items))
	}
}

// listAnimalActivityHandler godoc
// @Summary Listar el historial de un animal
// @Description Lista las entradas del historial de un animal concreto (altas, cambios de peso, transferencias).
// @Tags activity
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param limit query int false "Máximo de entradas a devolver (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos a incluir"
// @Param from query string false "Fecha/hora mínima occurred_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima occurred_at (RFC3339)"
// @Param q query string false "Texto de búsqueda libre"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "Parámetros inválidos"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/activity [get]
func listAnimalActivityHandler(svc *Service, animals AnimalDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID, err := parsePathID(r, "animalID")
		if err != nil {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		ok, err := animals.Exists(r.Context(), animalID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByAnimal(r.Context(), animalID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEntryResponses(items))
	}
}

// listOwnerActivityHandler godoc
// @Summary Listar el historial de un dueño
// @Description Lista las entradas del historial de un dueño concreto (registro, cambios de contacto, bajas).
// @Tags activity
// @Produce json
// @Param ownerID path int true "ID del dueño"
// @Param limit query int false "Máximo de entradas a devolver (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos a incluir"
// @Param from query string false "Fecha/hora mínima occurred_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima occurred_at (RFC3339)"
// @Param q query string false "Texto de búsqueda libre"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "Parámetros inválidos"
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID}/activity [get]
func listOwnerActivityHandler(svc *Service, owners OwnerDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := parsePathID(r, "ownerID")
		if err != nil {
			http.Error(w, "invalid owner id", http.StatusBadRequest)
			return
		}

		ok, err := owners.Exists(r.Context(), ownerID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "owner not found", http.StatusNotFound)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByOwner(r.Context(), ownerID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEntryResponses(items))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// types=ANIMAL_REGISTERED,WEIGHT_ALERT
	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]EntryType, 0, len(parts))
		for _, p := range parts {
			t := EntryType(strings.TrimSpace(p))
			if t == "" {
				continue
			}
			out = append(out, t)
		}
		if len(out) > 0 {
			filter.Types = out
		}
	}

	// from/to RFC3339
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	// q
	if v := strings.TrimSpace(r.URL.Query().Get("q")); v != "" {
		filter.Query = v
	}

	return filter, nil
}

func toEntryResponses(items []Entry) []entryResponse {
	out := make([]entryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, entryResponse{
			ID:         e.ID,
			Type:       e.Type,
			AnimalID:   e.AnimalID,
			OwnerID:    e.OwnerID,
			Summary:    e.Summary,
			Detail:     e.Detail,
			OccurredAt: e.OccurredAt,
		})
	}
	return out
}

func parsePathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
