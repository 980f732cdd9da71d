package registry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-registry/internal/domain/animals"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/values"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals/{animalID}/transfer", func(tr chi.Router) {
		tr.Post("/", transferAnimalHandler(svc))
	})
	r.Route("/animals/{animalID}/release", func(rr chi.Router) {
		rr.Post("/", releaseAnimalHandler(svc))
	})
	r.Route("/stats", func(sr chi.Router) {
		sr.Get("/animals", animalStatsHandler(svc))
	})
}

type transferRequest struct {
	NewOwnerID int64 `json:"new_owner_id"`
}

type transferResponse struct {
	AnimalID int64  `json:"animal_id"`
	Name     string `json:"name"`
	OwnerID  int64  `json:"owner_id,omitempty"`
	Version  int64  `json:"version"`
}

type attentionAnimalResponse struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	AgeYears int    `json:"age_years"`
}

type statsResponse struct {
	TotalAnimals     int                       `json:"total_animals"`
	ByType           map[string]int            `json:"by_type"`
	AverageAge       float64                   `json:"average_age"`
	HasDangerousDog  bool                      `json:"has_dangerous_dog"`
	NeedingAttention []attentionAnimalResponse `json:"needing_attention"`
	AnnualCostTotal  float64                   `json:"annual_cost_total"`
	Currency         string                    `json:"currency"`
}

// transferAnimalHandler godoc
// @Summary Transferir un animal a otro dueño
// @Description Cambia el dueño del animal. El nuevo dueño debe existir y estar activo. La escritura del animal y la entrada del historial van en la misma transacción.
// @Tags registry
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param transfer body transferRequest true "Nuevo dueño"
// @Success 200 {object} transferResponse
// @Failure 400 {string} string "Datos inválidos"
// @Failure 404 {string} string "animal not found / owner not found"
// @Failure 409 {string} string "owner is not active"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/transfer [post]
func transferAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "animalID")
		if err != nil {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		var req transferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Transfer(r.Context(), id, req.NewOwnerID)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toTransferResponse(a))
	}
}

func releaseAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "animalID")
		if err != nil {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		a, err := svc.Release(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toTransferResponse(a))
	}
}

// animalStatsHandler godoc
// @Summary Estadísticas globales del registro
// @Description Devuelve los conteos por tipo, la media de edad (1 decimal), los animales que requieren atención (10 años o más) y el presupuesto anual agregado.
// @Tags registry
// @Produce json
// @Success 200 {object} statsResponse
// @Failure 500 {string} string "internal error"
// @Router /stats/animals [get]
func animalStatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ov, err := svc.Overview(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		byType := make(map[string]int, len(ov.Census.ByKind))
		for k, n := range ov.Census.ByKind {
			byType[string(k)] = n
		}

		attention := make([]attentionAnimalResponse, 0, len(ov.NeedingAttention))
		now := svc.now()
		for _, a := range ov.NeedingAttention {
			attention = append(attention, attentionAnimalResponse{
				ID:       a.ID,
				Type:     string(a.Kind),
				Name:     a.Name,
				AgeYears: a.AgeYears(now),
			})
		}

		writeJSON(w, http.StatusOK, statsResponse{
			TotalAnimals:     ov.Census.Total,
			ByType:           byType,
			AverageAge:       ov.Census.AverageAge,
			HasDangerousDog:  ov.Census.HasDangerousDog,
			NeedingAttention: attention,
			AnnualCostTotal:  ov.AnnualCost.Total,
			Currency:         ov.AnnualCost.Currency,
		})
	}
}

func toTransferResponse(a animals.Animal) transferResponse {
	return transferResponse{
		AnimalID: a.ID,
		Name:     a.Name,
		OwnerID:  a.OwnerID,
		Version:  a.Version,
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case values.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, animals.ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, owners.ErrNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	case errors.Is(err, animals.ErrOwnerInactive), errors.Is(err, animals.ErrVersionConflict), errors.Is(err, owners.ErrVersionConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
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
