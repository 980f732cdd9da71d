package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-registry/internal/domain/values"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Type      string  `json:"type" enums:"dog,cat,bird"`
	Name      string  `json:"name"`
	BirthDate string  `json:"birth_date"` // YYYY-MM-DD
	Weight    float64 `json:"weight"`     // kg
	Color     string  `json:"color"`
	OwnerID   int64   `json:"owner_id"`

	// Solo perro
	Breed              string `json:"breed,omitempty"`
	IsDangerous        bool   `json:"is_dangerous,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`

	// Solo gato
	IsIndoor         *bool `json:"is_indoor,omitempty"` // por defecto true
	IsHypoallergenic bool  `json:"is_hypoallergenic,omitempty"`

	// Solo ave
	Species  string  `json:"species,omitempty"`
	WingSpan float64 `json:"wing_span,omitempty"` // cm
	CanTalk  bool    `json:"can_talk,omitempty"`
}

type updateAnimalRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name   *string  `json:"name"`
	Color  *string  `json:"color"`
	Weight *float64 `json:"weight"`

	// Control de concurrencia optimista; opcional.
	Version *int64 `json:"version"`
}

type ownerRefResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name,omitempty"`
	Active   bool   `json:"active"`
}

type costResponse struct {
	Lines    map[string]float64 `json:"lines"`
	Total    float64            `json:"total"`
	Currency string             `json:"currency"`
}

// animalResponse es la proyección plana del animal devuelta por la API.
// Los campos derivados (edad, sonido, cuidados) se calculan al servir.
type animalResponse struct {
	ID           int64             `json:"id"`
	Type         string            `json:"type"`
	TypeLabel    string            `json:"type_label"`
	Name         string            `json:"name"`
	BirthDate    string            `json:"birth_date"` // YYYY-MM-DD
	AgeYears     int               `json:"age_years"`
	AgeMonths    int               `json:"age_months"`
	AgeDays      int               `json:"age_days"`
	Weight       float64           `json:"weight"`
	Color        string            `json:"color,omitempty"`
	Owner        *ownerRefResponse `json:"owner,omitempty"`
	SpecialNeeds []string          `json:"special_needs"`
	Sound        string            `json:"sound"`
	Description  string            `json:"description"`
	Data         map[string]any    `json:"data"`
	AnnualCost   costResponse      `json:"annual_cost"`
	Version      int64             `json:"version"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// createAnimalHandler godoc
// @Summary Registrar un animal
// @Description Registra un animal de tipo dog, cat o bird, siempre asociado a un dueño existente y activo. Los campos de variante dependen del tipo: breed para perros, species y wing_span para aves.
// @Tags animals
// @Accept json
// @Produce json
// @Param animal body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "Datos inválidos o tipo no soportado"
// @Failure 404 {string} string "owner not found"
// @Failure 409 {string} string "owner is not active"
// @Failure 500 {string} string "internal error"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = t
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Type:               req.Type,
			Name:               req.Name,
			BirthDate:          bd,
			Weight:             req.Weight,
			Color:              req.Color,
			OwnerID:            req.OwnerID,
			Breed:              req.Breed,
			IsDangerous:        req.IsDangerous,
			RegistrationNumber: req.RegistrationNumber,
			IsIndoor:           req.IsIndoor,
			IsHypoallergenic:   req.IsHypoallergenic,
			Species:            req.Species,
			WingSpan:           req.WingSpan,
			CanTalk:            req.CanTalk,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(r, svc, a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista los animales del registro. Permite filtrar por tipo y por dueño.
// @Tags animals
// @Produce json
// @Param type query string false "Tipo de animal (dog, cat, bird)"
// @Param owner_id query int false "ID del dueño"
// @Success 200 {array} animalResponse
// @Failure 400 {string} string "Filtros inválidos"
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter ListFilter

		if v := strings.TrimSpace(r.URL.Query().Get("type")); v != "" {
			k, err := ParseKind(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			filter.Kind = k
		}
		if v := strings.TrimSpace(r.URL.Query().Get("owner_id")); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				http.Error(w, "owner_id must be a positive integer", http.StatusBadRequest)
				return
			}
			filter.OwnerID = id
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(r, svc, a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Ver un animal
// @Description Devuelve el perfil completo de un animal: datos comunes, datos de la variante, edad calculada, cuidados y presupuesto anual estimado.
// @Tags animals
// @Produce json
// @Param animalID path int true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "animalID")
		if err != nil {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(r, svc, a))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "animalID")
		if err != nil {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		var req updateAnimalRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			Name:    req.Name,
			Color:   req.Color,
			Weight:  req.Weight,
			Version: req.Version,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(r, svc, a))
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "animalID")
		if err != nil {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(r *http.Request, svc *Service, a Animal) animalResponse {
	now := svc.now()
	cost := a.AnnualCost()

	resp := animalResponse{
		ID:           a.ID,
		Type:         string(a.Kind),
		TypeLabel:    a.Kind.Label(),
		Name:         a.Name,
		BirthDate:    a.BirthDate.Format("2006-01-02"),
		AgeYears:     a.AgeYears(now),
		AgeMonths:    a.AgeMonths(now),
		AgeDays:      a.AgeDays(now),
		Weight:       a.Weight,
		Color:        a.Color,
		SpecialNeeds: a.SpecialNeeds(now),
		Sound:        a.Sound(),
		Description:  a.Description(now),
		Data:         variantData(a),
		AnnualCost:   costResponse{Lines: cost.Lines, Total: cost.Total, Currency: cost.Currency},
		Version:      a.Version,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}

	if a.HasOwner() {
		o, found, err := svc.DescribeOwner(r.Context(), a.OwnerID)
		if err != nil || !found {
			// Referencia huérfana: se degrada al id para no romper el listado.
			resp.Owner = &ownerRefResponse{ID: a.OwnerID}
		} else {
			resp.Owner = &ownerRefResponse{ID: o.ID, FullName: o.FullName, Active: o.Active}
		}
	}

	return resp
}

// variantData arma la bolsa de datos específica de la variante.
func variantData(a Animal) map[string]any {
	switch {
	case a.Kind == KindDog && a.Dog != nil:
		return map[string]any{
			"breed":               a.Dog.Breed,
			"is_dangerous":        a.Dog.IsDangerous,
			"registration_number": a.Dog.RegistrationNumber,
		}
	case a.Kind == KindCat && a.Cat != nil:
		return map[string]any{
			"is_indoor":         a.Cat.IsIndoor,
			"is_hypoallergenic": a.Cat.IsHypoallergenic,
		}
	case a.Kind == KindBird && a.Bird != nil:
		return map[string]any{
			"species":   a.Bird.Species,
			"wing_span": a.Bird.WingSpan,
			"can_talk":  a.Bird.CanTalk,
		}
	default:
		return map[string]any{}
	}
}

func respondError(w http.ResponseWriter, err error) {
	var ve *values.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, ErrUnsupportedKind), errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrOwnerNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	case errors.Is(err, ErrOwnerInactive), errors.Is(err, ErrVersionConflict):
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
