package owners

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
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Patch("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
		or.Post("/{ownerID}/activate", setOwnerActiveHandler(svc, true))
		or.Post("/{ownerID}/deactivate", setOwnerActiveHandler(svc, false))
	})
}

type addressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type createOwnerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// Dirección estructurada o, alternativamente, una línea de texto libre
	// separada por comas ("123 Rue de la République, 75001 Paris, France").
	Address     *addressPayload `json:"address,omitempty"`
	AddressLine string          `json:"address_line,omitempty"`
}

type updateOwnerRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	FirstName   *string         `json:"first_name"`
	LastName    *string         `json:"last_name"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	Address     *addressPayload `json:"address"`
	AddressLine *string         `json:"address_line"`

	// Control de concurrencia optimista; opcional.
	Version *int64 `json:"version"`
}

type addressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Region     string `json:"region"`
}

type ownerAnimalResponse struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	TypeLabel string  `json:"type_label"`
	Name      string  `json:"name"`
	AgeYears  int     `json:"age_years"`
	Weight    float64 `json:"weight"`
}

type costBreakdownResponse struct {
	Lines map[string]float64 `json:"lines"`
	Total float64            `json:"total"`
}

type costSummaryResponse struct {
	Total     float64                         `json:"total"`
	PerAnimal map[int64]costBreakdownResponse `json:"per_animal,omitempty"`
	Currency  string                          `json:"currency"`
}

type ownerStatisticsResponse struct {
	TotalAnimals    int                 `json:"total_animals"`
	ByType          map[string]int      `json:"by_type"`
	AverageAge      float64             `json:"average_age"`
	HasDangerousDog bool                `json:"has_dangerous_dog"`
	DogLimitReached bool                `json:"dog_limit_reached"`
	AnnualCost      costSummaryResponse `json:"annual_cost"`
}

type ownerResponse struct {
	ID               int64           `json:"id"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"` // renderizado formateado
	PhoneCountry     string          `json:"phone_country"`
	Address          addressResponse `json:"address"`
	TotalAnimals     int             `json:"total_animals"`
	IsActive         bool            `json:"is_active"`
	RegistrationDate time.Time       `json:"registration_date"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Bloques opcionales, bajo ?include=animals,statistics.
	Animals    []ownerAnimalResponse    `json:"animals,omitempty"`
	Statistics *ownerStatisticsResponse `json:"statistics,omitempty"`
}

// createOwnerHandler godoc
// @Summary Registrar un dueño
// @Description Registra un dueño con email único. La dirección puede venir estructurada (address) o como una línea de texto libre separada por comas (address_line).
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body createOwnerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "Datos inválidos"
// @Failure 409 {string} string "email already registered"
// @Failure 500 {string} string "internal error"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		addr, err := resolveAddress(req.Address, req.AddressLine)
		if err != nil {
			respondError(w, err)
			return
		}

		o, err := svc.Register(r.Context(), RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   addr,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(r, svc, o, nil))
	}
}

func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := ListFilter{
			City:       q.Get("city"),
			PostalCode: q.Get("postal_code"),
		}
		if v := q.Get("page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, "page must be a positive integer", http.StatusBadRequest)
				return
			}
			filter.Page = n
		}
		if v := q.Get("per_page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				http.Error(w, "per_page must be a positive integer", http.StatusBadRequest)
				return
			}
			filter.PerPage = n
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(r, svc, o, nil))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Ver un dueño
// @Description Devuelve el dueño. Con ?include=animals,statistics añade la colección derivada de animales y el bloque de estadísticas (conteos por tipo, media de edad, banderas legales, presupuesto anual).
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del dueño"
// @Param include query string false "Bloques opcionales: animals, statistics (separados por coma)"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "ownerID")
		if err != nil {
			http.Error(w, "invalid owner id", http.StatusBadRequest)
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}

		includes := parseIncludes(r.URL.Query().Get("include"))
		writeJSON(w, http.StatusOK, toOwnerResponse(r, svc, o, includes))
	}
}

func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "ownerID")
		if err != nil {
			http.Error(w, "invalid owner id", http.StatusBadRequest)
			return
		}

		var req updateOwnerRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Version:   req.Version,
		}
		if req.Address != nil || req.AddressLine != nil {
			line := ""
			if req.AddressLine != nil {
				line = *req.AddressLine
			}
			addr, err := resolveAddress(req.Address, line)
			if err != nil {
				respondError(w, err)
				return
			}
			in.Address = &addr
		}

		o, err := svc.Update(r.Context(), id, in)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(r, svc, o, nil))
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "ownerID")
		if err != nil {
			http.Error(w, "invalid owner id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func setOwnerActiveHandler(svc *Service, active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "ownerID")
		if err != nil {
			http.Error(w, "invalid owner id", http.StatusBadRequest)
			return
		}

		var o Owner
		if active {
			o, err = svc.Activate(r.Context(), id)
		} else {
			o, err = svc.Deactivate(r.Context(), id)
		}
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(r, svc, o, nil))
	}
}

func resolveAddress(payload *addressPayload, line string) (values.Address, error) {
	switch {
	case payload != nil:
		return values.NewAddress(payload.Street, payload.City, payload.PostalCode, payload.Country)
	case strings.TrimSpace(line) != "":
		return values.ParseAddress(line)
	default:
		return values.Address{}, values.NewValidationError("address", "must not be empty")
	}
}

func parseIncludes(raw string) map[string]bool {
	includes := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			includes[p] = true
		}
	}
	return includes
}

func toOwnerResponse(r *http.Request, svc *Service, o Owner, includes map[string]bool) ownerResponse {
	resp := ownerResponse{
		ID:               o.ID,
		FirstName:        o.FirstName,
		LastName:         o.LastName,
		FullName:         o.FullName(),
		Email:            o.Email.String(),
		Phone:            o.Phone.Formatted(),
		PhoneCountry:     o.Phone.Country(),
		Address:          toAddressResponse(o.Address),
		IsActive:         o.IsActive,
		RegistrationDate: o.RegistrationDate,
		Version:          o.Version,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}

	// total_animals siempre se deriva por consulta, nunca de un campo.
	list, err := svc.Animals(r.Context(), o.ID)
	if err == nil {
		resp.TotalAnimals = len(list)
	}

	if includes["animals"] && err == nil {
		out := make([]ownerAnimalResponse, 0, len(list))
		now := svc.now()
		for _, a := range list {
			out = append(out, ownerAnimalResponse{
				ID:        a.ID,
				Type:      string(a.Kind),
				TypeLabel: a.Kind.Label(),
				Name:      a.Name,
				AgeYears:  a.AgeYears(now),
				Weight:    a.Weight,
			})
		}
		resp.Animals = out
	}

	if includes["statistics"] {
		if stats, err := svc.Statistics(r.Context(), o.ID); err == nil {
			byType := make(map[string]int, len(stats.ByType))
			for k, n := range stats.ByType {
				byType[string(k)] = n
			}
			perAnimal := make(map[int64]costBreakdownResponse, len(stats.AnnualCost.PerAnimal))
			for id, b := range stats.AnnualCost.PerAnimal {
				perAnimal[id] = costBreakdownResponse{Lines: b.Lines, Total: b.Total}
			}
			resp.Statistics = &ownerStatisticsResponse{
				TotalAnimals:    stats.TotalAnimals,
				ByType:          byType,
				AverageAge:      stats.AverageAge,
				HasDangerousDog: stats.HasDangerousDog,
				DogLimitReached: stats.DogLimitReached,
				AnnualCost: costSummaryResponse{
					Total:     stats.AnnualCost.Total,
					PerAnimal: perAnimal,
					Currency:  stats.AnnualCost.Currency,
				},
			}
		}
	}

	return resp
}

func toAddressResponse(a values.Address) addressResponse {
	return addressResponse{
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
		Region:     a.Region(),
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case values.IsValidation(err), errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrVersionConflict):
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
