package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"pet-registry/internal/router"
)

func TestHTTP_EndToEnd_RegistryLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta del primer dueño
	owner1 := createOwner(t, ts.URL, map[string]any{
		"first_name": "Jean",
		"last_name":  "Dupont",
		"email":      "jean.dupont@example.com",
		"phone":      "+33 6 12 34 56 78",
		"address": map[string]any{
			"street":      "12 Rue de Rivoli",
			"city":        "Paris",
			"postal_code": "75001",
			"country":     "France",
		},
	})

	// 2) El perfil devuelve los derivados del dueño
	{
		st, body := doReq(t, ts.URL, "GET", "/api/owners/"+itoa(owner1), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			FullName     string `json:"full_name"`
			Phone        string `json:"phone"`
			PhoneCountry string `json:"phone_country"`
			Address      struct {
				City   string `json:"city"`
				Region string `json:"region"`
			} `json:"address"`
			IsActive bool  `json:"is_active"`
			Version  int64 `json:"version"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.FullName != "Jean Dupont" {
			t.Fatalf("full_name = %q, want %q", resp.FullName, "Jean Dupont")
		}
		if resp.Phone != "+33 6 12 34 56 78" || resp.PhoneCountry != "France" {
			t.Fatalf("unexpected phone rendering: %q / %q", resp.Phone, resp.PhoneCountry)
		}
		if resp.Address.Region != "75" {
			t.Fatalf("region = %q, want 75", resp.Address.Region)
		}
		if !resp.IsActive || resp.Version != 1 {
			t.Fatalf("unexpected state: active=%v version=%d", resp.IsActive, resp.Version)
		}
	}

	// 3) Email duplicado => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/owners", map[string]any{
			"first_name":   "Jeanne",
			"last_name":    "Dupont",
			"email":        "JEAN.DUPONT@example.com",
			"phone":        "0612345679",
			"address_line": "3 Rue du Port, 44000 Nantes, France",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate email, got %d", st)
		}
	}

	// 4) Alta de un perro grande; el sonido y los cuidados salen derivados
	birthDate := time.Now().AddDate(-5, -6, 0).Format("2006-01-02")
	rexID := createAnimal(t, ts.URL, map[string]any{
		"type":                "dog",
		"name":                "Rex",
		"birth_date":          birthDate,
		"weight":              25.5,
		"color":               "noir",
		"owner_id":            owner1,
		"breed":               "Berger Allemand",
		"registration_number": "ABC123456789012",
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals/"+itoa(rexID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
		}
		var resp struct {
			Type         string   `json:"type"`
			TypeLabel    string   `json:"type_label"`
			AgeYears     int      `json:"age_years"`
			Sound        string   `json:"sound"`
			SpecialNeeds []string `json:"special_needs"`
			Owner        *struct {
				FullName string `json:"full_name"`
			} `json:"owner"`
			AnnualCost struct {
				Total    float64 `json:"total"`
				Currency string  `json:"currency"`
			} `json:"annual_cost"`
			Version int64 `json:"version"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Type != "dog" || resp.TypeLabel != "Chien" {
			t.Fatalf("unexpected type: %s/%s", resp.Type, resp.TypeLabel)
		}
		if resp.AgeYears != 5 {
			t.Fatalf("age_years = %d, want 5", resp.AgeYears)
		}
		// 25.5 kg supera el umbral de perro grande
		if resp.Sound != "WOOF WOOF!" {
			t.Fatalf("sound = %q, want WOOF WOOF!", resp.Sound)
		}
		if !contains(resp.SpecialNeeds, "Promenade quotidienne") {
			t.Fatalf("special_needs missing walk: %v", resp.SpecialNeeds)
		}
		if resp.Owner == nil || resp.Owner.FullName != "Jean Dupont" {
			t.Fatalf("owner block = %+v", resp.Owner)
		}
		if resp.AnnualCost.Total <= 0 || resp.AnnualCost.Currency != "EUR" {
			t.Fatalf("annual_cost = %+v", resp.AnnualCost)
		}
		if resp.Version != 1 {
			t.Fatalf("version = %d, want 1", resp.Version)
		}
	}

	// 5) El dueño con ?include trae colección y estadísticas derivadas
	{
		st, body := doReq(t, ts.URL, "GET", "/api/owners/"+itoa(owner1)+"?include=animals,statistics", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner with includes, got %d body=%s", st, string(body))
		}
		var resp struct {
			TotalAnimals int `json:"total_animals"`
			Animals      []struct {
				Name string `json:"name"`
			} `json:"animals"`
			Statistics *struct {
				TotalAnimals    int            `json:"total_animals"`
				ByType          map[string]int `json:"by_type"`
				HasDangerousDog bool           `json:"has_dangerous_dog"`
				DogLimitReached bool           `json:"dog_limit_reached"`
			} `json:"statistics"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.TotalAnimals != 1 || len(resp.Animals) != 1 || resp.Animals[0].Name != "Rex" {
			t.Fatalf("unexpected collection: total=%d animals=%+v", resp.TotalAnimals, resp.Animals)
		}
		if resp.Statistics == nil || resp.Statistics.ByType["dog"] != 1 {
			t.Fatalf("unexpected statistics: %+v", resp.Statistics)
		}
		if resp.Statistics.HasDangerousDog || resp.Statistics.DogLimitReached {
			t.Fatalf("unexpected flags: %+v", resp.Statistics)
		}
	}

	// 6) Cambio de peso fuerte: sube la versión y deja alerta en el historial
	{
		st, body := doReq(t, ts.URL, "PATCH", "/api/animals/"+itoa(rexID), map[string]any{
			"weight": 30.5,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch animal, got %d body=%s", st, string(body))
		}
		var resp struct {
			Weight  float64 `json:"weight"`
			Version int64   `json:"version"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Weight != 30.5 || resp.Version != 2 {
			t.Fatalf("after patch: weight=%v version=%d", resp.Weight, resp.Version)
		}
	}

	// 7) Alta del segundo dueño y transferencia de Rex
	owner2 := createOwner(t, ts.URL, map[string]any{
		"first_name":   "Claire",
		"last_name":    "Martin",
		"email":        "claire.martin@example.com",
		"phone":        "0298765432",
		"address_line": "8 Quai des Chartrons, 33000 Bordeaux, France",
	})
	{
		st, body := doReq(t, ts.URL, "POST", "/api/animals/"+itoa(rexID)+"/transfer", map[string]any{
			"new_owner_id": owner2,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 transfer, got %d body=%s", st, string(body))
		}
		var resp struct {
			OwnerID int64 `json:"owner_id"`
			Version int64 `json:"version"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.OwnerID != owner2 || resp.Version != 3 {
			t.Fatalf("after transfer: owner=%d version=%d", resp.OwnerID, resp.Version)
		}
	}

	// 8) El historial del animal refleja todo lo anterior, el cambio más
	// reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/api/animals/"+itoa(rexID)+"/activity", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 animal activity, got %d body=%s", st, string(body))
		}
		var entries []struct {
			Type string `json:"type"`
		}
		mustUnmarshal(t, body, &entries)
		if len(entries) == 0 || entries[0].Type != "ANIMAL_TRANSFERRED" {
			t.Fatalf("unexpected trail head: %+v", entries)
		}
		types := make([]string, 0, len(entries))
		for _, e := range entries {
			types = append(types, e.Type)
		}
		for _, want := range []string{"ANIMAL_REGISTERED", "WEIGHT_ALERT", "ANIMAL_UPDATED"} {
			if !contains(types, want) {
				t.Fatalf("trail missing %s: %v", want, types)
			}
		}
	}

	// 9) Liberación: Rex queda sin dueño
	{
		st, body := doReq(t, ts.URL, "POST", "/api/animals/"+itoa(rexID)+"/release", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 release, got %d body=%s", st, string(body))
		}
		var resp struct {
			OwnerID int64 `json:"owner_id"`
			Version int64 `json:"version"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.OwnerID != 0 || resp.Version != 4 {
			t.Fatalf("after release: owner=%d version=%d", resp.OwnerID, resp.Version)
		}
	}

	// 10) Borrar un dueño arrastra sus animales
	mistyID := createAnimal(t, ts.URL, map[string]any{
		"type":       "cat",
		"name":       "Misty",
		"birth_date": time.Now().AddDate(-2, 0, -15).Format("2006-01-02"),
		"weight":     4.2,
		"owner_id":   owner2,
	})
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/owners/"+itoa(owner2), nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete owner, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/owners/"+itoa(owner2), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 owner after delete, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/animals/"+itoa(mistyID), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 cascaded animal, got %d", st)
		}
	}

	// 11) Rex sobrevive porque ya no tenía dueño; las estadísticas lo cuentan
	{
		st, body := doReq(t, ts.URL, "GET", "/api/stats/animals", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
		}
		var resp struct {
			TotalAnimals int            `json:"total_animals"`
			ByType       map[string]int `json:"by_type"`
			Currency     string         `json:"currency"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.TotalAnimals != 1 || resp.ByType["dog"] != 1 {
			t.Fatalf("unexpected stats: %+v", resp)
		}
		if resp.Currency != "EUR" {
			t.Fatalf("currency = %q, want EUR", resp.Currency)
		}
	}

	// 12) Health fuera del prefijo /api
	{
		st, body := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("health = %d %q", st, string(body))
		}
	}
}

func TestHTTP_CreateAnimal_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := createOwner(t, ts.URL, map[string]any{
		"first_name":   "Luc",
		"last_name":    "Bernard",
		"email":        "luc.bernard@example.com",
		"phone":        "0712345678",
		"address_line": "5 Place Bellecour, 69002 Lyon, France",
	})

	birthDate := time.Now().AddDate(-3, 0, 0).Format("2006-01-02")

	// tipo desconocido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/animals", map[string]any{
			"type":       "fish",
			"name":       "Nemo",
			"birth_date": birthDate,
			"weight":     0.2,
			"owner_id":   ownerID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown type, got %d", st)
		}
	}

	// perro sin raza => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/animals", map[string]any{
			"type":       "dog",
			"name":       "Rex",
			"birth_date": birthDate,
			"weight":     10,
			"owner_id":   ownerID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for dog without breed, got %d", st)
		}
	}

	// dueño inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/animals", map[string]any{
			"type":       "cat",
			"name":       "Misty",
			"birth_date": birthDate,
			"weight":     4,
			"owner_id":   9999,
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for missing owner, got %d", st)
		}
	}

	// dueño desactivado => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/api/owners/"+itoa(ownerID)+"/deactivate", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 deactivate, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/animals", map[string]any{
			"type":       "cat",
			"name":       "Misty",
			"birth_date": birthDate,
			"weight":     4,
			"owner_id":   ownerID,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for inactive owner, got %d", st)
		}
	}
}

func createOwner(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/owners", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create owner: missing id body=%s", string(body))
	}
	return resp.ID
}

func createAnimal(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/animals", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
