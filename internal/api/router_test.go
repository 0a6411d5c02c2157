package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/webservices-film/internal/api"
	"github.com/filmcatalog/webservices-film/internal/api/handler"
	"github.com/filmcatalog/webservices-film/internal/api/metrics"
	"github.com/filmcatalog/webservices-film/internal/core/service"
	gormdb "github.com/filmcatalog/webservices-film/internal/infrastructure/db/gorm"
	"github.com/filmcatalog/webservices-film/internal/pkg/password"
	"github.com/filmcatalog/webservices-film/internal/pkg/token"
)

const (
	adminEmail = "robbe.pauwels2@student.hogent.be"
	userEmail  = "test.gebruiker@hogent.be"
)

// newTestRouter serves the full API over a seeded in-memory SQLite catalog.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	ctx := context.Background()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gormdb.Connect(ctx, gormdb.Config{
		Driver: "sqlite",
		DSN:    "file:" + name + "?mode=memory&cache=shared&_foreign_keys=1",
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = gormdb.Close(db) })
	if err := gormdb.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hasher := password.NewHasher(password.Params{HashLength: 16, TimeCost: 1, MemoryCost: 64, Parallelism: 1, SaltLength: 8})
	if err := gormdb.Seed(ctx, db, hasher.Hash); err != nil {
		t.Fatalf("seed: %v", err)
	}
	tokens, err := token.NewManager(token.Config{Secret: "router-test-secret", Issuer: "test", Audience: "test"})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	log := zerolog.Nop()
	users := gormdb.NewUserRepository(db)
	films := gormdb.NewFilmRepository(db)
	persons := gormdb.NewPersonRepository(db)
	locations := gormdb.NewLocationRepository(db)
	awards := gormdb.NewAwardRepository(db)
	tx := gormdb.NewTransactor(db)

	auth, err := service.NewAuthService(users, hasher, tokens, nil, log)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	reg := prometheus.NewRegistry()
	return api.NewRouter(api.Options{
		Logger: log,
		Services: api.Services{
			Auth:  auth,
			Users: service.NewUserService(users, nil, log),
			Films: service.NewFilmService(service.FilmServiceDeps{
				Films: films, Persons: persons, Locations: locations, Awards: awards, Transactor: tx,
			}, log),
			Persons:   service.NewPersonService(persons, tx, nil, log),
			Locations: service.NewLocationService(locations, tx, nil, log),
			Awards:    service.NewAwardService(awards, films, nil, log),
		},
		Tokens:   tokens,
		Metrics:  metrics.New(reg),
		Registry: reg,
		App:      handler.AppInfo{Env: "test", Version: "1.0.0", Name: "webservices-film"},
		HealthChecks: map[string]handler.Check{
			"database": func(ctx context.Context) error { return gormdb.Ping(ctx, db) },
		},
		ExposeStack: true,
	})
}

func do(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/sessions", "", `{"email":"`+email+`","password":"12345678"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil || out.Token == "" {
		t.Fatalf("login %s: no token in %s", email, rec.Body.String())
	}
	return out.Token
}

type errorBody struct {
	Code    string                       `json:"code"`
	Message string                       `json:"message"`
	Details map[string]map[string]string `json:"details"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestRouter_LoginAndListFilms(t *testing.T) {
	e := newTestRouter(t)
	tok := login(t, e, userEmail)

	rec := do(t, e, http.MethodGet, "/api/film", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var list struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Items) != 2 || list.Items[0]["Naam"] != "Spiderman No Way Home" {
		t.Fatalf("unexpected films: %+v", list.Items)
	}
	if list.Items[0]["Toegevoegd door"] != "Robbe Pauwels" {
		t.Fatalf("expected seeded films to be added by the admin, got %v", list.Items[0]["Toegevoegd door"])
	}
}

func TestRouter_WrongPassword(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/api/sessions", "", `{"email":"`+adminEmail+`","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Message != "The given email and password do not match" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestRouter_Rejections(t *testing.T) {
	e := newTestRouter(t)
	userTok := login(t, e, userEmail)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"no token", http.MethodGet, "/api/film", "", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage token", http.MethodGet, "/api/film", "garbage", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"user lists users", http.MethodGet, "/api/users", userTok, "", http.StatusForbidden, "FORBIDDEN"},
		{"user reads other user", http.MethodGet, "/api/users/1", userTok, "", http.StatusForbidden, "FORBIDDEN"},
		{"user deletes film", http.MethodDelete, "/api/film/1", userTok, "", http.StatusForbidden, "FORBIDDEN"},
		{"missing film", http.MethodGet, "/api/film/99", userTok, "", http.StatusNotFound, "NOT_FOUND"},
		{"person still directs", http.MethodDelete, "/api/persoon/4", login(t, e, adminEmail), "", http.StatusConflict, "CONFLICT"},
		{"wrong method", http.MethodPatch, "/api/film", userTok, "", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.path, tt.token, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if body := decodeError(t, rec); body.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, body.Code)
			}
		})
	}
}

func TestRouter_ValidationRunsBeforeHandler(t *testing.T) {
	e := newTestRouter(t)
	tok := login(t, e, userEmail)

	rec := do(t, e, http.MethodGet, "/api/film/abc", tok, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body.Code != "VALIDATION_FAILED" || body.Details["params"]["id"] == "" {
		t.Fatalf("unexpected body: %+v", body)
	}

	rec = do(t, e, http.MethodPost, "/api/persoon", tok,
		`{"Voornaam":"Zendaya","Achternaam":"Coleman","GeboorteDatum":"1996-09-01","Land":"Verenigde Staten","extra":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Details["body"]["extra"]; got != "extra is not allowed" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body.Code != "NOT_FOUND" || body.Message != "Unknown resource: /api/nope" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRouter_OwnUserViaMe(t *testing.T) {
	e := newTestRouter(t)
	tok := login(t, e, userEmail)

	rec := do(t, e, http.MethodGet, "/api/users/me", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var u struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.ID != 2 || u.Email != userEmail {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestRouter_CreateFilm(t *testing.T) {
	e := newTestRouter(t)
	tok := login(t, e, userEmail)

	body := `{
		"Naam": "Doctor Strange",
		"Jaar": "2016",
		"Duur": "115 min",
		"Genre": "SiFi/Actie",
		"Rating": "7.5",
		"Acteurs": [
			{"PersoonID": 3, "Rol": "Stephen Strange"},
			{"Voornaam": "Tilda", "Achternaam": "Swinton", "GeboorteDatum": "1960-11-05", "Land": "Verenigd Koninkrijk", "Rol": "The Ancient One"}
		],
		"Locaties": [{"LocatieID": 1}]
	}`
	rec := do(t, e, http.MethodPost, "/api/film", tok, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var detail struct {
		FilmID  uint             `json:"FilmID"`
		Acteurs []map[string]any `json:"Acteurs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.FilmID != 3 || len(detail.Acteurs) != 2 {
		t.Fatalf("unexpected detail: %s", rec.Body.String())
	}
}

func TestRouter_AdminListsUsers(t *testing.T) {
	e := newTestRouter(t)
	tok := login(t, e, adminEmail)

	rec := do(t, e, http.MethodGet, "/api/users", tok, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var list struct {
		Items []struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Items) != 2 || list.Items[0].Email != adminEmail || list.Items[1].Email != userEmail {
		t.Fatalf("unexpected users: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "argon2") {
		t.Fatalf("password hashes must not be exposed")
	}
}

func TestRouter_AdminDeletesFilm(t *testing.T) {
	e := newTestRouter(t)
	tok := login(t, e, adminEmail)

	rec := do(t, e, http.MethodDelete, "/api/film/1", tok, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := do(t, e, http.MethodGet, "/api/film/1", tok, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected the film to be gone, got %d", rec.Code)
	}

	// the director, cast and filming location outlive the film
	for _, path := range []string{"/api/persoon/4", "/api/persoon/1", "/api/persoon/3", "/api/locatie/1"} {
		if rec := do(t, e, http.MethodGet, path, tok, ""); rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d: %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_CreateFilmWithNewActor(t *testing.T) {
	e := newTestRouter(t)
	tok := login(t, e, userEmail)

	body := `{
		"Naam": "La La Land",
		"Jaar": "2016",
		"Duur": "128 min",
		"Genre": "Musical",
		"Rating": "8.0",
		"Acteurs": [
			{"Voornaam": "Emma", "Achternaam": "Stone", "GeboorteDatum": "1988-11-06", "Land": "Verenigde Staten", "Rol": "Mia Dolan"}
		]
	}`
	rec := do(t, e, http.MethodPost, "/api/film", tok, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var detail struct {
		Naam           string  `json:"Naam"`
		ToegevoegdDoor *string `json:"Toegevoegd door"`
		Acteurs        []struct {
			PersoonID  uint   `json:"PersoonID"`
			Voornaam   string `json:"Voornaam"`
			Achternaam string `json:"Achternaam"`
			Rol        string `json:"Rol"`
		} `json:"Acteurs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Naam != "La La Land" || len(detail.Acteurs) != 1 {
		t.Fatalf("unexpected detail: %s", rec.Body.String())
	}
	actor := detail.Acteurs[0]
	if actor.Voornaam != "Emma" || actor.Achternaam != "Stone" || actor.Rol != "Mia Dolan" || actor.PersoonID == 0 {
		t.Fatalf("unexpected actor: %+v", actor)
	}

	if rec := do(t, e, http.MethodGet, "/api/persoon/"+strconv.FormatUint(uint64(actor.PersoonID), 10), tok, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected the new person to exist, got %d", rec.Code)
	}
}

func TestRouter_RejectsOversizedBody(t *testing.T) {
	e := newTestRouter(t)

	body := `{"email":"` + adminEmail + `","password":"` + strings.Repeat("x", 2<<20) + `"}`
	rec := do(t, e, http.MethodPost, "/api/sessions", "", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Code; got != "REQUEST_ENTITY_TOO_LARGE" {
		t.Fatalf("unexpected code %s", got)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/api/health/ping", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"pong":true`) {
		t.Fatalf("unexpected ping: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/api/health/ready", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected ready, got %d: %s", rec.Code, rec.Body.String())
	}

	login(t, e, adminEmail)
	rec = do(t, e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, want := range []string{"film_auth_attempts_total", "film_http_requests_total"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
