package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"plantcare/config"
	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router"
	"plantcare/internal/delivery/api/router/handler"
	"plantcare/internal/domain/entity"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/infra/auth"
	"plantcare/internal/infra/directory"
	"plantcare/internal/infra/qrcode"
	"plantcare/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*entity.User
	plants map[uuid.UUID]*entity.Plant
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:  make(map[uuid.UUID]*entity.User),
		plants: make(map[uuid.UUID]*entity.Plant),
	}
}

type memoryUserRepo struct{ s *memoryStore }

func (r memoryUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			cp := *u

			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r memoryUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *user
	r.s.users[user.ID] = &cp

	return nil
}

type memoryPlantRepo struct{ s *memoryStore }

func (r memoryPlantRepo) Create(_ context.Context, plant *entity.Plant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *plant
	r.s.plants[plant.ID] = &cp

	return nil
}

func (r memoryPlantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Plant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.plants[id]
	if !ok {
		return nil, repository.ErrPlantNotFound
	}
	cp := *p

	return &cp, nil
}

func (r memoryPlantRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Plant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Plant{}
	for _, p := range r.s.plants {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Plant) int { return a.CreatedAt.Compare(b.CreatedAt) })

	return out, nil
}

func (r memoryPlantRepo) Update(_ context.Context, plant *entity.Plant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.plants[plant.ID]; !ok {
		return repository.ErrPlantNotFound
	}
	cp := *plant
	r.s.plants[plant.ID] = &cp

	return nil
}

func (r memoryPlantRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.plants[id]; !ok {
		return repository.ErrPlantNotFound
	}
	delete(r.s.plants, id)

	return nil
}

type memoryTxManager struct{ s *memoryStore }

func (m memoryTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m memoryTxManager) UserRepo() repository.UserRepository   { return memoryUserRepo(m) }
func (m memoryTxManager) PlantRepo() repository.PlantRepository { return memoryPlantRepo(m) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.PlantEvent
}

func (p *recordingPublisher) PublishPlantEvent(_ context.Context, event *service.PlantEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []service.PlantEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]service.PlantEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}

	return out
}

type stubLookup struct{}

func (stubLookup) Search(_ context.Context, _ string) ([]service.ExternalPlant, error) {
	return []service.ExternalPlant{}, nil
}

type testApp struct {
	echo      *echo.Echo
	publisher *recordingPublisher
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "integration-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}
	cfg.Suggestion.MaxResults = 10

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemoryStore()
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	publisher := &recordingPublisher{}
	lookup := stubLookup{}

	identityUC := impl.NewIdentityService(impl.IdentityServiceParams{
		TxManager:    memoryTxManager{s: store},
		UserRepo:     memoryUserRepo{s: store},
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Logger:       logger,
	})
	plantUC := impl.NewPlantService(impl.PlantServiceParams{
		PlantRepo: memoryPlantRepo{s: store},
		Publisher: publisher,
		QRService: qrcode.New(cfg),
		Logger:    logger,
	})
	suggestionUC := impl.NewSuggestionService(impl.SuggestionServiceParams{
		Directory: directory.New(),
		Lookup:    lookup,
		Config:    cfg,
		Logger:    logger,
	})

	r := router.NewRouter(router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{IdentityUC: identityUC, Logger: logger}),
		PlantHandler: handler.NewPlantHandler(handler.PlantHandlerParams{
			PlantUC: plantUC,
			Logger:  logger,
		}),
		SuggestionHandler: handler.NewSuggestionHandler(handler.SuggestionHandlerParams{
			SuggestionUC: suggestionUC,
			Lookup:       lookup,
			Logger:       logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			IdentityUC: identityUC,
			Logger:     logger,
		}),
	})

	return &testApp{echo: newEcho(cfg, logger, r), publisher: publisher}
}

func (a *testApp) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func (a *testApp) register(t *testing.T, username, email string) string {
	t.Helper()
	rec := a.do(http.MethodPost, "/api/auth/register",
		`{"username":"`+username+`","email":"`+email+`","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode(t, rec)["token"].(string)
}

func TestServer_PlantLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "Alice@Example.com")

	rec := app.do(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)

	rec = app.do(http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", decode(t, rec)["email"])

	before := time.Now().Add(-time.Second)
	rec = app.do(http.MethodPost, "/api/plants", `{"name":"  Fern ","wateringFrequencyDays":3}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, "Fern", created["name"])
	assert.Equal(t, "Unknown", created["species"])
	lastWatered, err := time.Parse(time.RFC3339Nano, created["lastWatered"].(string))
	require.NoError(t, err)
	assert.True(t, lastWatered.After(before))
	plantID := created["id"].(string)

	rec = app.do(http.MethodPut, "/api/plants/"+plantID, `{"notes":"north window"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "north window", decode(t, rec)["notes"])

	rec = app.do(http.MethodGet, "/api/plants", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), plantID)

	rec = app.do(http.MethodGet, "/api/plants/"+plantID+"/label", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = app.do(http.MethodDelete, "/api/plants/"+plantID, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"plant removed"}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/api/plants/"+plantID, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"plant not found"}`, rec.Body.String())

	assert.Equal(t,
		[]service.PlantEventType{service.PlantCreated, service.PlantUpdated, service.PlantDeleted},
		app.publisher.types())
}

func TestServer_OwnershipIsolation(t *testing.T) {
	app := newTestApp(t)
	aliceToken := app.register(t, "alice", "alice@example.com")
	bobToken := app.register(t, "bob", "bob@example.com")

	rec := app.do(http.MethodPost, "/api/plants", `{"name":"Fern","wateringFrequencyDays":3}`, aliceToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	plantID := decode(t, rec)["id"].(string)

	rec = app.do(http.MethodGet, "/api/plants/"+plantID, "", bobToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"not authorized to access this plant"}`, rec.Body.String())

	rec = app.do(http.MethodDelete, "/api/plants/"+plantID, "", bobToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodGet, "/api/plants", "", bobToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = app.do(http.MethodGet, "/api/plants/"+plantID, "", aliceToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RegistrationConflicts(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "alice", "alice@example.com")

	rec := app.do(http.MethodPost, "/api/auth/register",
		`{"username":"alice2","email":"ALICE@example.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"user with this email already exists"}`, rec.Body.String())

	rec = app.do(http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"invalid credentials"}`, rec.Body.String())
}

func TestServer_Suggestions(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "alice", "alice@example.com")

	rec := app.do(http.MethodGet, "/api/suggestions?q=a", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = app.do(http.MethodGet, "/api/suggestions/directory", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []entity.Candidate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.NotEmpty(t, entries)

	rec = app.do(http.MethodGet, "/api/suggestions/"+entries[0].ID+"/draft", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	draft := decode(t, rec)["draft"].(map[string]any)
	assert.Equal(t, entries[0].CommonNamePt, draft["name"])
	assert.Equal(t, entries[0].ScientificName, draft["species"])

	rec = app.do(http.MethodGet, "/api/suggestions/unknown/draft", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodPost, "/api/suggestions/draft",
		`{"id":"trefle-42","commonNamePt":"Dog rose","scientificName":"Rosa canina","isExternal":true,`+
			`"originalTrefleData":{"id":42,"duration":["Perennial"],"links":{"plant":"/api/v1/plants/rosa-canina"}}}`,
		token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	draft = decode(t, rec)["draft"].(map[string]any)
	assert.Equal(t, "Dog rose", draft["name"])
	assert.Contains(t, draft["notes"], "Trefle data:")
	assert.Contains(t, draft["notes"], "Duration: Perennial")
}

func TestServer_RequestID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "trace-123")
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-123", rec.Header().Get(echo.HeaderXRequestID))

	rec = app.do(http.MethodGet, "/health", "", "")
	_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestServer_RequiresToken(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/api/plants", "/api/suggestions/directory", "/api/trefle/search?query=rosa", "/api/auth/me"} {
		rec := app.do(http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.JSONEq(t, `{"msg":"not authorized, no token"}`, rec.Body.String(), target)
	}
}

func TestServer_RejectsOutOfRangePlantInput(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "alice", "alice@example.com")

	for _, body := range []string{
		`{"name":"Fern","wateringFrequencyDays":200000,"lastWatered":"2026-01-01"}`,
		`{"name":"Fern","wateringFrequencyDays":3000000000}`,
		`{"name":"` + strings.Repeat("f", 256) + `","wateringFrequencyDays":3}`,
	} {
		rec := app.do(http.MethodPost, "/api/plants", body, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	}
	assert.Empty(t, app.publisher.types())
}
