package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/B7A9F/exercices-api/internal/auth"
	"github.com/B7A9F/exercices-api/internal/exercices"
	"github.com/B7A9F/exercices-api/internal/middleware"
	"github.com/B7A9F/exercices-api/internal/models"
	"github.com/B7A9F/exercices-api/internal/store"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	byEmail map[string]models.User
	nextID  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]models.User), nextID: 1}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	now := time.Now()
	user := models.User{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.nextID++
	f.byEmail[email] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) addUser(t *testing.T, username, email, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user, _ := f.CreateUser(context.Background(), username, email, string(hash))
	return user
}

// fakeExerciceStore is an in-memory ExerciceStore.
type fakeExerciceStore struct {
	exercices map[string]models.Exercice
}

func newFakeExerciceStore() *fakeExerciceStore {
	return &fakeExerciceStore{exercices: make(map[string]models.Exercice)}
}

func (f *fakeExerciceStore) ListByOwners(ctx context.Context, owners []string) ([]models.Exercice, error) {
	out := []models.Exercice{}
	for _, ex := range f.exercices {
		for _, o := range owners {
			if ex.Owner == o {
				out = append(out, ex)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeExerciceStore) ExistsTriple(ctx context.Context, owner, name, exerciceType, muscle string) (bool, error) {
	for _, ex := range f.exercices {
		if ex.Owner == owner && ex.Name == name && ex.Type == exerciceType && ex.Muscle == muscle {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeExerciceStore) Create(ctx context.Context, ex models.Exercice) error {
	f.exercices[ex.ID] = ex
	return nil
}

func (f *fakeExerciceStore) GetByID(ctx context.Context, id string) (models.Exercice, error) {
	ex, ok := f.exercices[id]
	if !ok {
		return models.Exercice{}, store.ErrNotFound
	}
	return ex, nil
}

func (f *fakeExerciceStore) Update(ctx context.Context, ex models.Exercice) error {
	f.exercices[ex.ID] = ex
	return nil
}

func (f *fakeExerciceStore) Delete(ctx context.Context, id string) error {
	delete(f.exercices, id)
	return nil
}

func (f *fakeExerciceStore) seed(owner, name, exerciceType, muscle string) models.Exercice {
	now := time.Now()
	ex := models.Exercice{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      exerciceType,
		Muscle:    muscle,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.exercices[ex.ID] = ex
	return ex
}

// fakeCatalog serves canned remote records.
type fakeCatalog struct {
	exercices []models.RemoteExercice
	err       error
}

func (f *fakeCatalog) FetchExercices(ctx context.Context) ([]models.RemoteExercice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.exercices, nil
}

// testEnv wires a full app over fakes, mirroring the server wiring.
type testEnv struct {
	app       *fiber.App
	users     *fakeUserStore
	exercices *fakeExerciceStore
	catalog   *fakeCatalog
	issuer    *auth.TokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:     newFakeUserStore(),
		exercices: newFakeExerciceStore(),
		catalog:   &fakeCatalog{},
		issuer:    auth.NewTokenIssuer([]byte("test-secret"), 15*time.Minute),
	}

	svc := exercices.NewService(env.exercices, env.catalog)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	api := app.Group("/api")
	users := api.Group("/users")
	userHandler := NewUserHandler(env.users, env.issuer, bcrypt.MinCost)
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)

	ex := api.Group("/exercices")
	ex.Use(middleware.ValidateToken(env.issuer))
	exHandler := NewExerciceHandler(svc)
	ex.Get("/", exHandler.GetAll)
	ex.Post("/", exHandler.Create)
	ex.Get("/local", exHandler.GetLocal)
	ex.Get("/remote", exHandler.GetRemote)
	ex.Get("/:id", exHandler.Get)
	ex.Put("/:id", exHandler.Update)
	ex.Delete("/:id", exHandler.Delete)

	env.app = app
	return env
}

// tokenFor issues a token for an already-stored user.
func (e *testEnv) tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := e.issuer.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	resp.Body.Close()
	return resp, raw
}

func decodeError(t *testing.T, raw []byte) models.ErrorResponse {
	t.Helper()
	var errResp models.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		t.Fatalf("decoding error body %q: %v", raw, err)
	}
	return errResp
}

var errCatalogDown = errors.New("catalog down")
