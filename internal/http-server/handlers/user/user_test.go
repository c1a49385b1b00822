package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dvconsultores/rhino-bot/entity"
	"github.com/dvconsultores/rhino-bot/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubCore struct {
	users   map[int64]*entity.User
	created *entity.User
	deleted int64
	err     error
}

func (s *stubCore) ListUsers(_ context.Context) ([]entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.User
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubCore) GetUser(_ context.Context, id int64) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubCore) GetUserByTelegramId(_ context.Context, telegramId int64) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[telegramId], nil
}

func (s *stubCore) CreateUser(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	u.ID = 1
	s.created = u
	return nil
}

func (s *stubCore) UpdateUserByTelegramId(_ context.Context, telegramId int64, u *entity.User) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.users[telegramId] == nil {
		return nil, nil
	}
	u.ID = s.users[telegramId].ID
	s.users[telegramId] = u
	return u, nil
}

func (s *stubCore) DeleteUser(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for key, u := range s.users {
		if u.ID == id {
			delete(s.users, key)
			s.deleted = id
			return true, nil
		}
	}
	return false, nil
}

func testRouter(core *stubCore) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Get("/users", ListUsers(log, core))
	r.Post("/users", CreateUser(log, core))
	r.Get("/users/{id}", GetUser(log, core))
	r.Delete("/users/{id}", DeleteUser(log, core))
	r.Get("/users/telegram/{telegram_id}", GetUserByTelegramId(log, core))
	r.Put("/users/telegram/{telegram_id}", UpdateUserByTelegramId(log, core))
	return r
}

func do(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func validPayload() map[string]any {
	return map[string]any{
		"name":          "Ana",
		"lastname":      "Lopez",
		"cedula":        12345678,
		"email":         "ana@example.com",
		"date_of_birth": "1990-12-24",
		"phone":         58412000000,
		"telegram_id":   700,
	}
}

func TestUserHandlers(t *testing.T) {
	seeded := func() *stubCore {
		u := entity.NewUser(700)
		u.ID = 1
		u.Name = "Ana"
		u.Lastname = "Lopez"
		u.Cedula = 12345678
		u.Email = "ana@example.com"
		u.DateOfBirth = "1990-12-24"
		u.Phone = 58412000000
		return &stubCore{users: map[int64]*entity.User{700: u}}
	}

	for scenario, fn := range map[string]func(t *testing.T){
		"list returns users": func(t *testing.T) {
			rec := do(t, testRouter(seeded()), http.MethodGet, "/users", nil)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode(t, rec)
			require.Equal(t, response.StatusOK, resp.Status)
			require.Len(t, resp.Data, 1)
		},
		"get by id": func(t *testing.T) {
			rec := do(t, testRouter(seeded()), http.MethodGet, "/users/1", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), `"name":"Ana"`)
		},
		"get miss is 404": func(t *testing.T) {
			rec := do(t, testRouter(seeded()), http.MethodGet, "/users/99", nil)
			require.Equal(t, http.StatusNotFound, rec.Code)
			require.Equal(t, "User not found", decode(t, rec).Error)
		},
		"get bad id is 400": func(t *testing.T) {
			rec := do(t, testRouter(seeded()), http.MethodGet, "/users/abc", nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		},
		"get by telegram id": func(t *testing.T) {
			rec := do(t, testRouter(seeded()), http.MethodGet, "/users/telegram/700", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Body.String(), `"telegram_id":700`)
		},
		"create defaults type and status": func(t *testing.T) {
			core := seeded()
			rec := do(t, testRouter(core), http.MethodPost, "/users", validPayload())
			require.Equal(t, http.StatusCreated, rec.Code)
			require.NotNil(t, core.created)
			require.Equal(t, entity.UserTypeCliente, core.created.Type)
			require.Equal(t, entity.UserStatusActivo, core.created.Status)
		},
		"create rejects invalid payload": func(t *testing.T) {
			core := seeded()
			payload := validPayload()
			payload["email"] = "not-an-email"
			rec := do(t, testRouter(core), http.MethodPost, "/users", payload)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Nil(t, core.created)
		},
		"update by telegram id": func(t *testing.T) {
			core := seeded()
			payload := validPayload()
			payload["name"] = "Ana Maria"
			rec := do(t, testRouter(core), http.MethodPut, "/users/telegram/700", payload)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "Ana Maria", core.users[700].Name)
		},
		"update miss is 404": func(t *testing.T) {
			rec := do(t, testRouter(seeded()), http.MethodPut, "/users/telegram/999", validPayload())
			require.Equal(t, http.StatusNotFound, rec.Code)
		},
		"delete returns no content": func(t *testing.T) {
			core := seeded()
			rec := do(t, testRouter(core), http.MethodDelete, "/users/1", nil)
			require.Equal(t, http.StatusNoContent, rec.Code)
			require.Empty(t, rec.Body.String())
			require.Equal(t, int64(1), core.deleted)
		},
		"delete miss is 404": func(t *testing.T) {
			rec := do(t, testRouter(seeded()), http.MethodDelete, "/users/99", nil)
			require.Equal(t, http.StatusNotFound, rec.Code)
		},
		"core failure is 500": func(t *testing.T) {
			core := seeded()
			core.err = errors.New("store down")
			rec := do(t, testRouter(core), http.MethodGet, "/users", nil)
			require.Equal(t, http.StatusInternalServerError, rec.Code)
		},
	} {
		t.Run(scenario, fn)
	}
}
