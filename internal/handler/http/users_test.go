package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/service"
	"github.com/MKhiriev/go-shortener-users/internal/store"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	listFn   func(ctx context.Context) ([]models.User, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	updateFn func(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error)
	deleteFn func(ctx context.Context, id string) (models.DeleteResult, error)
	statsFn  func(ctx context.Context, userID string) (models.UserStats, error)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserService) Get(ctx context.Context, id string) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) Update(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockUserService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return m.deleteFn(ctx, id)
}

func (m *mockUserService) Stats(ctx context.Context, userID string) (models.UserStats, error) {
	return m.statsFn(ctx, userID)
}

func newHandlerWithUsers(t *testing.T, users service.UserService) *Handler {
	t.Helper()
	return newTestHandlerWith(t, &service.Services{UserService: users})
}

// withURLParam attaches a chi route context so handlers can read {key}
// without going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListUsers(t *testing.T) {
	t.Run("returns users", func(t *testing.T) {
		h := newHandlerWithUsers(t, &mockUserService{
			listFn: func(context.Context) ([]models.User, error) {
				return []models.User{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}, nil
			},
		})

		rec := httptest.NewRecorder()
		h.listUsers(rec, httptest.NewRequest(http.MethodGet, "/users/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []models.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("store failure", func(t *testing.T) {
		h := newHandlerWithUsers(t, &mockUserService{
			listFn: func(context.Context) ([]models.User, error) {
				return nil, store.ErrExecutingQuery
			},
		})

		rec := httptest.NewRecorder()
		h.listUsers(rec, httptest.NewRequest(http.MethodGet, "/users/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, app.MsgServerError, decodeMessage(t, rec))
	})
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "not found", svcErr: store.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "unexpected", svcErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithUsers(t, &mockUserService{
				getFn: func(_ context.Context, id string) (models.User, error) {
					assert.Equal(t, "abc", id)
					return models.User{ID: id}, tt.svcErr
				},
			})

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/abc", nil), "id", "abc")
			rec := httptest.NewRecorder()
			h.getUser(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.svcErr != nil && errors.Is(tt.svcErr, store.ErrUserNotFound) {
				assert.Equal(t, app.MsgUserNotFound, decodeMessage(t, rec))
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		h := newHandlerWithUsers(t, &mockUserService{
			updateFn: func(_ context.Context, id string, u models.UserUpdate) (models.UpdateResult, error) {
				assert.Equal(t, "abc", id)
				require.NotNil(t, u.Phone)
				assert.Equal(t, "777", *u.Phone)
				assert.Nil(t, u.Name)
				return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
			},
		})

		req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/abc", strings.NewReader(`{"phone":"777"}`)), "id", "abc")
		rec := httptest.NewRecorder()
		h.updateUser(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.UpdateResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, got)
	})

	t.Run("duplicate name", func(t *testing.T) {
		h := newHandlerWithUsers(t, &mockUserService{
			updateFn: func(context.Context, string, models.UserUpdate) (models.UpdateResult, error) {
				return models.UpdateResult{}, store.ErrNameAlreadyExists
			},
		})

		req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/abc", strings.NewReader(`{"name":"bob"}`)), "id", "abc")
		rec := httptest.NewRecorder()
		h.updateUser(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgUserNameAlreadyExists, decodeMessage(t, rec))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		h := newHandlerWithUsers(t, &mockUserService{})

		req := withURLParam(httptest.NewRequest(http.MethodPut, "/users/abc", strings.NewReader(`{`)), "id", "abc")
		rec := httptest.NewRecorder()
		h.updateUser(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{
		deleteFn: func(_ context.Context, id string) (models.DeleteResult, error) {
			return models.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/users/ghost", nil), "id", "ghost")
	rec := httptest.NewRecorder()
	h.deleteUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, rec.Body.String())
}

func TestUserStats(t *testing.T) {
	t.Run("uses caller id from context", func(t *testing.T) {
		h := newHandlerWithUsers(t, &mockUserService{
			statsFn: func(_ context.Context, userID string) (models.UserStats, error) {
				assert.Equal(t, "u1", userID)
				return models.UserStats{TotalURLs: 2, Recent: []models.ShortURL{{ID: "a"}, {ID: "b"}}}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/users/stats", nil)
		req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, "u1"))
		rec := httptest.NewRecorder()
		h.userStats(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.UserStats
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.EqualValues(t, 2, got.TotalURLs)
		assert.Len(t, got.Recent, 2)
	})

	t.Run("no user in context", func(t *testing.T) {
		h := newHandlerWithUsers(t, &mockUserService{})

		rec := httptest.NewRecorder()
		h.userStats(rec, httptest.NewRequest(http.MethodGet, "/users/stats", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
