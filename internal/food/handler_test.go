package food

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

type envelope struct {
	Result   string           `json:"result"`
	Response string           `json:"response"`
	Data     json.RawMessage  `json:"data"`
	Errors   []httputil.Error `json:"errors"`
}

func newTestRouter(store Store, caller *user.User) http.Handler {
	h := NewHandler(newTestService(store))

	r := chi.NewRouter()
	if caller != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(user.NewContext(req.Context(), caller)))
			})
		})
	}
	r.Get("/get", h.List)
	r.Get("/get/{id}", h.Get)
	r.Post("/add", h.Create)
	r.Put("/update/{id}", h.Update)
	r.Delete("/delete/{id}", h.Delete)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestHandler_CreateThenGet(t *testing.T) {
	router := newTestRouter(newMemStore(), nil)
	id := uuid.NewString()

	rec, env := do(t, router, http.MethodPost, "/add",
		`{"uuid":"`+id+`","name":"Oats","brand":"Acme","weight":100,"calories":389,"protein":16.9}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "entity", env.Response)

	rec, env = do(t, router, http.MethodGet, "/get/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, id, data["uuid"])
	assert.Equal(t, "Acme", data["brand"])
	assert.Equal(t, 389.0, data["calories"])
	assert.Equal(t, 16.9, data["protein"])
	assert.Contains(t, data, "vitamin_c")
	assert.Nil(t, data["vitamin_c"])
}

func TestHandler_Create_Errors(t *testing.T) {
	existing := newFood("Rice", 130, 2.7, 28)
	router := newTestRouter(newMemStore(existing), nil)

	rec, env := do(t, router, http.MethodPost, "/add", `{"brand":"Acme"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, map[string]any{"name": nil}, env.Errors[0].Context)

	rec, env = do(t, router, http.MethodPost, "/add", `{"uuid":"`+existing.ID.String()+`","name":"Rice"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Food with id "+existing.ID.String()+" already exists", env.Errors[0].Detail)

	rec, _ = do(t, router, http.MethodPost, "/add", `{"name":"Rice","calories":"many"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = do(t, router, http.MethodPost, "/add", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_List(t *testing.T) {
	router := newTestRouter(newMemStore(
		newFood("Apple", 52, 0.3, 14),
		newFood("Chicken breast", 165, 31, 0),
		newFood("Salmon", 208, 20, 0),
	), nil)

	rec, env := do(t, router, http.MethodGet, "/get?min_calories=100&max_calories=200", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list", env.Response)

	var data []Food
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Chicken breast", data[0].Name)

	rec, env = do(t, router, http.MethodGet, "/get?name=pizza", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No food items match the criteria", env.Errors[0].Detail)

	rec, env = do(t, router, http.MethodGet, "/get?limit=0", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No food items match the criteria", env.Errors[0].Detail)

	rec, _ = do(t, router, http.MethodGet, "/get?min_protein=lots", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Update(t *testing.T) {
	f := newFood("Oats", 389, 17, 66)
	router := newTestRouter(newMemStore(f), nil)

	rec, env := do(t, router, http.MethodPut, "/update/"+f.ID.String(), `{"calories":380,"uuid":"ignored"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data Food
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 380.0, *data.Calories)
	assert.Equal(t, f.ID, data.ID)

	rec, _ = do(t, router, http.MethodPut, "/update/"+f.ID.String(), `{"name":null}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	missing := uuid.NewString()
	rec, env = do(t, router, http.MethodPut, "/update/"+missing, `{"calories":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Food with id "+missing+" not found", env.Errors[0].Detail)
}

func TestHandler_Delete(t *testing.T) {
	f := newFood("Oats", 389, 17, 66)

	rec, env := do(t, newTestRouter(newMemStore(f), &user.User{ID: uuid.New()}), http.MethodDelete, "/delete/"+f.ID.String(), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin privileges needed to delete food.", env.Errors[0].Detail)

	admin := &user.User{ID: uuid.New(), IsAdmin: true}
	router := newTestRouter(newMemStore(f), admin)

	rec, env = do(t, router, http.MethodDelete, "/delete/"+f.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Result)
	assert.JSONEq(t, `{"food_id":"`+f.ID.String()+`"}`, string(env.Data))

	rec, _ = do(t, router, http.MethodDelete, "/delete/"+f.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
