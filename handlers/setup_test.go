package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/programarreza/TaskNestle-Server/config"
	"github.com/programarreza/TaskNestle-Server/handlers"
	"github.com/programarreza/TaskNestle-Server/routes"
	"github.com/programarreza/TaskNestle-Server/utils"
	"github.com/programarreza/TaskNestle-Server/websocket"
)

func setupRouter(t *testing.T, f *fakeStore) *mux.Router {
	t.Helper()

	config.JWTKey = []byte("test-secret")
	config.JWTExpiration = time.Hour

	hub := websocket.NewHub()
	h := handlers.New(f, hub)

	r := mux.NewRouter()
	routes.RegisterRoutes(r, h, f, nil, hub)
	return r
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()

	token, err := utils.GenerateJWT(email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
