package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriberCount(h *Hub, adminEmail string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients[adminEmail])
}

func dialHub(t *testing.T, srv *httptest.Server, adminEmail string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?adminEmail=" + adminEmail
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	return conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) RequestUpdate {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var update RequestUpdate
	require.NoError(t, json.Unmarshal(data, &update))
	return update
}

func TestHubDeliversStatusChange(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dialHub(t, srv, "boss@corp.example")
	defer conn.Close()

	// registration happens after the handshake; wait for it
	require.Eventually(t, func() bool {
		return subscriberCount(hub, "boss@corp.example") == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.SendRequestStatusChange("boss@corp.example", "abc123", "pending", "approved")

	update := readUpdate(t, conn)
	assert.Equal(t, "REQUEST_STATUS_CHANGE", update.Type)
	assert.Equal(t, "abc123", update.RequestID)

	data, ok := update.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pending", data["oldStatus"])
	assert.Equal(t, "approved", data["newStatus"])
}

func TestHubScopesBroadcastsToAdmin(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	bossConn := dialHub(t, srv, "boss@corp.example")
	defer bossConn.Close()
	otherConn := dialHub(t, srv, "other@corp.example")
	defer otherConn.Close()

	require.Eventually(t, func() bool {
		return subscriberCount(hub, "boss@corp.example") == 1 &&
			subscriberCount(hub, "other@corp.example") == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.SendRequestCreated("boss@corp.example", map[string]string{"name": "Laptop Stand"}, "emp@corp.example")

	update := readUpdate(t, bossConn)
	assert.Equal(t, "REQUEST_CREATED", update.Type)
	assert.Equal(t, "emp@corp.example", update.Email)

	// the other admin's client must see nothing
	require.NoError(t, otherConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := otherConn.ReadMessage()
	assert.Error(t, err)
}

func TestHubCleansUpOnDisconnect(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dialHub(t, srv, "boss@corp.example")

	require.Eventually(t, func() bool {
		return subscriberCount(hub, "boss@corp.example") == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return subscriberCount(hub, "boss@corp.example") == 0
	}, 2*time.Second, 10*time.Millisecond)

	// broadcasting to a drained group is a no-op, not a panic
	hub.SendRequestStatusChange("boss@corp.example", "abc123", "pending", "rejected")
}

func TestServeWSRequiresAdminEmail(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
