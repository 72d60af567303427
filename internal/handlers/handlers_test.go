package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/container"
	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/routes"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		Store:       config.StoreMemory,
		JWTSecret:   "test-secret",
		JWTTTL:      time.Hour,
		JWTIssuer:   "gatherly-test",
	}
	c := container.NewContainer(discardLogger(), cfg, models.NewMemStore())
	return routes.SetupRoutes(c), c
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": "securepassword123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", username, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "securepassword123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["access_token"].(string)
	if token == "" {
		t.Fatal("login did not return an access token")
	}
	return token
}

func eventPayload(isPublic, requiresAdmin bool) gin.H {
	return gin.H{
		"title":          "Public Test Event",
		"description":    "integration test event",
		"date":           time.Now().Add(7 * 24 * time.Hour).UTC().Format(time.RFC3339),
		"location":       "Berlin",
		"capacity":       25,
		"is_public":      isPublic,
		"requires_admin": requiresAdmin,
	}
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode(t, w)["status"]; got != "healthy" {
		t.Errorf("expected status healthy, got %v", got)
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
		"password": "securepassword123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object, got %v", body)
	}
	if user["username"] != "alice" {
		t.Errorf("expected username alice, got %v", user["username"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("registration response leaks the password hash")
	}
}

func TestRegisterDuplicateReturns400(t *testing.T) {
	r, _ := newTestRouter(t)
	payload := gin.H{"username": "alice", "password": "securepassword123"}

	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload); w.Code != http.StatusBadRequest {
		t.Fatalf("second register: expected 400, got %d body %s", w.Code, w.Body.String())
	}
}

func TestLoginFailures(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "mallory", "password": "securepassword123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: expected 401, got %d", w.Code)
	}
}

func TestCreateEventWithoutAuthReturns401(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/events", "", eventPayload(true, false))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body %s", w.Code, w.Body.String())
	}
}

func TestCreateEventWithTokenEchoesInput(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/events", token, eventPayload(true, false))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	if body["title"] != "Public Test Event" {
		t.Errorf("expected echoed title, got %v", body["title"])
	}
	if body["is_public"] != true {
		t.Errorf("expected is_public true, got %v", body["is_public"])
	}
}

func TestCreateEventWithInvalidTokenReturns401(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/events", "not.a.token", eventPayload(true, false))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", w.Code)
	}
}

func TestAdminGatedCreateForbiddenForRegularUser(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/events", token, eventPayload(false, true))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body %s", w.Code, w.Body.String())
	}
}

func createEventID(t *testing.T, r *gin.Engine, token string, isPublic, requiresAdmin bool) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/events", token, eventPayload(isPublic, requiresAdmin))
	if w.Code != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d body %s", w.Code, w.Body.String())
	}
	id, _ := decode(t, w)["id"].(string)
	if id == "" {
		t.Fatal("event response carried no id")
	}
	return id
}

func TestRSVPToPublicEventWithoutAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")
	eventID := createEventID(t, r, token, true, false)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/rsvps/event/%s", eventID), "", gin.H{"attending": true})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	if body["event_id"] != eventID {
		t.Errorf("expected event_id %s, got %v", eventID, body["event_id"])
	}
	if body["attending"] != true {
		t.Errorf("expected attending true, got %v", body["attending"])
	}
}

func TestRSVPToPrivateEventWithoutAuthReturns401(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")
	eventID := createEventID(t, r, token, false, false)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/rsvps/event/%s", eventID), "", gin.H{"attending": true})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body %s", w.Code, w.Body.String())
	}
}

func TestRSVPToMissingEventReturns404(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/rsvps/event/236a7e93-6676-4c04-bd49-e3f0a6b2e321", "", gin.H{"attending": true})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body %s", w.Code, w.Body.String())
	}
}

func TestGetEventDerivedAttendanceOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)
	creator := registerAndLogin(t, r, "alice")
	attendee := registerAndLogin(t, r, "bob")
	eventID := createEventID(t, r, creator, true, false)

	path := fmt.Sprintf("/api/rsvps/event/%s", eventID)
	if w := doJSON(t, r, http.MethodPost, path, attendee, gin.H{"attending": true}); w.Code != http.StatusCreated {
		t.Fatalf("attendee rsvp: %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, path, "", gin.H{"attending": true}); w.Code != http.StatusCreated {
		t.Fatalf("anonymous rsvp: %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, path, creator, gin.H{"attending": false}); w.Code != http.StatusCreated {
		t.Fatalf("decline rsvp: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get event: expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["rsvp_count"] != float64(3) {
		t.Errorf("expected rsvp_count 3, got %v", body["rsvp_count"])
	}
	attendees, _ := body["attendees"].([]interface{})
	if len(attendees) != 1 {
		t.Errorf("expected exactly the one identified attendee, got %v", attendees)
	}
}

func TestListEventsPaginatedEnvelope(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerAndLogin(t, r, "alice")
	createEventID(t, r, token, true, false)
	createEventID(t, r, token, false, false)

	w := doJSON(t, r, http.MethodGet, "/api/events?page=1&limit=10", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["success"] != true {
		t.Errorf("expected success envelope, got %v", body)
	}
	data, _ := body["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("anonymous listing should only contain the public event, got %v", data)
	}
}

func TestMeRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	token := registerAndLogin(t, r, "alice")
	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body %s", w.Code, w.Body.String())
	}
	user, _ := decode(t, w)["user"].(map[string]interface{})
	if user["username"] != "alice" {
		t.Errorf("expected own profile, got %v", user)
	}
}
