package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateUser_Returns201WithTimestamps(t *testing.T) {
	r := newTestRouter(t)

	u := createUser(t, r, "a@b.com", "A")
	if u.ID == "" {
		t.Error("missing id")
	}
	if u.Email != "a@b.com" || u.Name != "A" {
		t.Errorf("body = %+v", u)
	}
	if u.CreatedAt == "" || u.CreatedAt != u.UpdatedAt {
		t.Errorf("createdAt %q, updatedAt %q", u.CreatedAt, u.UpdatedAt)
	}
}

func TestCreateUser_DuplicateEmail_Returns409(t *testing.T) {
	r := newTestRouter(t)
	createUser(t, r, "a@b.com", "A")

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"email": "a@b.com", "name": "B"})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var e errorBody
	decodeBody(t, w, &e)
	if e.Message == "" || e.Timestamp == "" {
		t.Errorf("error body = %+v", e)
	}
}

func TestCreateUser_InvalidEmail_Returns400(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"email": "not-an-email", "name": "A"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestCreateUser_MissingFields_Returns400WithDetails(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var e errorBody
	decodeBody(t, w, &e)
	if len(e.Details) == 0 {
		t.Errorf("expected per-field details, got %+v", e)
	}
}

func TestListUsers_ReturnsCreatedUsers(t *testing.T) {
	r := newTestRouter(t)
	createUser(t, r, "a@b.com", "A")
	createUser(t, r, "c@d.com", "C")

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var users []userBody
	decodeBody(t, w, &users)
	if len(users) != 2 {
		t.Errorf("got %d users", len(users))
	}
}

func TestGetUser_Missing_Returns404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/11111111-1111-1111-1111-111111111111", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestUpdateUser_PartialNameChange(t *testing.T) {
	r := newTestRouter(t)
	u := createUser(t, r, "a@b.com", "A")

	w := doJSON(t, r, http.MethodPut, "/api/users/"+u.ID, gin.H{"name": "X"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got userBody
	decodeBody(t, w, &got)
	if got.Name != "X" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Email != "a@b.com" {
		t.Errorf("email changed to %q", got.Email)
	}
	if got.ID != u.ID || got.CreatedAt != u.CreatedAt {
		t.Errorf("identity fields changed: %+v", got)
	}
	if got.UpdatedAt == u.UpdatedAt {
		t.Error("updatedAt did not advance")
	}
}

func TestUpdateUser_EmailTakenByOther_Returns409(t *testing.T) {
	r := newTestRouter(t)
	createUser(t, r, "a@b.com", "A")
	other := createUser(t, r, "c@d.com", "C")

	w := doJSON(t, r, http.MethodPut, "/api/users/"+other.ID, gin.H{"email": "a@b.com"})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestDeleteUser_Returns204AndCascades(t *testing.T) {
	r := newTestRouter(t)
	u := createUser(t, r, "a@b.com", "A")
	createTask(t, r, gin.H{"title": "T1", "userId": u.ID})
	createTask(t, r, gin.H{"title": "T2", "userId": u.ID})

	w := doJSON(t, r, http.MethodDelete, "/api/users/"+u.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/tasks?userId="+u.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var tasks []taskBody
	decodeBody(t, w, &tasks)
	if len(tasks) != 0 {
		t.Errorf("tasks survived the cascade: %+v", tasks)
	}
}

func TestDeleteUser_Missing_Returns404(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/users/11111111-1111-1111-1111-111111111111", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestHealth_ReturnsUp(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestCORS_PreflightFromAllowedOrigin(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodOptions, "/api/users", nil)
	// no Origin header: still short-circuits, no CORS headers
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow-origin %q without Origin header", got)
	}
}
