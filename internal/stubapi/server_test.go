package stubapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/studytech/studytech-client/internal/core/domain"
)

func newStubServer(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	store := NewStore()
	srv := httptest.NewServer(NewRouter(store, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, store
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	payload, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, payload
}

func TestCreateUser_HashesPasswordAndAssignsID(t *testing.T) {
	srv, store := newStubServer(t)

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]string{
		"name": "Ana", "email": "a@x.com", "password": "p1", "role": "teacher",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, payload)
	}

	var created domain.User
	if err := json.Unmarshal(payload, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if !strings.HasPrefix(created.Password, "$2") {
		t.Fatalf("expected bcrypt digest in response, got %q", created.Password)
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("p1")) != nil {
		t.Fatalf("digest does not match the password")
	}
	if got, _ := store.GetUser(created.ID); got.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned createdAt")
	}
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	srv, _ := newStubServer(t)

	body := map[string]string{"name": "Ana", "email": "a@x.com", "password": "p1", "role": "student"}
	if resp, _ := doJSON(t, http.MethodPost, srv.URL+"/users", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create failed: %d", resp.StatusCode)
	}

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/users", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.StatusCode, payload)
	}
	var envelope errorResponse
	if err := json.Unmarshal(payload, &envelope); err != nil || envelope.Error == "" {
		t.Fatalf("expected error envelope, got %s", payload)
	}
}

func TestCreateUser_ValidationRejections(t *testing.T) {
	srv, _ := newStubServer(t)

	cases := []map[string]string{
		{"email": "a@x.com", "password": "p", "role": "student"},            // missing name
		{"name": "A", "email": "not-an-email", "password": "p", "role": "student"}, // bad email
		{"name": "A", "email": "a@x.com", "password": "p", "role": "admin"},        // role outside enum
	}
	for i, body := range cases {
		resp, payload := doJSON(t, http.MethodPost, srv.URL+"/users", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d: %s", i, resp.StatusCode, payload)
		}
	}
}

func TestUpdateUser_KeepsDigestWhenPasswordEmpty(t *testing.T) {
	srv, store := newStubServer(t)

	_, payload := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]string{
		"name": "Ana", "email": "a@x.com", "password": "p1", "role": "student",
	})
	var created domain.User
	_ = json.Unmarshal(payload, &created)

	resp, _ := doJSON(t, http.MethodPut, srv.URL+"/users/"+created.ID, map[string]string{
		"name": "Ana Clara", "user_id": created.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	stored, _ := store.GetUser(created.ID)
	if stored.Name != "Ana Clara" {
		t.Fatalf("expected updated name, got %q", stored.Name)
	}
	if stored.Password != created.Password {
		t.Fatalf("empty password must keep the stored digest")
	}
}

func TestUpdateUser_RehashesNewPassword(t *testing.T) {
	srv, store := newStubServer(t)

	_, payload := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]string{
		"name": "Ana", "email": "a@x.com", "password": "p1", "role": "student",
	})
	var created domain.User
	_ = json.Unmarshal(payload, &created)

	doJSON(t, http.MethodPut, srv.URL+"/users/"+created.ID, map[string]string{
		"password": "p2", "user_id": created.ID,
	})

	stored, _ := store.GetUser(created.ID)
	if bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("p2")) != nil {
		t.Fatalf("expected digest of the new password")
	}
}

func TestDeleteUser_SecondDeleteIsNotFound(t *testing.T) {
	srv, _ := newStubServer(t)

	_, payload := doJSON(t, http.MethodPost, srv.URL+"/users", map[string]string{
		"name": "Ana", "email": "a@x.com", "password": "p1", "role": "student",
	})
	var created domain.User
	_ = json.Unmarshal(payload, &created)

	body := map[string]string{"user_id": "actor"}
	if resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/users/"+created.ID, body); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/users/"+created.ID, body); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on double delete, got %d", resp.StatusCode)
	}
}

func TestPosts_CRUD(t *testing.T) {
	srv, _ := newStubServer(t)

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/posts", map[string]string{
		"title": "Algebra", "description": "Linear maps", "author": "Ana",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, payload)
	}
	var created domain.Post
	_ = json.Unmarshal(payload, &created)
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and created_at, got %+v", created)
	}

	resp, payload = doJSON(t, http.MethodPut, srv.URL+"/posts/"+created.ID, map[string]string{
		"title": "Algebra II", "description": "Eigenvalues",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	var updated domain.Post
	_ = json.Unmarshal(payload, &updated)
	if updated.Author != "Ana" || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("author/created_at must be immutable, got %+v", updated)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/posts", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}

	if resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/posts/"+created.ID, nil); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.StatusCode)
	}
	if resp, _ = doJSON(t, http.MethodGet, srv.URL+"/posts/"+created.ID, nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", resp.StatusCode)
	}
}

func TestPosts_CreateValidation(t *testing.T) {
	srv, _ := newStubServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/posts", map[string]string{"title": "only title"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	srv, _ := newStubServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.StatusCode)
	}

	resp, payload := doJSON(t, http.MethodGet, srv.URL+"/metrics", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", resp.StatusCode)
	}
	if !bytes.Contains(payload, []byte("studytech_stub")) {
		t.Fatalf("expected stub metrics in exposition, got %.200s", payload)
	}
}
