package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestLoginStoresToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			if h := r.Header.Get("Authorization"); h != "" {
				t.Errorf("login must not carry a bearer header, got %q", h)
			}
			var creds map[string]string
			_ = json.NewDecoder(r.Body).Decode(&creds)
			if creds["email"] != "a@b.com" || creds["password"] != "x" {
				t.Errorf("unexpected credentials: %v", creds)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "t1"})
		case "/students":
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte("[]"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "", zap.NewNop())
	resp, err := c.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token != "t1" {
		t.Fatalf("token = %q, want t1", resp.Token)
	}

	if _, err := c.ListStudents(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("authorization header = %q, want Bearer t1", gotAuth)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "", zap.NewNop())
	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("want AuthError, got %v", err)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", authErr.Status)
	}
	if tok := c.currentToken(); tok != "" {
		t.Fatalf("failed login must not set a token, got %q", tok)
	}
}

func TestRegisterReturnsBodyOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"email taken"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", zap.NewNop())
	body, err := c.Register(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("register must not fail on non-2xx, got %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatal(err)
	}
	if out["error"] != "email taken" {
		t.Fatalf("body = %v", out)
	}
}

func TestBearerOmittedWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("authorization header must be omitted without a token")
		}
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	c := New(srv.URL, "", zap.NewNop())
	if _, err := c.Get(context.Background(), "/faculties"); err != nil {
		t.Fatal(err)
	}
}

func TestRequestErrorFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "t", zap.NewNop())
	_, err := c.Delete(context.Background(), "/student/5")
	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("want RequestError, got %v", err)
	}
	if rerr.Method != http.MethodDelete || rerr.Path != "/student/5" || rerr.Status != 500 {
		t.Fatalf("unexpected fields: %+v", rerr)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := New(srv.URL, "t", zap.NewNop())
	_, err := c.Get(context.Background(), "/students")
	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("want RequestError, got %v", err)
	}
	if rerr.Status != 0 {
		t.Fatalf("transport failure must carry status 0, got %d", rerr.Status)
	}
	if rerr.Err == nil {
		t.Fatal("transport failure must wrap the cause")
	}
}

func TestNullListDecodesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	c := New(srv.URL, "t", zap.NewNop())
	students, err := c.ListStudents(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if students == nil || len(students) != 0 {
		t.Fatalf("null body must decode to an empty slice, got %#v", students)
	}
}

func TestDecodeList(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  string
		want int
	}{
		{"null", "null", 0},
		{"empty body", "", 0},
		{"empty array", "[]", 0},
		{"two items", `[{"faculty_id":1},{"faculty_id":2}]`, 2},
	} {
		got, err := DecodeList[struct {
			ID int64 `json:"faculty_id"`
		}](json.RawMessage(tc.raw))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(got) != tc.want {
			t.Fatalf("%s: len = %d, want %d", tc.name, len(got), tc.want)
		}
	}
}
