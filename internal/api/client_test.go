package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// memTokens is an in-memory token source for tests.
type memTokens struct {
	token string
}

func (m *memTokens) Token() (string, error) {
	if m.token == "" {
		return "", errors.New("no token stored")
	}
	return m.token, nil
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(User{Name: "A"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokens{token: "tok-1"}, zerolog.Nop())
	if _, err := c.Auth.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser() error: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-1")
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(Package{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokens{}, zerolog.Nop())
	if _, err := c.Packages.Track(context.Background(), "CR123"); err != nil {
		t.Fatalf("Track() error: %v", err)
	}
	if hadAuth {
		t.Error("expected no Authorization header without a stored credential")
	}
}

func TestClient_PicksUpTokenChange(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(User{}) //nolint:errcheck
	}))
	defer srv.Close()

	tokens := &memTokens{token: "first"}
	c := New(srv.URL, tokens, zerolog.Nop())

	if _, err := c.Auth.CurrentUser(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer first" {
		t.Fatalf("Authorization = %q, want Bearer first", gotAuth)
	}

	// Credential changes between calls with no client reconfiguration.
	tokens.token = "second"
	if _, err := c.Auth.CurrentUser(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer second" {
		t.Errorf("Authorization = %q, want Bearer second", gotAuth)
	}
}

func TestClient_SetsRequestID(t *testing.T) {
	ids := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-Request-ID")] = true
		json.NewEncoder(w).Encode(User{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokens{}, zerolog.Nop())
	for range 3 {
		if _, err := c.Auth.CurrentUser(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if len(ids) != 3 {
		t.Errorf("expected 3 distinct request IDs, got %d", len(ids))
	}
	for id := range ids {
		if id == "" {
			t.Error("expected non-empty X-Request-ID")
		}
	}
}

func TestClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokens{token: "expired"}, zerolog.Nop())
	_, err := c.Auth.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Errorf("IsStatus(err, 401) = false, err = %v", err)
	}
	if !strings.Contains(err.Error(), "bad credentials") {
		t.Errorf("error = %q, want it to carry the server message", err)
	}
}

func TestClient_ContentTypeOnBodiedRequests(t *testing.T) {
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(PriceCalculation{TotalAmount: 130}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokens{}, zerolog.Nop())
	quote, err := c.Packages.CalculatePrice(context.Background(), PriceRequest{Weight: 2, PackageType: TypeSpeedPost})
	if err != nil {
		t.Fatalf("CalculatePrice() error: %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
	if quote.TotalAmount != 130 {
		t.Errorf("TotalAmount = %v, want 130", quote.TotalAmount)
	}
}

func TestPageQuery_Encode(t *testing.T) {
	tests := []struct {
		name  string
		query PageQuery
		want  string
	}{
		{
			name:  "defaults",
			query: PageQuery{},
			want:  "page=0",
		},
		{
			name:  "full",
			query: PageQuery{Page: 2, Size: 25, SortBy: "createdAt", SortDir: "desc"},
			want:  "page=2&size=25&sortBy=createdAt&sortDir=desc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.encode(); got != tt.want {
				t.Errorf("encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_PagedList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/packages" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("sortDir"); got != "desc" {
			t.Errorf("sortDir = %q, want desc", got)
		}
		json.NewEncoder(w).Encode(Page[Package]{ //nolint:errcheck
			Content:       []Package{{TrackingNumber: "CR1"}, {TrackingNumber: "CR2"}},
			TotalElements: 2,
			TotalPages:    1,
			Last:          true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokens{token: "tok"}, zerolog.Nop())
	page, err := c.Packages.List(context.Background(), PageQuery{SortBy: "createdAt", SortDir: "desc"})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(page.Content) != 2 {
		t.Fatalf("len(Content) = %d, want 2", len(page.Content))
	}
	if page.Content[0].TrackingNumber != "CR1" {
		t.Errorf("first tracking number = %q, want CR1", page.Content[0].TrackingNumber)
	}
}

func TestAuthResponse_BearerToken(t *testing.T) {
	tests := []struct {
		name string
		resp AuthResponse
		want string
	}{
		{name: "token field", resp: AuthResponse{Token: "T"}, want: "T"},
		{name: "legacy accessToken field", resp: AuthResponse{AccessToken: "A"}, want: "A"},
		{name: "token wins over accessToken", resp: AuthResponse{Token: "T", AccessToken: "A"}, want: "T"},
		{name: "neither", resp: AuthResponse{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.BearerToken(); got != tt.want {
				t.Errorf("BearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
