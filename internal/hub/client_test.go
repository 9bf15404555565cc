package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_RepoInfo_PreservesSiblingOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/models/acme/widgets" {
			t.Errorf("request path = %q, want %q", r.URL.Path, "/api/models/acme/widgets")
		}
		if got := r.URL.Query().Get("blobs"); got != "true" {
			t.Errorf("blobs query = %q, want %q", got, "true")
		}
		w.Header().Set("Content-Type", "application/json")
		// Deliberately non-sorted; the client must not reorder.
		_, _ = w.Write([]byte(`{
			"id": "acme/widgets",
			"sha": "0123abcd",
			"siblings": [
				{"rfilename": "model.bin", "size": 12, "lfs": {"oid": "deadbeef", "size": 4096, "pointerSize": 134}},
				{"rfilename": ".gitattributes", "size": 1716},
				{"rfilename": "README.md", "size": 42}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	info, err := c.RepoInfo(context.Background(), RepoRef{ID: "acme/widgets"})
	if err != nil {
		t.Fatalf("RepoInfo() error = %v", err)
	}

	if info.ID != "acme/widgets" {
		t.Errorf("ID = %q, want %q", info.ID, "acme/widgets")
	}
	if info.SHA != "0123abcd" {
		t.Errorf("SHA = %q, want %q", info.SHA, "0123abcd")
	}

	wantOrder := []string{"model.bin", ".gitattributes", "README.md"}
	if len(info.Siblings) != len(wantOrder) {
		t.Fatalf("len(Siblings) = %d, want %d", len(info.Siblings), len(wantOrder))
	}
	for i, want := range wantOrder {
		if info.Siblings[i].Rfilename != want {
			t.Errorf("Siblings[%d].Rfilename = %q, want %q", i, info.Siblings[i].Rfilename, want)
		}
	}

	// LFS size wins over pointer size for the tracked file.
	if got := info.Siblings[0].FileSize(); got != 4096 {
		t.Errorf("Siblings[0].FileSize() = %d, want 4096", got)
	}
	if got := info.TotalSize(); got != 4096+1716+42 {
		t.Errorf("TotalSize() = %d, want %d", got, 4096+1716+42)
	}
}

func TestClient_RepoInfo_RevisionPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": "acme/widgets", "siblings": []}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.RepoInfo(context.Background(), RepoRef{ID: "acme/widgets", Revision: "v1.0"})
	if err != nil {
		t.Fatalf("RepoInfo() error = %v", err)
	}
	if gotPath != "/api/models/acme/widgets/revision/v1.0" {
		t.Errorf("request path = %q, want %q", gotPath, "/api/models/acme/widgets/revision/v1.0")
	}
}

func TestClient_RepoInfo_SendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id": "acme/widgets", "siblings": []}`))
	}))
	defer srv.Close()

	c := NewClientWithToken("hf_secret")
	c.BaseURL = srv.URL

	if _, err := c.RepoInfo(context.Background(), RepoRef{ID: "acme/widgets"}); err != nil {
		t.Fatalf("RepoInfo() error = %v", err)
	}
	if gotAuth != "Bearer hf_secret" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer hf_secret")
	}
}

func TestClient_RepoInfo_AnonymousSendsNoToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id": "acme/widgets", "siblings": []}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	if _, err := c.RepoInfo(context.Background(), RepoRef{ID: "acme/widgets"}); err != nil {
		t.Fatalf("RepoInfo() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization header = %q, want empty", gotAuth)
	}
}

func TestClient_RepoInfo_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		wantType HubErrorType
	}{
		{"not found", http.StatusNotFound, HubNotFound},
		{"unauthorized", http.StatusUnauthorized, HubAuthFailed},
		{"forbidden", http.StatusForbidden, HubAuthFailed},
		{"server error", http.StatusInternalServerError, HubFetchFailed},
		{"rate limited", http.StatusTooManyRequests, HubFetchFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient()
			c.BaseURL = srv.URL

			_, err := c.RepoInfo(context.Background(), RepoRef{ID: "acme/widgets"})
			if err == nil {
				t.Fatal("RepoInfo() error = nil, want error")
			}
			hubErr, ok := err.(*HubError)
			if !ok {
				t.Fatalf("error type = %T, want *HubError", err)
			}
			if hubErr.Type != tt.wantType {
				t.Errorf("error Type = %s, want %s", hubErr.Type, tt.wantType)
			}
			if hubErr.Repo != "acme/widgets" {
				t.Errorf("error Repo = %q, want %q", hubErr.Repo, "acme/widgets")
			}
		})
	}
}

func TestClient_RepoInfo_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.RepoInfo(context.Background(), RepoRef{ID: "acme/widgets"})
	if err == nil {
		t.Fatal("RepoInfo() error = nil, want decode error")
	}
	hubErr, ok := err.(*HubError)
	if !ok {
		t.Fatalf("error type = %T, want *HubError", err)
	}
	if hubErr.Type != HubFetchFailed {
		t.Errorf("error Type = %s, want FetchFailed", hubErr.Type)
	}
}

func TestClient_RepoInfo_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"id": "acme/widgets", "siblings": []}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL
	c.HTTPClient = &http.Client{Timeout: 20 * time.Millisecond}

	_, err := c.RepoInfo(context.Background(), RepoRef{ID: "acme/widgets"})
	if err == nil {
		t.Fatal("RepoInfo() error = nil, want timeout error")
	}
	hubErr, ok := err.(*HubError)
	if !ok {
		t.Fatalf("error type = %T, want *HubError", err)
	}
	if hubErr.Type != HubTimeout {
		t.Errorf("error Type = %s, want Timeout", hubErr.Type)
	}
}
