package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGitHubProviderCanHandle(t *testing.T) {
	p := &GitHubProvider{}

	tests := []struct {
		src  string
		want bool
	}{
		{"https://github.com/user/repo/blob/main/settings.json", true},
		{"https://github.com/user/repo", true},
		{"https://raw.githubusercontent.com/user/repo/main/settings.json", false},
		{"https://example.com/settings.json", false},
		{"./settings.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := p.CanHandle(tt.src); got != tt.want {
				t.Errorf("CanHandle(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestHTTPProviderCanHandle(t *testing.T) {
	p := &HTTPProvider{}

	tests := []struct {
		src  string
		want bool
	}{
		{"https://example.com/settings.json", true},
		{"http://localhost:8080/settings.json", true},
		{"ftp://example.com/settings.json", false},
		{"settings.json", false},
		{"/abs/settings.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := p.CanHandle(tt.src); got != tt.want {
				t.Errorf("CanHandle(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		src      string
		wantType string
	}{
		{"https://github.com/user/repo/blob/main/settings.json", "github"},
		{"https://raw.githubusercontent.com/user/repo/main/settings.json", "http"},
		{"https://example.com/settings.json", "http"},
		{"./settings.json", "file"},
		{"/etc/claude/settings.yaml", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := DetectProvider(tt.src)
			if p == nil {
				t.Errorf("DetectProvider(%q) returned nil", tt.src)
				return
			}
			if p.Type() != tt.wantType {
				t.Errorf("DetectProvider(%q).Type() = %q, want %q", tt.src, p.Type(), tt.wantType)
			}
		})
	}

	if p := DetectProvider(""); p != nil {
		t.Errorf("DetectProvider(\"\") = %q, want nil", p.Type())
	}
}

func TestRawGitHubURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{
			input: "https://github.com/user/repo/blob/main/settings.json",
			want:  "https://raw.githubusercontent.com/user/repo/main/settings.json",
		},
		{
			input: "https://github.com/user/repo/blob/v1.2.0/config/claude/settings.json",
			want:  "https://raw.githubusercontent.com/user/repo/v1.2.0/config/claude/settings.json",
		},
		{
			input: "https://github.com/user/repo/blob/main/settings.json?plain=1",
			want:  "https://raw.githubusercontent.com/user/repo/main/settings.json?plain=1",
		},
		{input: "https://github.com/user/repo", wantErr: true},
		{input: "https://github.com/user/repo/tree/main/settings.json", wantErr: true},
		{input: "https://github.com/user/repo/blob/main/", wantErr: true},
		{input: "https://gitlab.com/user/repo/blob/main/settings.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := RawGitHubURL(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGitHubURL) {
					t.Errorf("RawGitHubURL(%q) error = %v, want ErrInvalidGitHubURL", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RawGitHubURL(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("RawGitHubURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTTPProviderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/settings.json":
			if r.Header.Get("Authorization") != "token abc" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"model":"opus"}`))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := &HTTPProvider{}
	opts := FetchOptions{Headers: map[string]string{"Authorization": "token abc"}}

	data, err := p.Fetch(context.Background(), srv.URL+"/settings.json", opts)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != `{"model":"opus"}` {
		t.Errorf("Fetch() = %q", data)
	}

	_, err = p.Fetch(context.Background(), srv.URL+"/missing.json", opts)
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("Fetch(missing) error = %v, want ErrFetchFailed", err)
	}
	var srcErr *SourceError
	if !errors.As(err, &srcErr) || srcErr.Source != srv.URL+"/missing.json" {
		t.Errorf("Fetch(missing) error = %#v, want SourceError naming the URL", err)
	}

	_, err = p.Fetch(context.Background(), srv.URL+"/slow", FetchOptions{Timeout: 20 * time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Fetch(slow) error = %v, want deadline exceeded", err)
	}
}

func TestHTTPProviderFetchSizeLimit(t *testing.T) {
	old := maxFetchSize
	maxFetchSize = 16
	t.Cleanup(func() { maxFetchSize = old })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exact":
			w.Write([]byte(`{"model":"opus"}`))
		default:
			w.Write([]byte(`{"model":"sonnet"}`))
		}
	}))
	defer srv.Close()

	p := &HTTPProvider{}

	data, err := p.Fetch(context.Background(), srv.URL+"/exact", FetchOptions{})
	if err != nil {
		t.Fatalf("Fetch(exact) error = %v", err)
	}
	if len(data) != 16 {
		t.Errorf("Fetch(exact) = %q, want all 16 bytes", data)
	}

	data, err = p.Fetch(context.Background(), srv.URL+"/large", FetchOptions{})
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("Fetch(large) = %q, %v, want ErrResponseTooLarge", data, err)
	}
	var srcErr *SourceError
	if !errors.As(err, &srcErr) || srcErr.Op != "http read" {
		t.Errorf("Fetch(large) error = %#v, want http read SourceError", err)
	}
}

func TestFileProviderFetch(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.json")
	if err := os.WriteFile(target, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.json")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	p := &FileProvider{}
	data, err := p.Fetch(context.Background(), link, FetchOptions{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("Fetch() = %q", data)
	}

	_, err = p.Fetch(context.Background(), filepath.Join(dir, "none.json"), FetchOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Fetch(missing) error = %v, want not exist", err)
	}
}
