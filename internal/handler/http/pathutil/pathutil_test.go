package pathutil

import (
	"errors"
	"testing"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{
			name:   "simple id",
			path:   "/articles/123",
			prefix: "/articles/",
			want:   123,
		},
		{
			name:    "non-numeric",
			path:    "/articles/abc",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "zero",
			path:    "/articles/0",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "negative",
			path:    "/articles/-5",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "empty remainder",
			path:    "/articles/",
			prefix:  "/articles/",
			wantErr: true,
		},
		{
			name:    "trailing segment",
			path:    "/articles/12/comments",
			prefix:  "/articles/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.path, tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("ExtractID() error = %v, want ErrInvalidID", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ExtractID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "article id", path: "/articles/123", want: "/articles/:id"},
		{name: "user id", path: "/users/42", want: "/users/:id"},
		{name: "query stripped", path: "/articles/123?page=1", want: "/articles/:id"},
		{name: "trailing slash stripped", path: "/articles/123/", want: "/articles/:id"},
		{name: "static path unchanged", path: "/interactions", want: "/interactions"},
		{name: "auth path unchanged", path: "/auth/token", want: "/auth/token"},
		{name: "root", path: "/", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
