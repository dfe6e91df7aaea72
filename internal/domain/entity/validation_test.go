package entity

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		want    []string
		wantErr bool
	}{
		{
			name: "nil input yields empty list",
			tags: nil,
			want: []string{},
		},
		{
			name: "lowercases and trims",
			tags: []string{"  Go ", "DATABASES"},
			want: []string{"go", "databases"},
		},
		{
			name: "drops empty entries",
			tags: []string{"go", "   ", ""},
			want: []string{"go"},
		},
		{
			name: "deduplicates preserving first-seen order",
			tags: []string{"go", "sql", "GO", "sql"},
			want: []string{"go", "sql"},
		},
		{
			name:    "rejects tag over 30 characters",
			tags:    []string{strings.Repeat("a", 31)},
			wantErr: true,
		},
		{
			name: "accepts tag at exactly 30 characters",
			tags: []string{strings.Repeat("a", 30)},
			want: []string{strings.Repeat("a", 30)},
		},
		{
			name: "accepts CJK tag at exactly 30 characters",
			tags: []string{strings.Repeat("語", 30)},
			want: []string{strings.Repeat("語", 30)},
		},
		{
			name:    "rejects CJK tag over 30 characters",
			tags:    []string{strings.Repeat("語", 31)},
			wantErr: true,
		},
		{
			name:    "rejects more than 10 tags",
			tags:    []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			wantErr: true,
		},
		{
			name: "duplicates do not count toward the limit",
			tags: []string{"a", "a", "b", "b", "c", "c", "d", "d", "e", "e", "f", "f"},
			want: []string{"a", "b", "c", "d", "e", "f"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTags("tags", tt.tags)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeTags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("NormalizeTags() error type = %T, want *ValidationError", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeTagsReportsField(t *testing.T) {
	_, err := NormalizeTags("interests", []string{strings.Repeat("x", 40)})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "interests" {
		t.Errorf("Field = %q, want %q", vErr.Field, "interests")
	}
}
