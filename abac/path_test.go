package abac_test

import (
	"fmt"
	"testing"

	"github.com/axent-pl/security/abac"
)

func attrs(m map[string]any) *abac.Attributes {
	return abac.NewAttributesFromMap(m)
}

func TestQuery(t *testing.T) {
	src := attrs(map[string]any{
		"name": "admin",
		"address": map[string]any{
			"city": "Warsaw",
			"geo":  []any{52.23, 21.01},
		},
		"groups":      []any{"ops", "dev", 7},
		"complex key": "quoted",
	})

	tests := []struct {
		name    string
		path    string
		want    []any
		wantErr bool
	}{
		{
			name: "top level field",
			path: ".name",
			want: []any{"admin"},
		},
		{
			name: "bare leading field",
			path: "name",
			want: []any{"admin"},
		},
		{
			name: "nested field",
			path: ".address.city",
			want: []any{"Warsaw"},
		},
		{
			name: "array index",
			path: ".groups[0]",
			want: []any{"ops"},
		},
		{
			name: "negative array index",
			path: ".address.geo[-1]",
			want: []any{21.01},
		},
		{
			name: "array wildcard",
			path: ".groups[*]",
			want: []any{"ops", "dev", 7},
		},
		{
			name: "quoted key",
			path: `.["complex key"]`,
			want: []any{"quoted"},
		},
		{
			name: "missing field yields no results",
			path: ".address.street",
			want: nil,
		},
		{
			name: "index out of range yields no results",
			path: ".groups[9]",
			want: nil,
		},
		{
			name: "field step on a scalar yields no results",
			path: ".name.first",
			want: nil,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
		{
			name:    "dangling dot",
			path:    ".address.",
			wantErr: true,
		},
		{
			name:    "unterminated bracket",
			path:    ".groups[0",
			wantErr: true,
		},
		{
			name:    "garbage in bracket",
			path:    ".groups[x]",
			wantErr: true,
		},
		{
			name:    "unterminated quoted key",
			path:    `.["key]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := abac.Query(src, tt.path)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("Query() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("Query() succeeded unexpectedly")
			}
			if fmt.Sprintf("%+v", got) != fmt.Sprintf("%+v", tt.want) {
				t.Errorf("Query() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryOne(t *testing.T) {
	src := attrs(map[string]any{
		"level":  5,
		"groups": []any{"ops", "dev"},
	})

	tests := []struct {
		name    string
		path    string
		want    any
		wantErr bool
	}{
		{
			name: "single match",
			path: ".level",
			want: 5,
		},
		{
			name:    "no match",
			path:    ".missing",
			wantErr: true,
		},
		{
			name:    "multiple matches",
			path:    ".groups[*]",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := abac.QueryOne(src, tt.path)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("QueryOne() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("QueryOne() succeeded unexpectedly")
			}
			if got != tt.want {
				t.Errorf("QueryOne() = %v, want %v", got, tt.want)
			}
		})
	}
}
