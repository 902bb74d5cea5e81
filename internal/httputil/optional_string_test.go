package httputil

import (
	"encoding/json"
	"testing"
)

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	type payload struct {
		FolderID OptionalString `json:"folder_id"`
	}

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *string
	}{
		{
			name:        "absent field",
			body:        `{}`,
			wantPresent: false,
		},
		{
			name:        "explicit null",
			body:        `{"folder_id": null}`,
			wantPresent: true,
			wantValue:   nil,
		},
		{
			name:        "string value",
			body:        `{"folder_id": "abc-123"}`,
			wantPresent: true,
			wantValue:   strPtr("abc-123"),
		},
		{
			name:        "empty string",
			body:        `{"folder_id": ""}`,
			wantPresent: true,
			wantValue:   strPtr(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if p.FolderID.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", p.FolderID.Present, tt.wantPresent)
			}
			if (p.FolderID.Value == nil) != (tt.wantValue == nil) {
				t.Fatalf("Value = %v, want %v", p.FolderID.Value, tt.wantValue)
			}
			if tt.wantValue != nil && *p.FolderID.Value != *tt.wantValue {
				t.Errorf("Value = %q, want %q", *p.FolderID.Value, *tt.wantValue)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
