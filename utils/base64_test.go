package utils

import "testing"

func TestRemoveBase64Header(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"png data uri", "data:image/png;base64,iVBORw0KGgo=", "iVBORw0KGgo="},
		{"jpeg data uri", "data:image/jpeg;base64,/9j/4AAQ", "/9j/4AAQ"},
		{"no header", "iVBORw0KGgo=", "iVBORw0KGgo="},
		{"empty", "", ""},
		{"only comma", ",", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveBase64Header(tt.input); got != tt.want {
				t.Errorf("RemoveBase64Header(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeBase64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already padded", "aGVsbG8=", "aGVsbG8="},
		{"missing one pad", "aGVsbG8", "aGVsbG8="},
		{"missing two pads", "aGVsbA", "aGVsbA=="},
		{"surrounding whitespace", "  aGVsbG8=\n", "aGVsbG8="},
		{"data uri with missing pad", "data:image/png;base64,aGVsbG8", "aGVsbG8="},
		{"aligned length untouched", "aGVsbG8h", "aGVsbG8h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBase64(tt.input); got != tt.want {
				t.Errorf("NormalizeBase64(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
