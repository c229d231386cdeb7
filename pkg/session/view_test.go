package session

import "testing"

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ViewMode
		wantErr  bool
	}{
		{"", ViewAuthor, false},
		{"author", ViewAuthor, false},
		{"Preview", ViewPreview, false},
		{"source", ViewCompiledSource, false},
		{"html", ViewCompiledSource, false},
		{"split", ViewAuthor, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseViewMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseViewMode(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseViewMode(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestViewMode_NextCycles(t *testing.T) {
	v := ViewAuthor
	seen := []ViewMode{v}
	for i := 0; i < 3; i++ {
		v = v.Next()
		seen = append(seen, v)
	}
	expected := []ViewMode{ViewAuthor, ViewPreview, ViewCompiledSource, ViewAuthor}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("step %d = %v, expected %v", i, seen[i], expected[i])
		}
	}
}
