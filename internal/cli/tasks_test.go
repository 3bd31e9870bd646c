package cli

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short string untouched", in: "hello", max: 10, want: "hello"},
		{name: "exact length untouched", in: "hello", max: 5, want: "hello"},
		{name: "long string shortened", in: "hello world", max: 8, want: "hello..."},
		{name: "multibyte runes kept whole", in: "日本語のリード案件です", max: 8, want: "日本語のリ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.max, got)
			}
			if !strings.HasPrefix(tt.in, strings.TrimSuffix(got, "...")) {
				t.Errorf("truncate(%q, %d) = %q is not a prefix of the input", tt.in, tt.max, got)
			}
		})
	}
}
