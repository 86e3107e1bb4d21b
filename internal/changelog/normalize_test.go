package changelog

import "testing"

func TestCleanItem(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		decode bool
		want   string
	}{
		{
			name:  "single reference marker",
			input: "Feature A (#1)",
			want:  "Feature A",
		},
		{
			name:  "multiple reference markers",
			input: "Feature B (#2,#3)",
			want:  "Feature B",
		},
		{
			name:  "spaced reference markers",
			input: "Feature C (#1234, #5678, #9012)",
			want:  "Feature C",
		},
		{
			name:  "non-reference parenthetical kept",
			input: "Support TLS (experimental)",
			want:  "Support TLS (experimental)",
		},
		{
			name:  "mid-string references kept",
			input: "Revert (#12) behaviour change",
			want:  "Revert (#12) behaviour change",
		},
		{
			name:  "inline tags stripped",
			input: "Add <code>--json</code> flag",
			want:  "Add --json flag",
		},
		{
			name:  "whitespace collapsed and trimmed",
			input: "  spread\t over \n lines  ",
			want:  "spread over lines",
		},
		{
			name:   "named entities decoded on markdown path",
			input:  "a &lt;b&gt; c &amp; d&nbsp;e",
			decode: true,
			want:   "a <b> c & d e",
		},
		{
			name:   "numeric entities decoded",
			input:  "dash &#45; and hex &#x2D;",
			decode: true,
			want:   "dash - and hex -",
		},
		{
			name:   "unknown entities left alone",
			input:  "already &copy; escaped",
			decode: true,
			want:   "already &copy; escaped",
		},
		{
			name:  "entities untouched on html path",
			input: "kept &lt;literal&gt;",
			want:  "kept &lt;literal&gt;",
		},
		{
			name:  "cleans to empty",
			input: " (#42) ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanItem(tt.input, tt.decode); got != tt.want {
				t.Errorf("cleanItem(%q, %v) = %q, want %q", tt.input, tt.decode, got, tt.want)
			}
		})
	}
}

func TestDecodeEntityRefs(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"&quot;quoted&quot;", `"quoted"`},
		{"it&apos;s", "it's"},
		{"&#65;&#66;&#67;", "ABC"},
		{"&#x41;", "A"},
		{"&#X41;", "A"},
		{"no refs here", "no refs here"},
		{"dangling &amp", "dangling &amp"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := decodeEntityRefs(tt.input); got != tt.want {
				t.Errorf("decodeEntityRefs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
