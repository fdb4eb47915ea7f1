package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> move", "bold move"},
		{"<script>alert(1)</script>hello", "alert(1)hello"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;hi", "alert(1)hi"},
		{"a &amp; b", "a & b"},
		{"  padded  ", "padded"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := StripHTML(tc.input); got != tc.want {
			t.Fatalf("StripHTML(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}
