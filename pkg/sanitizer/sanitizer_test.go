package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello world", want: "hello world"},
		{name: "trims", in: "  hi \n", want: "hi"},
		{name: "strips tags", in: "<b>bold</b> text", want: "bold text"},
		{name: "drops script", in: `<script>alert("x")</script>ok`, want: "ok"},
		{name: "keeps comparison", in: "a < b & c", want: "a < b & c"},
		{name: "only markup", in: "<p></p>", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
