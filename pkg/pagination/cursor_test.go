package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	empty := ""
	garbage := "%%%"
	notJSON := "bm90LWpzb24="

	valid := Cursor{ID: 42, CreatedAt: time.Date(2025, 9, 24, 12, 0, 0, 0, time.UTC)}

	tests := []struct {
		name    string
		in      *string
		want    *Cursor
		wantErr bool
	}{
		{name: "nil", in: nil},
		{name: "empty", in: &empty},
		{name: "bad base64", in: &garbage, wantErr: true},
		{name: "bad json", in: &notJSON, wantErr: true},
		{name: "valid", in: valid.Encode(), want: &valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.Equal(t, tt.want.ID, got.ID)
			require.True(t, tt.want.CreatedAt.Equal(got.CreatedAt))
		})
	}
}
