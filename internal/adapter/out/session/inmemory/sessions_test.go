package inmemory

import (
	"context"
	"myforum/internal/model"
	"myforum/internal/service"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionStore(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	st := NewSessionStore()
	st.now = func() time.Time { return now }
	ctx := context.Background()

	live := model.Session{Token: "a", UserID: 1, ExpiresAt: now.Add(time.Hour)}
	dead := model.Session{Token: "b", UserID: 2, ExpiresAt: now}

	require.NoError(t, st.Save(ctx, live))
	require.NoError(t, st.Save(ctx, dead))

	got, err := st.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, live, got)

	_, err = st.Get(ctx, "b")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = st.Get(ctx, "missing")
	require.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, st.Delete(ctx, "a"))
	_, err = st.Get(ctx, "a")
	require.ErrorIs(t, err, service.ErrNotFound)
}
