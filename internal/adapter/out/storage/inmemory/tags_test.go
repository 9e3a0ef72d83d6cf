package inmemory

import (
	"context"
	"myforum/internal/model"
	"myforum/internal/service"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagStorage_CreateAndConflict(t *testing.T) {
	t.Parallel()

	st := NewTagStorage()
	ctx := context.Background()

	golang, err := st.CreateTag(ctx, model.Tag{Name: "Go"})
	require.NoError(t, err)
	require.Equal(t, int64(1), golang.ID)

	_, err = st.CreateTag(ctx, model.Tag{Name: "go"})
	require.ErrorIs(t, err, service.ErrConflict)

	rust, err := st.CreateTag(ctx, model.Tag{Name: "rust"})
	require.NoError(t, err)

	all, err := st.GetAllTags(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Tag{golang, rust}, all)

	byIDs, err := st.GetTagsByIDs(ctx, []int64{rust.ID, 42})
	require.NoError(t, err)
	require.Equal(t, []model.Tag{rust}, byIDs)
}

func TestTagStorage_PostTags(t *testing.T) {
	t.Parallel()

	st := NewTagStorage()
	ctx := context.Background()

	a, _ := st.CreateTag(ctx, model.Tag{Name: "a"})
	b, _ := st.CreateTag(ctx, model.Tag{Name: "b"})

	require.ErrorIs(t, st.SetPostTags(ctx, 1, []int64{a.ID, 99}), service.ErrNotFound)

	require.NoError(t, st.SetPostTags(ctx, 1, []int64{b.ID, a.ID}))
	got, err := st.GetPostTags(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []model.Tag{a, b}, got)

	// deleting a tag unlinks it from posts
	require.NoError(t, st.DeleteTag(ctx, a.ID))
	require.ErrorIs(t, st.DeleteTag(ctx, a.ID), service.ErrNotFound)
	got, err = st.GetPostTags(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []model.Tag{b}, got)

	require.NoError(t, st.SetPostTags(ctx, 1, nil))
	got, err = st.GetPostTags(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, got)

	// name is free again
	_, err = st.CreateTag(ctx, model.Tag{Name: "A"})
	require.NoError(t, err)
}
