package inmemory

import (
	"context"
	"myforum/internal/adapter/out/storage"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/pagination"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPostStorage_CreateAndGetByID(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	tests := []struct {
		name   string
		input  model.Post
		wantID int64
	}{
		{
			name:   "first post",
			input:  model.Post{AuthorID: 1, Title: "t1", Text: "b1", RepliesEnabled: true},
			wantID: 1,
		},
		{
			name:   "second post",
			input:  model.Post{AuthorID: 2, Title: "t2", Text: "b2"},
			wantID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := st.CreatePost(context.Background(), tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantID, out.ID)
			require.Equal(t, tt.input.AuthorID, out.AuthorID)
			require.Equal(t, tt.input.Title, out.Title)
			require.Equal(t, tt.input.RepliesEnabled, out.RepliesEnabled)
			require.WithinDuration(t, time.Now(), out.CreatedAt, time.Second)
			require.Nil(t, out.EditedAt)

			got, err := st.GetPostByID(context.Background(), tt.wantID)
			require.NoError(t, err)
			require.Equal(t, out, got)

			ok, err := st.PostExists(context.Background(), tt.wantID)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestPostStorage_GetPostByID_NotFound(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	for _, id := range []int64{-1, 0, 10} {
		_, err := st.GetPostByID(context.Background(), id)
		require.ErrorIs(t, err, service.ErrNotFound)

		ok, err := st.PostExists(context.Background(), id)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestPostStorage_UpdatePost(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()
	ctx := context.Background()

	_, err := st.UpdatePost(ctx, model.Post{ID: 1, Title: "x"})
	require.ErrorIs(t, err, service.ErrNotFound)

	p, err := st.CreatePost(ctx, model.Post{AuthorID: 7, Title: "x", Text: "y"})
	require.NoError(t, err)

	edited := time.Now()
	got, err := st.UpdatePost(ctx, model.Post{
		ID: p.ID, AuthorID: 99, Title: "new", Text: "body", RepliesEnabled: true, EditedAt: &edited,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), got.AuthorID)
	require.Equal(t, p.CreatedAt, got.CreatedAt)
	require.Equal(t, "new", got.Title)
	require.True(t, got.RepliesEnabled)
	require.Equal(t, &edited, got.EditedAt)
}

func TestPostStorage_DeletePost(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := st.CreatePost(ctx, model.Post{AuthorID: 1, Title: "t", Text: "b"})
		require.NoError(t, err)
	}

	require.NoError(t, st.DeletePost(ctx, 2))
	require.ErrorIs(t, st.DeletePost(ctx, 2), service.ErrNotFound)

	_, err := st.GetPostByID(ctx, 2)
	require.ErrorIs(t, err, service.ErrNotFound)

	list, err := st.GetPosts(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1}, collectIDs(list))

	p, err := st.CreatePost(ctx, model.Post{AuthorID: 1, Title: "t", Text: "b"})
	require.NoError(t, err)
	require.Equal(t, int64(4), p.ID)
}

func TestPostStorage_GetPosts_OrderDESC_and_Limit(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	for i := 1; i <= 5; i++ {
		_, err := st.CreatePost(context.Background(), model.Post{
			AuthorID: int64(i), Title: "t", Text: "b",
		})
		require.NoError(t, err)
	}

	got, err := st.GetPosts(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 4, 3}, collectIDs(got))

	list, err := NewPostStorage().GetPosts(context.Background(), 10)
	require.NoError(t, err)
	require.Nil(t, list)
}

func TestPostStorage_GetPostsWithCursor_After_Before(t *testing.T) {
	t.Parallel()

	st := NewPostStorage()

	for i := 1; i <= 5; i++ {
		_, err := st.CreatePost(context.Background(), model.Post{
			AuthorID: int64(i), Title: "t", Text: "b",
		})
		require.NoError(t, err)
	}

	// older
	gotAfter, err := st.GetPostsWithCursor(context.Background(), storage.GetPostsParams{
		Cursor:    pagination.Cursor{ID: 4},
		Limit:     2,
		Direction: storage.DirectionAfter,
	})
	require.NoError(t, err)
	require.Equal(t, []int64{3, 2}, collectIDs(gotAfter))

	// newer
	gotBefore, err := st.GetPostsWithCursor(context.Background(), storage.GetPostsParams{
		Cursor:    pagination.Cursor{ID: 2},
		Limit:     2,
		Direction: storage.DirectionBefore,
	})
	require.NoError(t, err)
	require.Equal(t, []int64{4, 3}, collectIDs(gotBefore))
}

func TestPostStorage_GetPostsWithCursor_InvalidDirection(t *testing.T) {
	t.Parallel()

	_, err := NewPostStorage().GetPostsWithCursor(context.Background(), storage.GetPostsParams{
		Cursor: pagination.Cursor{ID: 10},
		Limit:  2,
	})
	require.ErrorIs(t, err, storage.ErrDirectionUnset)
}

func collectIDs(posts []model.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
