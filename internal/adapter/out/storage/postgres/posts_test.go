package postgres

import (
	"context"
	"errors"
	"myforum/internal/adapter/out/storage"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/pagination"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var postRowColumns = []string{"id", "title", "text", "author_id", "replies_enabled", "created_at", "edited_at"}

func Test_getPostsQueryBuilder(t *testing.T) {
	cursor := pagination.Cursor{
		ID:        123,
		CreatedAt: time.Date(2025, 9, 24, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		params    storage.GetPostsParams
		wantOrder string
		wantWhere string
		wantErr   bool
	}{
		{
			name:      "after cursor",
			params:    storage.GetPostsParams{Cursor: cursor, Direction: storage.DirectionAfter, Limit: 10},
			wantOrder: "ORDER BY created_at DESC, id DESC",
			wantWhere: "(created_at, id) < ($1, $2)",
		},
		{
			name:      "before cursor",
			params:    storage.GetPostsParams{Cursor: cursor, Direction: storage.DirectionBefore, Limit: 5},
			wantOrder: "ORDER BY created_at ASC, id ASC",
			wantWhere: "(created_at, id) > ($1, $2)",
		},
		{
			name:    "invalid direction",
			params:  storage.GetPostsParams{Cursor: cursor, Limit: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb, err := getPostsQueryBuilder(tt.params)
			if tt.wantErr {
				require.ErrorIs(t, err, storage.ErrDirectionUnset)
				return
			}
			require.NoError(t, err)

			sql, args, err := qb.ToSql()
			require.NoError(t, err)
			require.Contains(t, sql, tt.wantOrder)
			require.Contains(t, sql, tt.wantWhere)
			require.Equal(t, []any{cursor.CreatedAt, cursor.ID}, args)
		})
	}
}

func TestPostStorage_CreatePost(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		setup func(m pgxmock.PgxPoolIface)
		check func(t *testing.T, got model.Post, err error)
	}{
		{
			name: "success",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("INSERT INTO posts").
					WithArgs("hw", "wh", int64(4), true).
					WillReturnRows(pgxmock.NewRows(postRowColumns).
						AddRow(int64(1), "hw", "wh", int64(4), true, now, (*time.Time)(nil)))
			},
			check: func(t *testing.T, got model.Post, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(1), got.ID)
				require.Equal(t, "wh", got.Text)
				require.Equal(t, int64(4), got.AuthorID)
				require.True(t, got.RepliesEnabled)
				require.Nil(t, got.EditedAt)
				require.WithinDuration(t, now, got.CreatedAt, time.Second)
			},
		},
		{
			name: "db error",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("INSERT INTO posts").
					WithArgs("hw", "wh", int64(4), true).
					WillReturnError(errors.New("db down"))
			},
			check: func(t *testing.T, _ model.Post, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "exec insert post")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			st := NewPostStorage(mock, trmpgx.DefaultCtxGetter)
			got, err := st.CreatePost(context.Background(), model.Post{
				Title: "hw", Text: "wh", AuthorID: 4, RepliesEnabled: true,
			})
			tt.check(t, got, err)
		})
	}
}

func TestPostStorage_GetPostByID(t *testing.T) {
	now := time.Now()
	edited := now.Add(time.Minute)

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = \\$1").
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(postRowColumns).
				AddRow(int64(3), "t", "b", int64(1), false, now, &edited))

		got, err := NewPostStorage(mock, trmpgx.DefaultCtxGetter).GetPostByID(context.Background(), 3)
		require.NoError(t, err)
		require.Equal(t, int64(3), got.ID)
		require.NotNil(t, got.EditedAt)
		require.True(t, edited.Equal(*got.EditedAt))
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT (.+) FROM posts").
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(postRowColumns))

		_, err := NewPostStorage(mock, trmpgx.DefaultCtxGetter).GetPostByID(context.Background(), 3)
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestPostStorage_PostExists(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := NewPostStorage(mock, trmpgx.DefaultCtxGetter).PostExists(context.Background(), 9)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPostStorage_GetPostsWithCursor(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		direction storage.Direction
		setup     func(m pgxmock.PgxPoolIface)
		wantIDs   []int64
		wantErr   bool
	}{
		{
			name:      "after keeps order",
			direction: storage.DirectionAfter,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("SELECT (.+) FROM posts WHERE").
					WithArgs(now, int64(10)).
					WillReturnRows(pgxmock.NewRows(postRowColumns).
						AddRow(int64(9), "t", "b", int64(1), true, now.Add(-time.Minute), (*time.Time)(nil)).
						AddRow(int64(8), "t", "b", int64(1), true, now.Add(-2*time.Minute), (*time.Time)(nil)))
			},
			wantIDs: []int64{9, 8},
		},
		{
			name:      "before reverses",
			direction: storage.DirectionBefore,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("SELECT (.+) FROM posts WHERE").
					WithArgs(now, int64(10)).
					WillReturnRows(pgxmock.NewRows(postRowColumns).
						AddRow(int64(11), "t", "b", int64(1), true, now.Add(time.Minute), (*time.Time)(nil)).
						AddRow(int64(12), "t", "b", int64(1), true, now.Add(2*time.Minute), (*time.Time)(nil)))
			},
			wantIDs: []int64{12, 11},
		},
		{
			name:      "query error",
			direction: storage.DirectionAfter,
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("SELECT (.+) FROM posts WHERE").
					WithArgs(now, int64(10)).
					WillReturnError(errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := NewPostStorage(mock, trmpgx.DefaultCtxGetter).GetPostsWithCursor(context.Background(), storage.GetPostsParams{
				Cursor:    pagination.Cursor{ID: 10, CreatedAt: now},
				Direction: tt.direction,
				Limit:     3,
			})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPostStorage_UpdatePost(t *testing.T) {
	now := time.Now()
	edited := now.Add(time.Hour)

	mock := newMock(t)
	mock.ExpectQuery("UPDATE posts SET").
		WithArgs("new", "body", false, &edited, int64(5)).
		WillReturnRows(pgxmock.NewRows(postRowColumns).
			AddRow(int64(5), "new", "body", int64(2), false, now, &edited))

	got, err := NewPostStorage(mock, trmpgx.DefaultCtxGetter).UpdatePost(context.Background(), model.Post{
		ID: 5, Title: "new", Text: "body", EditedAt: &edited,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), got.AuthorID)
	require.Equal(t, "new", got.Title)
}

func TestPostStorage_DeletePost(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: service.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec("DELETE FROM posts WHERE id = \\$1").
				WithArgs(int64(5)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := NewPostStorage(mock, trmpgx.DefaultCtxGetter).DeletePost(context.Background(), 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
