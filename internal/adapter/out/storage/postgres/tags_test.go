package postgres

import (
	"context"
	"myforum/internal/model"
	"myforum/internal/service"
	"testing"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestTagStorage_CreateTag(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("INSERT INTO tags").
					WithArgs("go").
					WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "go"))
			},
		},
		{
			name: "duplicate name",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("INSERT INTO tags").
					WithArgs("go").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			wantErr: service.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := NewTagStorage(mock, trmpgx.DefaultCtxGetter).CreateTag(context.Background(), model.Tag{Name: "go"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.Tag{ID: 1, Name: "go"}, got)
		})
	}
}

func TestTagStorage_GetTagsByIDs(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT id, name FROM tags WHERE id IN \\(\\$1,\\$2\\) ORDER BY lower\\(name\\), id").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "go"))

	st := NewTagStorage(mock, trmpgx.DefaultCtxGetter)
	got, err := st.GetTagsByIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []model.Tag{{ID: 1, Name: "go"}}, got)

	got, err = st.GetTagsByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTagStorage_GetPostTags(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM tags t JOIN post_tags pt ON pt.tag_id = t.id WHERE pt.post_id = \\$1").
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "go").AddRow(int64(3), "db"))

	got, err := NewTagStorage(mock, trmpgx.DefaultCtxGetter).GetPostTags(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestTagStorage_SetPostTags(t *testing.T) {
	t.Run("replace", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM post_tags WHERE post_id = \\$1").
			WithArgs(int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO post_tags \\(post_id,tag_id\\) VALUES \\(\\$1,\\$2\\),\\(\\$3,\\$4\\)").
			WithArgs(int64(4), int64(1), int64(4), int64(2)).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))

		require.NoError(t, NewTagStorage(mock, trmpgx.DefaultCtxGetter).SetPostTags(context.Background(), 4, []int64{1, 2}))
	})

	t.Run("clear", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM post_tags").
			WithArgs(int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		require.NoError(t, NewTagStorage(mock, trmpgx.DefaultCtxGetter).SetPostTags(context.Background(), 4, nil))
	})

	t.Run("unknown tag", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("DELETE FROM post_tags").
			WithArgs(int64(4)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("INSERT INTO post_tags").
			WithArgs(int64(4), int64(99)).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolation})

		err := NewTagStorage(mock, trmpgx.DefaultCtxGetter).SetPostTags(context.Background(), 4, []int64{99})
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestTagStorage_DeleteTag(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM tags WHERE id = \\$1").
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, NewTagStorage(mock, trmpgx.DefaultCtxGetter).DeleteTag(context.Background(), 2))
}
