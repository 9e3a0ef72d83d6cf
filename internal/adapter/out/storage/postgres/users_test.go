package postgres

import (
	"context"
	"errors"
	"myforum/internal/model"
	"myforum/internal/service"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "password_hash", "created_at"}

func TestUserStorage_CreateUser(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("INSERT INTO users").
					WithArgs("alice", []byte("hash")).
					WillReturnRows(pgxmock.NewRows(userRowColumns).AddRow(int64(1), "alice", []byte("hash"), now))
			},
		},
		{
			name: "taken",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("INSERT INTO users").
					WithArgs("alice", []byte("hash")).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			wantErr: service.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := NewUserStorage(mock, trmpgx.DefaultCtxGetter).CreateUser(context.Background(), model.User{
				Username: "alice", PasswordHash: []byte("hash"),
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(1), got.ID)
			require.Equal(t, []byte("hash"), got.PasswordHash)
		})
	}
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	now := time.Now()

	mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE lower\\(username\\) = lower\\(\\$1\\)").
		WithArgs("Alice").
		WillReturnRows(pgxmock.NewRows(userRowColumns).AddRow(int64(1), "alice", []byte("h"), now))
	mock.ExpectQuery("FROM users WHERE id = \\$1").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(userRowColumns))

	st := NewUserStorage(mock, trmpgx.DefaultCtxGetter)

	got, err := st.GetUserByUsername(context.Background(), "Alice")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)

	_, err = st.GetUserByID(context.Background(), 2)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestUserStorage_GetUsers(t *testing.T) {
	now := time.Now()

	mock := newMock(t)
	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id").
		WillReturnRows(pgxmock.NewRows(userRowColumns).
			AddRow(int64(1), "alice", []byte("h"), now).
			AddRow(int64(2), "bob", []byte("h"), now))

	got, err := NewUserStorage(mock, trmpgx.DefaultCtxGetter).GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestUserStorage_DeleteUser(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnError(errors.New("conn reset"))

	err := NewUserStorage(mock, trmpgx.DefaultCtxGetter).DeleteUser(context.Background(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exec delete user")
}
