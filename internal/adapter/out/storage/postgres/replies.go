package postgres

import (
	"context"
	"fmt"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

var replyColumns = []string{
	tableinfo.ReplyIDColumn,
	tableinfo.ReplyPostIDColumn,
	tableinfo.ReplyAuthorIDColumn,
	tableinfo.ReplyTextColumn,
	tableinfo.ReplyCreatedAtColumn,
	tableinfo.ReplyEditedAtColumn,
}

type ReplyStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewReplyStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *ReplyStorage {
	return &ReplyStorage{db: db, getter: getter}
}

// CreateReply fails with service.ErrNotFound when the post vanished concurrently.
func (s *ReplyStorage) CreateReply(ctx context.Context, in model.Reply) (model.Reply, error) {
	query, args, err := sq.
		Insert(tableinfo.RepliesTableName).
		Columns(
			tableinfo.ReplyPostIDColumn,
			tableinfo.ReplyAuthorIDColumn,
			tableinfo.ReplyTextColumn,
		).
		Values(in.PostID, in.AuthorID, in.Text).
		Suffix(returning(replyColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Reply{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanReply(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Reply{}, mapError(err, "exec insert reply")
	}
	return out, nil
}

func (s *ReplyStorage) GetReply(ctx context.Context, replyID int64) (model.Reply, error) {
	query, args, err := sq.
		Select(replyColumns...).
		From(tableinfo.RepliesTableName).
		Where(sq.Eq{tableinfo.ReplyIDColumn: replyID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Reply{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanReply(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Reply{}, mapError(err, "exec select reply")
	}
	return out, nil
}

func (s *ReplyStorage) GetRepliesByPost(ctx context.Context, postID int64) ([]model.Reply, error) {
	query, args, err := sq.
		Select(replyColumns...).
		From(tableinfo.RepliesTableName).
		Where(sq.Eq{tableinfo.ReplyPostIDColumn: postID}).
		OrderBy(
			tableinfo.ReplyCreatedAtColumn+" ASC",
			tableinfo.ReplyIDColumn+" ASC",
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select replies: %w", err)
	}
	defer rows.Close()

	var out []model.Reply
	for rows.Next() {
		r, err := scanReply(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *ReplyStorage) UpdateReply(ctx context.Context, in model.Reply) (model.Reply, error) {
	query, args, err := sq.
		Update(tableinfo.RepliesTableName).
		Set(tableinfo.ReplyTextColumn, in.Text).
		Set(tableinfo.ReplyEditedAtColumn, in.EditedAt).
		Where(sq.Eq{tableinfo.ReplyIDColumn: in.ID}).
		Suffix(returning(replyColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Reply{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanReply(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Reply{}, mapError(err, "exec update reply")
	}
	return out, nil
}

func (s *ReplyStorage) DeleteReply(ctx context.Context, replyID int64) error {
	query, args, err := sq.
		Delete(tableinfo.RepliesTableName).
		Where(sq.Eq{tableinfo.ReplyIDColumn: replyID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete reply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *ReplyStorage) DeleteRepliesByPost(ctx context.Context, postID int64) error {
	query, args, err := sq.
		Delete(tableinfo.RepliesTableName).
		Where(sq.Eq{tableinfo.ReplyPostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec delete replies of post: %w", err)
	}
	return nil
}

func scanReply(row pgx.Row) (model.Reply, error) {
	var r model.Reply
	err := row.Scan(
		&r.ID,
		&r.PostID,
		&r.AuthorID,
		&r.Text,
		&r.CreatedAt,
		&r.EditedAt,
	)
	return r, err
}
