package postgres

import (
	"context"
	"fmt"
	"myforum/internal/adapter/out/storage"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/tableinfo"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

var postColumns = []string{
	tableinfo.PostIDColumn,
	tableinfo.PostTitleColumn,
	tableinfo.PostTextColumn,
	tableinfo.PostAuthorIDColumn,
	tableinfo.PostRepliesEnabledColumn,
	tableinfo.PostCreatedAtColumn,
	tableinfo.PostEditedAtColumn,
}

type PostStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewPostStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *PostStorage {
	return &PostStorage{
		db:     db,
		getter: getter,
	}
}

func (s *PostStorage) CreatePost(ctx context.Context, in model.Post) (model.Post, error) {
	query, args, err := sq.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostTitleColumn,
			tableinfo.PostTextColumn,
			tableinfo.PostAuthorIDColumn,
			tableinfo.PostRepliesEnabledColumn,
		).
		Values(in.Title, in.Text, in.AuthorID, in.RepliesEnabled).
		Suffix(returning(postColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Post{}, mapError(err, "exec insert post")
	}
	return out, nil
}

func (s *PostStorage) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	query, args, err := sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Post{}, mapError(err, "exec select post by id")
	}
	return out, nil
}

func (s *PostStorage) PostExists(ctx context.Context, postID int64) (bool, error) {
	query, args, err := sq.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		Suffix(")").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	var exists bool
	if err := tr.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exec select post exists: %w", err)
	}
	return exists, nil
}

func (s *PostStorage) GetPosts(ctx context.Context, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = service.DefaultPostsLimit
	}
	query, args, err := sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		OrderBy(
			tableinfo.PostCreatedAtColumn+" DESC",
			tableinfo.PostIDColumn+" DESC",
		).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	return s.queryPosts(ctx, query, args, limit)
}

func (s *PostStorage) GetPostsWithCursor(ctx context.Context, params storage.GetPostsParams) ([]model.Post, error) {
	if params.Limit <= 0 {
		params.Limit = service.DefaultPostsLimit
	}

	qb, err := getPostsQueryBuilder(params)
	if err != nil {
		return nil, err
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	out, err := s.queryPosts(ctx, query, args, params.Limit)
	if err != nil {
		return nil, err
	}
	if params.Direction == storage.DirectionBefore {
		slices.Reverse(out)
	}
	return out, nil
}

// getPostsQueryBuilder selects posts strictly older (After) or newer (Before)
// than the cursor. Before results come out ascending and must be reversed.
func getPostsQueryBuilder(params storage.GetPostsParams) (sq.SelectBuilder, error) {
	var (
		cmp   string
		order string
	)
	switch params.Direction {
	case storage.DirectionAfter:
		cmp, order = "<", "DESC"
	case storage.DirectionBefore:
		cmp, order = ">", "ASC"
	default:
		return sq.SelectBuilder{}, storage.ErrDirectionUnset
	}

	return sq.
		Select(postColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Expr(
			fmt.Sprintf("(%s, %s) %s (?, ?)", tableinfo.PostCreatedAtColumn, tableinfo.PostIDColumn, cmp),
			params.Cursor.CreatedAt, params.Cursor.ID,
		)).
		OrderBy(
			tableinfo.PostCreatedAtColumn+" "+order,
			tableinfo.PostIDColumn+" "+order,
		).
		Limit(uint64(params.Limit)).
		PlaceholderFormat(sq.Dollar), nil
}

func (s *PostStorage) UpdatePost(ctx context.Context, in model.Post) (model.Post, error) {
	query, args, err := sq.
		Update(tableinfo.PostsTableName).
		Set(tableinfo.PostTitleColumn, in.Title).
		Set(tableinfo.PostTextColumn, in.Text).
		Set(tableinfo.PostRepliesEnabledColumn, in.RepliesEnabled).
		Set(tableinfo.PostEditedAtColumn, in.EditedAt).
		Where(sq.Eq{tableinfo.PostIDColumn: in.ID}).
		Suffix(returning(postColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	out, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Post{}, mapError(err, "exec update post")
	}
	return out, nil
}

func (s *PostStorage) DeletePost(ctx context.Context, postID int64) error {
	query, args, err := sq.
		Delete(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (s *PostStorage) queryPosts(ctx context.Context, query string, args []any, limit int) ([]model.Post, error) {
	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select posts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Text,
		&p.AuthorID,
		&p.RepliesEnabled,
		&p.CreatedAt,
		&p.EditedAt,
	)
	return p, err
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
