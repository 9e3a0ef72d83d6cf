package postgres

import (
	"context"
	"fmt"
	"myforum/internal/model"
	"myforum/internal/service"
	"myforum/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

var tagOrder = []string{"lower(" + tableinfo.TagNameColumn + ")", tableinfo.TagIDColumn}

type TagStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewTagStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *TagStorage {
	return &TagStorage{db: db, getter: getter}
}

func (s *TagStorage) CreateTag(ctx context.Context, in model.Tag) (model.Tag, error) {
	query, args, err := sq.
		Insert(tableinfo.TagsTableName).
		Columns(tableinfo.TagNameColumn).
		Values(in.Name).
		Suffix(returning([]string{tableinfo.TagIDColumn, tableinfo.TagNameColumn})).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Tag{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var out model.Tag
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(&out.ID, &out.Name); err != nil {
		return model.Tag{}, mapError(err, "exec insert tag")
	}
	return out, nil
}

func (s *TagStorage) GetTag(ctx context.Context, tagID int64) (model.Tag, error) {
	query, args, err := sq.
		Select(tableinfo.TagIDColumn, tableinfo.TagNameColumn).
		From(tableinfo.TagsTableName).
		Where(sq.Eq{tableinfo.TagIDColumn: tagID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Tag{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	var out model.Tag
	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if err := tr.QueryRow(ctx, query, args...).Scan(&out.ID, &out.Name); err != nil {
		return model.Tag{}, mapError(err, "exec select tag")
	}
	return out, nil
}

func (s *TagStorage) GetAllTags(ctx context.Context) ([]model.Tag, error) {
	return s.selectTags(ctx, sq.
		Select(tableinfo.TagIDColumn, tableinfo.TagNameColumn).
		From(tableinfo.TagsTableName).
		OrderBy(tagOrder...))
}

func (s *TagStorage) GetTagsByIDs(ctx context.Context, tagIDs []int64) ([]model.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	return s.selectTags(ctx, sq.
		Select(tableinfo.TagIDColumn, tableinfo.TagNameColumn).
		From(tableinfo.TagsTableName).
		Where(sq.Eq{tableinfo.TagIDColumn: tagIDs}).
		OrderBy(tagOrder...))
}

func (s *TagStorage) GetPostTags(ctx context.Context, postID int64) ([]model.Tag, error) {
	return s.selectTags(ctx, sq.
		Select("t."+tableinfo.TagIDColumn, "t."+tableinfo.TagNameColumn).
		From(tableinfo.TagsTableName+" t").
		Join(fmt.Sprintf("%s pt ON pt.%s = t.%s",
			tableinfo.PostTagsTableName, tableinfo.PostTagTagIDColumn, tableinfo.TagIDColumn)).
		Where(sq.Eq{"pt." + tableinfo.PostTagPostIDColumn: postID}).
		OrderBy("lower(t."+tableinfo.TagNameColumn+")", "t."+tableinfo.TagIDColumn))
}

// DeleteTag relies on ON DELETE CASCADE to drop the post links.
func (s *TagStorage) DeleteTag(ctx context.Context, tagID int64) error {
	query, args, err := sq.
		Delete(tableinfo.TagsTableName).
		Where(sq.Eq{tableinfo.TagIDColumn: tagID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// SetPostTags replaces the links of a post. Callers run it inside a transaction.
func (s *TagStorage) SetPostTags(ctx context.Context, postID int64, tagIDs []int64) error {
	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	query, args, err := sq.
		Delete(tableinfo.PostTagsTableName).
		Where(sq.Eq{tableinfo.PostTagPostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}
	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec delete post tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	ib := sq.
		Insert(tableinfo.PostTagsTableName).
		Columns(tableinfo.PostTagPostIDColumn, tableinfo.PostTagTagIDColumn)
	for _, id := range tagIDs {
		ib = ib.Values(postID, id)
	}
	query, args, err = ib.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}
	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return mapError(err, "exec insert post tags")
	}
	return nil
}

func (s *TagStorage) selectTags(ctx context.Context, qb sq.SelectBuilder) ([]model.Tag, error) {
	query, args, err := qb.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select tags: %w", err)
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
