package service

import (
	"errors"
	"fmt"
	"myforum/internal/adapter/out/storage"
	"myforum/pkg/pagination"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreatePostRequest struct {
	AuthorID       int64   `validate:"required,gt=0"`
	Title          string  `validate:"required,max=55"`
	Text           string  `validate:"required,max=5000"`
	RepliesEnabled bool
	TagIDs         []int64 `validate:"max=10,dive,gt=0"`
}

type EditPostRequest struct {
	PostID         int64   `validate:"required,gt=0"`
	UserID         int64   `validate:"required,gt=0"`
	Title          string  `validate:"required,max=55"`
	Text           string  `validate:"required,max=5000"`
	RepliesEnabled bool
	TagIDs         []int64 `validate:"max=10,dive,gt=0"`
}

type CreateReplyRequest struct {
	// RoutePostID is the post addressed by the URL, PostID the one named in the body.
	RoutePostID int64
	PostID      int64  `validate:"required,gt=0"`
	AuthorID    int64  `validate:"required,gt=0"`
	Text        string `validate:"required,max=5000"`
}

type EditReplyRequest struct {
	RoutePostID int64
	ReplyID     int64  `validate:"required,gt=0"`
	PostID      int64  `validate:"required,gt=0"`
	UserID      int64  `validate:"required,gt=0"`
	Text        string `validate:"required,max=5000"`
}

type AddTagRequest struct {
	Name string `validate:"required,max=50"`
}

type CreateUserRequest struct {
	Username string `validate:"required,min=3,max=32,alphanum"`
	Password string `validate:"required,min=8,max=72"`
}

type AuthenticateRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, describeFieldError(verrs[0]))
	}
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}

func describeFieldError(fe validator.FieldError) string {
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s long", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s long", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "alphanum":
		return field + " must contain only letters and digits"
	default:
		return field + " is invalid"
	}
}

// fieldName renders struct field names the way they appear in JSON bodies: TagIDs[0] -> tagIds[0].
func fieldName(s string) string {
	s = strings.Replace(s, "IDs", "Ids", 1)
	s = strings.Replace(s, "ID", "Id", 1)
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func validatePagination(in pagination.PageRequest) error {
	beforeCursorProvided := in.BeforeCursor != nil && *in.BeforeCursor != ""
	afterCursorProvided := in.AfterCursor != nil && *in.AfterCursor != ""

	if beforeCursorProvided && afterCursorProvided {
		return fmt.Errorf("%w: both cursors provided", ErrInvalidRequest)
	}
	return nil
}

func toGetPostsParams(in pagination.PageRequest) (storage.GetPostsParams, error) {
	if err := validatePagination(in); err != nil {
		return storage.GetPostsParams{}, err
	}

	if in.Limit <= 0 {
		in.Limit = DefaultPostsLimit
	}
	in.Limit = min(in.Limit, MaxPostsLimit)

	before, err := pagination.Decode(in.BeforeCursor)
	if err != nil {
		return storage.GetPostsParams{}, fmt.Errorf("%w: malformed before-cursor", ErrInvalidRequest)
	}

	after, err := pagination.Decode(in.AfterCursor)
	if err != nil {
		return storage.GetPostsParams{}, fmt.Errorf("%w: malformed after-cursor", ErrInvalidRequest)
	}

	if before == nil && after == nil {
		return storage.GetPostsParams{}, fmt.Errorf("%w: cursor is required", ErrInvalidRequest)
	}

	var params storage.GetPostsParams
	params.Limit = in.Limit

	if before != nil {
		params.Cursor = *before
		params.Direction = storage.DirectionBefore
	} else {
		params.Cursor = *after
		params.Direction = storage.DirectionAfter
	}
	return params, nil
}

// uniqueIDs drops duplicates keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
