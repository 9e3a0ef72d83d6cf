package tableinfo

const (
	PostsTableName = "posts"

	PostIDColumn             = "id"
	PostTitleColumn          = "title"
	PostTextColumn           = "text"
	PostAuthorIDColumn       = "author_id"
	PostRepliesEnabledColumn = "replies_enabled"
	PostCreatedAtColumn      = "created_at"
	PostEditedAtColumn       = "edited_at"
)

const (
	RepliesTableName = "replies"

	ReplyIDColumn        = "id"
	ReplyPostIDColumn    = "post_id"
	ReplyAuthorIDColumn  = "author_id"
	ReplyTextColumn      = "text"
	ReplyCreatedAtColumn = "created_at"
	ReplyEditedAtColumn  = "edited_at"
)

const (
	TagsTableName = "tags"

	TagIDColumn   = "id"
	TagNameColumn = "name"
)

const (
	PostTagsTableName = "post_tags"

	PostTagPostIDColumn = "post_id"
	PostTagTagIDColumn  = "tag_id"
)

const (
	UsersTableName = "users"

	UserIDColumn           = "id"
	UserUsernameColumn     = "username"
	UserPasswordHashColumn = "password_hash"
	UserCreatedAtColumn    = "created_at"
)
