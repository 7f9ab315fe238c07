package validation

import (
	"strings"
	"unicode/utf8"

	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
)

const (
	maxBoardTitleLen  = 100
	maxBoardDescLen   = 1000
	maxPostTitleLen   = 200
	maxPostContentLen = 20_000
	maxCommentLen     = 2000
)

type BoardValidator struct{}

func (v *BoardValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return internal_errors.New(internal_errors.Invalid, "Board title is required")
	}
	if utf8.RuneCountInString(title) > maxBoardTitleLen {
		return internal_errors.New(internal_errors.Invalid, "Board title is too long")
	}
	return nil
}

func (v *BoardValidator) Description(description string) error {
	if utf8.RuneCountInString(description) > maxBoardDescLen {
		return internal_errors.New(internal_errors.Invalid, "Board description is too long")
	}
	return nil
}

type PostValidator struct{}

func (v *PostValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return internal_errors.New(internal_errors.Invalid, "Post title is required")
	}
	if utf8.RuneCountInString(title) > maxPostTitleLen {
		return internal_errors.New(internal_errors.Invalid, "Post title is too long")
	}
	return nil
}

func (v *PostValidator) Content(content string) error {
	if len(content) == 0 {
		return internal_errors.New(internal_errors.Invalid, "Post content is required")
	}
	if utf8.RuneCountInString(content) > maxPostContentLen {
		return internal_errors.New(internal_errors.Invalid, "Post content is too long")
	}
	return nil
}

type CommentValidator struct{}

func (v *CommentValidator) Content(content string) error {
	if len(content) == 0 {
		return internal_errors.New(internal_errors.Invalid, "Comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return internal_errors.New(internal_errors.Invalid, "Comment content is too long")
	}
	return nil
}
