package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessImportArchive = "recipe archive imported successfully"
	MessageFailedImportArchive  = "failed to import recipe archive"

	ErrInvalidArchive = errors.New("invalid recipe archive")
)

type (
	ImportArchiveRequest struct {
		Archive *multipart.FileHeader `json:"archive" form:"archive" validate:"required"`
	}

	ImportArchiveResponse struct {
		Categories  int `json:"categories"`
		Recipes     int `json:"recipes"`
		Ingredients int `json:"ingredients"`
		Usages      int `json:"usages"`
	}
)
