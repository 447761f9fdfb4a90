package domain

import (
	"errors"
)

var (
	MessageSuccessGetCategories = "categories retrieved successfully"
	MessageFailedGetCategories  = "failed to retrieve categories"

	ErrCategoryNotFound = errors.New("category not found")
)

type (
	CategoryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
)
