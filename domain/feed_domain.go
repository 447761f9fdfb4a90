package domain

import (
	"errors"
)

var (
	MessageSuccessGetFeed        = "feed retrieved successfully"
	MessageSuccessGetRecommended = "recommended listings retrieved successfully"
	MessageSuccessSearch         = "search completed successfully"

	MessageFailedGetFeed        = "failed to retrieve feed"
	MessageFailedGetRecommended = "failed to retrieve recommended listings"
	MessageFailedSearch         = "failed to search listings"

	ErrRemoteFetch       = errors.New("failed to fetch listings from store")
	ErrInvalidSortPolicy = errors.New("invalid sort policy")
)
