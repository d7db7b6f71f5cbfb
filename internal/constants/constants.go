package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Auth
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Items
const (
	MaxImagesPerItem = 3
)
