package dto

// ListParams holds the offset pagination query parameters shared by the
// simple listing endpoints.
type ListParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
