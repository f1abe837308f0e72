package model

type PostFilters struct {
	Published *bool
	Tag       *string
	Limit     *int
	Offset    *int
}
