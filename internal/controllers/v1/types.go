package v1

type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}

type Pagination struct {
	Count  int  `json:"count"`  // The amount of records returned in this response
	Total  int  `json:"total"`  // The total number of records matching the filter
	Offset uint `json:"offset"` // The offset for the first record returned
	Limit  int  `json:"limit"`  // The maximum number of records returned
}
