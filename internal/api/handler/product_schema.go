package handler

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
}

// updateProductRequest carries a partial update. Absent fields stay nil and
// are left untouched by the repository.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=0"`
}

type approveProductRequest struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}
