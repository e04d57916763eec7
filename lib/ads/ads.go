package ads

// CreateAdRequest is the validated create input. It only ever exists as the
// output of ValidateCreateAd; unknown input fields never survive into it.
type CreateAdRequest struct {
	Title       string
	Price       float64
	ImageBase64 string
}

// AdRecord is the persisted shape. CreatedAt and UpdatedAt are equal at
// creation; no update path exists here.
type AdRecord struct {
	Id        string  `json:"id" validate:"required"`
	Title     string  `json:"title" validate:"required,min=3"`
	Price     float64 `json:"price" validate:"gte=0"`
	ImageUrl  string  `json:"imageUrl,omitempty"`
	CreatedAt string  `json:"createdAt" validate:"required"`
	UpdatedAt string  `json:"updatedAt" validate:"required"`
}

// AdResponse is the caller-facing view of a freshly created record.
type AdResponse struct {
	Id        string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageUrl  string  `json:"imageUrl,omitempty"`
	CreatedAt string  `json:"createdAt"`
}
