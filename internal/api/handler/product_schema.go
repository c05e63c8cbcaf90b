package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type imageRequest struct {
	URL        string `json:"url"                   validate:"required,url"`
	ExternalID string `json:"external_id,omitempty"`
}

type createProductRequest struct {
	Name         string         `json:"name"          validate:"required,max=50"`
	Description  string         `json:"description"   validate:"required,max=500"`
	Price        float64        `json:"price"         validate:"gte=0"`
	Category     string         `json:"category"      validate:"required,oneof=books electronics clothing home vehicles sports other"`
	Region       string         `json:"region"        validate:"required,oneof=north south east west central"`
	State        string         `json:"state"`
	City         string         `json:"city"`
	Images       []imageRequest `json:"images"        validate:"omitempty,dive"`
	ContactEmail string         `json:"contact_email" validate:"required,email"`
}

// updateProductRequest is a partial patch. Absent fields leave the stored
// value untouched; the owner has no field because it is immutable.
type updateProductRequest struct {
	Name         *string        `json:"name,omitempty"          validate:"omitempty,max=50"`
	Description  *string        `json:"description,omitempty"   validate:"omitempty,max=500"`
	Price        *float64       `json:"price,omitempty"         validate:"omitempty,gte=0"`
	Category     *string        `json:"category,omitempty"      validate:"omitempty,oneof=books electronics clothing home vehicles sports other"`
	Region       *string        `json:"region,omitempty"        validate:"omitempty,oneof=north south east west central"`
	State        *string        `json:"state,omitempty"`
	City         *string        `json:"city,omitempty"`
	Images       []imageRequest `json:"images,omitempty"        validate:"omitempty,dive"`
	ContactEmail *string        `json:"contact_email,omitempty" validate:"omitempty,email"`
	IsActive     *bool          `json:"is_active,omitempty"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// --- Messaging request types ---

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	ProductID   string `json:"product_id,omitempty"`
	Content     string `json:"content"      validate:"required"`
}
