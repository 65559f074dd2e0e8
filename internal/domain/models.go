package domain

// OCRWord is a single recognized word with its optional bounding box.
type OCRWord struct {
	Text        string         `json:"text" validate:"required"`
	BoundingBox map[string]any `json:"boundingBox,omitempty"`
	Confidence  float64        `json:"confidence" validate:"gte=0,lte=1"`
}

// OCRPage holds the recognized text of one page.
type OCRPage struct {
	Text       string    `json:"text" validate:"required"`
	Words      []OCRWord `json:"words" validate:"dive"`
	Confidence float64   `json:"confidence" validate:"gte=0,lte=1"`
	Width      *int      `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height     *int      `json:"height,omitempty" validate:"omitempty,gt=0"`
}

// OCRInput is the OCR engine output handed to the parser. Only Text and
// Confidence are read; Pages and Metadata are carried for later use.
type OCRInput struct {
	Text       string         `json:"text"`
	Pages      []OCRPage      `json:"pages" validate:"dive"`
	Confidence float64        `json:"confidence" validate:"gte=0,lte=1"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Ticket is the structured weighbridge ticket extracted from OCR text.
// Weights are in kilograms. Absent fields are nil.
type Ticket struct {
	CompanyName     *string `json:"company_name,omitempty"`
	ProductName     *string `json:"product_name,omitempty"`
	VehicleNumber   *string `json:"vehicle_number,omitempty"`
	Date            *string `json:"date,omitempty"`
	InTime          *string `json:"in_time,omitempty"`
	OutTime         *string `json:"out_time,omitempty"`
	TotalWeight     *int    `json:"total_weight,omitempty"`
	EmptyWeight     *int    `json:"empty_weight,omitempty"`
	NetWeight       *int    `json:"net_weight,omitempty"`
	ConfidenceScore float64 `json:"confidence_score"`
	// Uncertain is reserved for a review gate; the parser never sets it.
	Uncertain    bool   `json:"uncertain"`
	OriginalText string `json:"original_text,omitempty"`
}

// WithoutOriginalText returns a copy of the ticket suitable for API responses.
func (t Ticket) WithoutOriginalText() Ticket {
	t.OriginalText = ""
	return t
}
