package request_models

// ChatRequest carries the raw message; its type is checked by the input
// validator, not by binding.
type ChatRequest struct {
	Message any `json:"message"`
}

type CatalogSearchQuery struct {
	Query         string `form:"q"`
	DestinationID string `form:"destination_id" binding:"omitempty,uuid"`
	Limit         int    `form:"limit"`
}
