package http

// APIResponse represents the standard error envelope. Successful dashboard
// responses are bare payloads; only failures get wrapped.
type APIResponse struct {
	Status  int         `json:"status" example:"400"`
	Message string      `json:"message" example:"Bad Request"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"name"`
	Message string                 `json:"message,omitempty" example:"Name is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
