package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DocumentResponse is returned by the create and sign endpoints.
type DocumentResponse struct {
	Success bool   `json:"success"`
	FileID  string `json:"fileId,omitempty"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
