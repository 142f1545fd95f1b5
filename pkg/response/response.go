package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
}

type SubmitResponse struct {
	JobID string `json:"jobId"`
}
