package models

// LoginRequest represents credentials provided by the client.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned upon successful authentication.
type LoginResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// ErrorResponse is the error shape for API errors.
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
