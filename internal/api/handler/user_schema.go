package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Type     string `json:"type"     validate:"omitempty,oneof=user admin"`
}

// updateUserRequest is a selective patch: absent fields leave the
// account untouched, which is why every field is a pointer.
type updateUserRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Type     *string `json:"type"     validate:"omitempty,oneof=user admin"`
}

// --- Response types ---

// Response-only types owned by the transport layer. They are
// intentionally separate from domain types so the JSON contract cannot
// grow a credential hash field by accident.

type userResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type updateUserResponse struct {
	User             userResponse `json:"user"`
	TokenInvalidated bool         `json:"tokenInvalidated,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
