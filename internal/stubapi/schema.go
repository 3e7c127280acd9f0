package stubapi

import "time"

// errorResponse is the platform's error envelope: {"error": "<message>"}.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=student teacher"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password"`
	Role     string `json:"role"     validate:"omitempty,oneof=student teacher"`
	UserID   string `json:"user_id"`
}

type deleteUserRequest struct {
	UserID string `json:"user_id"`
}

type createPostRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	Author      string    `json:"author"      validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}

type updatePostRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}
