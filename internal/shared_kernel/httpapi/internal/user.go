package internal

import (
	"time"

	"insurance-server/internal/shared_kernel/domain"
)

type UserCreateRequest struct {
	Username string `json:"username"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  string(user.Username),
		CreatedAt: user.CreatedAt.Time,
	}
}
