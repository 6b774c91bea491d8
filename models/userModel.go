package models

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// RegisterInput is the payload for creating a user account. The backend
// expects the raw password in the passwordHash field and hashes it itself.
type RegisterInput struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PasswordHash string `json:"passwordHash" binding:"required,min=6"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Role         string `json:"role,omitempty"`
}

type LoginData struct {
	Username     string `json:"username" binding:"required"`
	PasswordHash string `json:"passwordHash" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
