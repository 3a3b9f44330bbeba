package auth

import "go-magang/internal/user"

type RegisterRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	University string `json:"university"`
	Major      string `json:"major"`
	BirthPlace string `json:"birth_place"`
	BirthDate  string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address    string `json:"address"`
	Religion   string `json:"religion"`
	UE2        string `json:"ue2"`
	UE3        string `json:"ue3"`
	Role       string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    user.UserResponse `json:"user"`
}
