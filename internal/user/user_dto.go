package user

// Filter is shared by the user list and the scoped student queries.
type Filter struct {
	Role   string
	Search string
	UE2    string
	UE3    string
	// ByUnit applies the ue2/ue3 match even when both are empty.
	ByUnit     bool
	ActiveOnly bool
}

type CreateUserRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=mahasiswa mentor pengurus"`
	Phone      string `json:"phone"`
	University string `json:"university"`
	Major      string `json:"major"`
	BirthPlace string `json:"birth_place"`
	BirthDate  string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address    string `json:"address"`
	Religion   string `json:"religion"`
	UE2        string `json:"ue2"`
	UE3        string `json:"ue3"`
}

// UpdateUserRequest leaves a field unchanged when it is nil. An empty password keeps the old one.
type UpdateUserRequest struct {
	FullName   *string `json:"full_name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	Role       *string `json:"role" binding:"omitempty,oneof=mahasiswa mentor pengurus"`
	Phone      *string `json:"phone"`
	University *string `json:"university"`
	Major      *string `json:"major"`
	BirthPlace *string `json:"birth_place"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address    *string `json:"address"`
	Religion   *string `json:"religion"`
	UE2        *string `json:"ue2"`
	UE3        *string `json:"ue3"`
	IsActive   *bool   `json:"is_active"`
}

type UserResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	University string `json:"university,omitempty"`
	Major      string `json:"major,omitempty"`
	BirthPlace string `json:"birth_place,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	Address    string `json:"address,omitempty"`
	Religion   string `json:"religion,omitempty"`
	UE2        string `json:"ue2,omitempty"`
	UE3        string `json:"ue3,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

type MentorSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type UserDetailResponse struct {
	UserResponse
	Mentor *MentorSummary `json:"mentor"`
}
