package model

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=120"`
	FullName string  `json:"full_name" validate:"required,fullname,max=200"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=13"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateClothingRequest struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Color    string  `json:"color" validate:"required,oneof=pink black white yellow"`
	Size     string  `json:"size" validate:"required,oneof=xs s m l xl xxl"`
	PhotoURL *string `json:"photo_url,omitempty" validate:"omitempty,url,max=255"`
}

type AuditQuery struct {
	Action  string
	ActorID string
	Limit   int
}
