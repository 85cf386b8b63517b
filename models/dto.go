package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is bound from a form-encoded body, not JSON.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserUpdateRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// PostRequest covers create and PUT. Every base field must be present;
// pointers distinguish an omitted field from a zero value.
type PostRequest struct {
	Title      *string    `json:"title" validate:"required,max=100"`
	Body       *string    `json:"body" validate:"required"`
	Image      *string    `json:"image" validate:"required"`
	Lat        *float64   `json:"lat" validate:"required"`
	Lng        *float64   `json:"lng" validate:"required"`
	Date       *DateOnly  `json:"date" validate:"required"`
	Time       *TimeOfDay `json:"time" validate:"required"`
	IsFree     *bool      `json:"is_free" validate:"required"`
	CategoryID *uint      `json:"category_id"`
}

// PostPatchRequest applies only the fields that are present.
type PostPatchRequest struct {
	Title      *string    `json:"title" validate:"omitempty,max=100"`
	Body       *string    `json:"body"`
	Image      *string    `json:"image"`
	Lat        *float64   `json:"lat"`
	Lng        *float64   `json:"lng"`
	Date       *DateOnly  `json:"date"`
	Time       *TimeOfDay `json:"time"`
	IsFree     *bool      `json:"is_free"`
	CategoryID *uint      `json:"category_id"`
}

// PostResponse flattens the owner to a username/id pair.
type PostResponse struct {
	ID         uint      `json:"id"`
	Owner      string    `json:"owner"`
	OwnerID    uint      `json:"owner_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Image      string    `json:"image"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Date       DateOnly  `json:"date"`
	Time       TimeOfDay `json:"time"`
	IsFree     bool      `json:"is_free"`
	CategoryID *uint     `json:"category_id"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type SetVIPResponse struct {
	Username string `json:"username"`
	IsVIP    bool   `json:"is_vip"`
}
