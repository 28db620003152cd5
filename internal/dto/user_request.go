package dto

type SearchUserRequest struct {
	Username string `json:"username" validate:"max=100"`
	Email    string `json:"email" validate:"max=200"`
	Page     int    `json:"page" validate:"min=1"`
	Size     int    `json:"size" validate:"min=1,max=100"`
}

func (r *SearchUserRequest) SetDefault() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = 10
	}
}

type CreateUserRequest struct {
	Username string   `json:"username" validate:"required,alphanum,min=3,max=50"`
	Email    string   `json:"email" validate:"required,email,max=200"`
	Password string   `json:"password" validate:"required,min=6,max=100"`
	FullName string   `json:"full_name" validate:"required,min=3,max=100"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty"`
}

type UpdateUserRequest struct {
	FullName    string   `json:"full_name" validate:"required,min=3,max=100"`
	PhoneNumber string   `json:"phone_number" validate:"omitempty,max=20"`
	Roles       []string `json:"roles,omitempty" validate:"omitempty"`
}

// UpdateExtraRequest replaces the caller's free-form profile document.
type UpdateExtraRequest struct {
	Interests   []string `json:"interests" validate:"omitempty,max=12,dive,required,max=50"`
	Preferences struct {
		Theme      string `json:"theme" validate:"omitempty,max=20"`
		Language   string `json:"language" validate:"omitempty,max=10"`
		Newsletter bool   `json:"newsletter"`
	} `json:"preferences"`
	SocialMedia struct {
		Twitter   string `json:"twitter" validate:"omitempty,max=100"`
		Instagram string `json:"instagram" validate:"omitempty,max=100"`
		LinkedIn  string `json:"linkedin" validate:"omitempty,max=100"`
		Website   string `json:"website" validate:"omitempty,url"`
	} `json:"social_media"`
}
