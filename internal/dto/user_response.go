package dto

import "identity-service/internal/model"

type UserResponse struct {
	UUID        string              `json:"uuid,omitempty"`
	Username    string              `json:"username,omitempty"`
	Email       string              `json:"email,omitempty"`
	FullName    string              `json:"full_name,omitempty"`
	CreatedAt   int64               `json:"created_at,omitempty"`
	UpdatedAt   int64               `json:"updated_at,omitempty"`
	Roles       []RoleResponse      `json:"roles,omitempty"`
	Permissions []string            `json:"permissions,omitempty"`
	Detail      *UserDetailResponse `json:"detail,omitempty"`
}

type RoleResponse struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	IsDefault   bool     `json:"is_default,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

type UserDetailResponse struct {
	BirthDate      string              `json:"birth_date,omitempty"`
	Address        string              `json:"address,omitempty"`
	IdentityNumber string              `json:"identity_number,omitempty"`
	UserType       int                 `json:"user_type"`
	Gender         int                 `json:"gender"`
	Nationality    int                 `json:"nationality"`
	Extra          model.ExtraDocument `json:"extra"`
}
