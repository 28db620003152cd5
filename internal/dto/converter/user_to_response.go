package converter

import (
	"identity-service/internal/dto"
	"identity-service/internal/model"
)

func UserToResponse(user *model.User) *dto.UserResponse {
	// Permissions flow through roles only; the flat list is the deduplicated
	// union in first-seen order.
	seen := make(map[string]struct{})
	permissions := make([]string, 0)

	roles := make([]dto.RoleResponse, len(user.Roles))
	for i, role := range user.Roles {
		names := make([]string, len(role.Permissions))
		for j, perm := range role.Permissions {
			names[j] = perm.Name
			if _, ok := seen[perm.Name]; !ok {
				seen[perm.Name] = struct{}{}
				permissions = append(permissions, perm.Name)
			}
		}
		roles[i] = dto.RoleResponse{
			Name:        role.Name,
			Description: role.Description,
			IsDefault:   role.IsDefault,
			Permissions: names,
		}
	}

	return &dto.UserResponse{
		UUID:        user.UUID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		CreatedAt:   user.CreatedAt.Unix(),
		UpdatedAt:   user.UpdatedAt.Unix(),
		Roles:       roles,
		Permissions: permissions,
		Detail:      DetailToResponse(user.Detail),
	}
}

func DetailToResponse(detail *model.UserDetail) *dto.UserDetailResponse {
	if detail == nil {
		return nil
	}
	birthDate := ""
	if !detail.BirthDate.IsZero() {
		birthDate = detail.BirthDate.Format("2006-01-02")
	}
	return &dto.UserDetailResponse{
		BirthDate:      birthDate,
		Address:        detail.Address,
		IdentityNumber: detail.IdentityNumber,
		UserType:       detail.UserType,
		Gender:         detail.Gender,
		Nationality:    detail.Nationality,
		Extra:          detail.Extra,
	}
}
