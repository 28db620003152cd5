package converter

import (
	"identity-service/internal/dto"
	"identity-service/internal/model"
)

func RoleToResponse(role *model.Role) *dto.RoleResponse {
	permissions := make([]string, len(role.Permissions))
	for i, perm := range role.Permissions {
		permissions[i] = perm.Name
	}
	return &dto.RoleResponse{
		Name:        role.Name,
		Description: role.Description,
		IsDefault:   role.IsDefault,
		Permissions: permissions,
	}
}
