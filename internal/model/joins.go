package model

import "time"

// UserRole is the join row behind the User.Roles association. Declaring it
// explicitly (instead of letting GORM invent the table) gives the pair a
// composite primary key and a creation timestamp.
type UserRole struct {
	UserUUID  string    `gorm:"primaryKey;size:36" json:"user_uuid"`
	RoleUUID  string    `gorm:"primaryKey;size:36" json:"role_uuid"`
	CreatedAt time.Time `json:"created_at"`
}

// RolePermission is the join row behind Role.Permissions.
type RolePermission struct {
	RoleUUID       string    `gorm:"primaryKey;size:36" json:"role_uuid"`
	PermissionUUID string    `gorm:"primaryKey;size:36" json:"permission_uuid"`
	CreatedAt      time.Time `json:"created_at"`
}
