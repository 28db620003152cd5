package constant

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Names of the reference permissions inserted by the database seeder. The
// middleware and tests refer to these instead of repeating string literals.
const (
	PermCanViewUser       = "CanViewUser"
	PermCanCreateUser     = "CanCreateUser"
	PermCanEditUser       = "CanEditUser"
	PermCanDeleteUser     = "CanDeleteUser"
	PermCanViewRole       = "CanViewRole"
	PermCanCreateRole     = "CanCreateRole"
	PermCanEditRole       = "CanEditRole"
	PermCanDeleteRole     = "CanDeleteRole"
	PermCanViewPermission = "CanViewPermission"
)

// Names of the reference roles inserted by the database seeder.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)
