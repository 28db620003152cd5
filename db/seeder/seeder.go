package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"identity-service/internal/config/database"
	"identity-service/internal/constant"
	"identity-service/internal/dto"
	"identity-service/internal/model"
	"identity-service/internal/repository"
	"identity-service/internal/service"
)

// demoPassword is the shared password of the seeded demo accounts.
const demoPassword = "Password123"

// permissionCatalog is the fixed set of permissions the application knows.
var permissionCatalog = []string{
	constant.PermCanViewUser,
	constant.PermCanCreateUser,
	constant.PermCanEditUser,
	constant.PermCanDeleteUser,
	constant.PermCanViewRole,
	constant.PermCanCreateRole,
	constant.PermCanEditRole,
	constant.PermCanDeleteRole,
	constant.PermCanViewPermission,
}

var roleCatalog = []struct {
	name        string
	description string
	isDefault   bool
	permissions []string
}{
	{
		name:        constant.RoleAdmin,
		description: "Full access to users, roles and permissions",
		permissions: permissionCatalog,
	},
	{
		name:        constant.RoleManager,
		description: "Can view and edit users and roles",
		permissions: []string{
			constant.PermCanViewUser,
			constant.PermCanEditUser,
			constant.PermCanViewRole,
			constant.PermCanEditRole,
			constant.PermCanViewPermission,
		},
	},
	{
		name:        constant.RoleUser,
		description: "Regular account",
		isDefault:   true,
		permissions: []string{constant.PermCanViewUser},
	},
}

var demoUsers = []struct {
	username string
	email    string
	fullName string
	role     string
}{
	{"admin", "admin@example.com", "System Administrator", constant.RoleAdmin},
	{"manager", "manager@example.com", "Team Manager", constant.RoleManager},
	{"jsmith", "john.smith@example.com", "John Smith", constant.RoleUser},
	{"mjones", "mary.jones@example.com", "Mary Jones", constant.RoleUser},
}

var streetPool = []string{
	"1 Main Street",
	"22 Baker Street",
	"7 Elm Avenue",
	"14 Ocean Drive",
	"3 Maple Court",
	"98 Kings Road",
}

var interestPool = []string{
	"reading", "cycling", "photography", "cooking", "hiking", "gaming",
	"travel", "music", "gardening", "running", "painting", "chess",
}

// Seeder populates an empty database with the reference permissions, roles
// and a handful of demo accounts. Each step skips itself when its table
// already holds rows, so running it against a live database is safe.
type Seeder struct {
	db          *gorm.DB
	userService *service.UserService
	userRepo    *repository.UserRepository
	roleRepo    *repository.RoleRepository
	permRepo    *repository.PermissionRepository
	detailRepo  *repository.UserDetailRepository
	log         *logrus.Logger
	rnd         *rand.Rand
}

func NewSeeder(
	db *gorm.DB,
	userService *service.UserService,
	userRepo *repository.UserRepository,
	roleRepo *repository.RoleRepository,
	permRepo *repository.PermissionRepository,
	detailRepo *repository.UserDetailRepository,
	log *logrus.Logger,
) *Seeder {
	return &Seeder{
		db:          db,
		userService: userService,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		permRepo:    permRepo,
		detailRepo:  detailRepo,
		log:         log,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run migrates the schema and seeds every table in dependency order. The
// first error aborts the run.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.ensureSchema(); err != nil {
		s.log.WithError(err).Error("Failed to create database schema")
		return err
	}
	if err := database.RunMigrations(s.db); err != nil {
		return err
	}
	if err := s.seedPermissions(ctx); err != nil {
		return err
	}
	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	return s.seedUserDetails(ctx)
}

// ensureSchema creates the relational namespace the tables live in. The name
// is whatever table prefix the connection was opened with; only postgres
// understands schemas, the sqlite used in tests skips the step.
func (s *Seeder) ensureSchema() error {
	if s.db.Dialector.Name() != "postgres" {
		return nil
	}
	ns, ok := s.db.Config.NamingStrategy.(schema.NamingStrategy)
	if !ok || ns.TablePrefix == "" {
		return nil
	}
	name := strings.TrimSuffix(ns.TablePrefix, ".")
	return s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + name).Error
}

func (s *Seeder) seedPermissions(ctx context.Context) error {
	total, err := s.permRepo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		s.log.Info("Permissions already present, skipping")
		return nil
	}

	for _, name := range permissionCatalog {
		if err := s.permRepo.Create(ctx, &model.Permission{Name: name}); err != nil {
			return err
		}
	}

	s.log.WithField("count", len(permissionCatalog)).Info("Seeded permissions")
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	total, err := s.roleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		s.log.Info("Roles already present, skipping")
		return nil
	}

	for _, entry := range roleCatalog {
		perms, err := s.permRepo.FindByNames(ctx, entry.permissions)
		if err != nil {
			return err
		}
		if len(perms) != len(entry.permissions) {
			return fmt.Errorf("role %s references unknown permissions", entry.name)
		}

		role := &model.Role{
			Name:        entry.name,
			Description: entry.description,
			IsDefault:   entry.isDefault,
			Permissions: perms,
		}
		if err := s.roleRepo.Create(ctx, role); err != nil {
			return err
		}
	}

	s.log.WithField("count", len(roleCatalog)).Info("Seeded roles")
	return nil
}

// seedUsers creates the demo accounts through the user service so they go
// through the same validation and password hashing as API-created users.
func (s *Seeder) seedUsers(ctx context.Context) error {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		s.log.Info("Users already present, skipping")
		return nil
	}

	for _, entry := range demoUsers {
		request := &dto.CreateUserRequest{
			Username: entry.username,
			Email:    entry.email,
			Password: demoPassword,
			FullName: entry.fullName,
			Roles:    []string{entry.role},
		}
		if _, err := s.userService.CreateUser(ctx, request); err != nil {
			return err
		}
	}

	s.log.WithField("count", len(demoUsers)).Info("Seeded users")
	return nil
}

func (s *Seeder) seedUserDetails(ctx context.Context) error {
	total, err := s.detailRepo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		s.log.Info("User details already present, skipping")
		return nil
	}

	users, err := s.userRepo.FindAllWithoutDetail(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		detail := s.randomDetail(&users[i])
		if err := s.detailRepo.Create(ctx, detail); err != nil {
			return err
		}
	}

	s.log.WithField("count", len(users)).Info("Seeded user details")
	return nil
}

// randomDetail synthesizes a plausible profile for a demo account.
func (s *Seeder) randomDetail(user *model.User) *model.UserDetail {
	years := 18 + s.rnd.Intn(43)
	offsetDays := s.rnd.Intn(365) - 182
	birthDate := time.Now().AddDate(-years, 0, offsetDays)

	digits := make([]byte, 11)
	digits[0] = byte('1' + s.rnd.Intn(9))
	for i := 1; i < len(digits); i++ {
		digits[i] = byte('0' + s.rnd.Intn(10))
	}

	return &model.UserDetail{
		UserUUID:       user.UUID,
		BirthDate:      birthDate,
		Address:        streetPool[s.rnd.Intn(len(streetPool))],
		IdentityNumber: string(digits),
		UserType:       s.rnd.Intn(3),
		Gender:         s.rnd.Intn(3),
		Nationality:    1 + s.rnd.Intn(99),
		Extra:          s.randomExtra(user.Username),
	}
}

// randomExtra draws 2-4 distinct interests from the pool and fills the fixed
// preference and social media shapes.
func (s *Seeder) randomExtra(username string) model.ExtraDocument {
	count := 2 + s.rnd.Intn(3)
	picks := s.rnd.Perm(len(interestPool))[:count]
	interests := make([]string, count)
	for i, idx := range picks {
		interests[i] = interestPool[idx]
	}

	extra := model.ExtraDocument{Interests: interests}
	if s.rnd.Intn(2) == 0 {
		extra.Preferences.Theme = "light"
	} else {
		extra.Preferences.Theme = "dark"
	}
	extra.Preferences.Language = "en"
	extra.Preferences.Newsletter = s.rnd.Intn(2) == 0
	extra.SocialMedia.Twitter = "@" + username
	extra.SocialMedia.Website = "https://" + username + ".example.com"
	return extra
}
