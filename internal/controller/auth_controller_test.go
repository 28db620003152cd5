package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"identity-service/internal/config/database"
	"identity-service/internal/config/env"
	"identity-service/internal/config/validation"
	"identity-service/internal/config/web"
	"identity-service/internal/constant"
	"identity-service/internal/dto"
	"identity-service/internal/model"
	"identity-service/internal/repository"
	"identity-service/internal/service"
	"identity-service/internal/utils/errcode"
)

// helper: config with just the sections the handlers touch
func testEnvConfig() *env.Config {
	cfg := &env.Config{}
	cfg.App.Name = "identity-service-test"
	cfg.JWT.Secret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessTokenExpiration = 60
	cfg.JWT.RefreshTokenExpiration = 120
	return cfg
}

// helper: silent logger
func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// controllerStack wires real services onto sqlite and miniredis so handler
// tests go through the same pipeline the app serves, including the global
// error handler from web.NewFiber.
type controllerStack struct {
	db         *gorm.DB
	redis      *miniredis.Miniredis
	config     *env.Config
	log        *logrus.Logger
	validation *validation.Validation
	jwt        *service.JwtService
	blacklist  *service.BlacklistService
	auth       *service.AuthService
	users      *service.UserService
	roles      *service.RoleService
	app        *fiber.App
}

func newControllerStack(t *testing.T) *controllerStack {
	t.Helper()

	log := testLogger()
	cfg := testEnvConfig()

	dsn := "file:ctrl_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	detailRepo := repository.NewUserDetailRepository(db)

	val := validation.NewValidation()
	redisSvc := service.NewRedisService(client, log)
	jwtSvc := service.NewJwtService(log, cfg)
	blacklist := service.NewBlacklistService(jwtSvc, repository.NewRedisTokenBlacklist(client))

	return &controllerStack{
		db:         db,
		redis:      mr,
		config:     cfg,
		log:        log,
		validation: val,
		jwt:        jwtSvc,
		blacklist:  blacklist,
		auth:       service.NewAuthService(db, jwtSvc, userRepo, roleRepo, blacklist, log),
		users:      service.NewUserService(db, userRepo, roleRepo, detailRepo, redisSvc, val, log),
		roles:      service.NewRoleService(roleRepo, redisSvc, log),
		app:        web.NewFiber(log, cfg),
	}
}

// helper: role with its permissions, duplicated here for local test scope
func seedRole(t *testing.T, db *gorm.DB, name string, isDefault bool, permNames ...string) *model.Role {
	t.Helper()
	perms := make([]model.Permission, len(permNames))
	for i, permName := range permNames {
		perm := model.Permission{Name: permName}
		require.NoError(t, db.Where("name = ?", permName).FirstOrCreate(&perm).Error)
		perms[i] = perm
	}
	role := &model.Role{Name: name, IsDefault: isDefault, Permissions: perms}
	require.NoError(t, db.Create(role).Error)
	return role
}

// helper: user with a bcrypt-hashed password and the given roles
func seedUser(t *testing.T, db *gorm.DB, username, email, password string, roles ...model.Role) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		FullName: "Test " + username,
		Roles:    roles,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// helper: JSON POST against the app under test
func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthController_Register(t *testing.T) {
	stack := newControllerStack(t)
	seedRole(t, stack.db, constant.RoleUser, true, constant.PermCanViewUser)

	ctrl := NewAuthController(stack.auth, stack.log, stack.validation)
	stack.app.Post("/api/auth/register", ctrl.Register)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/register",
			`{"username":"newuser","email":"new@example.com","password":"secret123","full_name":"New User"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.WebResponse[*dto.UserResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, "newuser", out.Data.Username)
		require.Equal(t, "new@example.com", out.Data.Email)
		require.NotEmpty(t, out.Data.UUID)
		require.Len(t, out.Data.Roles, 1)
		require.Equal(t, constant.RoleUser, out.Data.Roles[0].Name)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/register",
			`{"username":"another","email":"new@example.com","password":"secret123","full_name":"Another User"}`)
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, errcode.ErrUserAlreadyExists.Error(), out.Message)
	})

	t.Run("ValidationError", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/register", `{"username":"ab"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, "Validation failed", out.Message)
		require.Contains(t, out.Errors, "username")
		require.Contains(t, out.Errors, "email")
		require.Contains(t, out.Errors, "password")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/register", `{"username":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, errcode.ErrBadRequest.Error(), out.Message)
	})
}

func TestAuthController_Login(t *testing.T) {
	stack := newControllerStack(t)
	role := seedRole(t, stack.db, constant.RoleUser, true, constant.PermCanViewUser)
	seedUser(t, stack.db, "jdoe", "jdoe@example.com", "secret123", *role)

	ctrl := NewAuthController(stack.auth, stack.log, stack.validation)
	stack.app.Post("/api/auth/login", ctrl.Login)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/login",
			`{"email":"jdoe@example.com","password":"secret123"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.WebResponse[*dto.LoginResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.NotEmpty(t, out.Data.AccessToken)
		require.NotEmpty(t, out.Data.RefreshToken)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/login",
			`{"email":"jdoe@example.com","password":"nope123"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, errcode.ErrInvalidEmailOrPassword.Error(), out.Message)
	})

	// Unknown accounts and wrong passwords produce the same response body.
	t.Run("UnknownEmail", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/login",
			`{"email":"ghost@example.com","password":"secret123"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, errcode.ErrInvalidEmailOrPassword.Error(), out.Message)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/login", `{"email":"jdoe@example.com"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Contains(t, out.Errors, "password")
	})
}

func TestAuthController_RefreshAndLogout(t *testing.T) {
	stack := newControllerStack(t)
	role := seedRole(t, stack.db, constant.RoleUser, true, constant.PermCanViewUser)
	seedUser(t, stack.db, "jdoe", "jdoe@example.com", "secret123", *role)

	ctrl := NewAuthController(stack.auth, stack.log, stack.validation)
	stack.app.Post("/api/auth/login", ctrl.Login)
	stack.app.Post("/api/auth/refresh-token", ctrl.RefreshToken)
	stack.app.Post("/api/auth/logout", ctrl.Logout)

	resp := postJSON(t, stack.app, "/api/auth/login",
		`{"email":"jdoe@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.WebResponse[*dto.LoginResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))

	accessToken := login.Data.AccessToken
	refreshToken := login.Data.RefreshToken

	t.Run("RefreshSuccess", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/refresh-token",
			`{"refresh_token":"`+refreshToken+`"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.WebResponse[*dto.RefreshTokenResponse]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.NotEmpty(t, out.Data.AccessToken)
		require.NotEmpty(t, out.Data.RefreshToken)

		accessToken = out.Data.AccessToken
		refreshToken = out.Data.RefreshToken
	})

	t.Run("RefreshGarbage", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/refresh-token", `{"refresh_token":"garbage"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, errcode.ErrInvalidToken.Error(), out.Message)
	})

	t.Run("RefreshMissingField", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/refresh-token", `{}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Contains(t, out.Errors, "refresh_token")
	})

	t.Run("LogoutSuccess", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/logout",
			`{"access_token":"`+accessToken+`","refresh_token":"`+refreshToken+`"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.WebResponse[string]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, "Logout successful", out.Data)
	})

	t.Run("RefreshAfterLogout", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/refresh-token",
			`{"refresh_token":"`+refreshToken+`"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Equal(t, errcode.ErrUnauthorized.Error(), out.Message)
	})

	t.Run("LogoutMissingFields", func(t *testing.T) {
		resp := postJSON(t, stack.app, "/api/auth/logout", `{}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var out dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Contains(t, out.Errors, "access_token")
		require.Contains(t, out.Errors, "refresh_token")
	})
}
