package errcode

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// Authentication Errors
	ErrInvalidEmailOrPassword = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid token")
	ErrUnexpectedSignMethod   = errors.New("unexpected token signing method")
	ErrAuthorizationHeader    = errors.New("authorization header is required")
	ErrBearerHeader           = errors.New("authorization header must use the Bearer scheme")
	ErrAccessTokenMissing     = errors.New("access token is missing")
	ErrTokenIsExpired         = errors.New("token is expired")
	ErrUnauthorized           = errors.New("unauthorized")

	// Authorization Errors
	ErrPermissionDenied = errors.New("permission denied")

	// User Errors
	ErrUserNotFound     = errors.New("user not found")
	ErrUserSearchFailed = errors.New("failed to retrieve users")

	// Role Errors
	ErrRoleNotFound        = errors.New("role not found")
	ErrDefaultRoleNotFound = errors.New("no default role is configured")

	// Profile Errors
	ErrUserDetailNotFound = errors.New("user detail not found")

	// Registration Errors
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrPasswordEncryption  = errors.New("password encryption error")
	ErrUserCreationFailed  = errors.New("user creation failed")
	ErrDatabaseTransaction = errors.New("database transaction failed")
	ErrDatabaseError       = errors.New("database error")

	// Token Errors
	ErrAccessTokenGeneration  = errors.New("could not generate access token")
	ErrRefreshTokenGeneration = errors.New("could not generate refresh token")

	// Cache Errors
	ErrRedisGet = errors.New("failed to read from redis")
	ErrRedisSet = errors.New("failed to write to redis")

	// Common Errors
	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("internal server error")
)

// errorStatusMap maps application errors to their respective HTTP status codes
var errorStatusMap = map[error]int{
	// 401 Unauthorized Errors
	ErrInvalidEmailOrPassword: fiber.StatusUnauthorized,
	ErrInvalidToken:           fiber.StatusUnauthorized,
	ErrUnexpectedSignMethod:   fiber.StatusUnauthorized,
	ErrAuthorizationHeader:    fiber.StatusUnauthorized,
	ErrBearerHeader:           fiber.StatusUnauthorized,
	ErrAccessTokenMissing:     fiber.StatusUnauthorized,
	ErrTokenIsExpired:         fiber.StatusUnauthorized,
	ErrUnauthorized:           fiber.StatusUnauthorized,

	// 403 Forbidden Errors
	ErrPermissionDenied: fiber.StatusForbidden,

	// 404 Not Found Errors
	ErrUserNotFound:        fiber.StatusNotFound,
	ErrRoleNotFound:        fiber.StatusNotFound,
	ErrUserDetailNotFound:  fiber.StatusNotFound,
	ErrDefaultRoleNotFound: fiber.StatusNotFound,

	// 409 Conflict Errors
	ErrUserAlreadyExists: fiber.StatusConflict,

	// 500 Internal Server Errors
	ErrDatabaseError:          fiber.StatusInternalServerError,
	ErrDatabaseTransaction:    fiber.StatusInternalServerError,
	ErrPasswordEncryption:     fiber.StatusInternalServerError,
	ErrUserCreationFailed:     fiber.StatusInternalServerError,
	ErrAccessTokenGeneration:  fiber.StatusInternalServerError,
	ErrRefreshTokenGeneration: fiber.StatusInternalServerError,
	ErrRedisGet:               fiber.StatusInternalServerError,
	ErrRedisSet:               fiber.StatusInternalServerError,
	ErrInternalServerError:    fiber.StatusInternalServerError,

	// 400 Bad Request Errors
	ErrBadRequest:       fiber.StatusBadRequest,
	ErrUserSearchFailed: fiber.StatusBadRequest,
}

// GetHTTPStatus retrieves the HTTP status code for a given error.
func GetHTTPStatus(err error) (int, bool) {
	statusCode, exists := errorStatusMap[err]
	return statusCode, exists
}
