package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"modaly_backend/internals/configs"
	"modaly_backend/internals/features/users/auth/dto"
	"modaly_backend/internals/features/users/auth/model"
	helper "modaly_backend/internals/helpers"
)

var validateAuth = validator.New()

const (
	tokenTTL   = 24 * time.Hour
	authCookie = "access_token"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user model.User
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_email = ? AND user_is_active = ?", email, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same message as a wrong password, no account probing
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[AUTH] login lookup err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if configs.JWTSecret == "" {
		log.Println("[AUTH] JWT_SECRET is empty")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	exp := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":   user.UserID.String(),
		"email": user.UserEmail,
		"role":  "admin",
		"iat":   time.Now().Unix(),
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[AUTH] sign token err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp.Unix(),
		User:      dto.ToUserDTO(user),
	})
}

// =============================
// Logout
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	// Stateless JWT: logout just drops the cookie. The client discards its
	// copy of the token; anything it kept expires with the token TTL.
	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "logout success", nil)
}

// =============================
// Me (current admin)
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.User
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "ok", dto.ToUserDTO(user))
}
