package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service authenticates the single admin identity configured via environment
// and issues JWTs for the protected dataset-management routes.
type Service struct {
	secret        string
	adminEmail    string
	adminPassword string
}

func NewService(secret, adminEmail, adminPassword string) *Service {
	return &Service{secret: secret, adminEmail: adminEmail, adminPassword: adminPassword}
}

// Authenticate checks the credentials and returns a signed token.
func (s *Service) Authenticate(email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPassword == "" {
		return "", ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"email": email,
		"admin": true,
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Middleware returns the JWT middleware guarding every route registered after
// it.
func (s *Service) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(s.secret),
	})
}

type Handler struct {
	service *Service
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.login)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	token, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	return c.JSON(fiber.Map{"message": "Login successful", "token": token})
}
