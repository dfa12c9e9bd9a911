package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"userhub/internal/auth"
	apperrors "userhub/internal/errors"
	"userhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/loginOrRegister", authHandler.LoginOrRegister)

	// Secured routes (require a bearer token)
	users := api.Group("/users", BearerAuth(tokens))
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.AddUser)
	users.PUT("/:id", userHandler.UpdateUser)
}

// BearerAuth verifies Authorization bearer tokens and stores the verified
// claims in the request context under "user".
func BearerAuth(tokens *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Verification errors mean a token was extracted; anything else
			// means the Authorization header was missing or unusable.
			message := "No token provided"
			if errors.Is(err, apperrors.ErrInvalidToken) ||
				errors.Is(err, apperrors.ErrExpiredToken) ||
				errors.Is(err, apperrors.ErrMalformedToken) {
				message = "Invalid token"
			}
			return c.JSON(http.StatusUnauthorized, handler.Failure(message))
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
