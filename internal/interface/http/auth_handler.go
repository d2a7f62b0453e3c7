package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/takumi-dev/go-user-management/internal/application"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/search"
	"github.com/takumi-dev/go-user-management/internal/interface/middleware"
	"github.com/takumi-dev/go-user-management/pkg/helpers"
	"github.com/takumi-dev/go-user-management/pkg/response"
	"github.com/takumi-dev/go-user-management/pkg/validation"
)

// AuthHandler serves registration, login, logout and token validation.
type AuthHandler struct {
	Register  *application.UserRegistrationUseCase
	Login     *application.UserLoginUseCase
	Logout    *application.UserLogoutUseCase
	Auth      *service.AuthService
	Directory *search.UserDirectory
	Logger    *logrus.Logger
	Cookies   *helpers.Manager
}

func NewAuthHandler(
	register *application.UserRegistrationUseCase,
	login *application.UserLoginUseCase,
	logout *application.UserLogoutUseCase,
	auth *service.AuthService,
	directory *search.UserDirectory,
	logger *logrus.Logger,
	cookieDomain string,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		Register:  register,
		Login:     login,
		Logout:    logout,
		Auth:      auth,
		Directory: directory,
		Logger:    logger,
		Cookies:   helpers.NewCookie(cookieDomain, cookieSecure),
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser POST /api/auth/register
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Register.Execute(c.Request.Context(), application.RegistrationRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	// Keep the search directory in sync, best-effort.
	_ = h.Directory.Index(c.Request.Context(), user)

	response.Success(c, http.StatusCreated,
		userPayload(user.ID, user.Name, user.Email.String(), user.Role.String(), user.IsActive),
		"user registered", nil)
}

// LoginUser POST /api/auth/login
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Login.Execute(c.Request.Context(), application.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.WithFields(logrus.Fields{"user_id": res.User.ID, "role": res.Role}).Info("login")

	if exp, ok := res.Token.ExpiresAt(); ok {
		h.Cookies.SetToken(c, res.Token.String(), exp)
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token.String(),
		"role":  res.Role,
		"user":  userPayload(res.User.ID, res.User.Name, res.User.Email.String(), res.Role, res.User.IsActive),
	}, "login successful", nil)
}

// LogoutUser POST /api/auth/logout
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	token := middleware.TokenFromRequest(c)
	if err := h.Logout.Execute(c.Request.Context(), application.LogoutRequest{Token: token}); err != nil {
		respondError(c, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// ValidateToken GET /api/auth/token/validate
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	raw := middleware.TokenFromRequest(c)
	valid := raw != "" && h.Auth.IsTokenValid(c.Request.Context(), valueobject.AuthTokenFromString(raw))
	response.Success(c, http.StatusOK, gin.H{"valid": valid}, "token validity", nil)
}
