package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/takumi-dev/go-user-management/internal/application"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/search"
	"github.com/takumi-dev/go-user-management/pkg/helpers"
	"github.com/takumi-dev/go-user-management/pkg/response"
	"github.com/takumi-dev/go-user-management/pkg/validation"
)

// AdminHandler serves super-admin bootstrap, super-admin login, admin
// registration and the user directory search.
type AdminHandler struct {
	RegisterSuper *application.SuperAdminRegistrationUseCase
	LoginSuper    *application.SuperAdminLoginUseCase
	RegisterAdmin *application.AdminRegistrationUseCase
	Profile       *application.UserProfileUseCase
	Directory     *search.UserDirectory
	Logger        *logrus.Logger
	Cookies       *helpers.Manager
}

func NewAdminHandler(
	registerSuper *application.SuperAdminRegistrationUseCase,
	loginSuper *application.SuperAdminLoginUseCase,
	registerAdmin *application.AdminRegistrationUseCase,
	profile *application.UserProfileUseCase,
	directory *search.UserDirectory,
	logger *logrus.Logger,
	cookieDomain string,
	cookieSecure bool,
) *AdminHandler {
	return &AdminHandler{
		RegisterSuper: registerSuper,
		LoginSuper:    loginSuper,
		RegisterAdmin: registerAdmin,
		Profile:       profile,
		Directory:     directory,
		Logger:        logger,
		Cookies:       helpers.NewCookie(cookieDomain, cookieSecure),
	}
}

// RegisterSuperAdmin POST /api/admin/super/register
func (h *AdminHandler) RegisterSuperAdmin(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.RegisterSuper.Execute(c.Request.Context(), application.RegistrationRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.WithField("user_id", user.ID).Info("super-admin registered")
	_ = h.Directory.Index(c.Request.Context(), user)

	response.Success(c, http.StatusCreated,
		userPayload(user.ID, user.Name, user.Email.String(), user.Role.String(), user.IsActive),
		"super-admin registered", nil)
}

// LoginSuperAdmin POST /api/admin/super/login
func (h *AdminHandler) LoginSuperAdmin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.LoginSuper.Execute(c.Request.Context(), application.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if exp, ok := res.Token.ExpiresAt(); ok {
		h.Cookies.SetToken(c, res.Token.String(), exp)
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token.String(),
		"user":  userPayload(res.User.ID, res.User.Name, res.User.Email.String(), res.Role, res.User.IsActive),
	}, "login successful", nil)
}

// CreateAdmin POST /api/admin/register (super-admin only)
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.RegisterAdmin.Execute(c.Request.Context(), application.AdminRegistrationRequest{
		ActorID:  c.GetString("userID"),
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.WithFields(logrus.Fields{"user_id": user.ID, "actor_id": c.GetString("userID")}).Info("admin registered")
	_ = h.Directory.Index(c.Request.Context(), user)

	response.Success(c, http.StatusCreated,
		userPayload(user.ID, user.Name, user.Email.String(), user.Role.String(), user.IsActive),
		"admin registered", nil)
}

// SearchUsers GET /api/admin/users/search?q=...&size=... (admin only)
func (h *AdminHandler) SearchUsers(c *gin.Context) {
	actor, err := h.Profile.Get(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !actor.IsAdmin() {
		response.Error[any](c, http.StatusForbidden, "admin privileges are required", nil)
		return
	}

	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Directory.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "user search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
