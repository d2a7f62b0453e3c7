package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/takumi-dev/go-user-management/internal/application"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/search"
	"github.com/takumi-dev/go-user-management/pkg/response"
	"github.com/takumi-dev/go-user-management/pkg/validation"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	Profile   *application.UserProfileUseCase
	Mail      service.EmailService
	Directory *search.UserDirectory
	Logger    *logrus.Logger
}

func NewUserHandler(profile *application.UserProfileUseCase, mail service.EmailService, directory *search.UserDirectory, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Profile: profile, Mail: mail, Directory: directory, Logger: logger}
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// Me GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString("userID")
	user, err := h.Profile.Get(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK,
		userPayload(user.ID, user.Name, user.Email.String(), user.Role.String(), user.IsActive),
		"profile", nil)
}

// UpdateMe PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Profile.Update(c.Request.Context(), application.UpdateProfileRequest{
		UserID: uid,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	_ = h.Directory.Index(c.Request.Context(), user)

	response.Success(c, http.StatusOK,
		userPayload(user.ID, user.Name, user.Email.String(), user.Role.String(), user.IsActive),
		"profile updated", nil)
}

// ResendConfirmation POST /api/users/me/confirmation/resend
func (h *UserHandler) ResendConfirmation(c *gin.Context) {
	uid := c.GetString("userID")
	user, err := h.Profile.Get(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Mail.SendConfirmationEmail(c.Request.Context(), user); err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Warn("resend confirmation failed")
		response.Error[any](c, http.StatusServiceUnavailable, "could not queue confirmation email", nil)
		return
	}
	response.Success[any](c, http.StatusAccepted, gin.H{"queued": true}, "confirmation email queued", nil)
}
