package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/middleware"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/storage"
	"github.com/louk-2005/AppointmentSite/internal/validators"
)

type MeHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewMeHandler(db *gorm.DB, images *storage.ImageStore) *MeHandler {
	return &MeHandler{db: db, images: images}
}

type UpdateMeRequest struct {
	Username    *string `json:"username,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.PhoneNumber != nil {
		if !validators.IsPhoneNumberValid(*req.PhoneNumber) {
			httperr.BadRequest(c, "invalid_phone_number", "phone number must be exactly 11 digits")
			return
		}
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "could not update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadImage replaces the profile picture. Stored downscaled to
// 300x300, like every other profile image on the platform.
func (h *MeHandler) UploadImage(c *gin.Context) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	userID := userIDVal.(uint)

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 10<<20))
	if err != nil {
		httperr.BadRequest(c, "unreadable_image", "could not read image")
		return
	}

	url, err := h.images.Upload(
		c.Request.Context(), "profile_pics", data,
		storage.ProfileImageSize, storage.ProfileImageSize,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "could not store image")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "could not update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
