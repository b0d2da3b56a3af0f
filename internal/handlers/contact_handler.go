package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/validators"
)

// ContactHandler serves the platform-wide contact page content. There
// is a single ContactInfo row; Get creates an empty one on first read.
type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type UpdateContactRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
}

type SocialLinkRequest struct {
	Name    string `json:"name" binding:"required"`
	URL     string `json:"url" binding:"required"`
	IconURL string `json:"icon_url"`
}

func (h *ContactHandler) contactInfo() (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := h.db.Preload("SocialLinks").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.ContactInfo{}
		err = h.db.Create(&info).Error
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (h *ContactHandler) Get(c *gin.Context) {
	info, err := h.contactInfo()
	if err != nil {
		httperr.Internal(c, "failed_to_load_contact", "could not load contact info")
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *ContactHandler) Update(c *gin.Context) {
	info, err := h.contactInfo()
	if err != nil {
		httperr.Internal(c, "failed_to_load_contact", "could not load contact info")
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Phone != nil && !validators.IsPhoneNumberValid(*req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "phone must be 11 digits")
		return
	}

	if req.Name != nil {
		info.Name = *req.Name
	}
	if req.Description != nil {
		info.Description = *req.Description
	}
	if req.Phone != nil {
		info.Phone = *req.Phone
	}
	if req.Email != nil {
		info.Email = *req.Email
	}
	if req.Address != nil {
		info.Address = *req.Address
	}

	if err := h.db.Save(info).Error; err != nil {
		httperr.Internal(c, "failed_to_update_contact", "could not update contact info")
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *ContactHandler) AddSocialLink(c *gin.Context) {
	info, err := h.contactInfo()
	if err != nil {
		httperr.Internal(c, "failed_to_load_contact", "could not load contact info")
		return
	}

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	link := models.SocialLink{
		ContactID: info.ID,
		Name:      req.Name,
		URL:       req.URL,
		IconURL:   req.IconURL,
	}
	if err := h.db.Create(&link).Error; err != nil {
		httperr.Internal(c, "failed_to_create_link", "could not create social link")
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *ContactHandler) DeleteSocialLink(c *gin.Context) {
	linkID, ok := paramUint(c, "linkID")
	if !ok {
		httperr.BadRequest(c, "invalid_link_id", "link id must be numeric")
		return
	}

	res := h.db.Delete(&models.SocialLink{}, linkID)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_link", "could not delete social link")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "link_not_found", "social link not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
