package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/louk-2005/AppointmentSite/internal/httperr"
	"github.com/louk-2005/AppointmentSite/internal/httpresp"
	"github.com/louk-2005/AppointmentSite/internal/models"
	"github.com/louk-2005/AppointmentSite/internal/storage"
)

type ServiceHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewServiceHandler(db *gorm.DB, images *storage.ImageStore) *ServiceHandler {
	return &ServiceHandler{db: db, images: images}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"min=0"`
	Price           float64 `json:"price" binding:"min=0"`
	Show            bool    `json:"show"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Show            *bool    `json:"show,omitempty"`
}

// --------- Handlers ---------

// ListPublic returns the published catalog of one salon, with an
// optional name/description search.
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	salonID, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "salon id must be numeric")
		return
	}

	q := h.db.
		Where("salon_id = ? AND show = ?", salonID, true)

	if query := strings.TrimSpace(strings.ToLower(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "could not list services")
		return
	}

	httpresp.List(c, services)
}

// List returns the full catalog, hidden entries included, for the
// owning manager.
func (h *ServiceHandler) List(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "could not list services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		SalonID:         salon.ID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Show:            req.Show,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "could not create service")
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	service, ok := h.ownedService(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Show != nil {
		service.Show = *req.Show
	}

	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "could not update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	service, ok := h.ownedService(c)
	if !ok {
		return
	}

	if err := h.db.Delete(service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "could not delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadImage replaces the catalog picture, downscaled to the catalog
// display resolution.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	service, ok := h.ownedService(c)
	if !ok {
		return
	}

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
		c.Request.Context(), "services", data,
		storage.CatalogImageWidth, storage.CatalogImageHeight,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "could not store image")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "could not update service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// ownedService resolves :serviceID within the manager's salon from :id.
func (h *ServiceHandler) ownedService(c *gin.Context) (*models.Service, bool) {
	salon, ok := ownedSalon(c, h.db)
	if !ok {
		return nil, false
	}

	serviceID, ok := paramUint(c, "serviceID")
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "service id must be numeric")
		return nil, false
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND salon_id = ?", serviceID, salon.ID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "service not found")
		return nil, false
	}
	return &service, true
}
