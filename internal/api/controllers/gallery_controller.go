package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lotus/internal/models/request_models"
	"lotus/internal/services"
	"lotus/pkg/utils"
)

type GalleryController struct {
	galleryService services.GalleryServiceInterface
}

func NewGalleryController(galleryService services.GalleryServiceInterface) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

func (g *GalleryController) ListImages(c *gin.Context) {
	images, err := g.galleryService.ListImages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, images, "Images fetched successfully")
}

func (g *GalleryController) GetImage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Image ID is required")
		return
	}

	image, err := g.galleryService.GetImage(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, image, "Image fetched successfully")
}

// GetImageData streams the raw bytes; this is the only endpoint that
// touches the binary column.
func (g *GalleryController) GetImageData(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Image ID is required")
		return
	}

	mimeType, data, err := g.galleryService.GetImageData(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, mimeType, data)
}

func (g *GalleryController) GetThumbnail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Image ID is required")
		return
	}

	width, err := strconv.Atoi(c.DefaultQuery("w", "400"))
	if err != nil || width < 1 || width > 2000 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid thumbnail width")
		return
	}
	height, err := strconv.Atoi(c.DefaultQuery("h", "300"))
	if err != nil || height < 1 || height > 2000 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid thumbnail height")
		return
	}

	thumb, err := g.galleryService.GetThumbnail(c.Request.Context(), id, width, height)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/jpeg", thumb)
}

// UploadImages accepts a multipart batch under the "files" field.
func (g *GalleryController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Multipart form is required")
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "At least one file is required")
		return
	}

	files := make([]request_models.FileUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			// unreadable file joins the batch as a guaranteed failure
			files = append(files, request_models.FileUpload{Filename: fh.Filename})
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			files = append(files, request_models.FileUpload{Filename: fh.Filename})
			continue
		}
		files = append(files, request_models.FileUpload{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	report, err := g.galleryService.UploadImages(c.Request.Context(), files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "All files uploaded"
	if report.Failed > 0 {
		message = "Some files failed to upload"
	}
	utils.RespondSuccess(c, report, message)
}

func (g *GalleryController) UpdateImage(c *gin.Context) {
	var req request_models.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	image, err := g.galleryService.UpdateImage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, image, "Image updated successfully")
}

func (g *GalleryController) DeleteImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid image ID")
		return
	}

	if err := g.galleryService.DeleteImage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Image deleted successfully")
}
