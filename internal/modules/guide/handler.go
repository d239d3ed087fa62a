package guide

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"balitrip/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service   *Service
	uploadDir string
}

func NewHandler(service *Service, uploadDir string) *Handler {
	return &Handler{
		service:   service,
		uploadDir: uploadDir,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	guides := rg.Group("/guides")
	{
		guides.GET("", h.GetGuides)
		guides.POST("/apply", h.Apply)
	}
}

// GetGuides handles GET /api/v1/guides
func (h *Handler) GetGuides(c *gin.Context) {
	guides, err := h.service.ListGuides(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tour guides")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"guides": guides,
	})
}

// Apply handles POST /api/v1/guides/apply. Multipart form; every validation
// failure is collected and returned together so the form can show all of
// them at once.
func (h *Handler) Apply(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse form")
		return
	}

	input := ApplicationInput{
		Contact:     c.PostForm("contact"),
		Name:        c.PostForm("name"),
		Language:    c.PostForm("language"),
		Price:       c.PostForm("price"),
		Description: c.PostForm("description"),
		Picture:     c.PostForm("picture"),
	}

	cvFile, err := c.FormFile("cvFile")
	cvFilename := ""
	if err == nil && cvFile != nil {
		cvFilename = cvFile.Filename
	}

	if errs := ValidateApplication(input, cvFilename); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  errs,
		})
		return
	}

	if err := os.MkdirAll(h.uploadDir, os.ModePerm); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to create upload directory")
		return
	}

	savePath := filepath.Join(h.uploadDir, CVFileName(input.Name, time.Now()))
	if err := c.SaveUploadedFile(cvFile, savePath); err != nil {
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save CV file")
		return
	}

	guide, err := h.service.Apply(c.Request.Context(), input, savePath)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SUBMISSION_FAILED", "Failed to submit application")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Application submitted successfully and added to tour guide list.",
		"guide_id": guide.PublicID,
	})
}
