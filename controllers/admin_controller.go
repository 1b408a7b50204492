package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/middleware"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/services"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

type AdminController struct {
	cfg   *config.Config
	media services.MediaService
}

func NewAdminController(cfg *config.Config, media services.MediaService) *AdminController {
	return &AdminController{cfg: cfg, media: media}
}

// POST /adminlogin
// Same coarse credential handling as /login, but the subject must hold the
// admin role.
func (ac *AdminController) AdminLogin(c *gin.Context) {
	login(c, ac.cfg, models.RoleAdmin)
}

// POST /adminlogout
func (ac *AdminController) AdminLogout(c *gin.Context) {
	logout(c, ac.cfg)
}

// POST /add-blog
// The image has already been externalized by the upload middleware; blog
// creation always goes through the image host, never local storage. When
// validation fails after the upload the fresh asset is removed so nothing
// orphans on the host.
func (ac *AdminController) CreateBlog(c *gin.Context) {
	result, ok := middleware.UploadResult(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image file is required"})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	categoryStr := strings.TrimSpace(c.PostForm("category"))

	if title == "" || description == "" || categoryStr == "" {
		discardUpload(c, ac.media, result.PublicID)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	categoryID, err := strconv.Atoi(categoryStr)
	if err != nil || categoryID <= 0 {
		discardUpload(c, ac.media, result.PublicID)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid category is required"})
		return
	}

	db := utils.GetDB()
	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		discardUpload(c, ac.media, result.PublicID)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		return
	}

	blog := models.Blog{
		Title:         title,
		Description:   description,
		CategoryID:    category.ID,
		Category:      category,
		ImageURL:      result.URL,
		ImagePublicID: result.PublicID,
	}
	if err := db.Create(&blog).Error; err != nil {
		discardUpload(c, ac.media, result.PublicID)
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Blog created successfully",
		"blog":    blogPayload(&blog),
	})
}
