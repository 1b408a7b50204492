package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pankajvitaldeveloper/blog-backend/apperror"
	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/middleware"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/services"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

type BlogController struct {
	cfg   *config.Config
	media services.MediaService
}

func NewBlogController(cfg *config.Config, media services.MediaService) *BlogController {
	return &BlogController{cfg: cfg, media: media}
}

// GET /blogs
func (bc *BlogController) List(c *gin.Context) {
	var blogs []models.Blog
	if err := utils.GetDB().Preload("Category").Order("created_at desc").Find(&blogs).Error; err != nil {
		fail(c, err)
		return
	}
	if len(blogs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No blogs found"})
		return
	}
	items := make([]gin.H, 0, len(blogs))
	for i := range blogs {
		items = append(items, blogPayload(&blogs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": items})
}

// GET /recent-blogs
func (bc *BlogController) RecentBlogs(c *gin.Context) {
	var blogs []models.Blog
	if err := utils.GetDB().Preload("Category").Order("created_at desc").Limit(3).Find(&blogs).Error; err != nil {
		fail(c, err)
		return
	}
	if len(blogs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No recent blogs found"})
		return
	}
	items := make([]gin.H, 0, len(blogs))
	for i := range blogs {
		items = append(items, blogPayload(&blogs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": items})
}

// GET /blog/:id
// Anonymous callers get isLiked=false; a valid cookie resolves the caller
// without making the route require authentication.
func (bc *BlogController) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	db := utils.GetDB()
	var blog models.Blog
	if err := db.Preload("Category").First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog not found"})
		return
	}

	likesCount := bc.likesCount(db, blog.ID)
	isLiked := false
	if userID := bc.optionalUserID(c); userID != 0 {
		var n int64
		db.Table("user_favorites").
			Where("blog_id = ? AND user_id = ?", blog.ID, userID).
			Count(&n)
		isLiked = n > 0
	}

	payload := blogPayload(&blog)
	payload["isLiked"] = isLiked
	payload["likesCount"] = likesCount
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": payload})
}

type UpdateBlogRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PUT /blog/:id
// Partial update: only provided fields overwrite existing values; the image
// is replaced only when the pipeline produced a new reference this request.
func (bc *BlogController) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	// The pipeline has already externalized any new image; every failure exit
	// below must discard it or the asset orphans on the host.
	result, hasUpload := middleware.UploadResult(c)

	var req UpdateBlogRequest
	contentType := strings.ToLower(c.GetHeader("Content-Type"))
	if strings.HasPrefix(contentType, "multipart/form-data") {
		req.Title = c.PostForm("title")
		req.Description = c.PostForm("description")
		req.Category = c.PostForm("category")
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
			return
		}
	}

	db := utils.GetDB()
	var blog models.Blog
	if err := db.First(&blog, id).Error; err != nil {
		if hasUpload {
			discardUpload(c, bc.media, result.PublicID)
		}
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog not found"})
		return
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		blog.Title = title
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		blog.Description = description
	}
	if categoryStr := strings.TrimSpace(req.Category); categoryStr != "" {
		categoryID, err := strconv.Atoi(categoryStr)
		if err != nil || categoryID <= 0 {
			if hasUpload {
				discardUpload(c, bc.media, result.PublicID)
			}
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid category is required"})
			return
		}
		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			if hasUpload {
				discardUpload(c, bc.media, result.PublicID)
			}
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}
		blog.CategoryID = category.ID
	}

	oldPublicID := blog.ImagePublicID
	if hasUpload {
		blog.ImageURL = result.URL
		blog.ImagePublicID = result.PublicID
	}

	if err := db.Save(&blog).Error; err != nil {
		if hasUpload {
			discardUpload(c, bc.media, result.PublicID)
		}
		fail(c, err)
		return
	}
	// Only once the new reference is authoritative does the replaced asset go.
	if hasUpload && oldPublicID != "" {
		if err := bc.media.Destroy(c.Request.Context(), oldPublicID); err != nil {
			utils.LogError(err, "delete replaced blog image")
		}
	}
	db.Preload("Category").First(&blog, blog.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog updated successfully",
		"blog":    blogPayload(&blog),
	})
}

// DELETE /blog/:id
func (bc *BlogController) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	db := utils.GetDB()
	var blog models.Blog
	if err := db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog not found"})
		return
	}

	if err := db.Model(&blog).Association("LikedBy").Clear(); err != nil {
		fail(c, err)
		return
	}
	if err := db.Delete(&blog).Error; err != nil {
		fail(c, err)
		return
	}
	if blog.ImagePublicID != "" {
		if err := bc.media.Destroy(c.Request.Context(), blog.ImagePublicID); err != nil {
			utils.LogError(err, "delete blog image")
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog deleted successfully"})
}

// POST /blog/add-favorite/:id
// Both sides of the relation live in the user_favorites join table, so the
// insert and the counter refresh commit together or not at all.
func (bc *BlogController) AddFavorite(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	db := utils.GetDB()
	var blog models.Blog
	if err := db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog not found"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table("user_favorites").
			Where("blog_id = ? AND user_id = ?", blog.ID, user.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperror.NewConflictError("Blog already in favorites")
		}
		if err := tx.Model(user).Association("Favorites").Append(&blog); err != nil {
			return err
		}
		return bc.refreshLikes(tx, blog.ID)
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Blog added to favorites",
		"isLiked":    true,
		"likesCount": bc.likesCount(db, blog.ID),
	})
}

// POST /blog/remove-favorite/:id
// Removing a favorite that is not present is a silent no-op.
func (bc *BlogController) RemoveFavorite(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	db := utils.GetDB()
	var blog models.Blog
	if err := db.First(&blog, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog not found"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Association("Favorites").Delete(&blog); err != nil {
			return err
		}
		return bc.refreshLikes(tx, blog.ID)
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Blog removed from favorites",
		"isLiked":    false,
		"likesCount": bc.likesCount(db, blog.ID),
	})
}

// refreshLikes keeps the legacy counter equal to the join-table cardinality.
func (bc *BlogController) refreshLikes(tx *gorm.DB, blogID uint) error {
	var n int64
	if err := tx.Table("user_favorites").Where("blog_id = ?", blogID).Count(&n).Error; err != nil {
		return err
	}
	return tx.Model(&models.Blog{}).Where("id = ?", blogID).UpdateColumn("likes", n).Error
}

func (bc *BlogController) likesCount(db *gorm.DB, blogID uint) int64 {
	var n int64
	db.Table("user_favorites").Where("blog_id = ?", blogID).Count(&n)
	return n
}

// optionalUserID resolves the caller from the session cookie when present.
func (bc *BlogController) optionalUserID(c *gin.Context) uint {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		return 0
	}
	claims, err := utils.ParseJWT(token, bc.cfg.JWTSecret)
	if err != nil {
		return 0
	}
	return claims.UserID
}
