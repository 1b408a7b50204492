package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pankajvitaldeveloper/blog-backend/apperror"
	"github.com/pankajvitaldeveloper/blog-backend/middleware"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/services"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

// discardUpload removes a freshly externalized asset that will not be
// referenced after a failed request, so nothing orphans on the host.
func discardUpload(c *gin.Context, media services.MediaService, publicID string) {
	if err := media.Destroy(c.Request.Context(), publicID); err != nil {
		utils.LogError(err, "discard unused upload")
	}
}

// fail translates an error into the response envelope. Nothing propagates to
// the transport layer unhandled.
func fail(c *gin.Context, err error) {
	if ae, ok := apperror.FromError(err); ok {
		if ae.Err != nil {
			utils.LogError(ae.Err, c.FullPath())
		}
		c.JSON(ae.StatusCode(), gin.H{"success": false, "message": ae.Message})
		return
	}
	utils.LogError(err, c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal Server Error"})
}

func userPayload(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
		"avatar":   u.Avatar(),
	}
}

func categoryPayload(cat *models.Category) gin.H {
	return gin.H{
		"id":          cat.ID,
		"name":        cat.Name,
		"description": cat.Description,
		"slug":        cat.Slug,
	}
}

func blogPayload(b *models.Blog) gin.H {
	return gin.H{
		"id":          b.ID,
		"title":       b.Title,
		"description": b.Description,
		"categoryId":  b.CategoryID,
		"category":    gin.H{"id": b.Category.ID, "name": b.Category.Name},
		"image":       b.Image(),
		"likes":       b.Likes,
		"createdAt":   b.CreatedAt,
		"updatedAt":   b.UpdatedAt,
	}
}

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationError("Invalid id")
	}
	return uint(id), nil
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, token, int(utils.SessionTokenTTL/time.Second), "/", "", true, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
}
