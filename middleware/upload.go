package middleware

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pankajvitaldeveloper/blog-backend/services"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

// UploadField is the fixed multipart field name for the single accepted file.
const UploadField = "image"

const maxUploadSize = 5 << 20 // 5 MiB

const ctxUploadKey = "upload"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Upload stages the multipart file locally, forwards it to the image host and
// stores the resulting reference pair in the request context. The staged copy
// is removed on every exit path. With required=false a missing file is a
// no-op and downstream handlers keep whatever reference the entity already has.
func Upload(media services.MediaService, uploadDir string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

		file, err := c.FormFile(UploadField)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				if !required {
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Image file is required",
				})
				return
			}
			// MaxBytesReader trips during multipart parsing on oversize bodies.
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "File size too large. Maximum size is 5MB",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid upload request",
			})
			return
		}

		if file.Size > maxUploadSize {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "File size too large. Maximum size is 5MB",
			})
			return
		}
		if !allowedImageType(file) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid file type. Only JPEG, JPG, PNG and GIF allowed.",
			})
			return
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			utils.LogError(err, "create upload dir")
			abortUploadFailed(c)
			return
		}
		tmpName := fmt.Sprintf("%s-%d-%s%s",
			UploadField, time.Now().UnixNano(), uuid.NewString(), filepath.Ext(file.Filename))
		tmpPath := filepath.Join(uploadDir, tmpName)

		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			utils.LogError(err, "stage uploaded file")
			abortUploadFailed(c)
			return
		}
		defer os.Remove(tmpPath)

		result, err := media.Upload(c.Request.Context(), tmpPath)
		if err != nil {
			utils.LogError(err, "forward upload to image host")
			abortUploadFailed(c)
			return
		}

		c.Set(ctxUploadKey, result)
		c.Next()
	}
}

// UploadResult returns the reference pair produced by Upload this request.
func UploadResult(c *gin.Context) (services.UploadResult, bool) {
	if v, ok := c.Get(ctxUploadKey); ok {
		if res, ok := v.(services.UploadResult); ok {
			return res, true
		}
	}
	return services.UploadResult{}, false
}

func allowedImageType(file *multipart.FileHeader) bool {
	mime := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return allowedImageTypes[mime]
}

func abortUploadFailed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Image upload failed",
	})
}
