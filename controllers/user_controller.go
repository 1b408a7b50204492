package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/middleware"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/services"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

type UserController struct {
	cfg   *config.Config
	media services.MediaService
}

func NewUserController(cfg *config.Config, media services.MediaService) *UserController {
	return &UserController{cfg: cfg, media: media}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /register
// Registration issues a short-lived token in the body; it does not set the
// session cookie. Clients log in afterwards for the long-lived cookie.
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	if len(req.Username) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username must be at least 3 characters long"})
		return
	}
	if len(req.Password) < utils.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters long"})
		return
	}
	if !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is not valid"})
		return
	}

	db := utils.GetDB()
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		fail(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       hash,
		Role:           models.RoleUser,
		AvatarURL:      models.DefaultAvatarURL,
		AvatarPublicID: models.DefaultAvatarPublicID,
	}
	if err := db.Create(&user).Error; err != nil {
		// Unique index on username or email lost the race.
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, uc.cfg.JWTSecret, utils.RegisterTokenTTL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"token":   token,
		"user":    userPayload(&user),
	})
}

// login authenticates by email only and answers both unknown-email and
// wrong-password with the same generic body. requiredRole "" accepts any role.
func login(c *gin.Context, cfg *config.Config, requiredRole string) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	var user models.User
	if err := utils.GetDB().Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	if requiredRole != "" && user.Role != requiredRole {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied. Insufficient permissions"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, cfg.JWTSecret, utils.SessionTokenTTL)
	if err != nil {
		fail(c, err)
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    userPayload(&user),
	})
}

// logout blacklists the live token for its remaining lifetime and overwrites
// the cookie with an expired empty value. Idempotent.
func logout(c *gin.Context, cfg *config.Config) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil && token != "" {
		if rdb := utils.GetRedis(); rdb != nil {
			ttl := utils.SessionTokenTTL
			if claims, err := utils.ParseJWT(token, cfg.JWTSecret); err == nil && claims.ExpiresAt != nil {
				ttl = time.Until(claims.ExpiresAt.Time)
			}
			if ttl > 0 {
				rdb.Set(utils.RedisCtx(), "blacklist:"+token, "1", ttl)
			}
		}
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// POST /login
func (uc *UserController) Login(c *gin.Context) {
	login(c, uc.cfg, "")
}

// POST /logout
func (uc *UserController) Logout(c *gin.Context) {
	logout(c, uc.cfg)
}

// GET /check-cookie
// Public route: verifies the cookie inline, honoring revocations, and
// returns the resolved user.
func (uc *UserController) CheckCookie(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token found"})
		return
	}
	if middleware.TokenRevoked(token) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authentication token"})
		return
	}
	claims, err := utils.ParseJWT(token, uc.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authentication token"})
		return
	}
	var user models.User
	if err := utils.GetDB().First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token is valid",
		"user":    userPayload(&user),
	})
}

// GET /getprofiledata
func (uc *UserController) GetProfileData(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(user)})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// POST /changePassword
func (uc *UserController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	if len(req.NewPassword) < utils.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters long"})
		return
	}

	user := middleware.CurrentUser(c)
	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Current password is incorrect"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		fail(c, err)
		return
	}
	if err := utils.GetDB().Model(user).Update("password", hash).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}

// POST /update-avatar
// The upload middleware has already staged and externalized the file; the old
// asset is removed best-effort, never the default placeholder.
func (uc *UserController) UpdateAvatar(c *gin.Context) {
	user := middleware.CurrentUser(c)

	result, ok := middleware.UploadResult(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image upload failed or missing"})
		return
	}

	if user.AvatarPublicID != "" && user.AvatarPublicID != models.DefaultAvatarPublicID {
		if err := uc.media.Destroy(c.Request.Context(), user.AvatarPublicID); err != nil {
			utils.LogError(err, "delete old avatar")
		}
	}

	updates := map[string]interface{}{
		"avatar_url":       result.URL,
		"avatar_public_id": result.PublicID,
	}
	if err := utils.GetDB().Model(user).Updates(updates).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Avatar updated successfully",
		"data":    result,
	})
}
