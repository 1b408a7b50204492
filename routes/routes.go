package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/controllers"
	"github.com/pankajvitaldeveloper/blog-backend/middleware"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/services"
)

// SetupRouter builds the gin.Engine and registers every route. All
// dependencies arrive explicitly; nothing reads the environment here.
func SetupRouter(cfg *config.Config, media services.MediaService, mailer services.Mailer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Set-Cookie"},
		AllowCredentials: true,
	}))

	userController := controllers.NewUserController(cfg, media)
	adminController := controllers.NewAdminController(cfg, media)
	blogController := controllers.NewBlogController(cfg, media)
	categoryController := controllers.NewCategoryController()
	contactController := controllers.NewContactController(cfg, mailer)

	auth := middleware.Authenticate(cfg)
	userOnly := middleware.RequireRole(models.RoleUser)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running with api!")
	})

	// User routes
	r.POST("/register", userController.Register)
	r.POST("/login", userController.Login)
	r.POST("/logout", userController.Logout)
	r.GET("/check-cookie", userController.CheckCookie)
	r.GET("/getprofiledata", auth, userOnly, userController.GetProfileData)
	r.POST("/changePassword", auth, userOnly, userController.ChangePassword)
	r.POST("/update-avatar", auth, userOnly,
		middleware.Upload(media, cfg.UploadDir, true), userController.UpdateAvatar)

	// Admin routes
	r.POST("/adminlogin", adminController.AdminLogin)
	r.POST("/adminlogout", adminController.AdminLogout)
	r.POST("/add-blog", auth, adminOnly,
		middleware.Upload(media, cfg.UploadDir, true), adminController.CreateBlog)

	// Blog routes
	r.GET("/blogs", blogController.List)
	r.GET("/blog/:id", blogController.GetByID)
	r.GET("/recent-blogs", blogController.RecentBlogs)
	r.PUT("/blog/:id", auth, adminOnly,
		middleware.Upload(media, cfg.UploadDir, false), blogController.Update)
	r.DELETE("/blog/:id", auth, adminOnly, blogController.Delete)
	r.POST("/blog/add-favorite/:id", auth, userOnly, blogController.AddFavorite)
	r.POST("/blog/remove-favorite/:id", auth, userOnly, blogController.RemoveFavorite)

	// Category routes
	r.GET("/categories", categoryController.List)
	r.GET("/category/:categoryId", categoryController.GetCategoryBlogs)
	r.POST("/category", auth, adminOnly, categoryController.Create)
	r.PUT("/category/:id", auth, adminOnly, categoryController.Update)
	r.DELETE("/category/:id", auth, adminOnly, categoryController.Delete)

	// Contact routes
	r.POST("/contact", contactController.Submit)
	r.GET("/all", auth, adminOnly, contactController.ListAll)

	return r
}
