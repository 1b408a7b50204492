package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

type CategoryController struct{}

func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// POST /category
// The slug is recomputed server-side on every create and update; client input
// never reaches it.
func (cc *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid category name is required"})
		return
	}
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name must be at least 2 characters long"})
		return
	}

	db := utils.GetDB()
	var count int64
	if err := db.Model(&models.Category{}).Where("LOWER(name) = ?", strings.ToLower(name)).Count(&count).Error; err != nil {
		fail(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category already exists"})
		return
	}

	category := models.Category{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Slug:        utils.Slugify(name),
	}
	if err := db.Create(&category).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category created successfully",
		"category": categoryPayload(&category),
	})
}

// GET /categories
func (cc *CategoryController) List(c *gin.Context) {
	var categories []models.Category
	if err := utils.GetDB().Order("name asc").Find(&categories).Error; err != nil {
		fail(c, err)
		return
	}
	items := make([]gin.H, 0, len(categories))
	for i := range categories {
		items = append(items, categoryPayload(&categories[i]))
	}
	message := "Categories fetched successfully"
	if len(items) == 0 {
		message = "No categories found"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": items, "message": message})
}

// GET /category/:categoryId
func (cc *CategoryController) GetCategoryBlogs(c *gin.Context) {
	id, err := paramID(c, "categoryId")
	if err != nil {
		fail(c, err)
		return
	}

	db := utils.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		return
	}

	var blogs []models.Blog
	if err := db.Preload("Category").Where("category_id = ?", category.ID).Order("created_at desc").Find(&blogs).Error; err != nil {
		fail(c, err)
		return
	}
	items := make([]gin.H, 0, len(blogs))
	for i := range blogs {
		items = append(items, blogPayload(&blogs[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"category":   categoryPayload(&category),
		"blogs":      items,
		"totalBlogs": len(items),
	})
}

// PUT /category/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid category name is required"})
		return
	}
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid category name is required (minimum 2 characters)"})
		return
	}

	db := utils.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		return
	}

	var count int64
	if err := db.Model(&models.Category{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), category.ID).
		Count(&count).Error; err != nil {
		fail(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name already exists"})
		return
	}

	category.Name = name
	category.Description = strings.TrimSpace(req.Description)
	category.Slug = utils.Slugify(name)
	if err := db.Save(&category).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category updated successfully",
		"category": categoryPayload(&category),
	})
}

// DELETE /category/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	db := utils.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		return
	}
	if err := db.Delete(&category).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category deleted successfully",
		"category": categoryPayload(&category),
	})
}
