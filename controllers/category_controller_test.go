package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajvitaldeveloper/blog-backend/models"
)

func TestCreateCategory(t *testing.T) {
	env := setupTest(t)
	env.createAdmin(t, "admin@example.com", "adminpass")
	cookie := env.login(t, "/adminlogin", "admin@example.com", "adminpass")

	w := env.doJSON("POST", "/category", map[string]string{
		"name":        "Health & Wellness",
		"description": "Staying healthy",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	category, ok := body["category"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Health & Wellness", category["name"])
	assert.Equal(t, "health-wellness", category["slug"])
}

func TestCreateCategoryValidation(t *testing.T) {
	env := setupTest(t)
	env.createAdmin(t, "admin@example.com", "adminpass")
	cookie := env.login(t, "/adminlogin", "admin@example.com", "adminpass")

	w := env.doJSON("POST", "/category", map[string]string{"name": "x"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 2 characters")

	w = env.doJSON("POST", "/category", map[string]string{"name": "  "}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCategoryCaseInsensitiveConflict(t *testing.T) {
	env := setupTest(t)
	env.createAdmin(t, "admin@example.com", "adminpass")
	cookie := env.login(t, "/adminlogin", "admin@example.com", "adminpass")

	w := env.doJSON("POST", "/category", map[string]string{"name": "Travel"}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON("POST", "/category", map[string]string{"name": "travel"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category already exists")

	var count int64
	env.db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCategoryRoutesRequireAdmin(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")
	cookie := env.login(t, "/login", "alice@example.com", "secret123")

	w := env.doJSON("POST", "/category", map[string]string{"name": "Travel"}, cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.doJSON("POST", "/category", map[string]string{"name": "Travel"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListCategories(t *testing.T) {
	env := setupTest(t)

	w := env.doJSON("GET", "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No categories found")

	env.createCategory(t, "Travel")
	env.createCategory(t, "Food")

	w = env.doJSON("GET", "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	categories, ok := body["categories"].([]interface{})
	require.True(t, ok)
	require.Len(t, categories, 2)
	// Alphabetical order.
	assert.Equal(t, "Food", categories[0].(map[string]interface{})["name"])
	assert.Equal(t, "Travel", categories[1].(map[string]interface{})["name"])
}

func TestGetCategoryBlogs(t *testing.T) {
	env := setupTest(t)
	category := env.createCategory(t, "Travel")
	other := env.createCategory(t, "Food")
	env.createBlog(t, "travel-post", category.ID)
	env.createBlog(t, "food-post", other.ID)

	w := env.doJSON("GET", "/category/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Category not found")

	w = env.doJSON("GET", "/category/1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["totalBlogs"])
	blogs := body["blogs"].([]interface{})
	assert.Equal(t, "travel-post", blogs[0].(map[string]interface{})["title"])
}

func TestUpdateCategoryRecomputesSlug(t *testing.T) {
	env := setupTest(t)
	env.createAdmin(t, "admin@example.com", "adminpass")
	cookie := env.login(t, "/adminlogin", "admin@example.com", "adminpass")
	env.createCategory(t, "Travel")

	w := env.doJSON("PUT", "/category/1", map[string]string{"name": "World Travel"}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var category models.Category
	require.NoError(t, env.db.First(&category, 1).Error)
	assert.Equal(t, "World Travel", category.Name)
	assert.Equal(t, "world-travel", category.Slug)
}

func TestUpdateCategoryNameConflict(t *testing.T) {
	env := setupTest(t)
	env.createAdmin(t, "admin@example.com", "adminpass")
	cookie := env.login(t, "/adminlogin", "admin@example.com", "adminpass")
	env.createCategory(t, "Travel")
	env.createCategory(t, "Food")

	w := env.doJSON("PUT", "/category/2", map[string]string{"name": "TRAVEL"}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category name already exists")

	// Renaming a category to its own name is not a conflict.
	w = env.doJSON("PUT", "/category/1", map[string]string{"name": "Travel"}, cookie)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestDeleteCategory(t *testing.T) {
	env := setupTest(t)
	env.createAdmin(t, "admin@example.com", "adminpass")
	cookie := env.login(t, "/adminlogin", "admin@example.com", "adminpass")
	env.createCategory(t, "Travel")

	w := env.doJSON("DELETE", "/category/1", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Category deleted successfully")

	w = env.doJSON("DELETE", "/category/1", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
