package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

func TestRegisterSuccess(t *testing.T) {
	env := setupTest(t)

	w := env.doJSON("POST", "/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, models.RoleUser, user["role"])
	_, leaked := user["password"]
	assert.False(t, leaked, "password must never appear in responses")

	// No session cookie on registration; clients log in for that.
	for _, ck := range w.Result().Cookies() {
		assert.NotEqual(t, "blogsession", ck.Name)
	}

	var stored models.User
	require.NoError(t, env.db.Where("email = ?", "alice@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "secret123"))
	assert.Equal(t, models.DefaultAvatarPublicID, stored.AvatarPublicID)
}

func TestRegisterValidation(t *testing.T) {
	env := setupTest(t)

	cases := []struct {
		name    string
		payload map[string]string
		message string
	}{
		{"missing fields", map[string]string{"username": "bob"}, "All fields are required"},
		{"short username", map[string]string{"username": "ab", "email": "bob@example.com", "password": "secret123"}, "Username must be at least 3 characters long"},
		{"short password", map[string]string{"username": "bob", "email": "bob@example.com", "password": "12345"}, "Password must be at least 6 characters long"},
		{"bad email", map[string]string{"username": "bob", "email": "not-an-email", "password": "secret123"}, "Email is not valid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.doJSON("POST", "/register", tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON("POST", "/register", map[string]string{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON("POST", "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Login successful")

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "blogsession" {
			session = ck
		}
	}
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
	assert.True(t, session.Secure)
	assert.Equal(t, http.SameSiteNoneMode, session.SameSite)
	assert.Equal(t, 30*24*3600, session.MaxAge)

	claims, err := utils.ParseJWT(session.Value, env.cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")

	unknown := env.doJSON("POST", "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	wrongPassword := env.doJSON("POST", "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String())
	assert.Contains(t, unknown.Body.String(), "Invalid credentials")
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON("POST", "/adminlogin", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied. Insufficient permissions")
}

func TestAdminLoginSuccess(t *testing.T) {
	env := setupTest(t)
	env.createAdmin(t, "admin@example.com", "adminpass")

	cookie := env.login(t, "/adminlogin", "admin@example.com", "adminpass")
	assert.NotEmpty(t, cookie.Value)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")
	cookie := env.login(t, "/login", "alice@example.com", "secret123")

	w := env.doJSON("POST", "/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")

	for _, ck := range w.Result().Cookies() {
		if ck.Name == "blogsession" {
			assert.Empty(t, ck.Value)
			assert.Less(t, ck.MaxAge, 0)
		}
	}
}

func TestCheckCookie(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON("GET", "/check-cookie", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token found")

	w = env.doJSON("GET", "/check-cookie", nil, &http.Cookie{Name: "blogsession", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authentication token")

	cookie := env.login(t, "/login", "alice@example.com", "secret123")
	w = env.doJSON("GET", "/check-cookie", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Token is valid")
}

func TestGetProfileDataRequiresAuth(t *testing.T) {
	env := setupTest(t)

	w := env.doJSON("GET", "/getprofiledata", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestChangePassword(t *testing.T) {
	env := setupTest(t)
	env.registerUser(t, "alice", "alice@example.com", "secret123")
	cookie := env.login(t, "/login", "alice@example.com", "secret123")

	w := env.doJSON("POST", "/changePassword", map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "newsecret1",
	}, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Current password is incorrect")

	w = env.doJSON("POST", "/changePassword", map[string]string{
		"currentPassword": "secret123",
		"newPassword":     "newsecret1",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Old password is gone, the new one logs in.
	old := env.doJSON("POST", "/login", map[string]string{"email": "alice@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, old.Code)
	env.login(t, "/login", "alice@example.com", "newsecret1")
}
