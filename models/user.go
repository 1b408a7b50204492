package models

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultAvatarURL and DefaultAvatarPublicID are assigned on registration.
// The default asset is never deleted from the image host.
const (
	DefaultAvatarURL      = "https://res.cloudinary.com/dgetpw2fy/image/upload/v1/blogapp/default-avatar.jpg"
	DefaultAvatarPublicID = "default-avatar"
)

type User struct {
	gorm.Model
	Username string `gorm:"type:VARCHAR(100);uniqueIndex;not null" json:"username"`
	Email    string `gorm:"type:VARCHAR(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:VARCHAR(10);default:user" json:"role"`

	AvatarURL      string `gorm:"type:TEXT" json:"-"`
	AvatarPublicID string `gorm:"type:VARCHAR(255)" json:"-"`

	// Favorites and Blog.LikedBy read the same join table, so the two sides
	// of the relation cannot drift.
	Favorites []*Blog `gorm:"many2many:user_favorites" json:"-"`
}

// ImageRef is a persisted image reference pair as it appears on the wire.
type ImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (u *User) Avatar() ImageRef {
	return ImageRef{URL: u.AvatarURL, PublicID: u.AvatarPublicID}
}
