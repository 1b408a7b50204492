package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pankajvitaldeveloper/blog-backend/config"
	"github.com/pankajvitaldeveloper/blog-backend/models"
	"github.com/pankajvitaldeveloper/blog-backend/services"
	"github.com/pankajvitaldeveloper/blog-backend/utils"
)

type ContactController struct {
	cfg    *config.Config
	mailer services.Mailer
}

func NewContactController(cfg *config.Config, mailer services.Mailer) *ContactController {
	return &ContactController{cfg: cfg, mailer: mailer}
}

var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// POST /contact
// The record is durable before any mail goes out; notification and
// acknowledgment emails are sent asynchronously and failures only get logged.
func (cc *ContactController) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all required fields"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill all required fields"})
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter a valid email"})
		return
	}

	limiterKey := strings.ToLower(req.Email)
	if ok, msg := utils.CanSubmitContact(utils.GetRedis(), limiterKey); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": msg})
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := utils.GetDB().Create(&contact).Error; err != nil {
		fail(c, err)
		return
	}
	utils.MarkContactSubmitted(utils.GetRedis(), limiterKey)

	if cc.mailer != nil {
		go cc.sendContactMail(contact)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"contact": contactPayload(&contact),
	})
}

// GET /all
func (cc *ContactController) ListAll(c *gin.Context) {
	var contacts []models.Contact
	if err := utils.GetDB().Order("created_at desc").Find(&contacts).Error; err != nil {
		fail(c, err)
		return
	}
	items := make([]gin.H, 0, len(contacts))
	for i := range contacts {
		items = append(items, contactPayload(&contacts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contacts": items})
}

func contactPayload(ct *models.Contact) gin.H {
	return gin.H{
		"id":        ct.ID,
		"name":      ct.Name,
		"email":     ct.Email,
		"phone":     ct.Phone,
		"message":   ct.Message,
		"createdAt": ct.CreatedAt,
	}
}

func (cc *ContactController) sendContactMail(contact models.Contact) {
	phone := contact.Phone
	if phone == "" {
		phone = "Not provided"
	}
	if cc.cfg.AdminEmail != "" {
		body := fmt.Sprintf(
			"<h2>New Contact Form Submission</h2>"+
				"<p><strong>Name:</strong> %s</p>"+
				"<p><strong>Email:</strong> %s</p>"+
				"<p><strong>Phone:</strong> %s</p>"+
				"<p><strong>Message:</strong></p><p>%s</p>",
			contact.Name, contact.Email, phone, contact.Message)
		if err := cc.mailer.Send(cc.cfg.AdminEmail, fmt.Sprintf("New Contact Form Submission from %s", contact.Name), body); err != nil {
			utils.LogError(err, "contact notification mail")
		}
	}

	ack := fmt.Sprintf(
		"<h2>Thank you for reaching out!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>We have received your message and will get back to you soon.</p>"+
			"<p>Your message:</p><p><em>%s</em></p>",
		contact.Name, contact.Message)
	if err := cc.mailer.Send(contact.Email, "Thank you for contacting us", ack); err != nil {
		utils.LogError(err, "contact acknowledgment mail")
	}
}
