package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-site/middleware"
	"hotel-site/models"
	"hotel-site/services"
	"hotel-site/utils"
	"hotel-site/views"
)

type ContactController struct {
	Messages services.ContactSender
	Hotel    models.HotelSetting
}

func NewContactController(messages services.ContactSender, hotel models.HotelSetting) *ContactController {
	return &ContactController{Messages: messages, Hotel: hotel}
}

// ShowContact (GET /contact). ?subject= preselects a subject on an empty
// form. The outcome of the last send is shown once.
func (ctrl *ContactController) ShowContact(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	st := sess.Contact.Consume()
	if subject := c.Query("subject"); subject != "" && st.Form.Subject == "" {
		st.Form.Subject = subject
	}

	utils.HTML(c, http.StatusOK, views.ContactPage(views.ContactProps{
		PageProps: views.PageProps{Title: "Contact Us", Active: "/contact", Hotel: ctrl.Hotel},
		Contact:   st,
	}))
}

// SubmitContact (POST /contact) sends the message and redirects back to the
// contact page, which shows the outcome.
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx := c.Request.Context()

	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		utils.GetLogger().DebugContext(ctx, "Contact form binding failed", "error", err.Error())
	}
	sess.Contact.Update(form)

	if err := sess.Contact.Submit(ctx, ctrl.Messages); err != nil {
		utils.GetLogger().WithSession(middleware.SessionToken(c)).WithError(err).InfoContext(ctx, "Contact message not sent")
	}
	utils.SeeOther(c, "/contact")
}
