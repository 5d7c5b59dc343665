package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

func FeedbackPage(c *gin.Context) {
	render(c, http.StatusOK, "feedback.html", nil)
}

func ContactPage(c *gin.Context) {
	render(c, http.StatusOK, "contactus.html", nil)
}

func AfterLoginPage(c *gin.Context) {
	render(c, http.StatusOK, "afterlogin.html", nil)
}
