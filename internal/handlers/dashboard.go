package handlers

import (
	"net/http"

	"fittracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminDashboard(c *gin.Context) {
	render(c, http.StatusOK, "afterlogin.html", nil)
}

// UserDashboard shows the user view with their most recent enrollment.
func UserDashboard(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)

	enrollment, err := challengeEngine.LatestForUser(id.UserID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load enrollment")
		return
	}

	render(c, http.StatusOK, "userlogin.html", gin.H{
		"challenge": enrollment,
	})
}
