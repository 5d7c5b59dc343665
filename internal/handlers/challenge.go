package handlers

import (
	"net/http"

	"fittracker/internal/challenge"
	"fittracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

var challengeEngine *challenge.Engine

// UseChallengeEngine wires the engine the challenge and dashboard handlers
// delegate to. Called once by the router (and by tests with a fake store).
func UseChallengeEngine(e *challenge.Engine) {
	challengeEngine = e
}

type enrollRequest struct {
	ChallengeName string `json:"challenge_name"`
}

// EnrollChallenge handles POST /enroll_challenge (JSON API).
func EnrollChallenge(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)

	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChallengeName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request."})
		return
	}

	msg, err := challengeEngine.Enroll(id.UserID, req.ChallengeName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// UpdateProgress handles POST /update_progress (form) and bounces back to
// the dashboard.
func UpdateProgress(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)

	challengeName := c.PostForm("challenge_name")
	progress := c.PostForm("progress")

	if err := challengeEngine.UpdateProgress(id.UserID, challengeName, progress); err != nil {
		c.String(http.StatusInternalServerError, "failed to update progress")
		return
	}

	flash(c, "Progress updated.")
	c.Redirect(http.StatusFound, "/user")
}

// CompleteChallenge handles POST /complete_challenge (form).
func CompleteChallenge(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)

	challengeName := c.PostForm("challenge_name")

	if err := challengeEngine.Complete(id.UserID, challengeName); err != nil {
		c.String(http.StatusInternalServerError, "failed to complete challenge")
		return
	}

	flash(c, "Challenge marked as completed. Reward unlocked!")
	c.Redirect(http.StatusFound, "/user")
}
