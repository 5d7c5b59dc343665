package handlers

import (
	"net/http"
	"strings"

	"fittracker/internal/auth"
	"fittracker/internal/database"
	"fittracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

func ShowSignup(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", nil)
}

type signupForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, "Invalid signup data.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if form.Username == "" || form.Password == "" {
		flash(c, "Username and password are required.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	// the form only ever creates regular users, admin comes from the seed
	role := models.RoleUser

	var count int64
	database.DB.Model(&models.User{}).
		Where("username = ?", form.Username).
		Count(&count)
	if count > 0 {
		flash(c, "Username already exists!")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to create account")
		return
	}

	user := models.User{
		Username:     form.Username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to create account")
		return
	}

	flash(c, "Account created successfully! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

// Login handles POST /loginkr. Every failure shape (unknown user, role
// mismatch, wrong password, corrupt stored hash) flashes the same generic
// message so usernames cannot be enumerated.
func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		loginFailed(c)
		return
	}

	q := database.DB.Where("username = ?", form.Username)
	if form.Role != "" {
		q = q.Where("role = ?", form.Role)
	}

	var user models.User
	if err := q.First(&user).Error; err != nil {
		loginFailed(c)
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, form.Password); err != nil {
		// auth.ErrMalformedHash lands here too, on purpose
		loginFailed(c)
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	if user.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/user")
}

func loginFailed(c *gin.Context) {
	flash(c, "User not found or wrong credentials!")
	c.Redirect(http.StatusFound, "/login")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
