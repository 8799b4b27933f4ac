package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"campus-portal/internal/database"
	"campus-portal/internal/models"
	"campus-portal/internal/session"

	"github.com/gin-gonic/gin"
)

const passwordSymbols = "!@#$%^&*"

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// validPassword enforces the registration password policy: at least eight
// characters with at least one digit and one symbol from passwordSymbols.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasDigit, hasSymbol := false, false
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	return hasDigit && hasSymbol
}

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"title": "User Registration"})
}

type registerForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	ConfirmEmail    string `form:"confirmEmail"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

// validate returns an empty string when the form passes, otherwise the flash
// message for the first failing rule.
func (f *registerForm) validate() string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.ConfirmEmail = strings.TrimSpace(f.ConfirmEmail)

	if len(f.Name) < 7 {
		return "Name must be at least 7 characters long."
	}
	if !validEmail(f.Email) {
		return "Please provide a valid email address."
	}
	if !strings.EqualFold(f.Email, f.ConfirmEmail) {
		return "Email addresses do not match."
	}
	if !validPassword(f.Password) {
		return "Password must be at least 8 characters long and contain at least one number and one symbol (!@#$%^&*)."
	}
	if f.Password != f.ConfirmPassword {
		return "Passwords do not match."
	}
	return ""
}

// Register creates a new account with the "user" role. Every failure queues
// a flash and redirects back to the form, never forward.
func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		session.SetFlash(c, session.FlashError, "Invalid form submission.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if msg := form.validate(); msg != "" {
		session.SetFlash(c, session.FlashError, msg)
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if database.EmailTaken(form.Email) {
		log.Printf("registration attempt with existing email: %s", form.Email)
		session.SetFlash(c, session.FlashError,
			fmt.Sprintf("An account with email %s already exists.", form.Email))
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, ok := database.HashPassword(form.Password)
	if !ok {
		session.SetFlash(c, session.FlashError, "Failed to create your account. Please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := database.CreateUser(form.Name, form.Email, hash)
	if user == nil {
		// the unique index can still reject a concurrent duplicate here
		session.SetFlash(c, session.FlashError, "Failed to create your account. Please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	log.Printf("user registered successfully: %s", user.Email)
	database.CreateAuditLog(user.ID, user.ID, "register", "registered "+user.Email)
	session.SetFlash(c, session.FlashSuccess,
		fmt.Sprintf("User registered successfully: %s", user.Email))
	c.Redirect(http.StatusFound, "/users")
}

func ListUsers(c *gin.Context) {
	users := database.ListUsers()
	render(c, http.StatusOK, "users.html", gin.H{
		"title": "Registered Users",
		"users": users,
	})
}

// accountTarget resolves the :id parameter and checks ownership. Not-found
// supersedes authorization, so the target is loaded before any role check.
func accountTarget(c *gin.Context) (*models.User, session.Snapshot, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		RenderNotFound(c, "Account not found.")
		return nil, session.Snapshot{}, false
	}

	target := database.GetUserByID(uint(id))
	if target == nil {
		RenderNotFound(c, "Account not found.")
		return nil, session.Snapshot{}, false
	}

	snap, ok := session.Current(c)
	if !ok {
		// RequireAuth guards these routes; a missing session here means the
		// cookie vanished mid-flight
		c.Redirect(http.StatusFound, "/login")
		return nil, session.Snapshot{}, false
	}

	if snap.UserID != target.ID && snap.Role != models.RoleAdmin {
		log.Printf("authorization denied: user %d attempted to edit account %d", snap.UserID, target.ID)
		database.CreateAuditLog(snap.UserID, target.ID, "denied", "edit attempt on foreign account")
		session.SetFlash(c, session.FlashError, "You do not have permission to edit this account.")
		c.Redirect(http.StatusFound, "/users")
		return nil, session.Snapshot{}, false
	}

	return target, snap, true
}

func ShowEditAccount(c *gin.Context) {
	target, _, ok := accountTarget(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "user_edit.html", gin.H{
		"title":   "Edit Account",
		"account": target,
	})
}

func UpdateAccount(c *gin.Context) {
	target, snap, ok := accountTarget(c)
	if !ok {
		return
	}
	editPath := fmt.Sprintf("/users/%d/edit", target.ID)

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))

	if len(name) < 7 {
		session.SetFlash(c, session.FlashError, "Name must be at least 7 characters long.")
		c.Redirect(http.StatusFound, editPath)
		return
	}
	if !validEmail(email) {
		session.SetFlash(c, session.FlashError, "Please provide a valid email address.")
		c.Redirect(http.StatusFound, editPath)
		return
	}

	// keeping your own address is fine, taking someone else's is not
	if database.EmailTakenByOther(email, target.ID) {
		session.SetFlash(c, session.FlashError, "That email address is already in use.")
		c.Redirect(http.StatusFound, editPath)
		return
	}

	updated := database.UpdateUser(target.ID, name, email)
	if updated == nil {
		session.SetFlash(c, session.FlashError, "Failed to update the account. Please try again.")
		c.Redirect(http.StatusFound, editPath)
		return
	}

	// a self-edit must not leave a stale name/email in the session
	if snap.UserID == updated.ID {
		session.Refresh(c, updated.Name, updated.Email)
	}

	database.CreateAuditLog(snap.UserID, updated.ID, "update", "updated "+updated.Email)
	session.SetFlash(c, session.FlashSuccess, "Account updated successfully.")
	c.Redirect(http.StatusFound, "/users")
}

// DeleteAccount removes an account. The route is admin-gated by middleware;
// self-deletion is rejected here regardless of role.
func DeleteAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		RenderNotFound(c, "Account not found.")
		return
	}

	snap, ok := session.Current(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if uint(id) == snap.UserID {
		session.SetFlash(c, session.FlashError, "You cannot delete your own account.")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if !database.DeleteUser(uint(id)) {
		session.SetFlash(c, session.FlashError, "Failed to delete the account.")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	database.CreateAuditLog(snap.UserID, uint(id), "delete", "deleted account")
	session.SetFlash(c, session.FlashSuccess, "Account deleted.")
	c.Redirect(http.StatusFound, "/users")
}
