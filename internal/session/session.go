package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"campus-portal/internal/models"
)

// Session keys hold primitives only, so nothing needs gob registration.
const (
	keyUserID = "user_id"
	keyName   = "user_name"
	keyEmail  = "user_email"
	keyRole   = "user_role"

	keyFlashType    = "flash_type"
	keyFlashMessage = "flash_message"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Snapshot is the cached copy of the user's public fields kept in the
// session so that every request does not cost a store round-trip.
type Snapshot struct {
	UserID uint
	Name   string
	Email  string
	Role   models.UserRole
}

type Flash struct {
	Type    string
	Message string
}

// Current returns the authenticated user's snapshot. A session whose role is
// outside the known enum counts as not authenticated.
func Current(c *gin.Context) (Snapshot, bool) {
	sess := sessions.Default(c)

	id, ok := sess.Get(keyUserID).(uint)
	if !ok || id == 0 {
		return Snapshot{}, false
	}
	roleStr, _ := sess.Get(keyRole).(string)
	role, ok := models.RoleFromString(roleStr)
	if !ok {
		return Snapshot{}, false
	}

	name, _ := sess.Get(keyName).(string)
	email, _ := sess.Get(keyEmail).(string)
	return Snapshot{UserID: id, Name: name, Email: email, Role: role}, true
}

// SetCurrent establishes the session after a successful login. The password
// hash never enters the session.
func SetCurrent(c *gin.Context, u *models.User) {
	sess := sessions.Default(c)
	sess.Set(keyUserID, u.ID)
	sess.Set(keyName, u.Name)
	sess.Set(keyEmail, u.Email)
	sess.Set(keyRole, string(u.Role.RoleName))
	_ = sess.Save()
}

// Refresh rewrites the name/email half of the snapshot after a self-edit so
// the user does not keep seeing stale values until re-login.
func Refresh(c *gin.Context, name, email string) {
	sess := sessions.Default(c)
	sess.Set(keyName, name)
	sess.Set(keyEmail, email)
	_ = sess.Save()
}

func Clear(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
}

func SetFlash(c *gin.Context, kind, message string) {
	sess := sessions.Default(c)
	sess.Set(keyFlashType, kind)
	sess.Set(keyFlashMessage, message)
	_ = sess.Save()
}

// TakeFlash consumes the one-shot flash: the second call after a set
// returns nothing.
func TakeFlash(c *gin.Context) (Flash, bool) {
	sess := sessions.Default(c)
	kind, ok := sess.Get(keyFlashType).(string)
	if !ok {
		return Flash{}, false
	}
	message, _ := sess.Get(keyFlashMessage).(string)
	sess.Delete(keyFlashType)
	sess.Delete(keyFlashMessage)
	_ = sess.Save()
	return Flash{Type: kind, Message: message}, true
}
