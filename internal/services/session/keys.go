package session

import (
	"strconv"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// Persisted item keys
const (
	KeyCurrentView  = "currentView"
	KeySelectedRole = "selectedRole"
	KeyIsLoggedIn   = "isLoggedIn"
	KeyCurrentUser  = "currentUser"
)

// PersistedKeys lists every key the controller writes for a device
var PersistedKeys = []string{KeyCurrentView, KeySelectedRole, KeyIsLoggedIn, KeyCurrentUser}

// encode flattens a session into persisted items
func encode(sess *model.Session) map[string]string {
	return map[string]string{
		KeyCurrentView:  string(sess.View),
		KeySelectedRole: model.RoleName(sess.Role),
		KeyIsLoggedIn:   strconv.FormatBool(sess.IsLoggedIn),
		KeyCurrentUser:  sess.CurrentUser,
	}
}

// decode rebuilds a session from persisted items.
// Missing keys fall back to the initial state. Unknown values are reported
// through the returned flag; the caller repairs the result.
func decode(items map[string]string) (*model.Session, bool) {
	sess := model.NewSession()
	clean := true

	if v, ok := items[KeyCurrentView]; ok && v != "" {
		sess.View = model.View(v)
	}

	if name, ok := items[KeySelectedRole]; ok && name != "" && name != "null" {
		role, err := model.ParseRole(name)
		if err != nil {
			clean = false
		} else {
			sess.Role = role
		}
	}

	if v, ok := items[KeyIsLoggedIn]; ok {
		switch v {
		case "true":
			sess.IsLoggedIn = true
		case "false", "":
		default:
			clean = false
		}
	}

	sess.CurrentUser = items[KeyCurrentUser]
	return sess, clean
}
