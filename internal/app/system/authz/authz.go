// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/researchsite/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's role (lowercased), Mongo ObjectID, and a found
// flag. Without a user, or with a malformed id, it returns
// "visitor", NilObjectID, false, so ok=true always means a usable id.
func UserCtx(r *http.Request) (role string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.UserID)
	if err != nil {
		return "visitor", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), userID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// ActorID returns the caller's id for createdBy/uploadedBy stamping, or
// nil for anonymous requests.
func ActorID(r *http.Request) *primitive.ObjectID {
	_, id, ok := UserCtx(r)
	if !ok {
		return nil
	}
	return &id
}

// CanViewUser reports whether the caller may read the user with hex id:
// admins may read anyone, members only themselves.
func CanViewUser(r *http.Request, id string) bool {
	role, uid, ok := UserCtx(r)
	if !ok {
		return false
	}
	return role == "admin" || uid.Hex() == strings.ToLower(strings.TrimSpace(id))
}
