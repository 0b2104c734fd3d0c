package profile

import (
	"encoding/base64"
	"strings"
)

// GuestID is the fixed identity id used when no email is supplied.
const GuestID = "user_guest"

// Identity is the active user profile record.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"id"`
}

// Guest returns the default identity used before anyone signs in.
func Guest() Identity {
	return Identity{Name: "Guest", Email: "", ID: GuestID}
}

// DeriveID maps an email address to a stable identity id. The email is
// trimmed and lower-cased first, so the same address always yields the
// same id regardless of how it was typed. An empty email yields GuestID.
//
// The id is "user_" followed by the unpadded URL-safe base64 of the
// normalized email, matching the format of previously exported bundles.
func DeriveID(email string) string {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return GuestID
	}
	return "user_" + base64.RawURLEncoding.EncodeToString([]byte(e))
}

// NormalizeEmail returns the trimmed, lower-cased form used for id
// derivation and stored on the identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
