package models

// Session is the current-user slot. It is always kept in local storage,
// whichever backend holds the household data.
type Session struct {
	User Roommate `json:"user"`

	// Token authenticates the user against the REST service; empty for the local backend.
	Token string `json:"token,omitempty"`
}
