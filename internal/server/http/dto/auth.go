package dto

// CredentialsForm describes the username/password form fields shared by the
// registration and login pages.
type CredentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
