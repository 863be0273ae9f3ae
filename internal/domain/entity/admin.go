package entity

// AdminCredential is the single stored admin login.
type AdminCredential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
