package domain

type AdminUser struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}
