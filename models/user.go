package models

// User is the signed-in owner's profile. ID is the auth identity's
// stable subject; the record is created on first sign-in and persists
// until local storage is cleared.
type User struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	SalonName string `json:"salonName"`
	Address   string `json:"address"`
}
