package usecasecontract

// IValidator checks user-supplied credentials.
type IValidator interface {
	ValidateEmail(email string) error
	ValidateUsername(username string) error
	ValidatePasswordStrength(password string) error
}
