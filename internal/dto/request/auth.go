package request

type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=2,max=100,alphaspace"`
	LastName        string `json:"lastName" validate:"max=100,alphaspace"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	UserType        string `json:"userType" validate:"required,oneof=guest host"`
	Terms           bool   `json:"terms" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	// Filled from the HTTP request, recorded on the session.
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}
