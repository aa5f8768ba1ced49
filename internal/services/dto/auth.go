package dto

// RegisterForm mirrors the registration form fields.
type RegisterForm struct {
	Username string `form:"username" validate:"required,min=3"`
	Password string `form:"password" validate:"required,min=6"`
	Fullname string `form:"fullname"`
	Village  string `form:"village"`
	Contact  string `form:"contact" validate:"required"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
