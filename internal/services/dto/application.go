package dto

type ApplyForm struct {
	Name       string `form:"name" validate:"required"`
	Phone      string `form:"phone" validate:"required"`
	Experience string `form:"experience"`
	Message    string `form:"message"`
}
