package dto

type NewProductForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	Price       string `form:"price" validate:"required"`
	Location    string `form:"location"`
	Contact     string `form:"contact" validate:"required"`
	Category    string `form:"category"`
}
