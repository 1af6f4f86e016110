package request

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"required,min=1,max=30"`
	Email string `json:"email" validate:"required,email"`
}
