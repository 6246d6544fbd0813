package admin

type CategoryDTO struct {
	Name string `json:"name" validate:"required,max=255"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
