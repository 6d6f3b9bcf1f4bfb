package dto

import "github.com/tallerdev/admtaller/internal/app/models"

// UserRequest is the body of user create and update requests. The password
// is required on create and optional on update.
type UserRequest struct {
	Login         string  `json:"login" binding:"required,max=60" example:"jperez"`
	Password      *string `json:"hash_password" binding:"omitempty,max=72"`
	FirstSurname  string  `json:"primer_apellido" binding:"required,max=60" example:"Pérez"`
	SecondSurname string  `json:"segundo_apellido" binding:"max=60" example:"Soto"`
	GivenName     string  `json:"nom" binding:"required,max=60" example:"Juan"`
	PreferredName *string `json:"nom_preferido" binding:"omitempty,max=60"`
	Role          *int32  `json:"cod_perfil" binding:"required,min=0,max=3" example:"2"`
	ProgramCode   *int32  `json:"cod_carrera" example:"10"`
}

// ToModel converts the request to a user with the given id
func (r *UserRequest) ToModel(id int64) *models.User {
	return &models.User{
		ID:            id,
		Login:         r.Login,
		Password:      r.Password,
		FirstSurname:  r.FirstSurname,
		SecondSurname: r.SecondSurname,
		GivenName:     r.GivenName,
		PreferredName: r.PreferredName,
		Role:          models.Role(*r.Role),
		ProgramCode:   r.ProgramCode,
	}
}

// UserIDResponse answers the id-by-login lookup
type UserIDResponse struct {
	UserID int64 `json:"id_usuario" example:"4"`
}
