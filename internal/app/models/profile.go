package models

// Profile is an access profile (perfil) as attached to a user.
type Profile struct {
	Code        Role   `json:"cod_perfil" db:"cod_perfil" example:"1"`
	Name        string `json:"nom_perfil" db:"nom_perfil" example:"Administrador de carrera"`
	Description string `json:"descripcion" db:"descripcion"`
}

// ProgramAffiliation is the program a user belongs to. Both fields are null
// for users without one.
type ProgramAffiliation struct {
	Code *int32  `json:"cod_carrera" db:"cod_carrera"`
	Name *string `json:"nom_carrera" db:"nom_carrera"`
}

// Program is an academic program (carrera).
type Program struct {
	Code      int32  `json:"cod_carrera" db:"cod_carrera" example:"10"`
	Name      string `json:"nom_carrera" db:"nom_carrera" example:"Gastronomía"`
	ShortName string `json:"nom_carrera_abrev" db:"nom_carrera_abrev" example:"GAS"`
}
