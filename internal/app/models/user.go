package models

// User is an account (usuario). Password is never read back from storage,
// so it always serialises as null.
type User struct {
	ID            int64   `json:"id_usuario" db:"id_usuario" example:"4"`
	Login         string  `json:"login" db:"login" example:"jperez"`
	Password      *string `json:"hash_password" db:"-"`
	FirstSurname  string  `json:"primer_apellido" db:"primer_apellido" example:"Pérez"`
	SecondSurname string  `json:"segundo_apellido" db:"segundo_apellido" example:"Soto"`
	GivenName     string  `json:"nom" db:"nom" example:"Juan"`
	PreferredName *string `json:"nom_preferido" db:"nom_preferido"`
	Role          Role    `json:"cod_perfil" db:"cod_perfil" example:"2"`
	ProgramCode   *int32  `json:"cod_carrera" db:"cod_carrera"`
	RoleName      string  `json:"nom_perfil" db:"nom_perfil" example:"Docente"`
	ProgramName   *string `json:"nom_carrera" db:"nom_carrera"`
}

// Credentials is the stored login secret of a user.
type Credentials struct {
	ID           int64  `db:"id_usuario"`
	Login        string `db:"login"`
	PasswordHash string `db:"hash_password"`
	Role         Role   `db:"cod_perfil"`
}
