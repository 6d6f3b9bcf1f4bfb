package models

// NoSubject is the sigla of the placeholder subject returned when a lookup
// yields nothing.
const NoSubject = "None"

// Subject is a course (asign) with the estimated cost of all its workshops.
type Subject struct {
	Code        string `json:"sigla" db:"sigla" example:"GAS101"`
	Name        string `json:"nom_asignatura" db:"nom_asign" example:"Cocina básica"`
	ShortName   string `json:"nom_asignatura_abrev" db:"nom_asign_abrev" example:"Coc. básica"`
	ProgramCode int32  `json:"cod_carrera" db:"cod_carrera" example:"10"`
	ProgramName string `json:"nom_carrera" db:"nom_carrera" example:"Gastronomía"`
	TotalCost   Amount `json:"costo_total" db:"costo_total" example:"125000"`
}

// DefaultSubject is returned when the subject cannot be shown.
func DefaultSubject() *Subject {
	return &Subject{Code: NoSubject}
}
