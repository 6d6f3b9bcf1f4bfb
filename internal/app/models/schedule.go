package models

// SectionKey identifies a scheduled section of a subject (prog_asign).
type SectionKey struct {
	Year        int32  `json:"ano_academ" db:"ano_academ" example:"2026"`
	PeriodCode  int32  `json:"cod_periodo_academ" db:"cod_periodo_academ" example:"1"`
	SubjectCode string `json:"sigla" db:"sigla" example:"GAS101"`
	Section     int32  `json:"seccion" db:"seccion" example:"1"`
}

// SubjectSection is a scheduled section with its display names.
type SubjectSection struct {
	SectionKey
	ProgramCode int32  `json:"cod_carrera" db:"cod_carrera" example:"10"`
	ProgramName string `json:"nom_carrera" db:"nom_carrera" example:"Gastronomía"`
	SubjectName string `json:"nom_asignatura" db:"nom_asign" example:"Cocina básica"`
	PeriodName  string `json:"nom_periodo_academ" db:"nom_periodo_academ" example:"Primer semestre"`
}

// WorkshopSchedule is a workshop scheduled on a date for a section
// (prog_taller), with the assigned instructor when there is one.
type WorkshopSchedule struct {
	Date string `json:"fecha" db:"fecha" example:"2026-04-14"`
	SectionKey
	WorkshopID    int64   `json:"id_taller" db:"id_taller" example:"12"`
	UserID        *int64  `json:"id_usuario" db:"id_usuario"`
	PeriodName    *string `json:"nom_periodo_academ" db:"nom_periodo_academ"`
	SubjectName   *string `json:"nom_asignatura" db:"nom_asign"`
	WorkshopTitle *string `json:"titulo_preparacion" db:"titulo_preparacion"`
	Week          *int32  `json:"semana" db:"semana"`
	Login         *string `json:"login" db:"login"`
	PreferredName *string `json:"nom_preferido" db:"nom_preferido"`
	FirstSurname  *string `json:"primer_apellido" db:"primer_apellido"`
	SecondSurname *string `json:"segundo_apellido" db:"segundo_apellido"`
}
