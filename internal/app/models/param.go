package models

// ParamAcademicYear is the code of the "current academic year" parameter.
const ParamAcademicYear int32 = 1

// Param is a system parameter (param).
type Param struct {
	Code  int32  `json:"cod_param" db:"cod_param" example:"1"`
	Name  string `json:"nom_param" db:"nom_param" example:"Año académico vigente"`
	Value string `json:"valor" db:"valor" example:"2026"`
}

// AcademicPeriod is a term (periodo_academ) within an academic year.
type AcademicPeriod struct {
	Code      int32  `json:"cod_periodo_academ" db:"cod_periodo_academ" example:"1"`
	Name      string `json:"nom_periodo_academ" db:"nom_periodo_academ" example:"Primer semestre"`
	ShortName string `json:"nom_periodo_academ_abrev" db:"nom_periodo_academ_abrev" example:"1S"`
}

// AcademicYear wraps the current academic year value.
type AcademicYear struct {
	Year string `json:"ano_academ" example:"2026"`
}
