package models

// WorkshopValuation is one row of the workshop valuation report.
type WorkshopValuation struct {
	ProgramName   string `json:"nom_carrera" db:"nom_carrera"`
	SubjectCode   string `json:"sigla" db:"sigla"`
	SubjectName   string `json:"nom_asign" db:"nom_asign"`
	Week          int32  `json:"semana" db:"semana"`
	WorkshopID    int64  `json:"id_taller" db:"id_taller"`
	WorkshopTitle string `json:"titulo_preparacion" db:"titulo_preparacion"`
	Total         Amount `json:"total_taller" db:"total_taller"`
}

// SubjectBudget is one row of the estimated budget report for a year.
type SubjectBudget struct {
	ProgramName  string `json:"nom_carrera" db:"nom_carrera"`
	SubjectCode  string `json:"sigla" db:"sigla"`
	SubjectName  string `json:"nom_asign" db:"nom_asign"`
	Sections     Amount `json:"total_seccion" db:"total_seccion"`
	SubjectTotal Amount `json:"total_asign" db:"total_asign"`
	Total        Amount `json:"total" db:"total"`
}

// InstructorAssignment compares scheduled and recorded workshops of an
// instructor. Instructors with nothing scheduled appear with "-" placeholders.
type InstructorAssignment struct {
	ProgramName       string  `json:"nom_carrera" db:"nom_carrera"`
	FirstSurname      string  `json:"primer_apellido" db:"primer_apellido"`
	SecondSurname     string  `json:"segundo_apellido" db:"segundo_apellido"`
	PreferredName     *string `json:"nom_preferido" db:"nom_preferido"`
	SubjectCode       string  `json:"sigla" db:"sigla"`
	SubjectName       string  `json:"nom_asign" db:"nom_asign"`
	Section           *int32  `json:"seccion" db:"seccion"`
	PeriodCode        *int32  `json:"cod_periodo_academ" db:"cod_periodo_academ"`
	PeriodName        string  `json:"nom_periodo_academ" db:"nom_periodo_academ"`
	AssignedWorkshops Amount  `json:"total_taller_asignado" db:"total_taller_asignado"`
	RecordedWorkshops Amount  `json:"total_taller_registrado" db:"total_taller_registrado"`
}

// ProductConsumption summarises recorded product usage over a date range.
type ProductConsumption struct {
	ProgramName   string  `json:"nom_carrera" db:"nom_carrera"`
	CategoryName  string  `json:"nom_categ_producto" db:"nom_categ_producto"`
	ProductName   string  `json:"nom_producto" db:"nom_producto"`
	TotalQuantity float64 `json:"cantidad_total_productos" db:"cantidad_total_productos"`
	UnitName      string  `json:"nom_unidad_medida" db:"nom_unidad_medida"`
	UnitPrice     int64   `json:"precio_producto" db:"precio_producto"`
	TotalPrice    Amount  `json:"precio_total_productos" db:"precio_total_productos"`
}
