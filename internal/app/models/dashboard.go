package models

// Dashboard concepts.
const (
	ConceptSubjects          = "Cantidad de asignaturas"
	ConceptWorkshops         = "Cantidad de talleres"
	ConceptProducts          = "Cantidad de productos"
	ConceptInstructors       = "Cantidad de docentes"
	ConceptAssignedWorkshops = "Cantidad de talleres asignados"
	ConceptRecordedWorkshops = "Cantidad de talleres registrados"
)

// SummaryItem is one figure on the dashboard.
type SummaryItem struct {
	Concept string `json:"concepto" example:"Cantidad de talleres"`
	Value   Amount `json:"valor" example:"24"`
}

// Dashboard groups the figures of one program.
type Dashboard struct {
	ProgramName string        `json:"nom_carrera" example:"Gastronomía"`
	Summary     []SummaryItem `json:"resumen"`
}

// ProgramFigures are the catalog counts of one program.
type ProgramFigures struct {
	ProgramName string `db:"nom_carrera"`
	Subjects    Amount `db:"asignaturas"`
	Workshops   Amount `db:"talleres"`
	Products    Amount `db:"productos"`
	Instructors Amount `db:"docentes"`
}

// InstructorFigures are the workshop counts of one instructor in a year.
type InstructorFigures struct {
	ProgramName *string `db:"nom_carrera"`
	Assigned    Amount  `db:"asignados"`
	Recorded    Amount  `db:"registrados"`
}
