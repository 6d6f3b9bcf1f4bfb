package dto

import "github.com/tallerdev/admtaller/internal/app/models"

// SubjectRequest is the body of subject create and update requests. On
// update the sigla comes from the path.
type SubjectRequest struct {
	Code        string `json:"sigla" binding:"omitempty,sigla" example:"GAS101"`
	Name        string `json:"nom_asignatura" binding:"required,max=150" example:"Cocina básica"`
	ShortName   string `json:"nom_asignatura_abrev" binding:"max=50" example:"Coc. básica"`
	ProgramCode int32  `json:"cod_carrera" binding:"required,gt=0" example:"10"`
}

// ToModel converts the request to a subject
func (r *SubjectRequest) ToModel() *models.Subject {
	return &models.Subject{
		Code:        r.Code,
		Name:        r.Name,
		ShortName:   r.ShortName,
		ProgramCode: r.ProgramCode,
	}
}

// WorkshopRequest is the body of workshop create and update requests
type WorkshopRequest struct {
	Title       string  `json:"titulo_preparacion" binding:"required,max=200" example:"Masa madre"`
	Detail      *string `json:"detalle_preparacion"`
	Week        int32   `json:"semana" binding:"required,gt=0" example:"3"`
	SubjectCode string  `json:"sigla" binding:"required,sigla" example:"GAS101"`
}

// ToModel converts the request to a workshop with the given id
func (r *WorkshopRequest) ToModel(id int64) *models.Workshop {
	return &models.Workshop{
		ID:          id,
		Title:       r.Title,
		Detail:      r.Detail,
		Week:        r.Week,
		SubjectCode: r.SubjectCode,
	}
}

// WorkshopProductRequest adds a product line to a workshop
type WorkshopProductRequest struct {
	ProductID int64   `json:"id_producto" binding:"required,gt=0" example:"7"`
	GroupCode int32   `json:"cod_agrupador" binding:"required,gt=0" example:"1"`
	Quantity  float64 `json:"cantidad" binding:"required,gt=0" example:"1.5"`
}

// ToModel converts the request to a product line of workshopID
func (r *WorkshopProductRequest) ToModel(workshopID int64) *models.WorkshopProduct {
	return &models.WorkshopProduct{
		WorkshopID: workshopID,
		ProductID:  r.ProductID,
		GroupCode:  r.GroupCode,
		Quantity:   r.Quantity,
	}
}

// QuantityRequest changes the quantity of a product line
type QuantityRequest struct {
	Quantity float64 `json:"cantidad" binding:"required,gt=0" example:"2"`
}

// ProductRequest is the body of product create and update requests
type ProductRequest struct {
	Name         string `json:"nom_producto" binding:"required,max=150" example:"Harina"`
	Price        int64  `json:"precio" binding:"gte=0" example:"1200"`
	UnitCode     int32  `json:"cod_unidad_medida" binding:"required,gt=0" example:"1"`
	CategoryCode int32  `json:"cod_categ_producto" binding:"required,gt=0" example:"1"`
}

// ToModel converts the request to a product with the given id
func (r *ProductRequest) ToModel(id int64) *models.Product {
	return &models.Product{
		ID:           id,
		Name:         r.Name,
		Price:        r.Price,
		UnitCode:     r.UnitCode,
		CategoryCode: r.CategoryCode,
	}
}

// SectionRequest identifies a section of a subject
type SectionRequest struct {
	Year        int32  `json:"ano_academ" binding:"required,gt=0" example:"2026"`
	PeriodCode  int32  `json:"cod_periodo_academ" binding:"required,gt=0" example:"1"`
	SubjectCode string `json:"sigla" binding:"required,sigla" example:"GAS101"`
	Section     int32  `json:"seccion" binding:"required,gt=0" example:"1"`
}

// ToModel converts the request to a section key
func (r *SectionRequest) ToModel() models.SectionKey {
	return models.SectionKey{
		Year:        r.Year,
		PeriodCode:  r.PeriodCode,
		SubjectCode: r.SubjectCode,
		Section:     r.Section,
	}
}

// WorkshopScheduleRequest schedules a workshop for a section on a date
type WorkshopScheduleRequest struct {
	Date string `json:"fecha" binding:"required,isodate" example:"2026-04-14"`
	SectionRequest
	WorkshopID int64  `json:"id_taller" binding:"required,gt=0" example:"12"`
	UserID     *int64 `json:"id_usuario" binding:"omitempty,gt=0" example:"4"`
}

// ToModel converts the request to a workshop schedule
func (r *WorkshopScheduleRequest) ToModel() *models.WorkshopSchedule {
	return &models.WorkshopSchedule{
		Date:       r.Date,
		SectionKey: r.SectionRequest.ToModel(),
		WorkshopID: r.WorkshopID,
		UserID:     r.UserID,
	}
}

// ExecutionRecordRequest registers the execution of a scheduled workshop
type ExecutionRecordRequest struct {
	Date string `json:"fecha" binding:"required,isodate" example:"2026-04-14"`
	SectionRequest
	WorkshopID int64   `json:"id_taller" binding:"required,gt=0" example:"12"`
	UserID     int64   `json:"id_usuario" binding:"required,gt=0" example:"4"`
	Notes      *string `json:"obs" binding:"omitempty,max=2000"`
}

// ToModel converts the request to an execution record
func (r *ExecutionRecordRequest) ToModel() *models.ExecutionRecord {
	return &models.ExecutionRecord{
		Date:       r.Date,
		SectionKey: r.SectionRequest.ToModel(),
		WorkshopID: r.WorkshopID,
		UserID:     r.UserID,
		Notes:      r.Notes,
	}
}

// ParamRequest sets the value of a parameter
type ParamRequest struct {
	Value string `json:"valor" binding:"required,max=255" example:"2026"`
}
