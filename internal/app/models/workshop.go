package models

// Workshop is a practical session (taller) belonging to a subject.
type Workshop struct {
	ID          int64   `json:"id_taller" db:"id_taller" example:"12"`
	Title       string  `json:"titulo_preparacion" db:"titulo_preparacion" example:"Masa madre"`
	Detail      *string `json:"detalle_preparacion" db:"detalle_preparacion"`
	Week        int32   `json:"semana" db:"semana" example:"3"`
	SubjectCode string  `json:"sigla" db:"sigla" example:"GAS101"`
	SubjectName string  `json:"nom_asign" db:"nom_asign" example:"Cocina básica"`
	TotalCost   Amount  `json:"costo_total" db:"costo_total" example:"42000"`
}

// WorkshopProduct is one configured product line (config_taller) of a workshop.
type WorkshopProduct struct {
	ProductID    int64   `json:"id_producto" db:"id_producto" example:"7"`
	WorkshopID   int64   `json:"id_taller" db:"id_taller" example:"12"`
	GroupCode    int32   `json:"cod_agrupador" db:"cod_agrupador" example:"1"`
	Quantity     float64 `json:"cantidad" db:"cantidad" example:"1.5"`
	UnitName     *string `json:"nom_unidad_medida" db:"nom_unidad_medida"`
	ProductName  *string `json:"nom_producto" db:"nom_producto"`
	CategoryCode *int32  `json:"cod_categ_producto" db:"cod_categ_producto"`
	CategoryName *string `json:"nom_categ_producto" db:"nom_categ_producto"`
	GroupName    *string `json:"nom_agrupador" db:"nom_agrupador"`
	Price        *int64  `json:"precio" db:"precio"`
	Total        Amount  `json:"total" db:"total"`
}
