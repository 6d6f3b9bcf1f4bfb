package models

// Product is a catalog item (producto) with its current unit price.
type Product struct {
	ID           int64  `json:"id_producto" db:"id_producto" example:"7"`
	Name         string `json:"nom_producto" db:"nom_producto" example:"Harina"`
	Price        int64  `json:"precio" db:"precio" example:"1200"`
	UnitCode     int32  `json:"cod_unidad_medida" db:"cod_unidad_medida" example:"1"`
	CategoryCode int32  `json:"cod_categ_producto" db:"cod_categ_producto" example:"1"`
	UnitName     string `json:"nom_unidad_medida" db:"nom_unidad_medida" example:"Kilogramo"`
	CategoryName string `json:"nom_categ_producto" db:"nom_categ_producto" example:"Abarrotes"`
}

// GroupingTag (agrupador) classifies the product lines of a workshop.
type GroupingTag struct {
	Code int32  `json:"cod_agrupador" db:"cod_agrupador" example:"1"`
	Name string `json:"nom_agrupador" db:"nom_agrupador" example:"Materia prima"`
}

// Unit is a unit of measure (unidad_medida).
type Unit struct {
	Code      int32  `json:"cod_unidad_medida" db:"cod_unidad_medida" example:"1"`
	Name      string `json:"nom_unidad_medida" db:"nom_unidad_medida" example:"Kilogramo"`
	ShortName string `json:"nom_unidad_medida_abrev" db:"nom_unidad_medida_abrev" example:"kg"`
}

// ProductCategory is a product category (categ_producto).
type ProductCategory struct {
	Code int32  `json:"cod_categ_producto" db:"cod_categ_producto" example:"1"`
	Name string `json:"nom_categ_producto" db:"nom_categ_producto" example:"Abarrotes"`
}
