package models

// MsgRecordPending is shown for scheduled workshops with no execution record.
const MsgRecordPending = "(Taller pendiente registro)"

// SectionWorkshop is a scheduled workshop as seen by an instructor when
// recording executions.
type SectionWorkshop struct {
	WorkshopSchedule
	// UserIndicator is 0 when the workshop is scheduled for the viewing actor.
	UserIndicator int32 `json:"indicador_usuario" db:"indicador_usuario" example:"0"`
	// RecordIndicator counts execution records of the scheduled workshop.
	RecordIndicator Amount `json:"indicador_registro" db:"indicador_registro" example:"1"`
	Notes           string `json:"obs" db:"obs"`
}

// ExecutionRecord is the registration of a workshop execution (regis_taller).
type ExecutionRecord struct {
	Date string `json:"fecha" example:"2026-04-14"`
	SectionKey
	WorkshopID int64   `json:"id_taller" example:"12"`
	UserID     int64   `json:"id_usuario" example:"4"`
	Notes      *string `json:"obs"`
}
