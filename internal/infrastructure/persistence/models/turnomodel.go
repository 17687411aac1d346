package models

type TurnoModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex;size:64;not null"`
	Name      string `gorm:"size:200;not null"`
	Request   string `gorm:"type:text;not null"`
	Label     string `gorm:"uniqueIndex;size:20;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations; relationships are
	// managed by application business logic.
}

func (TurnoModel) TableName() string {
	return "turnos"
}

// LabelCounterModel backs the sequence used for ticket label allocation.
// The counter advances with an atomic fetch-and-add so concurrent creations
// never mint the same label.
type LabelCounterModel struct {
	Name  string `gorm:"primaryKey;size:50"`
	Value int64  `gorm:"not null"`
}

func (LabelCounterModel) TableName() string {
	return "label_counters"
}
