package model

import (
	"time"
)

// SurveyModel is the GORM-specific struct for the 'surveys' table.
// Surveys carry self-reported contact info and are matched to customers by
// digits-only phone.
type SurveyModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Phone     string `gorm:"type:varchar(32);not null;index"`
	Address   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SurveyModel) TableName() string {
	return "surveys"
}
