package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Consultation stores one submitted questionnaire together with the
// recommendation snapshot produced for it.
type Consultation struct {
	ID        string            `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null;index" json:"user_id"`
	Responses datatypes.JSONMap `gorm:"column:responses;type:jsonb" json:"responses"`
	Result    datatypes.JSON    `gorm:"column:result;type:jsonb" json:"result"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Consultation) TableName() string {
	return "consultations"
}
