package model

import (
	"time"

	"github.com/google/uuid"
)

type AdModel struct {
	AdID          uuid.UUID `gorm:"column:ad_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ad_id"`
	AdUserID      uuid.UUID `gorm:"column:ad_user_id;type:uuid;not null;index" json:"ad_user_id"`
	AdTitle       string    `gorm:"column:ad_title;size:255;not null" json:"ad_title"`
	AdDescription string    `gorm:"column:ad_description;type:text;not null" json:"ad_description"`
	AdImageURL    *string   `gorm:"column:ad_image_url;size:500" json:"ad_image_url"` // Nullable
	AdCategory    string    `gorm:"column:ad_category;size:50;not null" json:"ad_category"`
	AdCondition   string    `gorm:"column:ad_condition;size:50;not null" json:"ad_condition"`
	AdCreatedAt   time.Time `gorm:"column:ad_created_at;autoCreateTime" json:"ad_created_at"`
}

// TableName sets the name of the table
func (AdModel) TableName() string {
	return "ads"
}
