package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'store' table.
// Each row is one restaurant listing; the column names are shared with the web client.
type StoreModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Writer    uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreName string    `gorm:"column:store_name;type:varchar(100);not null"`
	ImgPath   string    `gorm:"column:img_path;type:text;not null;default:''"`
	Address   string    `gorm:"type:varchar(255);not null"`
	Location  string    `gorm:"type:varchar(20);not null;index"`
	Star      int       `gorm:"not null;check:chk_store_star,star BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "store"
}
