package model

import "time"

type Contact struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string    `gorm:"type:varchar(50);not null" json:"phone"`
	Message      *string   `gorm:"type:text" json:"message"`
	ArtworkTitle *string   `gorm:"type:varchar(255)" json:"artwork_title"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
