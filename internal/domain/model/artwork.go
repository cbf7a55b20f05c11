package model

import (
	"errors"
	"time"
)

type ArtworkStatus string

const (
	ArtworkStatusAvailable ArtworkStatus = "available"
	ArtworkStatusSold      ArtworkStatus = "sold"
	ArtworkStatusDeleted   ArtworkStatus = "deleted"
)

var validArtworkStatuses = map[ArtworkStatus]struct{}{
	ArtworkStatusAvailable: {},
	ArtworkStatusSold:      {},
	ArtworkStatusDeleted:   {},
}

func ParseArtworkStatus(s string) (ArtworkStatus, error) {
	status := ArtworkStatus(s)
	if _, ok := validArtworkStatuses[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid artwork status")
}

type Artwork struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	FullDescription string         `gorm:"type:text" json:"full_description"`
	PriceMinor      int64          `gorm:"not null" json:"price_minor"`
	Currency        string         `gorm:"type:varchar(3);not null;default:'RUB'" json:"currency"`
	Size            string         `gorm:"type:varchar(100)" json:"size"`
	Technique       string         `gorm:"type:varchar(255)" json:"technique"`
	Year            string         `gorm:"type:varchar(10)" json:"year"`
	Image           string         `gorm:"type:text;not null" json:"image"`
	Status          ArtworkStatus  `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	Images          []ArtworkImage `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
