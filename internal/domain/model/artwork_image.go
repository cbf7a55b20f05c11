package model

// 1作品につきis_primaryは最大1枚（無い場合はArtwork.Imageにフォールバック）
type ArtworkImage struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtworkID int64   `gorm:"not null;index" json:"artwork_id"`
	URL       string  `gorm:"type:text;not null" json:"url"`
	Title     *string `gorm:"type:varchar(255)" json:"title"`
	IsPrimary bool    `gorm:"not null;default:false" json:"is_primary"`
	SortOrder int     `gorm:"not null;default:0" json:"sort_order"`
}
