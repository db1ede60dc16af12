package models

type Resource struct {
	BaseModel

	ContentType string  `gorm:"not null;index" json:"content_type"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description"`
	ContentURL  *string `json:"content_url"`
	AuthorID    string  `gorm:"type:uuid;not null;index" json:"author_id"`

	// Relationships
	Author User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
