package models

type ForumThread struct {
	BaseModel

	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	ThreadTitle string `gorm:"not null" json:"thread_title"`
	Content     string `gorm:"not null" json:"content"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
