package models

type Event struct {
	BaseModel

	EventName   string  `gorm:"not null" json:"event_name"`
	EventDate   string  `gorm:"not null" json:"event_date"`
	Location    *string `json:"location"`
	OrganizerID string  `gorm:"type:uuid;not null;index" json:"organizer_id"`

	// Relationships
	Organizer User `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
