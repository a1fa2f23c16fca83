package models

// Tag is a display label attached to tasks. Color is intentionally not
// unique: two tags may share a color.
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Color string `json:"color" gorm:"size:50;not null"`

	Tasks []Task `json:"-" gorm:"many2many:task_tags;constraint:OnDelete:CASCADE"`
}
