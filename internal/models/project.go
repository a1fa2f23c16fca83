package models

import "time"

// Project owns a collection of tasks. Deleting a project cascades to its
// tasks and, through them, to tag links and assignments.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Tasks []Task `json:"tasks" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
