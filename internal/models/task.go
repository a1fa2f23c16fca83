package models

import "time"

// Task belongs to exactly one project and cannot outlive it. Status is an
// open vocabulary with "todo" as the default; the data layer does not
// enforce an enum.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProjectID   uint       `json:"project_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"size:150;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      string     `json:"status" gorm:"size:20;not null;default:'todo'"`
	DueDate     *time.Time `json:"due_date" gorm:"type:date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Tags        []Tag        `json:"tags" gorm:"many2many:task_tags;constraint:OnDelete:CASCADE"`
	Assignments []Assignment `json:"assignments" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}
