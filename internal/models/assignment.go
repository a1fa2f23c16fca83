package models

// Assignment links a user to a task. Duplicates are allowed: the same user
// may be assigned to the same task more than once.
type Assignment struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`
	TaskID uint `json:"task_id" gorm:"not null;index"`

	User User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Task Task `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}
