package models

// User is an account that can be assigned to tasks. Deleting a user removes
// its assignment rows and nothing else.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email    string `json:"email" gorm:"size:120;uniqueIndex;not null"`

	Assignments []Assignment `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
