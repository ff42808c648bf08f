package entities

import (
	"time"

	"capper-server/internal/domain/user"
)

// School is an organization a user may be associated with for the referral
// program.
type School struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	Name      string    `gorm:"type:varchar(256);not null"`
}

// TableName specifies the table name for School.
func (School) TableName() string {
	return "schools"
}

// User represents the database schema for users.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Name      string    `gorm:"type:varchar(256);not null"`
	Email     string    `gorm:"type:varchar(256);uniqueIndex"`
	SchoolID  *uint     `gorm:"index"`
	School    *School   `gorm:"foreignKey:SchoolID"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// EtoD converts the database entity to the domain model.
func (u *User) EtoD() *user.User {
	var schoolName *string
	if u.School != nil {
		schoolName = &u.School.Name
	}
	return &user.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		SchoolName: schoolName,
	}
}
