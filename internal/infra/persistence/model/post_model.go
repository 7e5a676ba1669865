package model

import "time"

// PostModel mirrors the 'posts' table. OwnerID references users.id with
// ON DELETE CASCADE.
type PostModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Published bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	OwnerID   int64     `gorm:"not null;index"`

	Votes []VoteModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
