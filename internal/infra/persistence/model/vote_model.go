package model

// VoteModel mirrors the 'votes' table. The composite primary key over
// (user_id, post_id) is the uniqueness authority for the one-vote-per-pair
// invariant; concurrent duplicate inserts lose at commit time here.
type VoteModel struct {
	UserID int64 `gorm:"primaryKey;autoIncrement:false"`
	PostID int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}
