package models

// Follow is a directed edge: the follower wants the author's posts in
// their personal feed. Existence of the row means "is following".
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id" gorm:"uniqueIndex:idx_follow_edge"`
	Follower   Account `json:"follower"`
	AuthorID   uint    `json:"author_id" gorm:"uniqueIndex:idx_follow_edge"`
	Author     Account `json:"author"`
}
