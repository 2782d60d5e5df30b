package models

// Comment is a reader reply attached to a single post. Comments are only ever
// created; no handler edits or deletes them.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	PostID   uint   `gorm:"index;not null" json:"post_id"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
}
