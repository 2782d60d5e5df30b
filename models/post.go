package models

// Post is a blog entry. Date is a display string fixed at creation time and
// never recalculated. AuthorID is nullable: deleting a user leaves the post
// orphaned rather than cascading.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Title    string    `gorm:"size:250;not null" json:"title"`
	Subtitle string    `gorm:"size:250;not null" json:"subtitle"`
	Date     string    `gorm:"size:250;not null" json:"date"`
	Body     string    `gorm:"type:text;not null" json:"body"`
	ImgURL   string    `gorm:"size:250;not null" json:"img_url"`
	AuthorID *uint     `gorm:"index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
}
