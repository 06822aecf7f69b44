package model

// ── 评论状态（软删除经状态字段表达）──

const (
	CommentStatusActive  = "ACTIVE"
	CommentStatusDeleted = "DELETED"
)

// CommentRating 评论评分表 — 对应 comments_ratings
// Rating 取值 1-5，数据库另有 CHECK 约束兜底
type CommentRating struct {
	CommentID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"comment_id"`
	EventID     string `gorm:"type:uuid;not null"                             json:"event_id"`
	UserID      string `gorm:"type:uuid;not null"                             json:"user_id"`
	CommentText string `gorm:"type:text;not null"                             json:"comment_text"`
	Rating      int    `gorm:"not null"                                       json:"rating"`
	Status      string `gorm:"type:varchar(20);not null;default:'ACTIVE'"     json:"status"`
	BaseModel

	// 关联
	User  *User  `gorm:"foreignKey:UserID;references:UserID"   json:"user,omitempty"`
	Event *Event `gorm:"foreignKey:EventID;references:EventID" json:"event,omitempty"`
}

// TableName 指定表名
func (CommentRating) TableName() string { return "comments_ratings" }
