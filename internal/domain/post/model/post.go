package model

import (
	"encoding/json"

	baseModel "github.com/renzmar06/socialgolf-server/pkg/model"
)

// Post is a feed entry published by a business account. Author fields
// are denormalized at write time so the feed renders without joins.
type Post struct {
	baseModel.BaseModel
	AuthorID    string          `gorm:"type:uuid;index;not null" json:"authorId"`
	AuthorName  string          `gorm:"type:varchar(100)" json:"authorName"`
	AuthorEmail string          `gorm:"type:varchar(100)" json:"authorEmail"`
	Content     string          `gorm:"type:text;not null" json:"content"`
	Media       json.RawMessage `gorm:"type:jsonb" json:"media"`
	LikeCount   int             `gorm:"default:0" json:"likeCount"`
}
