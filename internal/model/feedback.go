package model

// Feedback is a free-text note a candidate leaves after finishing a test.
// swagger:model Feedback
type Feedback struct {
	BaseModel
	Email   string `gorm:"size:255;index" json:"email"`
	Name    string `gorm:"size:255" json:"name"`
	Message string `gorm:"type:text;not null" json:"message"`
	Rating  int    `gorm:"default:0" json:"rating"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
