package model

// AccessCode gates test entry. Exactly one row is active at a time;
// updating the code deactivates the previous one rather than editing it,
// so the history of codes is kept.
// swagger:model AccessCode
type AccessCode struct {
	BaseModel
	Code     string `gorm:"size:100;not null" json:"code"`
	IsActive bool   `gorm:"default:false;index" json:"isActive"`
}

func (AccessCode) TableName() string {
	return "access_codes"
}
