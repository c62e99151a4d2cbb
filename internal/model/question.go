package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray stores an ordered list of strings as a JSON column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for StringArray")
	}
}

// Question is one four-option multiple choice question in the bank.
// SubCategory carries the department tag and is meaningful only for the
// core category; the other pools ignore it.
// swagger:model Question
type Question struct {
	BaseModel
	Category      string      `gorm:"size:50;index;not null" json:"category"`
	SubCategory   string      `gorm:"size:100;index" json:"subCategory"`
	Prompt        string      `gorm:"type:text;not null" json:"question"`
	Options       StringArray `gorm:"type:json" json:"options"`
	CorrectAnswer int         `gorm:"not null" json:"correctAnswer"`
}

func (Question) TableName() string {
	return "questions"
}
