package model

import "encoding/json"

// SubQuestion is one question attached to a comprehension passage.
type SubQuestion struct {
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// ComprehensionPassage bundles a reading passage with its five
// sub-questions. The sub-questions are stored as a JSON column; order is
// preserved by the array.
// swagger:model ComprehensionPassage
type ComprehensionPassage struct {
	BaseModel
	Passage      string          `gorm:"type:text;not null" json:"passage"`
	SubQuestions json.RawMessage `gorm:"type:json;not null" json:"subQuestions"`
}

func (ComprehensionPassage) TableName() string {
	return "comprehension_passages"
}

// DecodeSubQuestions unmarshals the stored sub-question array.
func (p *ComprehensionPassage) DecodeSubQuestions() ([]SubQuestion, error) {
	var subs []SubQuestion
	if len(p.SubQuestions) == 0 {
		return subs, nil
	}
	err := json.Unmarshal(p.SubQuestions, &subs)
	return subs, err
}
