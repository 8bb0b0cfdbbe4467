package db_models

import "github.com/google/uuid"

// QuizResponse stores one answered question of the onboarding quiz.
// QuestionIndex is 0..4; retaking the quiz appends fresh rows and the
// recomputed DNA replaces the old one wholesale.
type QuizResponse struct {
	BaseModel
	UserID        uuid.UUID `gorm:"index" json:"userId"`
	QuestionIndex int       `json:"questionIndex"`
	Answer        string    `json:"answer"`
}
