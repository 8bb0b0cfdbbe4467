package request_models

import "travelmate/internal/models/db_models"

// QuizResponseRequest records a single answered question.
type QuizResponseRequest struct {
	UserID        string `json:"userId" binding:"required"`
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer" binding:"required"`
}

// SubmitQuizRequest carries the full answer set keyed by question index.
// JSON object keys arrive as strings; the controller converts them.
type SubmitQuizRequest struct {
	UserID  string            `json:"userId" binding:"required"`
	Answers map[string]string `json:"answers" binding:"required"`
}

type UpdateTravelDNARequest struct {
	TravelDNA db_models.TravelDNA `json:"travelDNA" binding:"required"`
}
