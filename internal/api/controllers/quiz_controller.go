package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"travelmate/internal/models/request_models"
	"travelmate/internal/services"
	"travelmate/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// SaveResponse godoc
// @Summary Record a single quiz answer
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.QuizResponseRequest true "Quiz answer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/response [post]
func (q *QuizController) SaveResponse(c *gin.Context) {
	var req request_models.QuizResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	if req.QuestionIndex < 0 || req.QuestionIndex >= services.QuizQuestionCount {
		utils.RespondError(c, http.StatusBadRequest, "Question index out of range")
		return
	}

	response, err := q.quizService.SaveResponse(c.Request.Context(), userID, req.QuestionIndex, req.Answer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Quiz response saved successfully")
}

// SubmitQuiz godoc
// @Summary Submit the full quiz and compute the travel DNA
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.SubmitQuizRequest true "Full answer set"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/submit [post]
func (q *QuizController) SubmitQuiz(c *gin.Context) {
	var req request_models.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	answers := make(map[int]string, len(req.Answers))
	for key, answer := range req.Answers {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= services.QuizQuestionCount {
			utils.RespondError(c, http.StatusBadRequest, "Invalid question index: "+key)
			return
		}
		answers[index] = answer
	}

	dna, err := q.quizService.SubmitQuiz(c.Request.Context(), userID, answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dna, "Travel DNA computed successfully")
}

func (q *QuizController) GetResponses(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	responses, err := q.quizService.GetUserResponses(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, responses, "Quiz responses fetched successfully")
}

// UpdateTravelDNA replaces the stored profile wholesale, no merging with the
// previous one.
func (q *QuizController) UpdateTravelDNA(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req request_models.UpdateTravelDNARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := q.quizService.ReplaceTravelDNA(c.Request.Context(), userID, req.TravelDNA); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, req.TravelDNA, "Travel DNA updated successfully")
}
