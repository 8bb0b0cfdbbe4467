package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"travelmate/internal/models/db_models"
	"travelmate/internal/models/request_models"
	"travelmate/internal/services"
	"travelmate/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// GetHistory returns the conversation oldest first; an empty conversation
// comes back seeded with the personalized welcome message.
func (ch *ChatController) GetHistory(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	messages, err := ch.chatService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Chat history fetched successfully")
}

func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	message := &db_models.ChatMessage{
		UserID:        userID,
		Message:       req.Message,
		Sender:        req.Sender,
		Context:       req.Context,
		AIPersonality: req.AIPersonality,
	}

	saved, err := ch.chatService.SendMessage(c.Request.Context(), message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Message sent successfully")
}

// PersonalizedResponse previews the scripted reply for a message without
// appending anything to the conversation log.
func (ch *ChatController) PersonalizedResponse(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req request_models.PersonalizedResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	response, err := ch.chatService.PersonalizedResponse(c.Request.Context(), userID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"response": response}, "Personalized response generated successfully")
}
