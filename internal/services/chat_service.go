package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

// aiTypingDelay paces the scripted reply so the conversation feels live. The
// timer is fire-and-forget; navigating away does not cancel it.
const aiTypingDelay = 1500 * time.Millisecond

// ToneProfile is the scripted assistant's speaking register derived from the
// user's travel DNA.
type ToneProfile struct {
	Tone      string `json:"tone"` // casual, formal, humorous, enthusiastic
	Expertise int    `json:"expertise"`
	Empathy   int    `json:"empathy"`
}

// SelectTone picks the assistant register by threshold, first match wins.
// Without a DNA the default stands.
func SelectTone(dna *db_models.TravelDNA) ToneProfile {
	profile := ToneProfile{Tone: "casual", Expertise: 75, Empathy: 85}
	if dna == nil {
		return profile
	}

	switch {
	case dna.AdventureSeeker > 80:
		profile = ToneProfile{Tone: "enthusiastic", Expertise: 90, Empathy: 85}
	case dna.Cultural > 80:
		profile = ToneProfile{Tone: "formal", Expertise: 95, Empathy: 90}
	case dna.Social > 80:
		profile = ToneProfile{Tone: "humorous", Expertise: 75, Empathy: 95}
	}
	return profile
}

// cannedResponses is the fixed scripted reply table; SelectResponseIndex
// picks the row.
var cannedResponses = [4]string{
	"Based on your love for authentic experiences, I'd recommend these local favorites...",
	"Since you enjoy cultural exploration, here are some hidden temples and art spaces...",
	"Given your adventurous spirit, let me suggest some off-the-beaten-path activities...",
	"Considering your social nature, here are great spots to meet locals and fellow travelers...",
}

// SelectResponseIndex maps the dominant DNA trait to a row of the response
// table. The evaluation order (cultural before adventurous) intentionally
// differs from SelectTone's.
func SelectResponseIndex(dna *db_models.TravelDNA) int {
	if dna == nil {
		return 0
	}
	switch {
	case dna.Cultural > 70:
		return 1
	case dna.AdventureSeeker > 70:
		return 2
	case dna.Social > 70:
		return 3
	default:
		return 0
	}
}

var (
	relaxKeywords   = []string{"relax", "calm", "peaceful", "quiet", "spa", "beach"}
	partyKeywords   = []string{"party", "nightlife", "bar", "club", "fun", "drink"}
	exploreKeywords = []string{"explore", "adventure", "hike", "discover", "new"}
)

// InferMood scans the message for mood keywords; the sets are checked in
// relax, party, explore order and the first hit wins. No hit means "all".
func InferMood(text string) string {
	lower := strings.ToLower(text)

	for _, kw := range relaxKeywords {
		if strings.Contains(lower, kw) {
			return "relax"
		}
	}
	for _, kw := range partyKeywords {
		if strings.Contains(lower, kw) {
			return "party"
		}
	}
	for _, kw := range exploreKeywords {
		if strings.Contains(lower, kw) {
			return "explore"
		}
	}
	return "all"
}

// WelcomeMessage is the outreach seeded into an empty conversation.
func WelcomeMessage(dna *db_models.TravelDNA) string {
	if dna == nil {
		return "Hey there! I'm your AI travel twin. I've learned your preferences and I'm here to help plan your perfect trip. What destination are you thinking about?"
	}

	tone := SelectTone(dna)
	switch {
	case tone.Tone == "enthusiastic" && dna.AdventureSeeker > 70:
		return fmt.Sprintf("Hey adventure seeker! I can tell you're all about those epic experiences! As %s, I'm super excited to help you discover some incredible hidden gems and off-the-beaten-path adventures. Where should we explore next?", dna.Personality)
	case tone.Tone == "formal" && dna.Cultural > 70:
		return fmt.Sprintf("Greetings! I understand you appreciate cultural depth and authentic experiences. As %s, I'm delighted to assist you in discovering meaningful destinations that align with your sophisticated travel preferences. Which region interests you most?", dna.Personality)
	case tone.Tone == "humorous" && dna.Social > 70:
		return fmt.Sprintf("Hey there, social butterfly! I see you're %s - basically the life of the travel party! I'm here to help you find the coolest spots where you can meet amazing people and have unforgettable experiences. Ready to make some travel magic happen?", dna.Personality)
	default:
		return fmt.Sprintf("Hi! I'm your personalized AI travel twin. I've analyzed your travel DNA and see you're %s. I'm here to suggest experiences that match your unique style. What kind of adventure are you in the mood for?", dna.Personality)
	}
}

type ChatServiceInterface interface {
	GetHistory(ctx context.Context, userID uuid.UUID) ([]db_models.ChatMessage, error)
	SendMessage(ctx context.Context, message *db_models.ChatMessage) (*db_models.ChatMessage, error)
	PersonalizedResponse(ctx context.Context, userID uuid.UUID, message string) (string, error)
}

type ChatService struct {
	chatRepo repositories.ChatRepository
	userRepo repositories.UserRepository
	logger   *zap.SugaredLogger

	// replaceable in tests to avoid waiting on real timers
	schedule func(d time.Duration, f func())
}

func NewChatService(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository, logger *zap.SugaredLogger) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
		logger:   logger,
		schedule: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// GetHistory returns the conversation oldest first. An empty conversation is
// seeded with a personalized outreach message before being returned.
func (s *ChatService) GetHistory(ctx context.Context, userID uuid.UUID) ([]db_models.ChatMessage, error) {
	messages, err := s.chatRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Errorw("listing chat history failed", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if len(messages) > 0 {
		return messages, nil
	}

	dna := s.travelDNAFor(ctx, userID)
	tone := SelectTone(dna)
	welcome := &db_models.ChatMessage{
		UserID:  userID,
		Message: WelcomeMessage(dna),
		Sender:  "ai",
		AIPersonality: &db_models.AIPersonality{
			ResponseStyle:  tone.Tone,
			KnowledgeLevel: strconv.Itoa(tone.Expertise),
			Enthusiasm:     tone.Empathy,
		},
	}
	if err := s.chatRepo.Save(ctx, welcome); err != nil {
		s.logger.Errorw("seeding welcome message failed", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return []db_models.ChatMessage{*welcome}, nil
}

// SendMessage appends the user message and schedules the scripted AI reply
// after the typing delay.
func (s *ChatService) SendMessage(ctx context.Context, message *db_models.ChatMessage) (*db_models.ChatMessage, error) {
	if message.Context == nil {
		message.Context = &db_models.ChatContext{}
	}
	if message.Context.Mood == "" {
		message.Context.Mood = InferMood(message.Message)
	}

	if err := s.chatRepo.Save(ctx, message); err != nil {
		s.logger.Errorw("saving chat message failed", "user_id", message.UserID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	if message.Sender == "user" {
		s.scheduleAIReply(message)
	}
	return message, nil
}

func (s *ChatService) scheduleAIReply(userMessage *db_models.ChatMessage) {
	userID := userMessage.UserID
	msgContext := userMessage.Context

	s.schedule(aiTypingDelay, func() {
		ctx := context.Background()

		dna := s.travelDNAFor(ctx, userID)
		tone := SelectTone(dna)
		reply := &db_models.ChatMessage{
			UserID:  userID,
			Message: cannedResponses[SelectResponseIndex(dna)],
			Sender:  "ai",
			Context: msgContext,
			AIPersonality: &db_models.AIPersonality{
				ResponseStyle:  tone.Tone,
				KnowledgeLevel: strconv.Itoa(tone.Expertise),
				Enthusiasm:     tone.Empathy,
			},
		}
		if err := s.chatRepo.Save(ctx, reply); err != nil {
			s.logger.Errorw("saving AI reply failed", "user_id", userID, "error", err)
		}
	})
}

// PersonalizedResponse returns the scripted reply for a message without
// appending anything to the log.
func (s *ChatService) PersonalizedResponse(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	dna := s.travelDNAFor(ctx, userID)
	return cannedResponses[SelectResponseIndex(dna)], nil
}

func (s *ChatService) travelDNAFor(ctx context.Context, userID uuid.UUID) *db_models.TravelDNA {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return nil
	}
	return user.TravelDNA
}
