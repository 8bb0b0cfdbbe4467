package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelmate/internal/models/db_models"
)

func TestSelectTone(t *testing.T) {
	tests := []struct {
		name string
		dna  *db_models.TravelDNA
		want ToneProfile
	}{
		{"nil dna", nil, ToneProfile{Tone: "casual", Expertise: 75, Empathy: 85}},
		{"no trait dominant", &db_models.TravelDNA{AdventureSeeker: 80, Cultural: 80, Social: 80}, ToneProfile{Tone: "casual", Expertise: 75, Empathy: 85}},
		{"adventurous", &db_models.TravelDNA{AdventureSeeker: 81}, ToneProfile{Tone: "enthusiastic", Expertise: 90, Empathy: 85}},
		{"cultural", &db_models.TravelDNA{Cultural: 85}, ToneProfile{Tone: "formal", Expertise: 95, Empathy: 90}},
		{"social", &db_models.TravelDNA{Social: 90}, ToneProfile{Tone: "humorous", Expertise: 75, Empathy: 95}},
		{"adventurous beats cultural", &db_models.TravelDNA{AdventureSeeker: 85, Cultural: 90}, ToneProfile{Tone: "enthusiastic", Expertise: 90, Empathy: 85}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTone(tt.dna))
		})
	}
}

func TestSelectResponseIndex(t *testing.T) {
	assert.Equal(t, 0, SelectResponseIndex(nil))
	assert.Equal(t, 0, SelectResponseIndex(&db_models.TravelDNA{}))
	assert.Equal(t, 1, SelectResponseIndex(&db_models.TravelDNA{Cultural: 75}))
	assert.Equal(t, 2, SelectResponseIndex(&db_models.TravelDNA{AdventureSeeker: 75}))
	assert.Equal(t, 3, SelectResponseIndex(&db_models.TravelDNA{Social: 75}))

	// cultural outranks adventurous here, unlike tone selection
	assert.Equal(t, 1, SelectResponseIndex(&db_models.TravelDNA{AdventureSeeker: 90, Cultural: 75}))
}

func TestInferMood(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I want to relax at the beach", "relax"},
		{"let's hit a club tonight", "party"},
		{"any good hikes around?", "explore"},
		{"where should I eat?", "all"},
		// relax keywords are checked before party
		{"a calm bar would be nice", "relax"},
		{"LOOKING FOR A SPA", "relax"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferMood(tt.message), "message %q", tt.message)
	}
}

func TestGetHistorySeedsWelcomeMessage(t *testing.T) {
	chatRepo := &fakeChatRepo{}
	userRepo := newFakeUserRepo()
	userID := uuid.New()
	require.NoError(t, userRepo.UpdateTravelDNA(context.Background(), userID, &db_models.TravelDNA{
		AdventureSeeker: 85,
		Personality:     "The Adventurer",
	}))

	svc := NewChatService(chatRepo, userRepo, testLogger())
	history, err := svc.GetHistory(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "ai", history[0].Sender)
	assert.Contains(t, history[0].Message, "The Adventurer")
	require.NotNil(t, history[0].AIPersonality)
	assert.Equal(t, "enthusiastic", history[0].AIPersonality.ResponseStyle)

	// second call returns the stored conversation without reseeding
	history, err = svc.GetHistory(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSendMessageInfersMoodAndSchedulesReply(t *testing.T) {
	chatRepo := &fakeChatRepo{}
	userRepo := newFakeUserRepo()
	userID := uuid.New()
	require.NoError(t, userRepo.UpdateTravelDNA(context.Background(), userID, &db_models.TravelDNA{Cultural: 80}))

	svc := NewChatService(chatRepo, userRepo, testLogger())

	var scheduledDelay time.Duration
	svc.schedule = func(d time.Duration, f func()) {
		scheduledDelay = d
		f()
	}

	msg := &db_models.ChatMessage{
		UserID:  userID,
		Message: "I want to relax at the beach",
		Sender:  "user",
	}
	saved, err := svc.SendMessage(context.Background(), msg)

	require.NoError(t, err)
	require.NotNil(t, saved.Context)
	assert.Equal(t, "relax", saved.Context.Mood)
	assert.Equal(t, aiTypingDelay, scheduledDelay)

	history, err := svc.GetHistory(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "ai", history[1].Sender)
	assert.Equal(t, cannedResponses[1], history[1].Message)
	// the reply inherits the user message context
	require.NotNil(t, history[1].Context)
	assert.Equal(t, "relax", history[1].Context.Mood)
}

func TestSendMessageFromAISchedulesNothing(t *testing.T) {
	chatRepo := &fakeChatRepo{}
	svc := NewChatService(chatRepo, newFakeUserRepo(), testLogger())

	scheduled := false
	svc.schedule = func(d time.Duration, f func()) { scheduled = true }

	_, err := svc.SendMessage(context.Background(), &db_models.ChatMessage{
		UserID:  uuid.New(),
		Message: "Here are some suggestions...",
		Sender:  "ai",
	})

	require.NoError(t, err)
	assert.False(t, scheduled)
	assert.Len(t, chatRepo.messages, 1)
}

func TestSendMessageKeepsExplicitMood(t *testing.T) {
	chatRepo := &fakeChatRepo{}
	svc := NewChatService(chatRepo, newFakeUserRepo(), testLogger())
	svc.schedule = func(d time.Duration, f func()) {}

	msg := &db_models.ChatMessage{
		UserID:  uuid.New(),
		Message: "I want to relax",
		Sender:  "user",
		Context: &db_models.ChatContext{Mood: "party"},
	}
	saved, err := svc.SendMessage(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, "party", saved.Context.Mood)
}

func TestPersonalizedResponseDoesNotTouchLog(t *testing.T) {
	chatRepo := &fakeChatRepo{}
	userRepo := newFakeUserRepo()
	userID := uuid.New()
	require.NoError(t, userRepo.UpdateTravelDNA(context.Background(), userID, &db_models.TravelDNA{AdventureSeeker: 75}))

	svc := NewChatService(chatRepo, userRepo, testLogger())
	response, err := svc.PersonalizedResponse(context.Background(), userID, "what should I do today?")

	require.NoError(t, err)
	assert.Equal(t, cannedResponses[2], response)
	assert.Empty(t, chatRepo.messages)
}

func TestWelcomeMessageVariants(t *testing.T) {
	assert.Contains(t, WelcomeMessage(nil), "AI travel twin")

	adventurer := &db_models.TravelDNA{AdventureSeeker: 85, Personality: "The Adventurer"}
	assert.Contains(t, WelcomeMessage(adventurer), "adventure seeker")

	cultural := &db_models.TravelDNA{Cultural: 85, Personality: "The Culture Seeker"}
	assert.Contains(t, WelcomeMessage(cultural), "Greetings")

	social := &db_models.TravelDNA{Social: 85, Personality: "The Social Butterfly"}
	assert.Contains(t, WelcomeMessage(social), "social butterfly")

	explorer := &db_models.TravelDNA{Personality: "The Explorer"}
	assert.Contains(t, WelcomeMessage(explorer), "The Explorer")
}
