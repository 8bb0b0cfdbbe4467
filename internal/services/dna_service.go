package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

const QuizQuestionCount = 5

// dnaDelta is an additive contribution of one answer to the score vector.
type dnaDelta struct {
	adventureSeeker int
	spontaneous     int
	cultural        int
	social          int
	active          int
}

// answerDeltas maps question index -> answer value -> score deltas.
// Unrecognized or missing answers contribute nothing.
var answerDeltas = [QuizQuestionCount]map[string]dnaDelta{
	// Q0: vacation vibe
	{
		"adventure":  {adventureSeeker: 30, active: 25},
		"relaxation": {adventureSeeker: 10, active: 5},
		"culture":    {cultural: 30, adventureSeeker: 15},
		"nightlife":  {social: 30, active: 20},
	},
	// Q1: discovery style
	{
		"planned":     {spontaneous: 5},
		"spontaneous": {spontaneous: 30, adventureSeeker: 20},
		"local":       {social: 25, cultural: 20},
		"hidden":      {adventureSeeker: 25, spontaneous: 15},
	},
	// Q2: budget style
	{
		"budget":   {adventureSeeker: 10},
		"midrange": {adventureSeeker: 15},
		"luxury":   {social: 15},
		"flexible": {spontaneous: 20},
	},
	// Q3: social style
	{
		"social":     {social: 30},
		"smallgroup": {social: 20},
		"solo":       {social: 5, adventureSeeker: 15},
		"flexible":   {social: 15, spontaneous: 10},
	},
	// Q4: motivation
	{
		"instagram":  {social: 20},
		"authentic":  {cultural: 25, adventureSeeker: 20},
		"learning":   {cultural: 30},
		"relaxation": {active: 5},
	},
}

// ComputeTravelDNA derives the five-dimension profile from quiz answers.
// Every dimension gets a flat +25 baseline on top of the answer deltas and is
// clamped to [0,100]. The personality label is chosen by the first threshold
// that matches, in a fixed priority order. Pure and deterministic; an empty
// answer map yields all-25 scores and "The Explorer".
func ComputeTravelDNA(answers map[int]string) db_models.TravelDNA {
	var total dnaDelta

	preferences := make([]string, 0, len(answers))
	for i := 0; i < QuizQuestionCount; i++ {
		answer, ok := answers[i]
		if !ok {
			continue
		}
		preferences = append(preferences, answer)
		if d, ok := answerDeltas[i][answer]; ok {
			total.adventureSeeker += d.adventureSeeker
			total.spontaneous += d.spontaneous
			total.cultural += d.cultural
			total.social += d.social
			total.active += d.active
		}
	}

	dna := db_models.TravelDNA{
		AdventureSeeker: clampScore(total.adventureSeeker + 25),
		Spontaneous:     clampScore(total.spontaneous + 25),
		Cultural:        clampScore(total.cultural + 25),
		Social:          clampScore(total.social + 25),
		Active:          clampScore(total.active + 25),
		Preferences:     preferences,
	}

	// First match wins; adventurer takes priority over cultural even when
	// both cross the threshold.
	switch {
	case dna.AdventureSeeker >= 70:
		dna.Personality = "The Adventurer"
	case dna.Cultural >= 70:
		dna.Personality = "The Culture Seeker"
	case dna.Social >= 70:
		dna.Personality = "The Social Butterfly"
	case dna.Spontaneous >= 70:
		dna.Personality = "The Free Spirit"
	default:
		dna.Personality = "The Explorer"
	}

	return dna
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

type QuizServiceInterface interface {
	SaveResponse(ctx context.Context, userID uuid.UUID, questionIndex int, answer string) (*db_models.QuizResponse, error)
	GetUserResponses(ctx context.Context, userID uuid.UUID) ([]db_models.QuizResponse, error)
	SubmitQuiz(ctx context.Context, userID uuid.UUID, answers map[int]string) (db_models.TravelDNA, error)
	ReplaceTravelDNA(ctx context.Context, userID uuid.UUID, dna db_models.TravelDNA) error
}

type QuizService struct {
	quizRepo repositories.QuizRepository
	userRepo repositories.UserRepository
	logger   *zap.SugaredLogger
}

func NewQuizService(quizRepo repositories.QuizRepository, userRepo repositories.UserRepository, logger *zap.SugaredLogger) QuizServiceInterface {
	return &QuizService{
		quizRepo: quizRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *QuizService) SaveResponse(ctx context.Context, userID uuid.UUID, questionIndex int, answer string) (*db_models.QuizResponse, error) {
	response := &db_models.QuizResponse{
		UserID:        userID,
		QuestionIndex: questionIndex,
		Answer:        answer,
	}
	if err := s.quizRepo.SaveResponse(ctx, response); err != nil {
		s.logger.Errorw("saving quiz response failed", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return response, nil
}

func (s *QuizService) GetUserResponses(ctx context.Context, userID uuid.UUID) ([]db_models.QuizResponse, error) {
	responses, err := s.quizRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return responses, nil
}

// SubmitQuiz stores the answer set, computes the DNA and replaces the user's
// stored profile. Recomputation overwrites; there is no merge with a prior
// profile.
func (s *QuizService) SubmitQuiz(ctx context.Context, userID uuid.UUID, answers map[int]string) (db_models.TravelDNA, error) {
	for i := 0; i < QuizQuestionCount; i++ {
		answer, ok := answers[i]
		if !ok {
			continue
		}
		response := &db_models.QuizResponse{
			UserID:        userID,
			QuestionIndex: i,
			Answer:        answer,
		}
		if err := s.quizRepo.SaveResponse(ctx, response); err != nil {
			s.logger.Errorw("saving quiz response failed", "user_id", userID, "question", i, "error", err)
			return db_models.TravelDNA{}, utils.ErrDatabaseError
		}
	}

	dna := ComputeTravelDNA(answers)
	if err := s.userRepo.UpdateTravelDNA(ctx, userID, &dna); err != nil {
		s.logger.Errorw("updating travel DNA failed", "user_id", userID, "error", err)
		return db_models.TravelDNA{}, utils.ErrDatabaseError
	}

	s.logger.Infow("travel DNA computed", "user_id", userID, "personality", dna.Personality)
	return dna, nil
}

func (s *QuizService) ReplaceTravelDNA(ctx context.Context, userID uuid.UUID, dna db_models.TravelDNA) error {
	if err := s.userRepo.UpdateTravelDNA(ctx, userID, &dna); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
