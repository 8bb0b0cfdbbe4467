package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

var errFakeDown = errors.New("fake repository down")

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateTravelDNA(ctx context.Context, id uuid.UUID, dna *db_models.TravelDNA) error {
	if u, ok := f.users[id]; ok {
		u.TravelDNA = dna
	} else {
		f.users[id] = &db_models.User{BaseModel: db_models.BaseModel{ID: id}, TravelDNA: dna}
	}
	return nil
}

func (f *fakeUserRepo) UpdateLocation(ctx context.Context, id uuid.UUID, location *db_models.GeoPoint) error {
	if u, ok := f.users[id]; ok {
		u.CurrentLocation = location
	}
	return nil
}

type fakeQuizRepo struct {
	responses []db_models.QuizResponse
}

func (f *fakeQuizRepo) SaveResponse(ctx context.Context, response *db_models.QuizResponse) error {
	f.responses = append(f.responses, *response)
	return nil
}

func (f *fakeQuizRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.QuizResponse, error) {
	var out []db_models.QuizResponse
	for _, r := range f.responses {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeBehaviorRepo struct {
	saved      []db_models.UserBehavior
	failBatch  bool
	batchCalls int
}

func (f *fakeBehaviorRepo) Save(ctx context.Context, behavior *db_models.UserBehavior) error {
	f.saved = append(f.saved, *behavior)
	return nil
}

func (f *fakeBehaviorRepo) SaveBatch(ctx context.Context, behaviors []db_models.UserBehavior) error {
	f.batchCalls++
	if f.failBatch {
		return errFakeDown
	}
	f.saved = append(f.saved, behaviors...)
	return nil
}

func (f *fakeBehaviorRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserBehavior, error) {
	var out []db_models.UserBehavior
	for _, b := range f.saved {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeChatRepo struct {
	messages []db_models.ChatMessage
}

func (f *fakeChatRepo) Save(ctx context.Context, message *db_models.ChatMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeChatRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ChatMessage, error) {
	var out []db_models.ChatMessage
	for _, m := range f.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeItineraryRepo struct {
	items map[uuid.UUID]*db_models.ItineraryItem
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{items: map[uuid.UUID]*db_models.ItineraryItem{}}
}

func (f *fakeItineraryRepo) Create(ctx context.Context, item *db_models.ItineraryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.ItineraryItem, error) {
	return f.items[id], nil
}

func (f *fakeItineraryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ItineraryItem, error) {
	var out []db_models.ItineraryItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeItineraryRepo) Update(ctx context.Context, item *db_models.ItineraryItem) error {
	f.items[item.ID] = item
	return nil
}

type fakeRecommendationRepo struct {
	recs []db_models.Recommendation
}

func (f *fakeRecommendationRepo) Create(ctx context.Context, rec *db_models.Recommendation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.recs = append(f.recs, *rec)
	return nil
}

func (f *fakeRecommendationRepo) GetByID(ctx context.Context, id string) (*db_models.Recommendation, error) {
	for i := range f.recs {
		if f.recs[i].ID.String() == id {
			return &f.recs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRecommendationRepo) List(ctx context.Context) ([]db_models.Recommendation, error) {
	return f.recs, nil
}

type fakePlaceRepo struct {
	places map[string]*db_models.LocalPlace
}

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{places: map[string]*db_models.LocalPlace{}}
}

func (f *fakePlaceRepo) Create(ctx context.Context, place *db_models.LocalPlace) error {
	if place.ID == uuid.Nil {
		place.ID = uuid.New()
	}
	f.places[place.ID.String()] = place
	return nil
}

func (f *fakePlaceRepo) GetByID(ctx context.Context, id string) (*db_models.LocalPlace, error) {
	return f.places[id], nil
}

func (f *fakePlaceRepo) List(ctx context.Context) ([]db_models.LocalPlace, error) {
	var out []db_models.LocalPlace
	for _, p := range f.places {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlaceRepo) Update(ctx context.Context, place *db_models.LocalPlace) error {
	f.places[place.ID.String()] = place
	return nil
}
