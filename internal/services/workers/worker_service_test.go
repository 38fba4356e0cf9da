package workers

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/gigworkers/gigworkers_be/internal/models"
	"github.com/gigworkers/gigworkers_be/internal/session"
	"github.com/gigworkers/gigworkers_be/internal/store"
)

type fakeStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.WorkerProfile

	failIncrement bool
	failAppend    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{profiles: make(map[uuid.UUID]*models.WorkerProfile)}
}

func (f *fakeStore) ListAll(context.Context) ([]models.WorkerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.WorkerProfile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*models.WorkerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) Create(_ context.Context, profile *models.WorkerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *profile
	f.profiles[profile.UserID] = &cp
	return nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "area":
			p.Area = v.(string)
		case "city":
			p.City = v.(string)
		case "bio":
			p.Bio = v.(string)
		case "portfolio":
			p.Portfolio = v.(string)
		case "whatsapp":
			p.Whatsapp = v.(string)
		case "available":
			p.Available = v.(bool)
		case "skills":
			p.Skills = v.(datatypes.JSON)
		case "services":
			p.Services = v.(datatypes.JSON)
		}
	}
	return nil
}

func (f *fakeStore) IncrementLikes(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIncrement {
		return errors.New("store unavailable")
	}
	p, ok := f.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Likes++
	return nil
}

func (f *fakeStore) AppendReview(_ context.Context, id uuid.UUID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppend {
		return errors.New("store unavailable")
	}
	p, ok := f.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	reviews := []string{text}
	var existing []string
	if len(p.Reviews) > 0 {
		_ = json.Unmarshal(p.Reviews, &existing)
	}
	reviews = append(reviews, existing...)
	b, _ := json.Marshal(reviews)
	p.Reviews = datatypes.JSON(b)
	return nil
}

func seed(t *testing.T, f *fakeStore) uuid.UUID {
	t.Helper()
	id := uuid.New()
	f.profiles[id] = &models.WorkerProfile{
		UserID:    id,
		Name:      "Asha",
		City:      "Pune",
		Available: true,
		IsActive:  true,
		Reviews:   datatypes.JSON(`[]`),
	}
	return id
}

func newTestService(f *fakeStore) *Service {
	return NewService(f, session.NewMemoryMarkerStore(), nil)
}

func TestLikeOncePerSession(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	svc := newTestService(f)
	ctx := context.Background()

	if err := svc.Like(ctx, "session-a", id); err != nil {
		t.Fatalf("first like failed: %v", err)
	}
	if err := svc.Like(ctx, "session-a", id); err != ErrAlreadyLiked {
		t.Fatalf("expected ErrAlreadyLiked got %v", err)
	}
	if got := f.profiles[id].Likes; got != 1 {
		t.Fatalf("expected 1 like got %d", got)
	}

	// a different session still counts
	if err := svc.Like(ctx, "session-b", id); err != nil {
		t.Fatalf("second session like failed: %v", err)
	}
	if got := f.profiles[id].Likes; got != 2 {
		t.Fatalf("expected 2 likes got %d", got)
	}
}

func TestLikeRetryableAfterStoreFailure(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	svc := newTestService(f)
	ctx := context.Background()

	f.failIncrement = true
	if err := svc.Like(ctx, "session-a", id); err == nil {
		t.Fatal("expected store failure to surface")
	}

	f.failIncrement = false
	if err := svc.Like(ctx, "session-a", id); err != nil {
		t.Fatalf("expected retry to succeed after failure, got %v", err)
	}
	if got := f.profiles[id].Likes; got != 1 {
		t.Fatalf("expected 1 like got %d", got)
	}
}

func TestLikeUnknownWorker(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	if err := svc.Like(context.Background(), "session-a", uuid.New()); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestReviewOncePerSessionNewestFirst(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	svc := newTestService(f)
	ctx := context.Background()

	if err := svc.AddReview(ctx, "session-a", id, "great work"); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if err := svc.AddReview(ctx, "session-a", id, "again"); err != ErrAlreadyReviewed {
		t.Fatalf("expected ErrAlreadyReviewed got %v", err)
	}
	if err := svc.AddReview(ctx, "session-b", id, "on time"); err != nil {
		t.Fatalf("second session review failed: %v", err)
	}

	want := []string{"on time", "great work"}
	if got := f.profiles[id].ReviewList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestReviewRejectsEmptyText(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	svc := newTestService(f)
	ctx := context.Background()

	if err := svc.AddReview(ctx, "session-a", id, "   "); err != ErrEmptyReview {
		t.Fatalf("expected ErrEmptyReview got %v", err)
	}
	// the rejected attempt must not burn the session's one review
	if err := svc.AddReview(ctx, "session-a", id, "solid"); err != nil {
		t.Fatalf("expected review after empty attempt, got %v", err)
	}
}

func TestReviewRetryableAfterStoreFailure(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	svc := newTestService(f)
	ctx := context.Background()

	f.failAppend = true
	if err := svc.AddReview(ctx, "session-a", id, "lost"); err == nil {
		t.Fatal("expected store failure to surface")
	}
	if got := f.profiles[id].ReviewList(); len(got) != 0 {
		t.Fatalf("expected no review stored, got %v", got)
	}

	f.failAppend = false
	if err := svc.AddReview(ctx, "session-a", id, "kept"); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestToggleAvailability(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	svc := newTestService(f)
	ctx := context.Background()

	got, err := svc.ToggleAvailability(ctx, id)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if got != false || f.profiles[id].Available != false {
		t.Fatal("expected available flipped to false")
	}

	got, err = svc.ToggleAvailability(ctx, id)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if got != true || f.profiles[id].Available != true {
		t.Fatal("expected available flipped back to true")
	}
}

func TestCreateProfileDefaults(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)
	id := uuid.New()

	profile, err := svc.CreateProfile(context.Background(), id, ProfileForm{
		Name: "Ravi",
		City: "Mumbai",
		Skills: []models.Skill{
			{Skill: "Plumber", Services: []models.Service{{Name: "Tap Fixing", Estimate: "500"}}},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if profile.IsActive {
		t.Fatal("new profiles must start unpublished")
	}
	if profile.Likes != 0 {
		t.Fatalf("expected 0 likes got %d", profile.Likes)
	}
	if got := profile.ReviewList(); len(got) != 0 {
		t.Fatalf("expected no reviews got %v", got)
	}
	if got := profile.SkillNames(); !reflect.DeepEqual(got, []string{"Plumber"}) {
		t.Fatalf("expected skills kept, got %v", got)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	cases := []struct {
		name string
		form ProfileForm
	}{
		{"missing name", ProfileForm{City: "Pune"}},
		{"missing city", ProfileForm{Name: "Asha"}},
		{"blank name", ProfileForm{Name: "   ", City: "Pune"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateProfile(context.Background(), uuid.New(), tc.form); err != ErrInvalidProfile {
				t.Fatalf("expected ErrInvalidProfile got %v", err)
			}
		})
	}
}

func TestCreateProfileRejectsDuplicate(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	svc := newTestService(f)

	if _, err := svc.CreateProfile(context.Background(), id, ProfileForm{Name: "Asha", City: "Pune"}); err != ErrProfileExists {
		t.Fatalf("expected ErrProfileExists got %v", err)
	}
}

func TestUpdateProfileReplacesAllEditableFields(t *testing.T) {
	f := newFakeStore()
	id := seed(t, f)
	f.profiles[id].Bio = "old bio"
	f.profiles[id].Portfolio = "https://old.example"
	svc := newTestService(f)

	form := ProfileForm{
		Name:      "Asha K",
		Area:      "Kothrud",
		City:      "Pune",
		Whatsapp:  "9876543210",
		Available: false,
		Skills:    []models.Skill{{Skill: "Electrician"}},
		Services:  []models.Service{{Name: "Wiring", Estimate: "1200"}},
	}
	if err := svc.UpdateProfile(context.Background(), id, form); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	p := f.profiles[id]
	if p.Name != "Asha K" || p.Area != "Kothrud" || p.Whatsapp != "9876543210" {
		t.Fatalf("expected fields replaced, got %+v", p)
	}
	// fields left empty in the form are wiped too: wholesale replace
	if p.Bio != "" || p.Portfolio != "" {
		t.Fatalf("expected omitted fields cleared, got bio=%q portfolio=%q", p.Bio, p.Portfolio)
	}
	if p.Available {
		t.Fatal("expected availability taken from the form")
	}
	if got := p.SkillNames(); !reflect.DeepEqual(got, []string{"Electrician"}) {
		t.Fatalf("expected skills replaced, got %v", got)
	}
}

func TestUpdateProfileUnknownWorker(t *testing.T) {
	f := newFakeStore()
	svc := newTestService(f)

	err := svc.UpdateProfile(context.Background(), uuid.New(), ProfileForm{Name: "X", City: "Pune"})
	if err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
