package handlers

import (
	"context"
	"strings"

	"github.com/learnify-dev/learnify/internal/auth"
	"github.com/learnify-dev/learnify/internal/models"
	"github.com/learnify-dev/learnify/internal/store"
	"gorm.io/gorm"
)

// mockStore is an in-memory stand-in for store.Store, implementing every
// handler-facing interface. Insertion order doubles as creation order, so
// newest-first listings iterate in reverse.
type mockStore struct {
	tutorials     map[uint]models.Tutorial
	tutorialOrder []uint
	bookings      map[uint]models.Booking
	bookingOrder  []uint
	categories    []models.Category
	accounts      map[string]models.Account
	users         map[string]models.User
	nextID        uint
	forcedErr     error
	syncCalls     int
}

func newMockStore() *mockStore {
	return &mockStore{
		tutorials: make(map[uint]models.Tutorial),
		bookings:  make(map[uint]models.Booking),
		accounts:  make(map[string]models.Account),
		users:     make(map[string]models.User),
	}
}

func (m *mockStore) Ready() bool { return true }

func (m *mockStore) SyncUser(_ context.Context, ident auth.Identity) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	m.syncCalls++
	user, ok := m.users[ident.Email]
	if !ok {
		user = models.User{UID: ident.UID, Email: ident.Email, Role: "student"}
	}
	user.Name = ident.Name
	user.PhotoURL = ident.Picture
	m.users[ident.Email] = user
	return nil
}

func (m *mockStore) CreateAccount(_ context.Context, account *models.Account) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	m.nextID++
	account.ID = m.nextID
	m.accounts[account.Email] = *account
	return nil
}

func (m *mockStore) AccountByEmail(_ context.Context, email string) (*models.Account, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	account, ok := m.accounts[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	result := account
	return &result, nil
}

func (m *mockStore) ListTutorials(_ context.Context, query store.TutorialQuery) ([]models.Tutorial, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	matches := func(t models.Tutorial) bool {
		switch {
		case query.Search != "":
			needle := strings.ToLower(query.Search)
			return strings.Contains(strings.ToLower(t.Language), needle) ||
				strings.Contains(strings.ToLower(t.Description), needle) ||
				strings.Contains(strings.ToLower(t.TutorName), needle)
		case query.Language != "":
			return strings.EqualFold(t.Language, query.Language)
		case query.Category != "":
			return strings.EqualFold(t.Language, query.Category)
		}
		return true
	}
	result := make([]models.Tutorial, 0, len(m.tutorialOrder))
	for i := len(m.tutorialOrder) - 1; i >= 0; i-- {
		tutorial := m.tutorials[m.tutorialOrder[i]]
		if matches(tutorial) {
			result = append(result, tutorial)
		}
	}
	return result, nil
}

func (m *mockStore) GetTutorial(_ context.Context, id uint) (*models.Tutorial, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	tutorial, ok := m.tutorials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	result := tutorial
	return &result, nil
}

func (m *mockStore) TutorialsByOwner(_ context.Context, uid string) ([]models.Tutorial, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	result := make([]models.Tutorial, 0)
	for i := len(m.tutorialOrder) - 1; i >= 0; i-- {
		tutorial := m.tutorials[m.tutorialOrder[i]]
		if tutorial.TutorUID == uid {
			result = append(result, tutorial)
		}
	}
	return result, nil
}

func (m *mockStore) CreateTutorial(_ context.Context, tutorial *models.Tutorial) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	m.nextID++
	tutorial.ID = m.nextID
	m.tutorials[tutorial.ID] = *tutorial
	m.tutorialOrder = append(m.tutorialOrder, tutorial.ID)
	return nil
}

func (m *mockStore) SaveTutorial(_ context.Context, tutorial *models.Tutorial) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if _, ok := m.tutorials[tutorial.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.tutorials[tutorial.ID] = *tutorial
	return nil
}

func (m *mockStore) DeleteTutorialCascade(_ context.Context, id uint) (int64, int64, error) {
	if m.forcedErr != nil {
		return 0, 0, m.forcedErr
	}
	if _, ok := m.tutorials[id]; !ok {
		return 0, 0, nil
	}
	delete(m.tutorials, id)
	for i, tid := range m.tutorialOrder {
		if tid == id {
			m.tutorialOrder = append(m.tutorialOrder[:i], m.tutorialOrder[i+1:]...)
			break
		}
	}
	var deletedBookings int64
	remaining := m.bookingOrder[:0]
	for _, bid := range m.bookingOrder {
		if m.bookings[bid].TutorialID == id {
			delete(m.bookings, bid)
			deletedBookings++
			continue
		}
		remaining = append(remaining, bid)
	}
	m.bookingOrder = remaining
	return 1, deletedBookings, nil
}

func (m *mockStore) IncrementReviewCount(_ context.Context, id uint) (*models.Tutorial, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	tutorial, ok := m.tutorials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	tutorial.ReviewCount++
	m.tutorials[id] = tutorial
	result := tutorial
	return &result, nil
}

func (m *mockStore) CreateBooking(_ context.Context, booking *models.Booking) error {
	if m.forcedErr != nil {
		return m.forcedErr
	}
	m.nextID++
	booking.ID = m.nextID
	m.bookings[booking.ID] = *booking
	m.bookingOrder = append(m.bookingOrder, booking.ID)
	return nil
}

func (m *mockStore) BookingsByStudent(_ context.Context, uid string) ([]models.Booking, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	result := make([]models.Booking, 0)
	for i := len(m.bookingOrder) - 1; i >= 0; i-- {
		booking := m.bookings[m.bookingOrder[i]]
		if booking.StudentUID == uid {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (m *mockStore) TutorialsByIDs(_ context.Context, ids []uint) (map[uint]models.Tutorial, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	result := make(map[uint]models.Tutorial, len(ids))
	for _, id := range ids {
		if tutorial, ok := m.tutorials[id]; ok {
			result[id] = tutorial
		}
	}
	return result, nil
}

func (m *mockStore) GetPlatformStats(_ context.Context) (store.PlatformStats, error) {
	if m.forcedErr != nil {
		return store.PlatformStats{}, m.forcedErr
	}
	var stats store.PlatformStats
	stats.Users = int64(len(m.users))
	tutors := make(map[string]struct{})
	languages := make(map[string]struct{})
	for _, tutorial := range m.tutorials {
		stats.Reviews += int64(tutorial.ReviewCount)
		tutors[tutorial.TutorUID] = struct{}{}
		languages[tutorial.Language] = struct{}{}
	}
	stats.Tutors = int64(len(tutors))
	stats.Languages = int64(len(languages))
	return stats, nil
}

func (m *mockStore) ListCategories(_ context.Context) ([]models.Category, error) {
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	return m.categories, nil
}
