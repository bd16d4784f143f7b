package notification

import (
	"context"
	"testing"
	"time"

	"synapse_backend/internal/common"
	"synapse_backend/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockNotificationRepository is a mock type for notification.Repository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByReceiver(ctx context.Context, receiverID uuid.UUID) ([]Notification, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

// MockUserRepository is a mock type for user.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func setupNotificationServiceTest() (Service, *MockNotificationRepository, *MockUserRepository) {
	repo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	return NewService(repo, userRepo, zap.NewNop()), repo, userRepo
}

func TestService_Send_Success(t *testing.T) {
	service, repo, userRepo := setupNotificationServiceTest()
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	userRepo.On("FindByID", ctx, receiverID).Return(&user.User{Name: "Receiver"}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil)

	sent, err := service.Send(ctx, senderID, SendNotificationRequest{
		ReceiverID: receiverID,
		Message:    "We found a match for your copper request.",
	})

	require.NoError(t, err)
	assert.Equal(t, senderID, sent.SenderID)
	assert.Equal(t, receiverID, sent.ReceiverID)
	assert.Equal(t, "We found a match for your copper request.", sent.Message)
	repo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestService_Send_ReceiverMissing(t *testing.T) {
	service, repo, userRepo := setupNotificationServiceTest()
	ctx := context.Background()
	receiverID := uuid.New()

	userRepo.On("FindByID", ctx, receiverID).
		Return(nil, common.ErrNotFound.WithDetails("User not found."))

	sent, err := service.Send(ctx, uuid.New(), SendNotificationRequest{
		ReceiverID: receiverID,
		Message:    "hello",
	})

	assert.Nil(t, sent)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrNotFound.Code, apiErr.Code)
	assert.Equal(t, "Receiver not found.", apiErr.Details)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ListForReceiver_NewestFirstPassthrough(t *testing.T) {
	service, repo, _ := setupNotificationServiceTest()
	ctx := context.Background()
	receiverID := uuid.New()

	newer := Notification{Message: "second", CreatedAt: time.Now()}
	older := Notification{Message: "first", CreatedAt: time.Now().Add(-time.Hour)}
	repo.On("FindByReceiver", ctx, receiverID).Return([]Notification{newer, older}, nil)

	notifications, err := service.ListForReceiver(ctx, receiverID)

	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Message)
	assert.Equal(t, "first", notifications[1].Message)
}
