package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// testNow is the fixed clock used by service tests.
var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockReminderRepo *mocks.MockReminderRepo
	mockUserRepo     *mocks.MockUserRepo
	mockChannelRepo  *mocks.MockChannelRepo
	mockGuildRepo    *mocks.MockGuildRepo
	mockChatClient   *mocks.MockChatClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	guildRepo := mocks.NewMockGuildRepo(ctrl)
	dm.EXPECT().Guild().Return(guildRepo).AnyTimes()

	// Transactions run against the same mocks.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	chatClient := mocks.NewMockChatClient(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockReminderRepo: reminderRepo,
		mockUserRepo:     userRepo,
		mockChannelRepo:  channelRepo,
		mockGuildRepo:    guildRepo,
		mockChatClient:   chatClient,
	}

	// validate service creation
	reminderService := newReminder(dm, newNextDueCache(), zap.NewNop())
	require.NotNil(t, reminderService)

	return
}

// newTestReminderService builds a reminder service with a fixed clock.
func newTestReminderService(m allMocks, cache *nextDueCache) *reminderService {
	s := newReminder(m.mockDataManager, cache, zap.NewNop())
	s.now = func() time.Time { return testNow }
	return s
}
