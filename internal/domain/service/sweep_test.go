package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestSweeper(m allMocks, cache *nextDueCache) *sweeper {
	s := newSweeper(m.mockDataManager, m.mockChatClient, cache, zap.NewNop(), time.Second, nil)
	s.now = func() time.Time { return testNow }
	return s
}

func dueDelivery(followers ...string) *entity.Delivery {
	return &entity.Delivery{
		ReminderID:        1,
		Message:           "drink water",
		DueAt:             testNow.Add(-time.Second),
		MessageID:         "M1",
		ChannelPlatformID: "C1",
		GuildPlatformID:   "G1",
		Active:            true,
		Followers:         followers,
	}
}

func Test_sweeper_tick(t *testing.T) {
	tests := []struct {
		name          string
		cached        *entity.NextDue
		buildMock     func(mocks allMocks, cache *nextDueCache)
		wantProcessed bool
		wantCacheID   int64
		wantEmpty     bool
	}{
		{
			name: "Should do nothing when cache and store are empty",
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).Return(nil, nil).Times(1)
			},
			wantEmpty: true,
		},
		{
			name: "Should do nothing when the store query fails",
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantEmpty: true,
		},
		{
			name: "Should fill an empty cache and wait for a future reminder",
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).
					Return(&entity.NextDue{ReminderID: 4, DueAt: testNow.Add(time.Minute)}, nil).Times(1)
			},
			wantCacheID: 4,
		},
		{
			name:        "Should not touch the store before the cached reminder is due",
			cached:      &entity.NextDue{ReminderID: 4, DueAt: testNow.Add(time.Second)},
			buildMock:   func(mocks allMocks, _ *nextDueCache) {},
			wantCacheID: 4,
		},
		{
			name:   "Should deliver a due reminder to every follower",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(dueDelivery("U1", "U2"), nil).Times(1)
				mocks.mockChatClient.EXPECT().MessageLink("G1", "C1", "M1").Return("link").Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), "U1").Return("alice", nil).Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), "U2").Return("", assert.AnError).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, n entity.Notification) error {
						assert.Equal(t, "alice", n.Greeting)
						assert.Equal(t, "drink water", n.Message)
						assert.Equal(t, "link", n.Link)
						assert.Equal(t, int64(1), n.ReminderID)
						return nil
					}).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U2", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, n entity.Notification) error {
						assert.Equal(t, fallbackGreeting, n.Greeting)
						return nil
					}).Times(1)
				mocks.mockReminderRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).
					Return(&entity.NextDue{ReminderID: 2, DueAt: testNow.Add(time.Hour)}, nil).Times(1)
			},
			wantProcessed: true,
			wantCacheID:   2,
		},
		{
			name:   "Should send one combined fallback message for unreachable followers",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				delivery := dueDelivery("U1", "U2", "U3")
				delivery.FallbackChannelID = "F1"
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(delivery, nil).Times(1)
				mocks.mockChatClient.EXPECT().MessageLink("G1", "C1", "M1").Return("link").Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), gomock.Any()).Return("someone", nil).Times(3)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U1", gomock.Any()).Return(assert.AnError).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U2", gomock.Any()).Return(nil).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U3", gomock.Any()).Return(assert.AnError).Times(1)
				mocks.mockChatClient.EXPECT().SendChannel(gomock.Any(), "F1", gomock.Any(), []string{"U1", "U3"}).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).Return(nil, nil).Times(1)
			},
			wantProcessed: true,
			wantEmpty:     true,
		},
		{
			name:   "Should drop unreachable followers when no fallback channel is set",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(dueDelivery("U1"), nil).Times(1)
				mocks.mockChatClient.EXPECT().MessageLink("G1", "C1", "M1").Return("link").Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), "U1").Return("alice", nil).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U1", gomock.Any()).Return(assert.AnError).Times(1)
				mocks.mockChatClient.EXPECT().SendChannel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				mocks.mockReminderRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).Return(nil, nil).Times(1)
			},
			wantProcessed: true,
			wantEmpty:     true,
		},
		{
			name:   "Should keep the reminder scheduled when deactivation fails",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(dueDelivery("U1"), nil).Times(1)
				mocks.mockChatClient.EXPECT().MessageLink(gomock.Any(), gomock.Any(), gomock.Any()).Return("link").Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), "U1").Return("alice", nil).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U1", gomock.Any()).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(assert.AnError).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).
					Return(&entity.NextDue{ReminderID: 1, DueAt: testNow}, nil).Times(1)
			},
			wantProcessed: true,
			wantCacheID:   1,
		},
		{
			name:   "Should skip delivery of a reminder cancelled after it was cached",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				delivery := dueDelivery()
				delivery.Active = false
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(delivery, nil).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).Return(nil, nil).Times(1)
			},
			wantProcessed: true,
			wantEmpty:     true,
		},
		{
			name:   "Should retry later when the delivery cannot be loaded",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(nil, assert.AnError).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).
					Return(&entity.NextDue{ReminderID: 1, DueAt: testNow}, nil).Times(1)
			},
			wantProcessed: true,
			wantCacheID:   1,
		},
		{
			name:   "Should clear the cache when the requery fails",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, _ *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(dueDelivery("U1"), nil).Times(1)
				mocks.mockChatClient.EXPECT().MessageLink(gomock.Any(), gomock.Any(), gomock.Any()).Return("link").Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), "U1").Return("alice", nil).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U1", gomock.Any()).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantProcessed: true,
			wantEmpty:     true,
		},
		{
			name:   "Should keep a sooner reminder created during the tick",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, cache *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(dueDelivery("U1"), nil).Times(1)
				mocks.mockChatClient.EXPECT().MessageLink(gomock.Any(), gomock.Any(), gomock.Any()).Return("link").Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), "U1").Return("alice", nil).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U1", gomock.Any()).
					DoAndReturn(func(context.Context, string, entity.Notification) error {
						// A create lands while the notification is in flight.
						cache.Offer(entity.NextDue{ReminderID: 3, DueAt: testNow.Add(-10 * time.Second)})
						return nil
					}).Times(1)
				mocks.mockReminderRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil).Times(1)
				// The requery ran against a snapshot without the new reminder.
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).
					Return(&entity.NextDue{ReminderID: 2, DueAt: testNow.Add(time.Hour)}, nil).Times(1)
			},
			wantProcessed: true,
			wantCacheID:   3,
		},
		{
			name:   "Should keep a reminder created after the requery that is due before the requeried one",
			cached: &entity.NextDue{ReminderID: 1, DueAt: testNow},
			buildMock: func(mocks allMocks, cache *nextDueCache) {
				mocks.mockReminderRepo.EXPECT().GetDelivery(gomock.Any(), int64(1)).Return(dueDelivery("U1"), nil).Times(1)
				mocks.mockChatClient.EXPECT().MessageLink(gomock.Any(), gomock.Any(), gomock.Any()).Return("link").Times(1)
				mocks.mockChatClient.EXPECT().UserName(gomock.Any(), "U1").Return("alice", nil).Times(1)
				mocks.mockChatClient.EXPECT().SendDirect(gomock.Any(), "U1", gomock.Any()).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(nil).Times(1)
				mocks.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).
					DoAndReturn(func(context.Context) (*entity.NextDue, error) {
						// Due after the delivered reminder, so it only fits an empty slot.
						cache.Offer(entity.NextDue{ReminderID: 3, DueAt: testNow.Add(5 * time.Minute)})
						return &entity.NextDue{ReminderID: 2, DueAt: testNow.Add(time.Hour)}, nil
					}).Times(1)
			},
			wantProcessed: true,
			wantCacheID:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			cache := newNextDueCache()
			if tt.cached != nil {
				cache.Offer(*tt.cached)
			}
			tt.buildMock(m, cache)

			s := newTestSweeper(m, cache)
			processed := s.tick(context.Background())

			assert.Equal(t, tt.wantProcessed, processed)

			next, ok := cache.Get()
			if tt.wantEmpty {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantCacheID, next.ReminderID)
		})
	}
}

func Test_sweeper_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockReminderRepo.EXPECT().GetNextActive(gomock.Any()).Return(nil, nil).AnyTimes()

	s := newSweeper(m.mockDataManager, m.mockChatClient, newNextDueCache(), zap.NewNop(), 10*time.Millisecond, nil)

	s.Start()
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	s.Stop()

	assert.False(t, s.running)
}
