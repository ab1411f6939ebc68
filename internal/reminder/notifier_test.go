package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KawiBot/Mantis/internal/domain/entity"
	"github.com/KawiBot/Mantis/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlackNotifier_Deliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSlackClient(ctrl)
	notifier := NewSlackNotifier(client)

	reminder := &entity.Reminder{
		ID:        "r1",
		OwnerID:   "U42",
		ChannelID: "C7",
		Message:   "check oven",
		DueAt:     time.Now(),
	}

	client.EXPECT().
		GetUserInfoContext(gomock.Any(), "U42").
		Return(&slack.User{Name: "kawi", Profile: slack.UserProfile{DisplayName: "Kawi"}}, nil).
		Times(1)

	client.EXPECT().
		PostMessageContext(gomock.Any(), "C7", gomock.Any()).
		Return("C7", "123.456", nil).
		Times(1)

	err := notifier.Deliver(context.Background(), reminder)
	require.NoError(t, err)
}

func TestSlackNotifier_Deliver_ResolveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSlackClient(ctrl)
	notifier := NewSlackNotifier(client)

	reminder := &entity.Reminder{
		ID:        "r1",
		OwnerID:   "U42",
		ChannelID: "C7",
		Message:   "check oven",
		DueAt:     time.Now(),
	}

	// All three attempts fail user resolution; no message may be posted.
	client.EXPECT().
		GetUserInfoContext(gomock.Any(), "U42").
		Return(nil, errors.New("user_not_found")).
		Times(3)

	err := notifier.Deliver(context.Background(), reminder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_not_found")
}
