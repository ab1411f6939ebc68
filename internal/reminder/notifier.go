package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/KawiBot/Mantis/internal/domain/contract"
	"github.com/KawiBot/Mantis/internal/domain/entity"
	"github.com/codeGROOVE-dev/retry"
	"github.com/slack-go/slack"
)

// deliveryTimeout bounds a single delivery so one slow Slack call cannot
// stall the rest of the tick.
const deliveryTimeout = 10 * time.Second

// slackNotifier posts reminders to their stored channel, mentioning the
// owner by Slack ID and display name.
type slackNotifier struct {
	client contract.SlackClient
}

// NewSlackNotifier creates a Notifier backed by the Slack API.
func NewSlackNotifier(client contract.SlackClient) Notifier {
	return &slackNotifier{client: client}
}

func (n *slackNotifier) Deliver(ctx context.Context, reminder *entity.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	err := retry.Do(
		func() error {
			user, err := n.client.GetUserInfoContext(ctx, reminder.OwnerID)
			if err != nil {
				return fmt.Errorf("failed to resolve user %s: %w", reminder.OwnerID, err)
			}

			text := fmt.Sprintf("⏰ Hey <@%s> (%s), you asked me to remind you: %s",
				reminder.OwnerID, displayName(user), reminder.Message)

			_, _, err = n.client.PostMessageContext(ctx, reminder.ChannelID, slack.MsgOptionText(text, false))
			if err != nil {
				return fmt.Errorf("failed to post reminder: %w", err)
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.Context(ctx),
	)

	return err
}

// displayName picks the friendliest non-empty name Slack has for the user.
func displayName(user *slack.User) string {
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.Profile.RealName != "" {
		return user.Profile.RealName
	}
	return user.Name
}
