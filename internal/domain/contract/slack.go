package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the Slack operations the bot depends on.
// This allows mocking in tests while keeping the real implementation simple.
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)

	// GetTeamInfoContext retrieves information about the workspace
	GetTeamInfoContext(ctx context.Context) (*slack.TeamInfo, error)
}
