package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdHello          CommandType = "hello"
	CmdPing           CommandType = "ping"
	CmdServerInfo     CommandType = "serverinfo"
	CmdEightBall      CommandType = "8ball"
	CmdRoll           CommandType = "roll"
	CmdTrivia         CommandType = "trivia"
	CmdAnswer         CommandType = "answer"
	CmdTriviaScore    CommandType = "triviascore"
	CmdTriviaTop      CommandType = "triviatop"
	CmdRemindMe       CommandType = "remindme"
	CmdMyReminders    CommandType = "myreminders"
	CmdCancelReminder CommandType = "cancelreminder"
	CmdHelp           CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "hello", "hi":
		cmd.Type = CmdHello
	case "ping":
		cmd.Type = CmdPing
	case "serverinfo":
		cmd.Type = CmdServerInfo
	case "8ball":
		cmd.Type = CmdEightBall
	case "roll":
		cmd.Type = CmdRoll
	case "trivia":
		cmd.Type = CmdTrivia
	case "answer":
		cmd.Type = CmdAnswer
	case "triviascore":
		cmd.Type = CmdTriviaScore
	case "triviatop":
		cmd.Type = CmdTriviaTop
	case "remindme":
		cmd.Type = CmdRemindMe
	case "myreminders", "reminders":
		cmd.Type = CmdMyReminders
	case "cancelreminder":
		cmd.Type = CmdCancelReminder
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("command not found: %s", parts[0])
	}

	return cmd, nil
}

// The help system shows an overview of categories, then per-category
// command lists.
var helpCategories = []struct {
	name        string
	description string
}{
	{"general", "Basic bot commands"},
	{"info", "Server and user information commands"},
	{"fun", "Entertainment commands"},
}

var helpCommands = map[string][]struct {
	usage       string
	description string
}{
	"general": {
		{"help [category]", "Shows this help message"},
		{"ping", "Checks bot response time"},
		{"hello", "Say hello to the bot"},
		{"remindme <duration> <message>", "Set a reminder. Example: remindme 5m Take the pizza out of the oven"},
		{"myreminders", "List of all your reminders"},
		{"cancelreminder <number>", "Cancel a reminder based on its number"},
	},
	"info": {
		{"serverinfo", "Shows information about the workspace"},
		{"triviascore [@user]", "Check trivia scores for yourself or another user"},
		{"triviatop", "Show the trivia leaderboard"},
	},
	"fun": {
		{"8ball <question>", "Ask the magic 8-ball a question"},
		{"roll [NdM]", "Roll dice with standard dice notation, default 1d6"},
		{"trivia [category] [difficulty]", "Start a trivia question, answer with `answer <letter>`"},
	},
}

// GetHelpText renders the help overview or a single category's commands.
// An unknown category returns ok=false.
func GetHelpText(category string) (string, bool) {
	if category == "" {
		var b strings.Builder
		b.WriteString("*Bot Help System*\n")
		b.WriteString("Use `help [category]` to see commands in each category.\n")
		for _, c := range helpCategories {
			b.WriteString(fmt.Sprintf("• *%s* - %s\n", title(c.name), c.description))
		}
		return b.String(), true
	}

	commands, ok := helpCommands[strings.ToLower(category)]
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("*%s Commands*\n", title(strings.ToLower(category))))
	for _, c := range commands {
		b.WriteString(fmt.Sprintf("• `%s` - %s\n", c.usage, c.description))
	}
	return b.String(), true
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// CategoryNames lists the help categories in display order.
func CategoryNames() []string {
	names := make([]string, 0, len(helpCategories))
	for _, c := range helpCategories {
		names = append(names, c.name)
	}
	return names
}
