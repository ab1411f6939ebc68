package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/KawiBot/Mantis/internal/dice"
	"github.com/KawiBot/Mantis/internal/domain"
	"github.com/KawiBot/Mantis/internal/domain/contract"
	"github.com/KawiBot/Mantis/internal/reminder"
	slackcmd "github.com/KawiBot/Mantis/internal/slack"
	"github.com/KawiBot/Mantis/internal/timespec"
	"github.com/KawiBot/Mantis/internal/trivia"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	triviaService contract.TriviaService
	reminders     contract.ReminderStore
	scheduler     contract.ReminderScheduler
	signingSecret string

	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(slackClient contract.SlackClient, triviaService contract.TriviaService, reminders contract.ReminderStore, scheduler contract.ReminderScheduler, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		triviaService: triviaService,
		reminders:     reminders,
		scheduler:     scheduler,
		signingSecret: signingSecret,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, "Command not found. Use `help` to see available commands.")
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdHello:
		return h.handleHello(slashCmd)
	case slackcmd.CmdPing:
		return h.handlePing()
	case slackcmd.CmdServerInfo:
		return h.handleServerInfo(ctx)
	case slackcmd.CmdEightBall:
		return h.handleEightBall(cmd)
	case slackcmd.CmdRoll:
		return h.handleRoll(cmd)
	case slackcmd.CmdTrivia:
		return h.handleTrivia(ctx, cmd, slashCmd)
	case slackcmd.CmdAnswer:
		return h.handleAnswer(ctx, cmd, slashCmd)
	case slackcmd.CmdTriviaScore:
		return h.handleTriviaScore(cmd, slashCmd)
	case slackcmd.CmdTriviaTop:
		return h.handleTriviaTop()
	case slackcmd.CmdRemindMe:
		return h.handleRemindMe(cmd, slashCmd)
	case slackcmd.CmdMyReminders:
		return h.handleMyReminders(slashCmd)
	case slackcmd.CmdCancelReminder:
		return h.handleCancelReminder(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp(cmd)
	default:
		return h.createErrorResponse("Command not found. Use `help` to see available commands.")
	}
}

func (h *SlackHandler) handleHello(slashCmd *slack.SlashCommand) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("Hello, <@%s>! I am your new bot assistant.", slashCmd.UserID),
	}
}

func (h *SlackHandler) handlePing() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "🏓 Pong!",
	}
}

func (h *SlackHandler) handleServerInfo(ctx context.Context) *slack.Msg {
	team, err := h.slackClient.GetTeamInfoContext(ctx)
	if err != nil {
		return h.createErrorResponse("Could not fetch workspace information.")
	}

	var info strings.Builder
	info.WriteString(fmt.Sprintf("*%s Workspace Information*\n", team.Name))
	info.WriteString(fmt.Sprintf("• *Workspace ID:* %s\n", team.ID))
	info.WriteString(fmt.Sprintf("• *Domain:* %s.slack.com\n", team.Domain))
	if team.EmailDomain != "" {
		info.WriteString(fmt.Sprintf("• *Email Domain:* %s\n", team.EmailDomain))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         info.String(),
	}
}

func (h *SlackHandler) handleEightBall(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Ask the 8-ball a question: `8ball Will it rain today?`")
	}

	question := strings.Join(cmd.Args, " ")
	answer := domain.EightBallResponses[h.intn(len(domain.EightBallResponses))]

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("Question: %s\nAnswer: %s", question, answer),
	}
}

func (h *SlackHandler) handleRoll(cmd *slackcmd.Command) *slack.Msg {
	notation := "1d6"
	if len(cmd.Args) > 0 {
		notation = cmd.Args[0]
	}

	h.rngMu.Lock()
	result, err := dice.Roll(h.rng, notation)
	h.rngMu.Unlock()
	if err != nil {
		return h.createErrorResponse("Invalid dice notation. Use NdM, like `2d6` or `1d20` (max 100 dice, 1000 sides).")
	}

	if len(result.Rolls) == 1 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("🎲 You rolled %s: *%d*", result.Notation, result.Total),
		}
	}

	rolls := make([]string, len(result.Rolls))
	for i, roll := range result.Rolls {
		rolls[i] = strconv.Itoa(roll)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🎲 You rolled %s: %s = *%d*", result.Notation, strings.Join(rolls, " + "), result.Total),
	}
}

func (h *SlackHandler) handleTrivia(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	category := ""
	difficulty := ""
	if len(cmd.Args) > 0 {
		category = cmd.Args[0]
	}
	if len(cmd.Args) > 1 {
		difficulty = cmd.Args[1]
	}

	question, err := h.triviaService.Ask(ctx, slashCmd.ChannelID, slashCmd.UserID, category, difficulty)
	switch {
	case errors.Is(err, trivia.ErrUnknownCategory):
		return h.createErrorResponse(fmt.Sprintf("Invalid category! Valid categories are: %s", validCategoryList()))
	case errors.Is(err, trivia.ErrUnknownDifficulty):
		return h.createErrorResponse("Invalid difficulty! Choose from: easy, medium, hard")
	case errors.Is(err, trivia.ErrNoQuestion):
		return h.createErrorResponse("Could not fetch a trivia question. Try a different category or difficulty.")
	case err != nil:
		return h.createErrorResponse("The trivia API is not responding. Try again later.")
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*Trivia Question (%s)*\n", title(question.Difficulty)))
	text.WriteString(question.Prompt + "\n")
	text.WriteString(fmt.Sprintf("*Category:* %s\n", question.Category))
	for i, answer := range question.Answers {
		text.WriteString(fmt.Sprintf("%s. %s\n", domain.AnswerLetters[i], answer))
	}
	text.WriteString("_Reply with `answer <letter>` within 60 seconds._")

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleAnswer(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Answer with a letter: `answer B`")
	}

	result, err := h.triviaService.Answer(ctx, slashCmd.ChannelID, slashCmd.UserID, cmd.Args[0])
	switch {
	case errors.Is(err, trivia.ErrInvalidAnswer):
		return h.createErrorResponse("Answer must be A, B, C or D.")
	case errors.Is(err, trivia.ErrNoPendingQuestion):
		return h.createErrorResponse("You have no pending trivia question in this channel. Start one with `trivia`.")
	case err != nil:
		return h.createErrorResponse("Could not record your answer. Try again later.")
	}

	if result.Expired {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("⏱️ Time's up! The correct answer was %s: %s", result.CorrectLetter, result.CorrectAnswer),
		}
	}

	scoreLine := fmt.Sprintf("Your score: %d/%d (%.1f%%)", result.Score.Correct, result.Score.Total, result.Score.SuccessRate())

	if result.Correct {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Correct! The answer was %s: %s\n%s", result.CorrectLetter, result.CorrectAnswer, scoreLine),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("❌ Wrong! The correct answer was %s: %s\n%s", result.CorrectLetter, result.CorrectAnswer, scoreLine),
	}
}

func (h *SlackHandler) handleTriviaScore(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	userID := slashCmd.UserID
	if len(cmd.Args) > 0 {
		userID = parseUserMention(cmd.Args[0])
	}

	score, err := h.triviaService.Score(userID)
	if err != nil {
		return h.createErrorResponse("Could not fetch trivia scores.")
	}

	if score == nil || score.Total == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("<@%s> hasn't answered any trivia questions yet!", userID),
		}
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*Trivia Stats for <@%s>*\n", userID))
	text.WriteString(fmt.Sprintf("• *Correct Answers:* %d\n", score.Correct))
	text.WriteString(fmt.Sprintf("• *Total Questions:* %d\n", score.Total))
	text.WriteString(fmt.Sprintf("• *Success Rate:* %.1f%%", score.SuccessRate()))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleTriviaTop() *slack.Msg {
	scores, err := h.triviaService.Top(10)
	if err != nil {
		return h.createErrorResponse("Could not fetch the leaderboard.")
	}

	if len(scores) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No one has played trivia yet!",
		}
	}

	var text strings.Builder
	text.WriteString("*Trivia Leaderboard*\n")
	for i, score := range scores {
		text.WriteString(fmt.Sprintf("%d. <@%s> - %d/%d (%.1f%%)\n", i+1, score.UserID, score.Correct, score.Total, score.SuccessRate()))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleRemindMe(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `remindme <duration> <message>`, like `remindme 5m Take the pizza out of the oven`")
	}

	duration, err := timespec.Parse(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse("Invalid duration. Use a number followed by s, m, h, d or w, like `5m` or `2h`.")
	}

	message := strings.Join(cmd.Args[1:], " ")

	if _, err := h.reminders.Create(slashCmd.UserID, slashCmd.ChannelID, message, duration); err != nil {
		return h.createErrorResponse("Could not save your reminder. Try again later.")
	}
	h.scheduler.NotifyCreated()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("⏰ Got it! I'll remind you in %s: %s", cmd.Args[0], message),
	}
}

func (h *SlackHandler) handleMyReminders(slashCmd *slack.SlashCommand) *slack.Msg {
	reminders := h.reminders.List(slashCmd.UserID)
	if len(reminders) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "You have no reminders.",
		}
	}

	var text strings.Builder
	text.WriteString("*Your reminders:*\n")
	for i, r := range reminders {
		text.WriteString(fmt.Sprintf("%d. %s (due %s)\n", i+1, r.Message, r.DueAt.Format("Jan 2 2006 15:04 MST")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleCancelReminder(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `cancelreminder <number>`. Use `myreminders` to see the numbers.")
	}

	position, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse("Invalid reminder number.")
	}

	removed, err := h.reminders.Cancel(slashCmd.UserID, position)
	if errors.Is(err, reminder.ErrNotFound) {
		return h.createErrorResponse(fmt.Sprintf("Reminder %d not found. Use `myreminders` to see your reminders.", position))
	}
	if err != nil {
		return h.createErrorResponse("Could not cancel the reminder. Try again later.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🗑️ Cancelled reminder %d: %s", position, removed.Message),
	}
}

func (h *SlackHandler) handleHelp(cmd *slackcmd.Command) *slack.Msg {
	category := ""
	if len(cmd.Args) > 0 {
		category = cmd.Args[0]
	}

	text, ok := slackcmd.GetHelpText(category)
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Category '%s' not found. Available categories: %s", category, strings.Join(slackcmd.CategoryNames(), ", ")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("⚠️ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) intn(n int) int {
	h.rngMu.Lock()
	defer h.rngMu.Unlock()
	return h.rng.Intn(n)
}

// parseUserMention extracts the user ID from a Slack mention like
// <@U12345> or <@U12345|name>.
func parseUserMention(mention string) string {
	userID := strings.TrimSpace(mention)
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if idx := strings.Index(userID, "|"); idx != -1 {
		userID = userID[:idx]
	}
	return userID
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// validCategoryList renders the category names for the invalid-category
// error message, sorted for stable output.
func validCategoryList() string {
	names := make([]string, 0, len(domain.TriviaCategories))
	for name := range domain.TriviaCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
