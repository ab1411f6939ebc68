package domain

// EightBallResponses are the canned magic 8-ball answers.
var EightBallResponses = []string{
	"It is certain.",
	"Without a doubt.",
	"You may rely on it.",
	"Yes, definitely.",
	"It is decidedly so.",
	"As I see it, yes.",
	"Most likely.",
	"Yes.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Better not tell you now.",
	"Ask again later.",
	"Cannot predict now.",
	"Concentrate and ask again.",
	"Don't count on it.",
	"Outlook not so good.",
	"My sources say no.",
	"Very doubtful.",
	"My reply is no.",
}

// TriviaCategories maps user-facing category names to Open Trivia DB
// category IDs. "any" (0) means no category filter.
var TriviaCategories = map[string]int{
	"any":         0,
	"general":     9,
	"books":       10,
	"film":        11,
	"music":       12,
	"theatre":     13,
	"tv":          14,
	"gaming":      15,
	"science":     17,
	"computers":   18,
	"math":        19,
	"mythology":   20,
	"sports":      21,
	"geography":   22,
	"history":     23,
	"politics":    24,
	"art":         25,
	"celebrities": 26,
	"animals":     27,
}

// TriviaDifficulties are the accepted difficulty levels.
var TriviaDifficulties = []string{"easy", "medium", "hard"}

// AnswerLetters label the shuffled answers of a trivia question.
var AnswerLetters = []string{"A", "B", "C", "D"}
