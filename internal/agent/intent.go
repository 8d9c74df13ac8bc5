package agent

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent is the classified purpose of a chat message. The dispatcher
// switches over this vocabulary exhaustively; adding an intent means
// adding a constant here and a case there.
type Intent string

const (
	IntentLogHours   Intent = "log_hours"
	IntentUpdateMood Intent = "update_mood"
	IntentAddTask    Intent = "add_task"
	IntentAddGoal    Intent = "add_goal"
	IntentQuiz       Intent = "quiz"
	IntentPlanWeek   Intent = "plan_week"
	IntentReflect    Intent = "reflect"
	IntentSuggest    Intent = "suggest"
	IntentChat       Intent = "chat"
)

// StateChanging reports whether handling this intent mutates the store.
// Callers use it to decide whether derived views must be refreshed.
func (i Intent) StateChanging() bool {
	switch i {
	case IntentLogHours, IntentUpdateMood, IntentAddTask, IntentAddGoal:
		return true
	default:
		return false
	}
}

// Classification is an intent plus the slot values extracted alongside it.
type Classification struct {
	Intent   Intent
	Hours    float64 // log_hours
	Mood     string  // update_mood
	TaskText string  // add_task
	GoalName string  // add_task: free-text hint naming the target goal
	Title    string  // add_goal
	Deadline string  // add_goal, YYYY-MM-DD when present
}

// Classifier maps free text to an intent and slots. The rule-based
// implementation below is the default; the dispatcher only depends on
// this interface.
type Classifier interface {
	Classify(text string) Classification
}

var (
	reAddGoal   = regexp.MustCompile(`(?i)add.*(goal|target)|new goal`)
	reAddTask   = regexp.MustCompile(`(?i)add.*(task|todo)`)
	reLogHours  = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(hour|hr)|studied|log.*hour`)
	reMood      = regexp.MustCompile(`(?i)\bfeel|\bmood\b|\bi am\b|\bi'm\b`)
	reQuiz      = regexp.MustCompile(`(?i)quiz|test me|practice question`)
	rePlanWeek  = regexp.MustCompile(`(?i)plan.*week|week.*plan|study.*plan|plan.*study`)
	reReflect   = regexp.MustCompile(`(?i)reflect|weekly review`)
	reSuggest   = regexp.MustCompile(`(?i)focus|what should|suggest|priority|which goal`)
	reHoursSlot = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hour|hr|h)`)
	reTaskSlot  = regexp.MustCompile(`(?i)(?:task|todo):\s*(.+)`)
	reTaskTrim  = regexp.MustCompile(`(?i)add\s+(a\s+)?(task|todo)(\s+to\s+.+?\s+goal)?:?\s*`)
	reGoalSlot  = regexp.MustCompile(`(?i)(?:goal|target)[:\s]+(.+?)(?:\s+(?:by|due|before)\s+(\d{4}-\d{2}-\d{2}))?$`)
	reGoalHint  = regexp.MustCompile(`(?i)to\s+(?:the\s+)?(.+?)\s+goal`)
)

// moodWords are the moods the classifier recognizes in free text.
var moodWords = []string{
	"tired", "motivated", "stressed", "happy", "focused",
	"anxious", "energetic", "excited", "bored", "sad",
}

// RuleClassifier is the built-in regex classifier. First matching rule wins,
// so the more specific mutating intents are checked before the query ones.
type RuleClassifier struct{}

func (RuleClassifier) Classify(text string) Classification {
	switch {
	case reAddGoal.MatchString(text):
		title, deadline := parseGoalSlots(text)
		return Classification{Intent: IntentAddGoal, Title: title, Deadline: deadline}
	case reAddTask.MatchString(text):
		return Classification{
			Intent:   IntentAddTask,
			TaskText: parseTaskText(text),
			GoalName: parseGoalHint(text),
		}
	case reLogHours.MatchString(text):
		return Classification{Intent: IntentLogHours, Hours: parseHours(text)}
	case reMood.MatchString(text):
		return Classification{Intent: IntentUpdateMood, Mood: parseMood(text)}
	case reQuiz.MatchString(text):
		return Classification{Intent: IntentQuiz}
	case rePlanWeek.MatchString(text):
		return Classification{Intent: IntentPlanWeek}
	case reReflect.MatchString(text):
		return Classification{Intent: IntentReflect}
	case reSuggest.MatchString(text):
		return Classification{Intent: IntentSuggest}
	default:
		return Classification{Intent: IntentChat}
	}
}

func parseHours(text string) float64 {
	m := reHoursSlot.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	h, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 1
	}
	return h
}

func parseMood(text string) string {
	lower := strings.ToLower(text)
	for _, mood := range moodWords {
		if strings.Contains(lower, mood) {
			return mood
		}
	}
	return "neutral"
}

func parseTaskText(text string) string {
	if m := reTaskSlot.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(reTaskTrim.ReplaceAllString(text, ""))
}

// parseGoalHint pulls a goal name out of phrases like "to the algebra goal".
func parseGoalHint(text string) string {
	if m := reGoalHint.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func parseGoalSlots(text string) (title, deadline string) {
	m := reGoalSlot.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), m[2]
}
