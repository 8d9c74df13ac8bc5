// Package agent turns chat messages into store mutations or canned replies.
// Classification is rule-based; the dispatcher only consumes the resulting
// intent and slots, so a smarter classifier can drop in behind the same
// interface.
package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"secondbrain/internal/clock"
	"secondbrain/internal/engine"
	"secondbrain/internal/models"
	"secondbrain/internal/store"
)

// Result is the outcome of one chat exchange. StateChanged tells the caller
// whether derived views must be refreshed.
type Result struct {
	ID           string `json:"id"`
	Response     string `json:"response"`
	Intent       Intent `json:"intent"`
	StateChanged bool   `json:"state_changed"`
	ToolResult   any    `json:"tool_result,omitempty"`
}

type Agent struct {
	store      store.Store
	classifier Classifier
	clock      clock.Clock
	logger     *zap.Logger
	userName   string
}

func New(st store.Store, clk clock.Clock, logger *zap.Logger, userName string) *Agent {
	return &Agent{
		store:      st,
		classifier: RuleClassifier{},
		clock:      clk,
		logger:     logger,
		userName:   userName,
	}
}

// Handle classifies the message and dispatches it. Unresolvable slots
// (unknown goal name, missing deadline) come back as clarification replies,
// never as raw errors; real store failures propagate.
func (a *Agent) Handle(message string) (Result, error) {
	c := a.classifier.Classify(message)
	res := Result{ID: uuid.NewString(), Intent: c.Intent}

	var err error
	switch c.Intent {
	case IntentLogHours:
		err = a.logHours(c, &res)
	case IntentUpdateMood:
		err = a.updateMood(c, &res)
	case IntentAddTask:
		err = a.addTask(c, &res)
	case IntentAddGoal:
		err = a.addGoal(c, &res)
	case IntentQuiz, IntentPlanWeek, IntentReflect, IntentSuggest, IntentChat:
		err = a.respond(c.Intent, &res)
	default:
		err = a.respond(IntentChat, &res)
	}
	if err != nil {
		return Result{}, err
	}

	a.logger.Info("chat dispatched",
		zap.String("exchange", res.ID),
		zap.String("intent", string(res.Intent)),
		zap.Bool("stateChanged", res.StateChanged))
	return res, nil
}

func (a *Agent) logHours(c Classification, res *Result) error {
	today := a.clock.Today().Format(models.DateLayout)
	entry, err := a.store.AddHours(today, c.Hours)
	if err != nil {
		return err
	}
	logs, err := a.store.GetLogEntries()
	if err != nil {
		return err
	}
	streak := engine.Streak(logs, a.clock.Today())

	res.StateChanged = true
	res.ToolResult = entry
	res.Response = fmt.Sprintf(
		"Logged %.1f hour(s). Today's total is %.1f and your streak stands at %d day(s). Keep it rolling.",
		c.Hours, entry.Hours, streak)
	return nil
}

func (a *Agent) updateMood(c Classification, res *Result) error {
	state, err := a.store.SetMood(c.Mood)
	if err != nil {
		return err
	}
	res.StateChanged = true
	res.ToolResult = state
	if state.Mood == "tired" {
		res.Response = "Noted — feeling tired. I'll keep suggestions light today; a short review session still protects the streak."
	} else {
		res.Response = fmt.Sprintf("Mood set to %q. I'll factor that into what I suggest next.", state.Mood)
	}
	return nil
}

func (a *Agent) addTask(c Classification, res *Result) error {
	if c.TaskText == "" {
		res.Response = "What should the task say? Try: add task: read chapter 4."
		return nil
	}

	goal, err := a.resolveGoal(c.GoalName, c.TaskText)
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		if c.GoalName != "" {
			res.Response = fmt.Sprintf(
				"I couldn't find a goal matching %q. Which goal should this task go under?", c.GoalName)
		} else {
			res.Response = "There's no active goal to put that task under. Add a goal first, then try again."
		}
		return nil
	}
	if err != nil {
		return err
	}

	task, err := a.store.CreateTask(goal.ID, c.TaskText)
	if err != nil {
		return err
	}
	res.StateChanged = true
	res.ToolResult = task
	res.Response = fmt.Sprintf("Added %q under %q.", task.Text, goal.Title)
	return nil
}

func (a *Agent) addGoal(c Classification, res *Result) error {
	if c.Title == "" || c.Deadline == "" {
		res.Response = "To add a goal I need a title and a deadline. Try: add goal: learn linear algebra by 2026-10-01."
		return nil
	}
	goal, err := a.store.CreateGoal(c.Title, c.Deadline)
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		res.Response = fmt.Sprintf("That didn't work (%s). Try: add goal: learn linear algebra by 2026-10-01.", ve.Error())
		return nil
	}
	if err != nil {
		return err
	}
	res.StateChanged = true
	res.ToolResult = goal
	res.Response = fmt.Sprintf("Goal %q created with deadline %s. Add tasks under it to track progress.", goal.Title, goal.Deadline)
	return nil
}

func (a *Agent) respond(intent Intent, res *Result) error {
	view, err := a.analytics()
	if err != nil {
		return err
	}
	res.Response = respondQuery(intent, view)
	return nil
}

func (a *Agent) analytics() (engine.AnalyticsView, error) {
	goals, err := a.store.GetGoals()
	if err != nil {
		return engine.AnalyticsView{}, err
	}
	tasks, err := a.store.GetTasksByGoal()
	if err != nil {
		return engine.AnalyticsView{}, err
	}
	logs, err := a.store.GetLogEntries()
	if err != nil {
		return engine.AnalyticsView{}, err
	}
	mood, err := a.store.GetMood()
	if err != nil {
		return engine.AnalyticsView{}, err
	}
	return engine.DeriveAnalytics(goals, tasks, logs, mood, a.userName, a.clock.Today())
}

// resolveGoal finds the goal a message refers to: first by name words, then
// by falling back to the most urgent active goal.
func (a *Agent) resolveGoal(goalName, taskText string) (models.Goal, error) {
	goals, err := a.store.GetGoals()
	if err != nil {
		return models.Goal{}, err
	}

	haystack := strings.ToLower(goalName + " " + taskText)
	for _, g := range goals {
		for _, word := range strings.Fields(strings.ToLower(g.Title)) {
			if len(word) > 3 && strings.Contains(haystack, word) {
				return g, nil
			}
		}
	}

	// No name match: pick the most urgent active goal instead.
	tasks, err := a.store.GetTasksByGoal()
	if err != nil {
		return models.Goal{}, err
	}
	today := a.clock.Today()
	var best *models.Goal
	var bestView engine.GoalView
	for i, g := range goals {
		if g.Status != models.GoalStatusActive {
			continue
		}
		v, err := engine.DeriveGoalView(g, tasks[g.ID], today)
		if err != nil {
			return models.Goal{}, err
		}
		if best == nil || v.DaysLeft < bestView.DaysLeft {
			best = &goals[i]
			bestView = v
		}
	}
	if best == nil {
		return models.Goal{}, &models.NotFoundError{Kind: "goal", Key: goalName}
	}
	return *best, nil
}
