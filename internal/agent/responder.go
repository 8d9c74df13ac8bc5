package agent

import (
	"fmt"
	"strings"

	"secondbrain/internal/engine"
)

// respondQuery builds the conversational reply for the non-mutating intents.
// It only reads the derived analytics passed in; wording here carries no
// contract beyond being grounded in the caller's current state.
func respondQuery(intent Intent, view engine.AnalyticsView) string {
	var b strings.Builder

	switch intent {
	case IntentQuiz:
		b.WriteString("Quick knowledge check:\n\n")
		b.WriteString("1. Explain the core idea behind your most recent study topic in one sentence.\n")
		b.WriteString("2. What is the one sub-task you keep postponing, and why?\n")
		b.WriteString("3. Without looking: how many tasks are still pending on ")
		b.WriteString(urgentTitle(view))
		b.WriteString("?\n\nActive recall beats re-reading. Answer these before opening your notes.")

	case IntentPlanWeek:
		b.WriteString("Seven-day plan:\n\n")
		b.WriteString("Mon–Tue: deep work on ")
		b.WriteString(urgentTitle(view))
		b.WriteString(", two focused hours each day.\n")
		b.WriteString("Wed: lighter review day, 90 minutes.\n")
		b.WriteString("Thu–Fri: clear pending tasks on your other goals, two hours each.\n")
		b.WriteString("Sat: mock test or practice set, one hour.\n")
		b.WriteString("Sun: review the week and set up the next one.\n\n")
		b.WriteString(fmt.Sprintf("You logged %.1f hours this week. Keep the slots short and log them.", view.WeekHours))

	case IntentReflect:
		b.WriteString("Weekly reflection:\n\n")
		b.WriteString(fmt.Sprintf("Hours this week: %.1f. Streak: %d day(s).\n", view.WeekHours, view.Streak))
		b.WriteString(fmt.Sprintf("Goals: %d active, %d completed.\n\n", view.ActiveCount, view.CompletedCount))
		b.WriteString("What worked: showing up. What to improve: front-load the hardest task earlier in the week.")

	case IntentSuggest:
		if view.MostUrgent == nil {
			b.WriteString("No active goals right now. Add one with a deadline and I can point you at the highest-leverage work.")
			break
		}
		b.WriteString("Start with \"")
		b.WriteString(*view.MostUrgent)
		b.WriteString("\" — it is your most time-sensitive goal.\n\n")
		b.WriteString("One focused 50-minute session on a single pending task, then log the hours to protect your streak.")

	default:
		if view.Mood == "tired" {
			b.WriteString("Keep it light today. Review existing notes or watch a short lecture; ")
			b.WriteString("even 30 intentional minutes protect the streak. Rest is part of the process.")
			break
		}
		b.WriteString("Focus on your most urgent pending work first: ")
		b.WriteString(urgentTitle(view))
		b.WriteString(". Work in 50-minute blocks and log hours after each session.\n\n")
		b.WriteString(fmt.Sprintf("Current streak: %d day(s). Consistency beats intensity.", view.Streak))
	}

	return b.String()
}

func urgentTitle(view engine.AnalyticsView) string {
	if view.MostUrgent != nil {
		return *view.MostUrgent
	}
	return "your current goal"
}
