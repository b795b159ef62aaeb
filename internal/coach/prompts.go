package coach

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/2beens/gymsplit/internal/logstore"
	"github.com/2beens/gymsplit/internal/schedule"
)

const (
	MsgMissingAPIKey      = "系统配置错误：API Key 未配置。请检查环境变量 GEMINI_API_KEY。"
	MsgServiceUnavailable = "AI 服务暂时不可用，请稍后再试。"
	MsgCannotAnswer       = "抱歉，我现在无法回答。"
	MsgNoHistory          = "暂无训练记录，先去记录几组训练吧。"
)

const askSystemInstruction = `You are an expert fitness coach specializing in bodybuilding and strength training.
The user is following a 4-Day Upper/Lower split.
Provide concise, actionable advice, cues, or motivation.
IMPORTANT: You must reply in Simplified Chinese (简体中文).`

const reportSystemInstruction = `You are an expert fitness coach specializing in bodybuilding and strength training.
The user is following a 4-Day Upper/Lower split and logs every working set.
Write a short progress report from the training summary: highlight progress,
flag stalled lifts and give two or three concrete suggestions for next week.
IMPORTANT: You must reply in Simplified Chinese (简体中文).`

// PlanContext describes a day's plan in one line for the coach prompt.
func PlanContext(plan schedule.Plan) string {
	if plan.Rest {
		return "Rest"
	}
	names := make([]string, 0, len(plan.Exercises))
	for _, e := range plan.Exercises {
		names = append(names, e.Name)
	}
	return fmt.Sprintf("Today is %s (%s). Exercises: %s.", plan.Label, plan.DisplayName, strings.Join(names, ", "))
}

func askPrompt(query, planContext string) string {
	return fmt.Sprintf("Context (Current Workout Plan): %s\nUser Question: %s", planContext, query)
}

// ExerciseSummary condenses the logged sets of one exercise.
type ExerciseSummary struct {
	Exercise string
	Sets     int
	Sessions int
	First    float64
	Last     float64
	Best     float64
}

// Summarize groups entries by exercise in first-seen order. A session is a
// distinct date.
func Summarize(entries []logstore.HistoryEntry) []ExerciseSummary {
	summaries := make([]ExerciseSummary, 0)
	for _, name := range logstore.ExerciseNames(entries) {
		sets := logstore.FilterByExercise(entries, name)
		dates := make(map[string]bool)
		s := ExerciseSummary{
			Exercise: name,
			Sets:     len(sets),
			First:    sets[0].Weight,
			Last:     sets[len(sets)-1].Weight,
			Best:     sets[0].Weight,
		}
		for _, set := range sets {
			dates[set.Date] = true
			if set.Weight > s.Best {
				s.Best = set.Weight
			}
		}
		s.Sessions = len(dates)
		summaries = append(summaries, s)
	}
	return summaries
}

func reportPrompt(entries []logstore.HistoryEntry) string {
	dates := make(map[string]bool)
	for _, e := range entries {
		dates[e.Date] = true
	}
	sortedDates := make([]string, 0, len(dates))
	for d := range dates {
		sortedDates = append(sortedDates, d)
	}
	sort.Strings(sortedDates)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Training summary (%d sets over %d days).\n", len(entries), len(sortedDates))
	for _, s := range Summarize(entries) {
		fmt.Fprintf(
			&sb,
			"- %s: %d sets in %d sessions, first %s kg, last %s kg, best %s kg\n",
			s.Exercise, s.Sets, s.Sessions, formatKg(s.First), formatKg(s.Last), formatKg(s.Best),
		)
	}
	return sb.String()
}

func formatKg(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
