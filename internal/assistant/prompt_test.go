package assistant

import (
	"fmt"
	"strings"
	"testing"
)

func TestAssembleMessagesOrder(t *testing.T) {
	history := []ChatMessage{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
	}

	msgs := AssembleMessages("John Doe", Summary{TotalTasks: 3}, "listing", date("2024-06-01"), history, "new question")

	if len(msgs) != 4 {
		t.Fatalf("len = %d, want 4", len(msgs))
	}
	if msgs[0].Role != "system" {
		t.Errorf("first role = %q, want system", msgs[0].Role)
	}
	if msgs[1].Content != "first question" || msgs[2].Content != "first answer" {
		t.Errorf("history out of order: %+v", msgs[1:3])
	}
	if last := msgs[len(msgs)-1]; last.Role != "user" || last.Content != "new question" {
		t.Errorf("last message = %+v", last)
	}
}

func TestAssembleMessagesTruncatesHistory(t *testing.T) {
	var history []ChatMessage
	for i := 0; i < 20; i++ {
		history = append(history, ChatMessage{Role: "user", Content: fmt.Sprintf("msg-%d", i)})
	}

	msgs := AssembleMessages("John", Summary{}, NoTasksText, date("2024-06-01"), history, "latest")

	// system + 8 history + new user message
	if len(msgs) != MaxHistoryMessages+2 {
		t.Fatalf("len = %d, want %d", len(msgs), MaxHistoryMessages+2)
	}
	for i := 0; i < MaxHistoryMessages; i++ {
		want := fmt.Sprintf("msg-%d", 20-MaxHistoryMessages+i)
		if msgs[1+i].Content != want {
			t.Errorf("history[%d] = %q, want %q", i, msgs[1+i].Content, want)
		}
	}
}

func TestAssembleMessagesShortHistoryKept(t *testing.T) {
	history := []ChatMessage{{Role: "user", Content: "only one"}}
	msgs := AssembleMessages("John", Summary{}, NoTasksText, date("2024-06-01"), history, "q")
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
}

func TestSystemPromptInterpolation(t *testing.T) {
	sum := Summary{
		TotalTasks:      6,
		CompletedTasks:  1,
		InProgressTasks: 2,
		TodoTasks:       3,
		OverdueTasks:    4,
		DueToday:        5,
	}
	prompt := SystemPrompt("Jane Smith", sum, "- something (Status: Todo)", date("2024-06-01"))

	for _, want := range []string{
		"AI Task Management Assistant for Jane Smith",
		"- Total Tasks: 6",
		"- Completed: 1",
		"- In Progress: 2",
		"- Todo: 3",
		"- Overdue: 4",
		"- Due Today: 5",
		"- something (Status: Todo)",
		"CURRENT DATE: 2024-06-01",
		"PLAIN TEXT only",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
