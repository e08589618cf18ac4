package domain

import (
	"fmt"
	"strings"
)

// MessageKind selects how an idea is rendered into an outbound message.
type MessageKind string

const (
	MessageNotify MessageKind = "notify" // The idea itself
	MessagePlan   MessageKind = "plan"   // Idea plus its action plan
	MessageReport MessageKind = "report" // Idea, plan, and outcome
)

// ParseMessageKind converts a kind name into a MessageKind.
func ParseMessageKind(s string) (MessageKind, error) {
	switch k := MessageKind(strings.ToLower(strings.TrimSpace(s))); k {
	case MessageNotify, MessagePlan, MessageReport:
		return k, nil
	case "":
		return MessageNotify, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMessageKind, s)
}

// Render returns the subject and body for the idea.
func (k MessageKind) Render(i Idea) (subject, body string) {
	switch k {
	case MessagePlan:
		return "アクションプラン", "アイデア: " + i.Text + "\n方法: " + i.Method
	case MessageReport:
		return "完了レポート", "内容: " + i.Text + "\n方法: " + i.Method + "\n結果: " + i.Outcome
	default:
		return "アイデア通知", i.Text
	}
}
