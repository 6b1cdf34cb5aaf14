package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var categoryEmoji = map[string]string{
	"workout":    "💪",
	"reading":    "📚",
	"personal":   "✨",
	"health":     "❤️",
	"learning":   "🧠",
	"meditation": "🧘",
	"finance":    "💰",
	"social":     "👥",
	"creative":   "🎨",
}

func emojiFor(category string) string {
	if e, ok := categoryEmoji[category]; ok {
		return e
	}
	return "📌"
}

var digestMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
)

// digestText is the plain-text alternative of the reminder body.
func digestText(goals []*model.Goal) string {
	var b strings.Builder
	b.WriteString("Good morning! Here are your goals for today:\n\n")
	for _, g := range goals {
		fmt.Fprintf(&b, "- %s %s\n", emojiFor(g.Category), g.Name)
	}
	b.WriteString("\nMake today count!")
	return b.String()
}

// digestHTML renders the reminder body from markdown.
func digestHTML(goals []*model.Goal) (string, error) {
	var md strings.Builder
	md.WriteString("## Good Morning!\n\nHere are your goals for today:\n\n")
	for _, g := range goals {
		fmt.Fprintf(&md, "- %s **%s**\n", emojiFor(g.Category), g.Name)
	}
	md.WriteString("\nMake today count! 🚀\n")

	var buf bytes.Buffer
	err := digestMarkdown.Convert([]byte(md.String()), &buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
