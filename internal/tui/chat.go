package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studysesh/study-sesh/internal/service"
)

type askDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

// chatModel is the assistant tab: a question input below the running
// transcript. The transcript itself lives in the assistant service, so it
// survives switching tabs.
type chatModel struct {
	ctx     context.Context
	input   textinput.Model
	waiting bool
	status  string
	errMsg  string
}

func newChatModel(ctx context.Context) chatModel {
	input := textinput.New()
	input.Placeholder = "ask anything about your studies"
	input.CharLimit = 2000
	input.Width = 60
	input.Focus()
	return chatModel{ctx: ctx, input: input}
}

func (c chatModel) init() tea.Cmd {
	return textinput.Blink
}

func (c chatModel) update(msg tea.Msg, assistant service.ClientAssistantService) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case askDoneMsg:
		c.waiting = false
		if msg.err != nil {
			c.errMsg = humanizeServerUnavailableError(msg.err)
			return c, nil
		}
		c.errMsg = ""
		return c, nil
	case copiedMsg:
		if msg.err != nil {
			c.errMsg = "Copy failed: " + msg.err.Error()
			return c, nil
		}
		c.status = "Answer copied to clipboard"
		return c, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	switch keyMsg.String() {
	case "enter":
		if c.waiting {
			return c, nil
		}
		question := strings.TrimSpace(c.input.Value())
		if question == "" {
			return c, nil
		}
		c.input.SetValue("")
		c.status = ""
		c.errMsg = ""
		c.waiting = true
		return c, cmdAsk(c.ctx, assistant, question)
	case "c":
		// Only treat bare "c" as the copy hotkey when the input is empty,
		// otherwise the user is typing.
		if c.input.Value() != "" {
			break
		}
		answer := assistant.LastAnswer()
		if answer == "" {
			c.status = "Nothing to copy yet"
			return c, nil
		}
		return c, cmdCopyToClipboard(answer)
	case "ctrl+r":
		assistant.Reset()
		c.status = "Started a new conversation"
		c.errMsg = ""
		return c, nil
	case "q":
		if c.input.Value() != "" {
			break
		}
		return c, tea.Quit
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func cmdAsk(ctx context.Context, assistant service.ClientAssistantService, question string) tea.Cmd {
	return func() tea.Msg {
		_, err := assistant.Ask(ctx, question)
		return askDoneMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (c chatModel) view(assistant service.ClientAssistantService) string {
	var b strings.Builder

	transcript := assistant.Transcript()
	if len(transcript) == 0 {
		b.WriteString("No messages yet. Ask a question below.\n")
	}
	for _, turn := range transcript {
		speaker := "You"
		if turn.Role == "assistant" {
			speaker = "Assistant"
		}
		b.WriteString(speaker + ": " + turn.Content + "\n\n")
	}

	if c.waiting {
		b.WriteString("Assistant is thinking...\n\n")
	}

	b.WriteString("> [" + c.input.View() + "]\n")

	if c.status != "" {
		b.WriteString("\nOK: " + c.status + "\n")
	}
	if c.errMsg != "" {
		b.WriteString("\nError: " + c.errMsg + "\n")
	}

	return b.String()
}
