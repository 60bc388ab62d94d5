// Package agent implements an interactive AI advisor that answers
// questions about the user's book and projections.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemPrompt = `You are a personal fixed-income advisor. The user's
positions are indexed to the CDI reference rate and taxed with the
regressive IOF and income-tax tables. Below is the current state of the
user's book and a projection of their net worth; answer questions about it
in plain language. Amounts are in BRL. Never invent figures that are not in
the reports.`

// Advisor is a chat session seeded with the user's reports.
type Advisor struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates an Advisor writing to w and reading user input from r.
func New(w io.Writer, r io.Reader) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r)}
}

// Start opens the chat session, seeding the system instruction with the
// briefing (the rendered book and projection reports).
func (a *Advisor) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: systemPrompt + "\n\n" + briefing},
		}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "advisor> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// consumed before reading from the user.
func (a *Advisor) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Ask about your wealth. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
