package repl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"algoprep/internal/cli/command"
	httpclient "algoprep/internal/cli/http"
	"algoprep/internal/cli/progress"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
)

// Session holds REPL state.
type Session struct {
	client       *httpclient.Client
	commands     map[string]command.Command
	ledger       *progress.Ledger
	progressPath string
	prettyJSON   bool
	rl           *readline.Instance
}

func New(client *httpclient.Client, commands map[string]command.Command, ledger *progress.Ledger, progressPath string, prettyJSON bool) (*Session, error) {
	rl, err := readline.New("algoprep> ")
	if err != nil {
		return nil, fmt.Errorf("init readline failed: %w", err)
	}
	return &Session{
		client:       client,
		commands:     commands,
		ledger:       ledger,
		progressPath: progressPath,
		prettyJSON:   prettyJSON,
		rl:           rl,
	}, nil
}

func (s *Session) Run(ctx context.Context) {
	defer func() { _ = s.rl.Close() }()
	for {
		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err == io.EOF {
			s.printLine("bye")
			return
		}
		if err != nil {
			s.printLine("read input failed: %v", err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			s.printLine("bye")
			return
		}
		if s.handleSystemCommand(line) {
			continue
		}
		if err := s.handleCommand(ctx, line); err != nil {
			s.printLine("error: %v", err)
		}
	}
}

// handleSystemCommand reports whether the line was a system command.
func (s *Session) handleSystemCommand(line string) bool {
	if line == "help" {
		s.printHelp()
		return true
	}
	if strings.HasPrefix(line, "set ") {
		s.handleSet(strings.TrimSpace(strings.TrimPrefix(line, "set ")))
		return true
	}
	if line == "show config" {
		s.printLine("progressPath: %s", s.progressPath)
		return true
	}
	return false
}

func (s *Session) handleSet(args string) {
	parts := strings.Fields(args)
	if len(parts) == 0 {
		s.printLine("usage: set base|timeout")
		return
	}
	switch parts[0] {
	case "base":
		if len(parts) < 2 {
			s.printLine("usage: set base http://127.0.0.1:8080")
			return
		}
		s.client.SetBaseURL(parts[1])
		s.printLine("base set to %s", parts[1])
	case "timeout":
		if len(parts) < 2 {
			s.printLine("usage: set timeout 10s")
			return
		}
		dur, err := time.ParseDuration(parts[1])
		if err != nil {
			s.printLine("invalid duration: %v", err)
			return
		}
		s.client.SetTimeout(dur)
		s.printLine("timeout set to %s", dur)
	default:
		s.printLine("unknown set command")
	}
}

func (s *Session) handleCommand(ctx context.Context, line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("parse command failed: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}
	if tokens[0] == "progress" {
		return s.handleProgress(tokens[1:])
	}
	if len(tokens) < 2 {
		return fmt.Errorf("invalid command, use: <service> <action> key=value ...")
	}
	service := tokens[0]
	action := tokens[1]
	key := fmt.Sprintf("%s %s", service, action)
	cmd, ok := s.commands[key]
	if !ok {
		return fmt.Errorf("unknown command: %s %s", service, action)
	}
	params := command.Params{}
	for _, token := range tokens[2:] {
		parts := strings.SplitN(token, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid param: %s", token)
		}
		params.Set(parts[0], parts[1])
	}

	if err := s.promptMissing(cmd, params); err != nil {
		return err
	}
	req, err := command.BuildRequest(cmd, params)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(ctx, req.Method, req.Path, req.Body)
	if err != nil {
		return err
	}
	s.renderResponse(resp)
	return nil
}

func (s *Session) handleProgress(tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("usage: progress solve|unsolve|bookmark|unbookmark|note|show ...")
	}
	switch tokens[0] {
	case "solve", "unsolve", "bookmark", "unbookmark":
		if len(tokens) < 2 {
			return fmt.Errorf("usage: progress %s <problem-id>", tokens[0])
		}
		return s.toggleProgress(tokens[0], tokens[1])
	case "note":
		return s.handleNote(tokens[1:])
	case "show":
		s.renderLedger()
		return nil
	default:
		return fmt.Errorf("unknown progress command: %s", tokens[0])
	}
}

func (s *Session) toggleProgress(action, problemID string) error {
	var changed bool
	switch action {
	case "solve":
		changed = s.ledger.Solve(problemID)
	case "unsolve":
		changed = s.ledger.Unsolve(problemID)
	case "bookmark":
		changed = s.ledger.Bookmark(problemID)
	case "unbookmark":
		changed = s.ledger.Unbookmark(problemID)
	}
	if !changed {
		s.printLine("no change")
		return nil
	}
	if err := progress.Save(s.progressPath, *s.ledger); err != nil {
		return err
	}
	s.printLine("ok")
	return nil
}

func (s *Session) handleNote(tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("usage: progress note add|edit|remove|list ...")
	}
	switch tokens[0] {
	case "add":
		if len(tokens) < 3 {
			return fmt.Errorf("usage: progress note add <problem-id> <content>")
		}
		note := s.ledger.AddNote(tokens[1], strings.Join(tokens[2:], " "))
		if err := progress.Save(s.progressPath, *s.ledger); err != nil {
			return err
		}
		s.printLine("note %s added", note.ID)
		return nil
	case "edit":
		if len(tokens) < 3 {
			return fmt.Errorf("usage: progress note edit <note-id> <content>")
		}
		if !s.ledger.EditNote(tokens[1], strings.Join(tokens[2:], " ")) {
			return fmt.Errorf("note not found: %s", tokens[1])
		}
		if err := progress.Save(s.progressPath, *s.ledger); err != nil {
			return err
		}
		s.printLine("note updated")
		return nil
	case "remove":
		if len(tokens) < 2 {
			return fmt.Errorf("usage: progress note remove <note-id>")
		}
		if !s.ledger.RemoveNote(tokens[1]) {
			return fmt.Errorf("note not found: %s", tokens[1])
		}
		if err := progress.Save(s.progressPath, *s.ledger); err != nil {
			return err
		}
		s.printLine("note removed")
		return nil
	case "list":
		notes := s.ledger.Notes
		if len(tokens) > 1 {
			notes = s.ledger.NotesFor(tokens[1])
		}
		if len(notes) == 0 {
			s.printLine("no notes")
			return nil
		}
		for _, note := range notes {
			s.printLine("%s  [%s]  %s", note.ID, note.ProblemID, note.Content)
		}
		return nil
	default:
		return fmt.Errorf("unknown note command: %s", tokens[0])
	}
}

func (s *Session) renderLedger() {
	s.printLine("solved (%d): %s", len(s.ledger.Solved), strings.Join(s.ledger.Solved, ", "))
	s.printLine("bookmarked (%d): %s", len(s.ledger.Bookmarked), strings.Join(s.ledger.Bookmarked, ", "))
	s.printLine("notes: %d", len(s.ledger.Notes))
}

func (s *Session) promptMissing(cmd command.Command, params command.Params) error {
	for _, field := range cmd.Fields {
		if !field.Required {
			continue
		}
		if params.Has(field.Name) && params.Get(field.Name) != "" {
			continue
		}
		value, err := s.promptValue(field.Prompt)
		if err != nil {
			return err
		}
		params.Set(field.Name, value)
	}
	return nil
}

func (s *Session) promptValue(prompt string) (string, error) {
	s.rl.SetPrompt(prompt + ": ")
	defer s.rl.SetPrompt("algoprep> ")
	line, err := s.rl.Readline()
	if err != nil {
		return "", fmt.Errorf("read input failed: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) renderResponse(resp httpclient.ResponseInfo) {
	s.printLine("HTTP %d (%s)", resp.StatusCode, resp.Duration)
	if len(resp.Body) == 0 {
		return
	}
	if s.prettyJSON {
		var raw interface{}
		if err := json.Unmarshal(resp.Body, &raw); err == nil {
			formatted, _ := json.MarshalIndent(raw, "", "  ")
			s.printLine("%s", string(formatted))
			return
		}
	}
	s.printLine("%s", string(resp.Body))
}

func (s *Session) printHelp() {
	s.printLine("usage: <service> <action> key=value ...")
	s.printLine("system: help | exit | set base|timeout | show config")
	s.printLine("local: progress solve|unsolve|bookmark|unbookmark <id>")
	s.printLine("       progress note add|edit|remove|list | progress show")
	s.printLine("examples:")
	s.printLine("  dsa problems topic=array difficulty=medium limit=10")
	s.printLine("  cp problems ratingMin=1200 ratingMax=1500 topic=dp")
	s.printLine("  sheet show key=striver")
	s.printLine("  ai hints title=\"Two Sum\" thought=\"brute force\"")
	s.printLine("  progress solve LC-1")
	s.printLine("  progress note add LC-1 revisit the hash map trick")
}

func (s *Session) printLine(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.rl.Stdout(), format+"\n", args...)
}
