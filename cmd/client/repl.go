package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"

	"chat-client/domain"
	"chat-client/observability"
	"chat-client/repositories"
	"chat-client/runtime"
	"chat-client/search"
	"chat-client/services"
	"chat-client/ui"
)

const helpText = `Commands:
  /nick <name>        change nickname
  /open <user>        open a conversation with user
  /switch <id>        make a conversation active
  /close              leave the active conversation
  /users              list connected users
  /convs              list open conversations
  /history            show archived messages of the active conversation
  /find <text>        search messages (add "in:<id>" to restrict)
  /stats              show session telemetry
  /quit               exit
Anything else is sent to the active conversation.`

// REPL drives the session from stdin. Every command funnels into the
// directory service or the registries; no direct wire access.
type REPL struct {
	log       *slog.Logger
	directory *services.DirectoryService
	convs     *runtime.ConversationRegistry
	console   *ui.Console
	archive   repositories.IArchive
	index     *search.Index
	stats     *observability.SessionStats
}

func NewREPL(
	log *slog.Logger,
	directory *services.DirectoryService,
	convs *runtime.ConversationRegistry,
	console *ui.Console,
	archive repositories.IArchive,
	index *search.Index,
	stats *observability.SessionStats,
) *REPL {
	return &REPL{
		log:       log,
		directory: directory,
		convs:     convs,
		console:   console,
		archive:   archive,
		index:     index,
		stats:     stats,
	}
}

// Run reads commands until EOF, /quit, or context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Println(helpText)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			return nil
		}
		r.handle(ctx, line)
	}
	return scanner.Err()
}

func (r *REPL) handle(ctx context.Context, line string) {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "/help":
		fmt.Println(helpText)
	case "/nick":
		if err := r.directory.UpdateNickname(arg); err != nil {
			r.warn("nickname rejected", err)
		}
	case "/open":
		if err := r.convs.Start(domain.User(arg)); err != nil {
			r.warn("open failed", err)
		}
	case "/switch":
		r.convs.Activate(domain.ConversationID(arg))
	case "/close":
		active, ok := r.convs.Active()
		if !ok {
			fmt.Println(color.Gray.Sprint("no active conversation"))
			return
		}
		if !active.Removable {
			fmt.Println(color.Gray.Sprint("the broadcast conversation cannot be closed"))
			return
		}
		if err := r.directory.LeaveConversation(active.ID); err != nil {
			r.warn("close failed", err)
		}
	case "/users":
		r.console.RenderUsers()
	case "/convs":
		r.console.RenderConversations()
	case "/history":
		r.history()
	case "/find":
		r.find(ctx, arg)
	case "/stats":
		r.renderStats()
	default:
		// Bare text goes to the active conversation.
		active, ok := r.convs.Active()
		if !ok {
			fmt.Println(color.Gray.Sprint("no active conversation, /open one first"))
			return
		}
		if err := r.directory.SendMessage(line, active.ID); err != nil {
			r.warn("message rejected", err)
		}
	}
}

func (r *REPL) history() {
	active, ok := r.convs.Active()
	if !ok {
		fmt.Println(color.Gray.Sprint("no active conversation"))
		return
	}
	messages, _, err := r.archive.GetMessages(active.ID, nil)
	if err != nil {
		r.warn("history failed", err)
		return
	}
	if len(messages) == 0 {
		fmt.Println(color.Gray.Sprint("no archived messages yet"))
		return
	}
	// The archive iterates newest first; replay oldest first.
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		sender := string(m.Sender)
		if sender == "" {
			sender = "Everyone"
		}
		fmt.Printf("%s %s: %s\n", m.At.Format("15:04:05"), color.Bold.Sprint(sender), m.Body)
	}
}

func (r *REPL) find(ctx context.Context, arg string) {
	if arg == "" {
		fmt.Println(color.Gray.Sprint("usage: /find <text> [in:<conversation id>]"))
		return
	}
	var conversation domain.ConversationID
	var terms []string
	for _, field := range strings.Fields(arg) {
		if id, ok := strings.CutPrefix(field, "in:"); ok {
			conversation = domain.ConversationID(id)
			continue
		}
		terms = append(terms, field)
	}

	hits, total, err := r.index.Search(ctx, strings.Join(terms, " "), conversation)
	if err != nil {
		r.warn("search failed", err)
		return
	}
	fmt.Printf("%d match(es)\n", total)
	for _, hit := range hits {
		sender := string(hit.Sender)
		if sender == "" {
			sender = "Everyone"
		}
		fmt.Printf("[%s] %s: %s\n", hit.Conversation, color.Bold.Sprint(sender), hit.Body)
	}
}

func (r *REPL) renderStats() {
	r.stats.Refresh()
	snapshot := r.stats.GetLatest()
	fmt.Printf("frames sent=%d received=%d malformed=%d\n",
		snapshot.FramesSent, snapshot.FramesReceived, snapshot.MalformedFrames)
	fmt.Printf("calls sent=%d timed out=%d events dispatched=%d\n",
		snapshot.CallsSent, snapshot.CallsTimedOut, snapshot.EventsDispatched)
	fmt.Printf("mem=%dMB gc=%d cpu=%.1f%% ram=%.1f%%\n",
		snapshot.AllocMemMb, snapshot.NumGC, snapshot.CPUPercent, snapshot.RAMPercent)
}

func (r *REPL) warn(message string, err error) {
	fmt.Println(color.Red.Sprintf("%s: %v", message, err))
	r.log.Debug(message, "err", err)
}
