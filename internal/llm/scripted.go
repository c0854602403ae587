package llm

import (
	"context"
	"sync"
)

// Scripted is a Provider that plays back queued results and records the
// prompts it got. An empty queue answers KindUnavailable.
type Scripted struct {
	mu      sync.Mutex
	queue   []Scripts
	prompts []Prompt
}

// Scripts is one queued result.
type Scripts struct {
	Reply Reply
	Err   error
}

func NewScripted(results ...Scripts) *Scripted {
	return &Scripted{queue: results}
}

// Say queues a successful line.
func Say(line string) Scripts {
	return Scripts{Reply: Reply{Line: line, Model: "scripted"}}
}

// Fail queues an error.
func Fail(err error) Scripts {
	return Scripts{Err: err}
}

func (s *Scripted) Line(_ context.Context, p Prompt) (Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, p)
	if len(s.queue) == 0 {
		return Reply{}, &Error{Kind: KindUnavailable}
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next.Reply, next.Err
}

func (s *Scripted) ModelID() string { return "scripted" }

// Prompts returns the prompts received so far.
func (s *Scripted) Prompts() []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Prompt(nil), s.prompts...)
}
