package session

import (
	"context"

	"github.com/robalobadob/wordle/apps/cli/internal/console"
)

type readResult struct {
	line string
	err  error
}

// readLine reads one line from in, giving up when ctx is done. A read still
// blocked at that point is released by closing in.
func readLine(ctx context.Context, in console.LineReader, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch := make(chan readResult, 1)
	go func() {
		line, err := in.ReadLine(prompt)
		ch <- readResult{line: line, err: err}
	}()
	select {
	case r := <-ch:
		return r.line, r.err
	case <-ctx.Done():
		_ = in.Close()
		return "", ctx.Err()
	}
}
