package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sonroyaalmerol/vidplayer/internal/config"
	"github.com/sonroyaalmerol/vidplayer/internal/player"
)

type Shell struct {
	cfg    *config.Config
	player *player.Player
}

func NewShell(cfg *config.Config, p *player.Player) *Shell {
	return &Shell{cfg: cfg, player: p}
}

// Run reads commands from in until EXIT, end of input, or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	next := func(ctx context.Context) (string, bool) {
		select {
		case <-ctx.Done():
			return "", false
		case l, ok := <-lines:
			return l, ok
		}
	}

	cmd := NewCommandHandler(s.player, out, next)
	fmt.Fprintln(out, "Hello and welcome to the video player, what would you like to do?")
	fmt.Fprintln(out, "Enter HELP for a list of available commands or EXIT to terminate.")

	for {
		fmt.Fprint(out, s.cfg.Prompt)
		line, ok := next(ctx)
		if !ok {
			break
		}
		if cmd.Handle(ctx, line) {
			return nil
		}
	}

	if err := ctx.Err(); err != nil {
		slog.Info("shell interrupted", "err", err)
		return nil
	}
	select {
	case err := <-readErr:
		return err
	default:
		return nil
	}
}
