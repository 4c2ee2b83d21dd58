package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/sonroyaalmerol/vidplayer/internal/player"
	"github.com/sonroyaalmerol/vidplayer/internal/ui"
)

const invalidCommand = "Please enter a valid command, type HELP for a list of available commands."

// AskFunc reads one follow-up answer from the user. ok is false when input
// is exhausted.
type AskFunc func(ctx context.Context) (answer string, ok bool)

type CommandHandler struct {
	player *player.Player
	out    io.Writer
	ask    AskFunc
}

func NewCommandHandler(p *player.Player, out io.Writer, ask AskFunc) *CommandHandler {
	return &CommandHandler{player: p, out: out, ask: ask}
}

// Handle runs one command line and reports whether the session should end.
func (h *CommandHandler) Handle(ctx context.Context, line string) (quit bool) {
	args, err := shellquote.Split(line)
	if err != nil {
		// unbalanced quote such as don't; split on whitespace instead
		slog.Debug("shell quoting failed", "line", line, "err", err)
		args = strings.Fields(line)
	}
	if len(args) == 0 {
		return false
	}
	name := strings.ToUpper(args[0])
	args = args[1:]
	slog.Info("cmd "+strings.ToLower(name), "args", args)

	switch name {
	case "NUMBER_OF_VIDEOS":
		h.print(ui.NumberOfVideos(h.player.NumberOfVideos())...)
	case "SHOW_ALL_VIDEOS":
		h.print(ui.AllVideos(h.player.ListAll())...)
	case "PLAY":
		h.withArgs(args, 1, func() { h.cmdPlay(args[0]) })
	case "PLAY_RANDOM":
		h.result(ui.OpPlayRandom, "")(h.player.PlayRandom())
	case "STOP":
		h.result(ui.OpStop, "")(h.player.Stop())
	case "PAUSE":
		h.result(ui.OpPause, "")(h.player.Pause())
	case "CONTINUE":
		h.result(ui.OpContinue, "")(h.player.Resume())
	case "SHOW_PLAYING":
		h.print(ui.NowPlaying(h.player.NowPlaying())...)
	case "CREATE_PLAYLIST":
		h.withArgs(args, 1, func() {
			h.result(ui.OpCreatePlaylist, args[0])(h.player.CreatePlaylist(args[0]))
		})
	case "ADD_TO_PLAYLIST":
		h.withArgs(args, 2, func() {
			h.result(ui.OpAddToPlaylist, args[0])(h.player.AddToPlaylist(args[0], args[1]))
		})
	case "SHOW_ALL_PLAYLISTS":
		h.print(ui.AllPlaylists(h.player.ShowAllPlaylists())...)
	case "SHOW_PLAYLIST":
		h.withArgs(args, 1, func() { h.cmdShowPlaylist(args[0]) })
	case "REMOVE_FROM_PLAYLIST":
		h.withArgs(args, 2, func() {
			h.result(ui.OpRemoveFromPlaylist, args[0])(h.player.RemoveFromPlaylist(args[0], args[1]))
		})
	case "CLEAR_PLAYLIST":
		h.withArgs(args, 1, func() {
			h.result(ui.OpClearPlaylist, args[0])(h.player.ClearPlaylist(args[0]))
		})
	case "DELETE_PLAYLIST":
		h.withArgs(args, 1, func() {
			h.result(ui.OpDeletePlaylist, args[0])(h.player.DeletePlaylist(args[0]))
		})
	case "SEARCH_VIDEOS":
		h.withArgs(args, 1, func() {
			h.cmdSearch(ctx, args[0], h.player.FindByTitle, h.player.SearchByTitle)
		})
	case "SEARCH_VIDEOS_WITH_TAG":
		h.withArgs(args, 1, func() {
			h.cmdSearch(ctx, args[0], h.player.FindByTag, h.player.SearchByTag)
		})
	case "FLAG_VIDEO":
		h.withArgs(args, 1, func() {
			reason := strings.Join(args[1:], " ")
			h.result(ui.OpFlag, "")(h.player.FlagVideo(args[0], reason))
		})
	case "ALLOW_VIDEO":
		h.withArgs(args, 1, func() {
			h.result(ui.OpAllow, "")(h.player.AllowVideo(args[0]))
		})
	case "HELP":
		h.print(helpText)
	case "EXIT":
		h.print("Video player has now terminated its execution. Thank you and goodbye!")
		return true
	default:
		slog.Debug("unknown command", "name", name)
		h.print(invalidCommand)
	}
	return false
}

func (h *CommandHandler) cmdPlay(videoID string) {
	h.result(ui.OpPlay, "")(h.player.Play(videoID))
}

func (h *CommandHandler) cmdShowPlaylist(name string) {
	videos, err := h.player.ShowPlaylist(name)
	if err != nil {
		h.print(ui.ErrorLine(ui.OpShowPlaylist, name, err))
		return
	}
	h.print(ui.Playlist(name, videos)...)
}

// cmdSearch lists matches, asks for a number, and hands the answer to the
// player, which plays the chosen result or ignores the answer.
func (h *CommandHandler) cmdSearch(
	ctx context.Context,
	query string,
	find func(string) []*player.Video,
	search func(string, string) (player.SearchOutcome, error),
) {
	results := find(query)
	h.print(ui.SearchResults(query, results)...)
	if len(results) == 0 {
		return
	}
	answer, ok := h.ask(ctx)
	if !ok {
		return
	}
	outcome, err := search(query, answer)
	if err != nil {
		h.print(ui.ErrorLine(ui.OpPlay, "", err))
		return
	}
	h.print(ui.Events(outcome.Events)...)
}

func (h *CommandHandler) result(op ui.Op, playlist string) func([]player.Event, error) {
	return func(events []player.Event, err error) {
		if err != nil {
			slog.Debug("command failed", "op", op, "playlist", playlist, "err", err)
			h.print(ui.ErrorLine(op, playlist, err))
			return
		}
		h.print(ui.Events(events)...)
	}
}

func (h *CommandHandler) withArgs(args []string, n int, run func()) {
	if len(args) < n {
		h.print(invalidCommand)
		return
	}
	run()
}

func (h *CommandHandler) print(lines ...string) {
	for _, l := range lines {
		if _, err := fmt.Fprintln(h.out, l); err != nil {
			slog.Warn("write failed", "err", err)
			return
		}
	}
}

const helpText = `Available commands:
    NUMBER_OF_VIDEOS - Shows how many videos are in the library.
    SHOW_ALL_VIDEOS - Lists all videos from the library.
    PLAY <video_id> - Plays specified video.
    PLAY_RANDOM - Plays a random video from the library.
    STOP - Stop the current video.
    PAUSE - Pause the current video.
    CONTINUE - Resume the current paused video.
    SHOW_PLAYING - Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused).
    CREATE_PLAYLIST <playlist_name> - Creates a new (empty) playlist with the provided name.
    ADD_TO_PLAYLIST <playlist_name> <video_id> - Adds the requested video to the playlist.
    REMOVE_FROM_PLAYLIST <playlist_name> <video_id> - Removes the specified video from the specified playlist
    CLEAR_PLAYLIST <playlist_name> - Removes all videos from the playlist.
    DELETE_PLAYLIST <playlist_name> - Deletes the playlist.
    SHOW_PLAYLIST <playlist_name> - List all the videos in this playlist.
    SHOW_ALL_PLAYLISTS - Display all the available playlists.
    SEARCH_VIDEOS <search_term> - Display all the videos whose titles contain the search_term.
    SEARCH_VIDEOS_WITH_TAG <tag_name> - Display all videos whose tags contains the provided tag.
    FLAG_VIDEO <video_id> <flag_reason> - Mark a video as flagged.
    ALLOW_VIDEO <video_id> - Removes a flag from a video.
    HELP - Displays help.
    EXIT - Terminates the program execution.`
