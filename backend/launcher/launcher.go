package launcher

import (
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/b0bbywan/go-panel-actions/action"
	"github.com/b0bbywan/go-panel-actions/cache"
	"github.com/b0bbywan/go-panel-actions/config"
	"github.com/b0bbywan/go-panel-actions/logger"
)

var _ action.Launcher = (*Launcher)(nil)

// connectServerTools in preference order. The last one is used even when
// not found in PATH; the spawn error then surfaces to the caller.
var connectServerTools = []string{
	"caja-connect-server",
	"nautilus-connect-server",
	"nemo-connect-server",
}

// Launcher spawns the external programs the Run, Search, ForceQuit,
// ConnectServer and help actions delegate to.
type Launcher struct {
	cfg     *config.LauncherConfig
	wayland bool
	// Resolved PATH lookups, "" marks a known-absent program.
	pathCache *cache.Cache[string]
}

func New(cfg *config.LauncherConfig, display config.DisplayServer) *Launcher {
	return &Launcher{
		cfg:       cfg,
		wayland:   display == config.DisplayWayland,
		pathCache: cache.New[string](30 * time.Second),
	}
}

// lookPath resolves a program through the cache.
func (l *Launcher) lookPath(program string) (string, bool) {
	if path, ok := l.pathCache.Get(program); ok {
		return path, path != ""
	}
	path, err := exec.LookPath(program)
	if err != nil {
		path = ""
	}
	l.pathCache.Set(program, path)
	return path, path != ""
}

// spawn starts argv detached on the screen named by ctx and reaps it in the
// background.
func (l *Launcher) spawn(ctx action.Context, argv ...string) error {
	if len(argv) == 0 {
		return &NotFoundError{Program: "(empty command)"}
	}

	logger.Debug("[launcher] spawning %v", argv)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	if ctx.Display != "" && !l.wayland {
		cmd.Env = append(cmd.Env, "DISPLAY="+ctx.Display)
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Warn("[launcher] %s exited: %v", argv[0], err)
		}
	}()
	return nil
}

// PresentRunDialog opens the run-application dialog.
func (l *Launcher) PresentRunDialog(ctx action.Context) error {
	return l.spawn(ctx, strings.Fields(l.cfg.RunDialogCommand)...)
}

// LaunchDesktopFile launches a desktop file, falling back to a bare binary
// when no desktop launcher is installed.
func (l *Launcher) LaunchDesktopFile(ctx action.Context, desktopFile, fallback string) error {
	if _, ok := l.lookPath("gtk-launch"); ok {
		return l.spawn(ctx, "gtk-launch", strings.TrimSuffix(desktopFile, ".desktop"))
	}
	if _, ok := l.lookPath(fallback); ok {
		return l.spawn(ctx, fallback)
	}
	return &NotFoundError{Program: fallback}
}

// ConnectServer opens the connect-to-server dialog of whichever file
// manager is installed.
func (l *Launcher) ConnectServer(ctx action.Context) error {
	command := connectServerTools[len(connectServerTools)-1]
	for _, tool := range connectServerTools {
		if _, ok := l.lookPath(tool); ok {
			command = tool
			break
		}
	}
	return l.spawn(ctx, command)
}

// ForceQuit starts the force-quit helper. X11 only: there is no protocol
// for killing an arbitrary client on Wayland.
func (l *Launcher) ForceQuit(ctx action.Context) error {
	if l.wayland {
		return &DisplayServerError{Reason: "force quit is only available on X11"}
	}
	return l.spawn(ctx, strings.Fields(l.cfg.ForceQuitCommand)...)
}

// ShowHelp opens the user guide at the given topic.
func (l *Launcher) ShowHelp(ctx action.Context, topic string) error {
	uri := "help:" + l.cfg.HelpDocument
	if topic != "" {
		uri += "/" + topic
	}
	return l.spawn(ctx, l.cfg.HelpViewer, uri)
}
