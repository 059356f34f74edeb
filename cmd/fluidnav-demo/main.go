// Command fluidnav-demo opens a window showing every navigation transition,
// nested pushes, pop-to-root, a sheet and a full-screen cover.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav"
)

func init() {
	// SDL wants every call on the thread that initialised it.
	runtime.LockOSThread()
}

type demoFlags struct {
	configPath   string
	logLevel     string
	logPath      string
	locale       string
	noSwipeBack  bool
	debugOverlay bool
	touchDevice  string
	imagePath    string
	cannoli      bool
	transition   string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &demoFlags{}

	cmd := &cobra.Command{
		Use:          "fluidnav-demo",
		Short:        "Show the fluidnav navigation stack",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "path to a fluidnav TOML config file")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&flags.logPath, "log-file", "", "also write logs to this file")
	f.StringVar(&flags.locale, "locale", "", "language for built-in labels, e.g. en, es, fr")
	f.BoolVar(&flags.noSwipeBack, "no-swipe-back", false, "disable the swipe-back gesture")
	f.BoolVar(&flags.debugOverlay, "debug-overlay", false, "show the navigation depth")
	f.StringVar(&flags.touchDevice, "touch-device", "", "read raw touches from this evdev device")
	f.StringVar(&flags.imagePath, "image", "", "PNG or JPEG shown on the detail screens")
	f.BoolVar(&flags.cannoli, "cannoli", false, "use the Cannoli theme")
	f.StringVar(&flags.transition, "transition", "slide", "transition of the extra \"Configured\" row")

	return cmd
}

func run(ctx context.Context, flags *demoFlags) error {
	configured, err := fluidnav.ParseTransition(flags.transition)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = fluidnav.Init(fluidnav.Options{
		WindowTitle: "fluidnav demo",
		ConfigPath:  flags.configPath,
		LogPath:     flags.logPath,
		LogLevel:    flags.logLevel,
		Locale:      flags.locale,
		IsCannoli:   flags.cannoli,
	})
	if err != nil {
		return err
	}
	defer fluidnav.Close()

	logger := fluidnav.GetLogger()

	opts := []fluidnav.Option{fluidnav.WithDebugOverlay(flags.debugOverlay)}
	if flags.noSwipeBack {
		opts = append(opts, fluidnav.WithSwipeBack(false))
	}
	if flags.touchDevice != "" {
		opts = append(opts, fluidnav.WithTouchDevice(flags.touchDevice))
	}

	stack := fluidnav.NewNavigationStack(rootScreen(flags.imagePath, configured), opts...)
	defer stack.Close()

	logger.Info("Starting demo", "swipe_back", !flags.noSwipeBack)
	return stack.Run(ctx)
}

var transitions = []struct {
	name       string
	transition fluidnav.Transition
}{
	{"Slide", fluidnav.TransitionSlide},
	{"Fade", fluidnav.TransitionFade},
	{"Scale", fluidnav.TransitionScale},
	{"Slide up", fluidnav.TransitionSlideUp},
}

const rowHeight int32 = 56

func rootScreen(imagePath string, configured fluidnav.Transition) fluidnav.Screen {
	var rows []fluidnav.Row
	for _, t := range transitions {
		rows = append(rows, fluidnav.Row{Height: rowHeight, Screen: fluidnav.NavigationButton{
			Label:       t.name,
			Transition:  t.transition,
			Destination: detailScreen(t.name, 1, t.transition, imagePath),
		}})
	}
	rows = append(rows,
		fluidnav.Row{Height: rowHeight, Screen: fluidnav.NavigationButton{
			Label:       "Configured (" + configured.String() + ")",
			Transition:  configured,
			Destination: detailScreen("Configured", 1, configured, imagePath),
		}},
		fluidnav.Row{Height: rowHeight, Screen: fluidnav.NavigationButton{
			Label:       "Sheet",
			Transition:  fluidnav.TransitionSheet,
			Destination: modalScreen("Sheet"),
		}},
		fluidnav.Row{Height: rowHeight, Screen: fluidnav.NavigationButton{
			Label:       "Full-screen cover",
			Transition:  fluidnav.TransitionFullScreenCover,
			Destination: modalScreen("Cover"),
		}},
		fluidnav.Row{},
	)

	return fluidnav.WithNavigationTitle(fluidnav.VStack(0, rows...), "fluidnav")
}

func detailScreen(name string, depth int, transition fluidnav.Transition, imagePath string) fluidnav.Screen {
	title := fmt.Sprintf("%s %d", name, depth)

	var body fluidnav.Screen = fluidnav.Text(title)
	if imagePath != "" {
		body = fluidnav.Image(imagePath)
	}

	content := fluidnav.VStack(0,
		fluidnav.Row{Screen: body},
		fluidnav.Row{Height: rowHeight, Screen: fluidnav.NavigationButton{
			Label:       "Deeper",
			Transition:  transition,
			Destination: lazyScreen(func() fluidnav.Screen { return detailScreen(name, depth+1, transition, imagePath) }),
		}},
		fluidnav.Row{Height: rowHeight, Screen: actionButton{
			label: "Pop to root",
			do:    func(a fluidnav.Actions) { a.PopToRoot() },
		}},
		fluidnav.Row{Height: rowHeight, Screen: fluidnav.NavigationButton{
			Label:       "Sheet",
			Transition:  fluidnav.TransitionSheet,
			Destination: modalScreen("Sheet over " + title),
		}},
	)

	return fluidnav.WithNavigationTitle(content, title)
}

func modalScreen(title string) fluidnav.Screen {
	content := fluidnav.VStack(0,
		fluidnav.Row{Screen: fluidnav.Text(title)},
		fluidnav.Row{Height: rowHeight, Screen: fluidnav.NavigationButton{
			Label:       "Cover on top",
			Transition:  fluidnav.TransitionFullScreenCover,
			Destination: lazyScreen(func() fluidnav.Screen { return modalScreen("Cover") }),
		}},
		fluidnav.Row{Height: rowHeight, Screen: actionButton{
			label: "Dismiss",
			do:    func(a fluidnav.Actions) { a.DismissModal() },
		}},
		fluidnav.Row{Height: rowHeight, Screen: actionButton{
			label: "Dismiss all",
			do:    func(a fluidnav.Actions) { a.DismissAllModals() },
		}},
	)
	return fluidnav.WithNavigationBar(content, fluidnav.NavigationBar{Center: fluidnav.Title(title)})
}

// lazyScreen builds its content the first time it is drawn, so screens can
// link to deeper copies of themselves.
func lazyScreen(build func() fluidnav.Screen) fluidnav.Screen {
	return &lazy{build: build}
}

type lazy struct {
	build  func() fluidnav.Screen
	screen fluidnav.Screen
}

func (l *lazy) get() fluidnav.Screen {
	if l.screen == nil {
		l.screen = l.build()
	}
	return l.screen
}

func (l *lazy) Render(rc *fluidnav.RenderContext) {
	l.get().Render(rc)
}

func (l *lazy) HandleTap(rc *fluidnav.RenderContext, x, y int32) bool {
	if t, ok := l.get().(fluidnav.Tappable); ok {
		return t.HandleTap(rc, x, y)
	}
	return false
}

// actionButton runs an arbitrary navigation action when tapped.
type actionButton struct {
	label string
	do    func(fluidnav.Actions)
}

func (b actionButton) Render(rc *fluidnav.RenderContext) {
	fluidnav.Text(b.label).Render(rc)
}

func (b actionButton) HandleTap(rc *fluidnav.RenderContext, x, y int32) bool {
	p := sdl.Point{X: x, Y: y}
	if !p.InRect(&rc.Bounds) {
		return false
	}
	b.do(rc.Actions())
	return true
}
