package navigation_test

import (
	"context"
	"fmt"
	"time"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/navigation"
)

// Page is a stand-in for whatever a UI draws.
type Page struct {
	Title string
}

// nextFrame releases the animation lock on the next drain instead of after
// a real timer, which keeps the examples instant.
type nextFrame struct {
	queue *navigation.MainQueue
}

func (n nextFrame) AfterFunc(_ time.Duration, fn func()) {
	n.queue.Post(fn)
}

// Example pushes two pages, shows a dropped request, and pops back to the root.
func Example() {
	queue := navigation.NewMainQueue()
	defer queue.Close()

	c := navigation.NewContainer(&Page{Title: "Library"}, navigation.Config{
		Scheduler: nextFrame{queue: queue},
		SwipeBack: true,
	})

	ctx := navigation.WithActions(context.Background(), c.Actions())
	actions := navigation.ActionsFrom[*Page](ctx)

	actions.Push(&Page{Title: "Game"}, navigation.Slide)
	// Still animating: dropped.
	actions.Push(&Page{Title: "Ignored"}, navigation.Slide)
	queue.Drain()

	actions.Push(&Page{Title: "Screenshots"}, navigation.Fade)
	queue.Drain()

	for _, layer := range c.Layout(640) {
		fmt.Printf("%s opacity=%.0f\n", layer.Screen.Title, layer.Opacity)
	}

	actions.PopToRoot()
	queue.Drain()
	fmt.Println("depth:", c.Depth(), "can go back:", c.CanGoBack())

	// Output:
	// Library opacity=0
	// Game opacity=0
	// Screenshots opacity=1
	// depth: 0 can go back: false
}

// Example_swipeBack drags the top page past the threshold to pop it.
func Example_swipeBack() {
	queue := navigation.NewMainQueue()
	defer queue.Close()

	c := navigation.NewContainer(&Page{Title: "Library"}, navigation.Config{
		Scheduler: nextFrame{queue: queue},
		SwipeBack: true,
	})

	c.Push(&Page{Title: "Game"}, navigation.Slide)
	queue.Drain()

	c.DragChanged(navigation.Vector{X: 60})
	c.DragEnded(navigation.Vector{X: 60})
	fmt.Println("after short drag:", c.Depth())

	c.DragChanged(navigation.Vector{X: 140})
	c.DragEnded(navigation.Vector{X: 140})
	fmt.Println("after long drag:", c.Depth())

	// Output:
	// after short drag: 1
	// after long drag: 0
}

// Example_modal presents a sheet and then a full-screen cover over it.
func Example_modal() {
	queue := navigation.NewMainQueue()
	defer queue.Close()

	c := navigation.NewContainer(&Page{Title: "Library"}, navigation.Config{
		Scheduler: nextFrame{queue: queue},
	})

	c.PresentModal(&Page{Title: "Filters"}, navigation.Sheet)
	queue.Drain()
	c.PresentModal(&Page{Title: "Player"}, navigation.FullScreenCover)
	queue.Drain()

	m, style, _ := c.PresentedModal()
	fmt.Println(m.Screen.Title, style)

	c.ModalDismissed()
	queue.Drain()

	m, style, _ = c.PresentedModal()
	fmt.Println(m.Screen.Title, style)

	// Output:
	// Player full-screen-cover
	// Filters sheet
}
