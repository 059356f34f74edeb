package navigation

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/animation"
)

// TransitionKind enumerates the built-in ways a screen can arrive and leave.
type TransitionKind int

const (
	KindSlide TransitionKind = iota
	KindFade
	KindScale
	KindSlideUp
	KindFullScreenCover
	KindSheet
	KindCustom
)

func (k TransitionKind) String() string {
	switch k {
	case KindSlide:
		return "slide"
	case KindFade:
		return "fade"
	case KindScale:
		return "scale"
	case KindSlideUp:
		return "slide-up"
	case KindFullScreenCover:
		return "full-screen-cover"
	case KindSheet:
		return "sheet"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("TransitionKind(%d)", int(k))
	}
}

// Transition pairs a kind with its insertion and removal effects.
// The zero value is a slide.
type Transition struct {
	Kind      TransitionKind
	insertion animation.Effect
	removal   animation.Effect
}

var (
	Slide           = Transition{Kind: KindSlide}
	Fade            = Transition{Kind: KindFade}
	Scale           = Transition{Kind: KindScale}
	SlideUp         = Transition{Kind: KindSlideUp}
	FullScreenCover = Transition{Kind: KindFullScreenCover}
	Sheet           = Transition{Kind: KindSheet}
)

// Custom builds a transition from caller-supplied effects.
func Custom(insertion, removal animation.Effect) Transition {
	return Transition{Kind: KindCustom, insertion: insertion, removal: removal}
}

// Effects returns the insertion and removal effects for t.
func (t Transition) Effects() (insertion, removal animation.Effect) {
	switch t.Kind {
	case KindFade:
		return animation.Opacity(), animation.Opacity()
	case KindScale:
		return animation.Combined(animation.Scale(0.8), animation.Opacity()),
			animation.Combined(animation.Scale(1.2), animation.Opacity())
	case KindSlideUp:
		return animation.Move(animation.EdgeBottom), animation.Move(animation.EdgeTop)
	case KindFullScreenCover, KindSheet:
		return animation.Move(animation.EdgeBottom), animation.Move(animation.EdgeBottom)
	case KindCustom:
		insertion, removal = t.insertion, t.removal
		if insertion == nil {
			insertion = animation.None()
		}
		if removal == nil {
			removal = animation.None()
		}
		return insertion, removal
	default:
		return animation.Move(animation.EdgeTrailing), animation.Move(animation.EdgeLeading)
	}
}

// Equal compares kinds only, so every custom transition equals every other.
func (t Transition) Equal(other Transition) bool {
	return t.Kind == other.Kind
}

// IsModal reports whether t presents on a modal surface.
func (t Transition) IsModal() bool {
	return t.Kind == KindFullScreenCover || t.Kind == KindSheet
}

func (t Transition) String() string {
	return t.Kind.String()
}

// ParseTransition resolves a built-in transition by name.
// Custom transitions carry effects and cannot be parsed.
func ParseTransition(name string) (Transition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "slide":
		return Slide, nil
	case "fade":
		return Fade, nil
	case "scale":
		return Scale, nil
	case "slide-up", "slideup":
		return SlideUp, nil
	case "full-screen-cover", "fullscreencover", "cover":
		return FullScreenCover, nil
	case "sheet":
		return Sheet, nil
	default:
		return Transition{}, fmt.Errorf("navigation: unknown transition %q", name)
	}
}
