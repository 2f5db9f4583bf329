package wizard

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/khoahotran/cvos/internal/domain/preview"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/internal/domain/wizard"
)

// Subscriber observes every profile the controller commits.
type Subscriber interface {
	OnProfileChanged(ctx context.Context, p profile.Profile)
}

type SubscriberFunc func(ctx context.Context, p profile.Profile)

func (f SubscriberFunc) OnProfileChanged(ctx context.Context, p profile.Profile) { f(ctx, p) }

// State is a read-only snapshot for views.
type State struct {
	Step          wizard.Step     `json:"step"`
	StepIndex     int             `json:"step_index"`
	Steps         []wizard.Step   `json:"steps"`
	IsFirst       bool            `json:"is_first"`
	IsLast        bool            `json:"is_last"`
	Profile       profile.Profile `json:"profile"`
	SummaryLength int             `json:"summary_length"`
	SummaryBudget int             `json:"summary_budget"`
}

// Controller owns one session's profile and active step. Operations are
// serialized; subscribers run under the lock so that the n-th notification
// always carries the n-th committed profile.
type Controller struct {
	mu          sync.Mutex
	profile     profile.Profile
	nav         wizard.Navigator
	ids         profile.IDGenerator
	subscribers []Subscriber
}

func NewController(initial profile.Profile, ids profile.IDGenerator, subs ...Subscriber) *Controller {
	if ids == nil {
		ids = profile.UUIDGenerator{}
	}
	return &Controller{
		profile:     initial.Normalize().Clone(),
		nav:         wizard.NewNavigator(),
		ids:         ids,
		subscribers: subs,
	}
}

func (c *Controller) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, s)
}

func (c *Controller) Profile() profile.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.Clone()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Step:          c.nav.Current(),
		StepIndex:     c.nav.Index(),
		Steps:         wizard.Steps(),
		IsFirst:       c.nav.IsFirst(),
		IsLast:        c.nav.IsLast(),
		Profile:       c.profile.Clone(),
		SummaryLength: utf8.RuneCountInString(c.profile.Summary),
		SummaryBudget: profile.SummaryBudget,
	}
}

// Preview projects the current profile.
func (c *Controller) Preview() preview.Document {
	return preview.Project(c.Profile())
}

func (c *Controller) Next() wizard.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nav.Next()
	return c.nav.Current()
}

func (c *Controller) Previous() wizard.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nav.Previous()
	return c.nav.Current()
}

// JumpTo reports false for a step id the wizard does not know.
func (c *Controller) JumpTo(s wizard.Step) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nav.JumpTo(s)
}

func (c *Controller) JumpToIndex(i int) wizard.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nav.JumpToIndex(i)
	return c.nav.Current()
}

func (c *Controller) apply(ctx context.Context, op func(profile.Profile) (profile.Profile, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := op(c.profile)
	if err != nil {
		return err
	}
	c.profile = next
	for _, s := range c.subscribers {
		s.OnProfileChanged(ctx, next.Clone())
	}
	return nil
}
