package state

import (
	"context"

	"github.com/goliatone/go-state/pkg/activity"
)

// WithHooks attaches activity hooks to the container. Hooks are cloned and
// nil entries dropped. Offer, Clear and tag mutations notify every hook;
// hook failures never abort the mutation that produced them.
func WithHooks(hooks activity.Hooks) ContainerOption {
	normalized := cloneHooks(hooks)
	return func(cfg *containerConfig) {
		cfg.hooks = normalized
	}
}

// Hooks returns a cloned slice of the hooks configured on the container.
func (c *Container) Hooks() activity.Hooks {
	if c == nil {
		return nil
	}
	return cloneHooks(c.hooks)
}

func (c *Container) emit(event activity.Event) {
	if len(c.hooks) == 0 {
		return
	}
	_ = c.hooks.Notify(context.Background(), event)
}

func cloneHooks(hooks activity.Hooks) activity.Hooks {
	if len(hooks) == 0 {
		return nil
	}
	normalized := make([]activity.ActivityHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		normalized = append(normalized, hook)
	}
	if len(normalized) == 0 {
		return nil
	}
	return activity.Hooks(normalized)
}
