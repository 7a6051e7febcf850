package activity

import (
	"strings"
	"time"
)

// EventInput describes the common fields for state tree lifecycle events.
type EventInput struct {
	ObjectID   string
	KeyID      string
	Source     string
	Tags       map[string]string
	Metadata   map[string]any
	OldValue   any
	NewValue   any
	OccurredAt time.Time
}

// BuildStateOfferedEvent constructs a normalized event for a state being
// offered into a container.
func BuildStateOfferedEvent(input EventInput) Event {
	return buildEvent("state.offered", "state", input)
}

// BuildContainerClearedEvent constructs a normalized event for a container
// detaching all of its children.
func BuildContainerClearedEvent(input EventInput) Event {
	return buildEvent("container.cleared", "container", input)
}

// BuildTagsUpdatedEvent constructs a normalized event for a container tag
// mutation.
func BuildTagsUpdatedEvent(input EventInput) Event {
	return buildEvent("container.tags.updated", "container", input)
}

func buildEvent(verb, objectType string, input EventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.KeyID != "" {
		metadata = ensureMetadata(metadata)
		metadata["key_id"] = input.KeyID
	}
	if input.OldValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["old_value"] = input.OldValue
	}
	if input.NewValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["new_value"] = input.NewValue
	}

	objectID := strings.TrimSpace(input.ObjectID)
	if objectID == "" {
		objectID = strings.TrimSpace(input.KeyID)
	}
	if objectID == "" {
		objectID = objectType
	}

	return Event{
		Verb:       verb,
		ObjectType: objectType,
		ObjectID:   objectID,
		Source:     strings.TrimSpace(input.Source),
		Tags:       cloneTags(input.Tags),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
