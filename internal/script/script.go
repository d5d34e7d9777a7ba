package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Actions understood by Run.
const (
	ActionAddQueue       = "add-queue"
	ActionRemoveQueue    = "remove-queue"
	ActionInsert         = "insert"
	ActionPeek           = "peek"
	ActionDequeue        = "dequeue"
	ActionNames          = "names"
	ActionGetPriority    = "get-priority"
	ActionRemoveBetween  = "remove-between"
	ActionChangePriority = "change-priority"
	ActionClear          = "clear"
	ActionClearAll       = "clear-all"
	ActionStatus         = "status"
	ActionSize           = "size"
)

var (
	ErrUnknownAction = errors.New("script: unknown action")
	ErrMissingField  = errors.New("script: missing field")
	ErrNoSteps       = errors.New("script: no steps")
)

// Script is an ordered list of registry operations.
type Script struct {
	Steps []Step `toml:"step"`
}

// Step is one operation. Which fields are required depends on Action.
type Step struct {
	Action   string `toml:"action"`
	Queue    string `toml:"queue"`
	Element  string `toml:"element"`
	Priority *int   `toml:"priority"`
	Low      *int   `toml:"low"`
	High     *int   `toml:"high"`
}

// LoadFile reads and validates the script at path.
func LoadFile(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load decodes and validates a TOML script. Unknown keys are rejected.
func Load(r io.Reader) (Script, error) {
	var s Script
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Script{}, fmt.Errorf("decode script at %d:%d: %w", row, col, err)
		}
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate checks every step and reports all problems at once.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}

	var errs []error
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err))
		}
	}
	return errors.Join(errs...)
}

func (st Step) validate() error {
	var missing []string
	need := func(ok bool, field string) {
		if !ok {
			missing = append(missing, field)
		}
	}

	switch st.Action {
	case ActionClearAll:
	case ActionAddQueue, ActionRemoveQueue, ActionPeek, ActionDequeue,
		ActionNames, ActionClear, ActionStatus, ActionSize:
		need(st.Queue != "", "queue")
	case ActionInsert, ActionChangePriority:
		need(st.Queue != "", "queue")
		need(st.Element != "", "element")
		need(st.Priority != nil, "priority")
	case ActionGetPriority:
		need(st.Queue != "", "queue")
		need(st.Element != "", "element")
	case ActionRemoveBetween:
		need(st.Queue != "", "queue")
		need(st.Low != nil, "low")
		need(st.High != nil, "high")
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, st.Action)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingField, missing)
	}
	return nil
}
