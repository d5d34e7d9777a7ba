package script

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/KavinB2004/QueueManager/monitoring"
	"github.com/KavinB2004/QueueManager/priority"
	"github.com/KavinB2004/QueueManager/registry"
	"go.uber.org/zap"
)

var errQueueNotFound = errors.New("queue not found")

// Result is the outcome of one step.
type Result struct {
	Step   int    `json:"step"`
	Action string `json:"action"`
	Queue  string `json:"queue,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// QueueState is the content of one queue after a run.
type QueueState struct {
	Name    string           `json:"name"`
	Entries []priority.Entry `json:"entries"`
}

// Run executes every step against reg. A failing or invalid step is recorded
// in its Result and the run continues with the next step.
func Run(reg *registry.Registry, s Script, logger *zap.Logger) []Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		res := Result{Step: i + 1, Action: step.Action, Queue: step.Queue}
		out, err := apply(reg, step)
		if err != nil {
			res.Error = err.Error()
			logger.Debug("step failed",
				monitoring.Event(monitoring.EventScriptStepFailed),
				zap.Int("step", res.Step),
				zap.String("action", step.Action),
				zap.Error(err))
		} else {
			res.Output = out
		}
		results = append(results, res)
	}
	return results
}

func apply(reg *registry.Registry, st Step) (string, error) {
	if err := st.validate(); err != nil {
		return "", err
	}
	q, _ := reg.Queue(st.Queue)

	switch st.Action {
	case ActionAddQueue:
		if _, err := reg.AddQueue(st.Queue); err != nil {
			return "", err
		}
		return "added", nil
	case ActionRemoveQueue:
		return reg.RemoveQueue(st.Queue).String(), nil
	case ActionClearAll:
		reg.ClearAll()
		return fmt.Sprintf("cleared %d queues", reg.Count()), nil
	case ActionStatus:
		return q.Status().String(), nil
	}

	if q == nil {
		return "", fmt.Errorf("%w: %q", errQueueNotFound, st.Queue)
	}

	switch st.Action {
	case ActionInsert:
		if err := q.Insert(st.Element, *st.Priority); err != nil {
			return "", err
		}
		return "inserted", nil
	case ActionPeek:
		return q.Peek()
	case ActionDequeue:
		return q.Dequeue()
	case ActionNames:
		return fmt.Sprint(q.Names()), nil
	case ActionGetPriority:
		p, ok := q.GetPriority(st.Element)
		if !ok {
			return "", fmt.Errorf("%q: %w", st.Element, priority.ErrNotFound)
		}
		return strconv.Itoa(p), nil
	case ActionRemoveBetween:
		return fmt.Sprintf("removed %d", q.RemoveBetween(*st.Low, *st.High)), nil
	case ActionChangePriority:
		if err := q.ChangePriority(st.Element, *st.Priority); err != nil {
			return "", err
		}
		return "changed", nil
	case ActionClear:
		q.Clear()
		return "cleared", nil
	case ActionSize:
		return strconv.Itoa(q.Len()), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownAction, st.Action)
	}
}

// Snapshot returns the content of every queue in reg, newest queue first.
func Snapshot(reg *registry.Registry) []QueueState {
	names := reg.Names()
	states := make([]QueueState, 0, len(names))
	for _, name := range names {
		q, _ := reg.Queue(name)
		states = append(states, QueueState{Name: name, Entries: q.Entries()})
	}
	return states
}
