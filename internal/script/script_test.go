package script

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/KavinB2004/QueueManager/priority"
	"github.com/KavinB2004/QueueManager/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const scenario = `
[[step]]
action = "add-queue"
queue = "jobs"

[[step]]
action = "insert"
queue = "jobs"
element = "low"
priority = 1

[[step]]
action = "insert"
queue = "jobs"
element = "high"
priority = 10

[[step]]
action = "insert"
queue = "jobs"
element = "mid"
priority = 5

[[step]]
action = "names"
queue = "jobs"

[[step]]
action = "peek"
queue = "jobs"

[[step]]
action = "dequeue"
queue = "jobs"

[[step]]
action = "size"
queue = "jobs"
`

func intp(v int) *int { return &v }

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(scenario))
	require.NoError(t, err)
	require.Len(t, s.Steps, 8)

	assert.Equal(t, Step{Action: ActionInsert, Queue: "jobs", Element: "low", Priority: intp(1)}, s.Steps[1])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "no steps",
			input:   ``,
			wantErr: ErrNoSteps,
		},
		{
			name: "unknown action",
			input: `[[step]]
action = "explode"
queue = "q"`,
			wantErr: ErrUnknownAction,
		},
		{
			name: "missing priority",
			input: `[[step]]
action = "insert"
queue = "q"
element = "e"`,
			wantErr: ErrMissingField,
			wantMsg: "step 1 (insert)",
		},
		{
			name: "missing range bounds",
			input: `[[step]]
action = "remove-between"
queue = "q"
low = 1`,
			wantErr: ErrMissingField,
			wantMsg: "[high]",
		},
		{
			name: "unknown key",
			input: `[[step]]
action = "clear-all"
colour = "red"`,
		},
		{
			name:  "malformed toml",
			input: `[[step]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidate_ReportsEveryStep(t *testing.T) {
	s := Script{Steps: []Step{
		{Action: ActionPeek},
		{Action: ActionClearAll},
		{Action: ActionGetPriority, Queue: "q"},
	}}

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1 (peek)")
	assert.Contains(t, err.Error(), "step 3 (get-priority)")
	assert.NotContains(t, err.Error(), "step 2")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.toml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 8)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRun_Scenario(t *testing.T) {
	s, err := Load(strings.NewReader(scenario))
	require.NoError(t, err)
	reg := registry.New()

	results := Run(reg, s, nil)

	outputs := make([]string, 0, len(results))
	for _, r := range results {
		assert.Empty(t, r.Error, "step %d", r.Step)
		outputs = append(outputs, r.Output)
	}
	assert.Equal(t, []string{
		"added", "inserted", "inserted", "inserted",
		"[high mid low]", "high", "high", "2",
	}, outputs)

	assert.Equal(t, []QueueState{{
		Name:    "jobs",
		Entries: []priority.Entry{{Element: "mid", Priority: 5}, {Element: "low", Priority: 1}},
	}}, Snapshot(reg))
}

func TestRun_Steps(t *testing.T) {
	tests := []struct {
		name       string
		steps      []Step
		wantOutput string
		wantErr    string
	}{
		{
			name:       "remove between",
			steps:      []Step{{Action: ActionRemoveBetween, Queue: "q", Low: intp(2), High: intp(4)}},
			wantOutput: "removed 3",
		},
		{
			name:       "get priority",
			steps:      []Step{{Action: ActionGetPriority, Queue: "q", Element: "e5"}},
			wantOutput: "5",
		},
		{
			name:    "get priority missing",
			steps:   []Step{{Action: ActionGetPriority, Queue: "q", Element: "nope"}},
			wantErr: "not found",
		},
		{
			name:       "change priority",
			steps:      []Step{{Action: ActionChangePriority, Queue: "q", Element: "e1", Priority: intp(9)}},
			wantOutput: "changed",
		},
		{
			name:    "change priority taken",
			steps:   []Step{{Action: ActionChangePriority, Queue: "q", Element: "e1", Priority: intp(5)}},
			wantErr: "priority already queued",
		},
		{
			name:    "duplicate insert",
			steps:   []Step{{Action: ActionInsert, Queue: "q", Element: "x", Priority: intp(3)}},
			wantErr: "priority already queued",
		},
		{
			name:    "duplicate queue",
			steps:   []Step{{Action: ActionAddQueue, Queue: "q"}},
			wantErr: "queue name already registered",
		},
		{
			name:       "status of missing queue",
			steps:      []Step{{Action: ActionStatus, Queue: "missing"}},
			wantOutput: "invalid",
		},
		{
			name:       "status",
			steps:      []Step{{Action: ActionStatus, Queue: "q"}},
			wantOutput: "non-empty",
		},
		{
			name:    "size of missing queue",
			steps:   []Step{{Action: ActionSize, Queue: "missing"}},
			wantErr: "queue not found",
		},
		{
			name:       "remove non-empty queue",
			steps:      []Step{{Action: ActionRemoveQueue, Queue: "q"}},
			wantOutput: "removed non-empty",
		},
		{
			name:       "remove missing queue",
			steps:      []Step{{Action: ActionRemoveQueue, Queue: "missing"}},
			wantOutput: "not found",
		},
		{
			name:       "clear",
			steps:      []Step{{Action: ActionClear, Queue: "q"}, {Action: ActionSize, Queue: "q"}},
			wantOutput: "0",
		},
		{
			name:       "clear all keeps queues",
			steps:      []Step{{Action: ActionClearAll}},
			wantOutput: "cleared 1 queues",
		},
		{
			name:    "dequeue empty",
			steps:   []Step{{Action: ActionClear, Queue: "q"}, {Action: ActionDequeue, Queue: "q"}},
			wantErr: "queue is empty",
		},
		{
			name:    "invalid step",
			steps:   []Step{{Action: ActionInsert, Queue: "q"}},
			wantErr: "missing field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			q, err := reg.AddQueue("q")
			require.NoError(t, err)
			for p := 1; p <= 5; p++ {
				require.NoError(t, q.Insert("e"+strconv.Itoa(p), p))
			}

			results := Run(reg, Script{Steps: tt.steps}, nil)

			last := results[len(results)-1]
			if tt.wantErr != "" {
				assert.Contains(t, last.Error, tt.wantErr)
				assert.Empty(t, last.Output)
				return
			}
			assert.Empty(t, last.Error)
			assert.Equal(t, tt.wantOutput, last.Output)
		})
	}
}

func TestRun_LogsFailedSteps(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := registry.New()

	results := Run(reg, Script{Steps: []Step{
		{Action: ActionPeek, Queue: "missing"},
		{Action: ActionAddQueue, Queue: "ok"},
	}}, zap.New(core))

	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].Error)
	assert.Equal(t, "added", results[1].Output)
	assert.Equal(t, 1, logs.FilterMessage("step failed").Len())
}
