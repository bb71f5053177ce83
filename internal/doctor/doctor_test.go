package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/koagen/internal/logging"
)

// stubCheck returns a fixed result.
type stubCheck struct {
	name   string
	status Severity
	runs   int
}

func (s *stubCheck) Name() string     { return s.name }
func (s *stubCheck) Category() string { return "test" }
func (s *stubCheck) Run() *CheckResult {
	s.runs++
	return &CheckResult{Name: s.name, Category: "test", Status: s.status}
}

func TestNewRunner(t *testing.T) {
	r := NewRunner()
	require.NotNil(t, r)
	assert.Empty(t, r.checks)
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []Severity
		wantPassed   int
		wantInfo     int
		wantWarnings int
		wantErrors   int
	}{
		{name: "empty runner"},
		{name: "all pass", statuses: []Severity{SeverityPass, SeverityPass}, wantPassed: 2},
		{
			name:         "mixed",
			statuses:     []Severity{SeverityPass, SeverityInfo, SeverityWarning, SeverityError, SeverityWarning},
			wantPassed:   1,
			wantInfo:     1,
			wantWarnings: 2,
			wantErrors:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner()
			for i, s := range tt.statuses {
				r.AddCheck(&stubCheck{name: string(rune('a' + i)), status: s})
			}

			ctx := logging.NewContext(t.Context(), logging.ForTest(t))
			report := r.Run(ctx)

			assert.Len(t, report.Results, len(tt.statuses))
			assert.Equal(t, Summary{tt.wantPassed, tt.wantInfo, tt.wantWarnings, tt.wantErrors}, report.Summary)
			assert.Equal(t, tt.wantErrors > 0, report.HasErrors())
			assert.Equal(t, tt.wantWarnings > 0, report.HasWarnings())
			assert.False(t, report.Timestamp.IsZero())
		})
	}
}

func TestRunner_OrderPreserved(t *testing.T) {
	r := NewRunner()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		r.AddCheck(&stubCheck{name: n})
	}

	report := r.Run(t.Context())
	for i, want := range names {
		assert.Equal(t, want, report.Results[i].Name)
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
		text, err := tt.s.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(text))
	}
}
