package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading")
	if s.label != "Loading" {
		t.Error("Spinner label mismatch")
	}
}

func TestSpinner_Methods(t *testing.T) {
	s := NewSpinner("Init")

	s.SetLabel("Loading")
	if s.Label() != "Loading" {
		t.Errorf("Label = %s, want Loading", s.Label())
	}

	// Test View
	view := s.View()
	if view == "" {
		t.Error("View returned empty")
	}

	// Test ViewWithLabel
	view = s.ViewWithLabel()
	if view == "" {
		t.Error("ViewWithLabel returned empty")
	}

	// Test Init
	if s.Init() == nil {
		t.Error("Init should return command")
	}

	// Test Update
	m, cmd := s.Update(spinner.TickMsg{})
	_ = m
	if cmd == nil {
		t.Error("Update should return command for tick")
	}

	// Test Tick
	if s.Tick() == nil {
		t.Error("Tick should return command")
	}
}

func TestRenderSpinnerCentered(t *testing.T) {
	s := NewSpinner("Loading...")
	view := RenderSpinnerCentered(s, 20, 5)
	if view == "" {
		t.Error("RenderSpinnerCentered returned empty")
	}
}

func TestRenderLineChart(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	s := RenderLineChart(data, 20, 5, "Test")
	if s == "" {
		t.Error("RenderLineChart returned empty")
	}
}

func TestRenderLineChartEmpty(t *testing.T) {
	if s := RenderLineChart(nil, 20, 5, ""); s == "" {
		t.Error("empty data should still render a placeholder")
	}
}

func TestRenderBarChart(t *testing.T) {
	values := []float64{10.5, 2.25}
	labels := []string{"alpha", "beta"}
	s := RenderBarChart(values, labels, 60)
	if !strings.Contains(s, "alpha") || !strings.Contains(s, "$10.50") {
		t.Errorf("bar chart missing label or value:\n%s", s)
	}
}

func TestRenderBarChartEmpty(t *testing.T) {
	if s := RenderBarChart(nil, nil, 40); s != "" {
		t.Errorf("empty bar chart should be empty, got %q", s)
	}
}

func TestRenderSparkline(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5}
	s := RenderSparkline(values, 6)
	if s == "" {
		t.Error("RenderSparkline returned empty")
	}
}

func TestCostBarView(t *testing.T) {
	bar := NewCostBar()
	view := bar.View(5.0, 10.0, "my-project", 60)
	if !strings.Contains(view, "$5.00") {
		t.Errorf("cost bar missing amount:\n%s", view)
	}
	if !strings.Contains(view, "my-project") {
		t.Errorf("cost bar missing label:\n%s", view)
	}
}

func TestCostBarZeroTotal(t *testing.T) {
	bar := NewCostBar()
	// Must not divide by zero.
	if view := bar.View(0, 0, "empty", 60); view == "" {
		t.Error("cost bar with zero total returned empty")
	}
}

func TestSimpleCostBar(t *testing.T) {
	s := SimpleCostBar(2.5, 10, "opus", 50)
	if !strings.Contains(s, "$2.50") {
		t.Errorf("simple cost bar missing amount:\n%s", s)
	}
}

func TestRenderGradientBar(t *testing.T) {
	if s := RenderGradientBar(50, 10); s == "" {
		t.Error("RenderGradientBar returned empty")
	}
	if s := RenderGradientBar(50, 0); s != "" {
		t.Error("zero width should render nothing")
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-very-long-project-name", 10, "a-very-lo…"},
	}
	for _, tt := range tests {
		if got := truncateLabel(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncateLabel(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestInterpolateColor(t *testing.T) {
	if c := interpolateColor("#000000", "#ffffff", 0); c != "#000000" {
		t.Errorf("t=0 should give the from color, got %s", c)
	}
	if c := interpolateColor("#000000", "#ffffff", 1); c != "#ffffff" {
		t.Errorf("t=1 should give the to color, got %s", c)
	}
}
