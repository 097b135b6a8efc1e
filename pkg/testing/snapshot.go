package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/switchkit/pkg/view"
)

// UpdateSnapshotsEnv is the environment variable that makes MatchesFile
// rewrite golden files instead of comparing.
const UpdateSnapshotsEnv = "SWITCHKIT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the view tree structure and display operations.
type Snapshot struct {
	ViewTree   *ViewNode `json:"viewTree"`
	DisplayOps []string  `json:"displayOps,omitempty"`
	Texts      []string  `json:"texts,omitempty"`
}

// ViewNode represents a node in the serialized view tree.
type ViewNode struct {
	Name       string         `json:"name"`
	Frame      [4]float64     `json:"frame"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*ViewNode    `json:"children,omitempty"`
}

// CaptureSnapshot captures the mounted view tree and its paint operations.
func (t *SwitchTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.root == nil {
		return snap
	}
	snap.ViewTree = CaptureView(t.root)
	dl := t.Record()
	snap.DisplayOps = dl.OpNames()
	snap.Texts = dl.Texts()
	return snap
}

// CaptureView serializes v and its subtree. Only properties that differ
// from a fresh view are recorded.
func CaptureView(v *view.View) *ViewNode {
	f := v.Frame()
	node := &ViewNode{
		Name:  v.Name,
		Frame: [4]float64{round2(f.Left), round2(f.Top), round2(f.Width()), round2(f.Height())},
	}
	if props := captureProperties(v); len(props) > 0 {
		node.Properties = props
	}
	for _, child := range v.Subviews() {
		node.Children = append(node.Children, CaptureView(child))
	}
	return node
}

func captureProperties(v *view.View) map[string]any {
	props := make(map[string]any)
	if v.BackgroundColor != 0 {
		props["background"] = v.BackgroundColor.String()
	}
	if v.CornerRadius != 0 {
		props["cornerRadius"] = round2(v.CornerRadius)
	}
	if v.Alpha != 1 {
		props["alpha"] = round2(v.Alpha)
	}
	if v.Hidden {
		props["hidden"] = true
	}
	if v.ClipsToBounds {
		props["clips"] = true
	}
	if v.Shadow.IsVisible() {
		props["shadow"] = fmt.Sprintf("%s %.2f,%.2f r%.2f o%.2f",
			v.Shadow.Color, v.Shadow.Offset.X, v.Shadow.Offset.Y, v.Shadow.Radius, v.Shadow.Opacity)
	}
	if v.Border.IsVisible() {
		props["border"] = fmt.Sprintf("%s w%.2f", v.Border.Color, v.Border.Width)
	}
	if v.Text != "" {
		props["text"] = v.Text
	}
	if v.Image != nil {
		b := v.Image.Bounds()
		props["image"] = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
	}
	return props
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When the update variable
// is set to 1, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff lists the lines that differ, position by position.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
