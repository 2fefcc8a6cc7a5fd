package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/widgetkit/pkg/scene/memscene"
)

// UpdateEnv is the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "WIDGETKIT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the visible scene flattened in paint order.
type Snapshot struct {
	Nodes []SnapshotNode `json:"nodes"`
}

// SnapshotNode is one visible primitive. IDs count per shape in paint
// order, so they stay stable when unrelated nodes are hidden elsewhere.
type SnapshotNode struct {
	ID     string     `json:"id"`
	Depth  int        `json:"depth"`
	Bounds [4]float64 `json:"bounds"`
	Fill   string     `json:"fill,omitempty"`
	Stroke string     `json:"stroke,omitempty"`
	Text   string     `json:"text,omitempty"`
}

// CaptureSnapshot records every visible primitive of the tester's scene.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	return CaptureScene(t.scene)
}

// CaptureScene records every visible primitive of s.
func CaptureScene(s *memscene.Scene) *Snapshot {
	snap := &Snapshot{}
	counts := make(map[string]int)
	s.Walk(func(n *memscene.Node, depth int) {
		shape := n.Shape().String()
		b := n.Bounds()
		node := SnapshotNode{
			ID:     fmt.Sprintf("%s#%d", shape, counts[shape]),
			Depth:  depth,
			Bounds: [4]float64{round2(b.Min.X), round2(b.Min.Y), round2(b.Dx()), round2(b.Dy())},
			Text:   n.Content(),
		}
		counts[shape]++
		if fill := n.FillColor(); fill.Alpha() > 0 {
			node.Fill = fill.Hex()
		}
		if w, c := n.StrokeStyle(); w > 0 {
			node.Stroke = fmt.Sprintf("%gpx %s", w, c.Hex())
		}
		snap.Nodes = append(snap.Nodes, node)
	})
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When UpdateEnv is set to
// 1, the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got):\n%s\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
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

// Diff returns a go-cmp diff from want to s, or "" when they are equal.
func (s *Snapshot) Diff(want *Snapshot) string {
	return cmp.Diff(want, s)
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

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
