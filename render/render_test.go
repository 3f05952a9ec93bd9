package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drake/insectboard/board"
	"github.com/drake/insectboard/text"
)

// testCell is one entity placement from JSON.
type testCell struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Food   *int `json:"food,omitempty"`
	Insect *struct {
		Color string `json:"color"`
		Kind  string `json:"kind"`
	} `json:"insect,omitempty"`
}

// testCase is a single render scenario from JSON.
type testCase struct {
	Name     string     `json:"name"`
	Size     int        `json:"size"`
	Plain    bool       `json:"plain"`
	Cells    []testCell `json:"cells"`
	Expected []string   `json:"expected"`
}

type testDataFile struct {
	Tests []testCase `json:"tests"`
}

func loadTestData(t *testing.T, filename string) testDataFile {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("Failed to read test data %s: %v", filename, err)
	}

	var testData testDataFile
	if err := json.Unmarshal(data, &testData); err != nil {
		t.Fatalf("Failed to parse test data %s: %v", filename, err)
	}
	return testData
}

func (tc testCase) snapshot() board.Snapshot {
	snap := make(board.Snapshot)
	for _, c := range tc.Cells {
		pos := board.Coord{X: c.X, Y: c.Y}
		switch {
		case c.Food != nil:
			snap[pos] = board.Food(*c.Food)
		case c.Insect != nil:
			snap[pos] = board.NewInsect(board.ParseColor(c.Insect.Color), board.ParseKind(c.Insect.Kind))
		}
	}
	return snap
}

func TestRenderCases(t *testing.T) {
	data := loadTestData(t, "render_tests.json")

	for _, tc := range data.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(Options{Plain: tc.Plain})
			if err := r.Render(&buf, tc.snapshot(), board.Size(tc.Size)); err != nil {
				t.Fatalf("Render: %v", err)
			}

			want := strings.Join(tc.Expected, "\n") + "\n"
			if buf.String() != want {
				t.Errorf("output mismatch\nwant:\n%q\ngot:\n%q", want, buf.String())
			}
		})
	}
}

func TestLetterSize(t *testing.T) {
	tests := []struct {
		name string
		snap board.Snapshot
		size board.Size
		want int
	}{
		{"small board", nil, 3, 3},
		{"nine no food", nil, 9, 3},
		{"nine with food 100", board.Snapshot{{X: 1, Y: 1}: board.Food(100)}, 9, 4},
		{"two digit size", nil, 10, 3},
		{"three digit size", nil, 100, 4},
		{"negative food counts sign", board.Snapshot{{X: 1, Y: 1}: board.Food(-50)}, 3, 4},
		{"insects do not widen", board.Snapshot{{X: 1, Y: 1}: board.NewInsect(board.ColorRed, board.KindAnt)}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LetterSize(tt.snap, tt.size); got != tt.want {
				t.Errorf("LetterSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLetterSizeMonotonic(t *testing.T) {
	prev := 0
	for n := 1; n <= 1200; n++ {
		got := LetterSize(nil, board.Size(n))
		if got < prev {
			t.Fatalf("LetterSize decreased at N=%d: %d < %d", n, got, prev)
		}
		prev = got
	}

	prev = 0
	for v := 0; v <= 100000; v += 37 {
		got := LetterSize(board.Snapshot{{X: 1, Y: 1}: board.Food(v)}, 5)
		if got < prev {
			t.Fatalf("LetterSize decreased at food=%d: %d < %d", v, got, prev)
		}
		prev = got
	}
}

func TestRenderLineShape(t *testing.T) {
	for n := 1; n <= 12; n++ {
		snap := board.Snapshot{
			{X: 1, Y: 1}: board.NewInsect(board.ColorGreen, board.KindSpider),
			{X: n, Y: n}: board.Food(n * 10),
		}

		var buf bytes.Buffer
		if err := Render(&buf, snap, board.Size(n)); err != nil {
			t.Fatalf("N=%d: %v", n, err)
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 1+2*n {
			t.Fatalf("N=%d: expected %d lines, got %d", n, 1+2*n, len(lines))
		}

		width := text.VisibleLen(lines[0])
		for i, line := range lines {
			if got := text.VisibleLen(line); got != width {
				t.Errorf("N=%d line %d: width %d, want %d", n, i, got, width)
			}
			if i > 0 && i%2 == 1 && strings.Trim(line, "-+") != "" {
				t.Errorf("N=%d line %d: expected rule, got %q", n, i, line)
			}
		}
	}
}

func TestRenderANSIPaired(t *testing.T) {
	snap := board.Snapshot{
		{X: 1, Y: 1}: board.NewInsect(board.ColorGreen, board.KindSpider),
		{X: 2, Y: 1}: board.NewInsect(board.ColorBlue, board.KindAnt),
		{X: 2, Y: 2}: board.NewInsect(board.Color(99), board.Kind(99)),
	}

	out, err := New(Options{}).String(snap, 2)
	if err != nil {
		t.Fatal(err)
	}

	if starts, resets := strings.Count(out, ansiBold), strings.Count(out, ansiReset); starts != 3 || resets != 3 {
		t.Fatalf("expected 3 styled cells with 3 resets, got %d/%d", starts, resets)
	}

	// Every styled cell must be closed before the next separator or line end.
	for _, line := range strings.Split(out, "\n") {
		for _, cell := range strings.Split(line, "|") {
			if strings.Contains(cell, ansiBold) && !strings.HasSuffix(cell, ansiReset) {
				t.Errorf("unterminated style in cell %q", cell)
			}
		}
	}

	if !strings.Contains(out, ansiBold+ansiBgGreen+ansiFgBlack+" S "+ansiReset) {
		t.Error("green spider not rendered as bold green S")
	}
	if !strings.Contains(out, ansiBold+ansiBgYellow+ansiFgBlack+" ? "+ansiReset) {
		t.Error("out-of-range insect should fall back to yellow ?")
	}
}

func TestRenderIdempotent(t *testing.T) {
	snap := board.Snapshot{
		{X: 1, Y: 2}: board.Food(3),
		{X: 3, Y: 1}: board.NewInsect(board.ColorRed, board.KindGrasshopper),
		{X: 2, Y: 2}: board.Food(1234),
	}

	var first, second bytes.Buffer
	if err := Render(&first, snap, 4); err != nil {
		t.Fatal(err)
	}
	if err := Render(&second, snap, 4); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("rendering the same snapshot twice produced different output")
	}
	if len(snap) != 3 {
		t.Error("snapshot was mutated")
	}
}

func TestRenderInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	for _, size := range []board.Size{0, -3} {
		if err := Render(&buf, nil, size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an invalid size")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestRenderWriteError(t *testing.T) {
	if err := Render(failingWriter{}, nil, 2); err == nil {
		t.Fatal("expected write error")
	}
}

func TestRenderLegacyKeys(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]board.Entity
		size board.Size
		want []string
	}{
		{
			name: "non-canonical key leaves cell empty",
			keys: map[string]board.Entity{"02 3": board.Food(7)},
			size: 3,
			want: []string{
				"   |1  |2  |3  ",
				"---+---+---+---",
				"1  |   |   |   ",
				"---+---+---+---",
				"2  |   |   |   ",
				"---+---+---+---",
				"3  |   |   |   ",
			},
		},
		{
			name: "food under malformed key still widens columns",
			keys: map[string]board.Entity{"bogus": board.Food(12345), "1 1": board.Food(3)},
			size: 2,
			want: []string{
				"      |1     |2     ",
				"------+------+------",
				"1     |  3   |      ",
				"------+------+------",
				"2     |      |      ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(Options{}).String(board.FromKeys(tt.keys), tt.size)
			if err != nil {
				t.Fatal(err)
			}
			want := strings.Join(tt.want, "\n") + "\n"
			if out != want {
				t.Errorf("output mismatch\nwant:\n%q\ngot:\n%q", want, out)
			}
		})
	}

	if got := LetterSize(board.FromKeys(map[string]board.Entity{"bogus": board.Food(12345)}), 3); got != 6 {
		t.Errorf("LetterSize with malformed-key food = %d, want 6", got)
	}
}

func TestRenderZeroEntityIsEmpty(t *testing.T) {
	out, err := New(Options{}).String(board.Snapshot{{X: 1, Y: 1}: {}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := "   |1  \n-------\n1  |   \n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
