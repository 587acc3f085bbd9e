package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/threadlog/core"
)

func TestFileSink_AppendsLines(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenFile(FileConfig{Folder: dir, Filename: "test.log"})
	if err != nil {
		t.Fatal(err)
	}

	s.Write([]byte("prefix: "))
	s.Write([]byte("hello"))
	if err := s.EndLine(); err != nil {
		t.Fatalf("EndLine() error = %v", err)
	}

	// EndLine flushes, so the line is visible before Close
	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "prefix: hello\n" {
		t.Errorf("file content = %q", data)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	snap := s.Stats()
	if snap.Fragments != 2 || snap.Lines != 1 || snap.Bytes != uint64(len("prefix: hello\n")) {
		t.Errorf("unexpected stats: %+v", snap)
	}
}

func TestFileSink_NeverTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")
	if err := os.WriteFile(path, []byte("old line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenFile(FileConfig{Folder: dir, Filename: "test.log"})
	if err != nil {
		t.Fatal(err)
	}
	s.Write([]byte("new line"))
	s.EndLine()
	s.Close()

	data, _ := os.ReadFile(path)
	if string(data) != "old line\nnew line\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestFileSink_CreatesNestedFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	s, err := OpenFile(FileConfig{Folder: dir, Filename: "test.log"})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.Path() != filepath.Join(dir, "test.log") {
		t.Errorf("Path() = %q", s.Path())
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("folder not created: %v", err)
	}
}

func TestFileSink_RelativeFolder(t *testing.T) {
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	s, err := OpenFile(FileConfig{Folder: "logs", Filename: "rel.log"})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	wd, _ := os.Getwd()
	if want := filepath.Join(wd, "logs", "rel.log"); s.Path() != want {
		t.Errorf("Path() = %q, want %q", s.Path(), want)
	}
}

func TestFileSink_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the folder should be
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenFile(FileConfig{Folder: blocker, Filename: "x.log"}); err == nil {
		t.Error("Expected error when folder is a regular file")
	}
	if _, err := OpenFile(FileConfig{Folder: dir}); err == nil {
		t.Error("Expected error for empty filename")
	}
}

func TestFileSink_WriteAfterClose(t *testing.T) {
	s, err := OpenFile(FileConfig{Folder: t.TempDir(), Filename: "test.log"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, err := s.Write([]byte("late")); !errors.Is(err, ErrClosed) {
		t.Errorf("Write after Close error = %v, want ErrClosed", err)
	}
	if err := s.EndLine(); !errors.Is(err, ErrClosed) {
		t.Errorf("EndLine after Close error = %v, want ErrClosed", err)
	}
	if got := s.Stats().Dropped; got != 2 {
		t.Errorf("Dropped = %d, want 2", got)
	}
}

func TestConsole_RoutesErrorLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &out, ErrWriter: &errOut})

	for _, level := range []core.Level{core.DebugLevel, core.InfoLevel, core.MandatoryLevel, core.PlaintextLevel} {
		s := c.For(level)
		s.Write([]byte(level.String()))
		s.EndLine()
	}
	s := c.For(core.ErrorLevel)
	s.Write([]byte("boom"))
	s.EndLine()

	if got, want := out.String(), "DEBUG\nINFO\nMANDATORY\nPLAINTEXT\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "boom\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}

	snap := c.Stats()
	if snap.Lines != 5 || snap.Fragments != 5 {
		t.Errorf("unexpected stats: %+v", snap)
	}
}

func TestConsole_Defaults(t *testing.T) {
	c := NewConsole(ConsoleConfig{})
	if c.out.w != os.Stdout || c.err.w != os.Stderr {
		t.Error("Expected os.Stdout and os.Stderr defaults")
	}
	if c.out.mu == c.err.mu {
		t.Error("Expected separate locks for distinct writers")
	}
	if Stdio() != Stdio() {
		t.Error("Stdio() should return a single instance")
	}
}

func TestConsole_SharedWriterParallel(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf, ErrWriter: &buf})
	if c.out.mu != c.err.mu {
		t.Fatal("Expected a shared lock for a shared writer")
	}

	const goroutines = 8
	const lines = 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			level := core.InfoLevel
			if g%2 == 0 {
				level = core.ErrorLevel
			}
			s := c.For(level)
			for i := 0; i < lines; i++ {
				s.Write([]byte("x"))
				s.EndLine()
			}
		}(g)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != goroutines*lines {
		t.Errorf("Expected %d lines, got %d", goroutines*lines, got)
	}
	if got := c.Stats().Lines; got != goroutines*lines {
		t.Errorf("Lines = %d, want %d", got, goroutines*lines)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConsole_WriteErrorCounted(t *testing.T) {
	c := NewConsole(ConsoleConfig{Writer: failingWriter{}, ErrWriter: failingWriter{}})
	s := c.For(core.InfoLevel)
	if _, err := s.Write([]byte("x")); err == nil {
		t.Error("Expected write error")
	}
	if err := s.EndLine(); err == nil {
		t.Error("Expected EndLine error")
	}
	if got := c.Stats().Dropped; got != 2 {
		t.Errorf("Dropped = %d, want 2", got)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNull(t *testing.T) {
	n := NewNull()
	if _, err := n.Write([]byte("x")); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Write error = %v, want ErrNotOpen", err)
	}
	if err := n.EndLine(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("EndLine error = %v, want ErrNotOpen", err)
	}
	if got := n.Stats().Dropped; got != 2 {
		t.Errorf("Dropped = %d, want 2", got)
	}
	if err := n.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestStats_ResetAndAdd(t *testing.T) {
	s := NewStats()
	s.IncrementFragment(3)
	s.IncrementLine()
	s.IncrementDropped()

	snap := s.GetSnapshot()
	if snap != (Snapshot{Fragments: 1, Lines: 1, Bytes: 4, Dropped: 1}) {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if sum := snap.Add(snap); sum.Bytes != 8 || sum.Dropped != 2 {
		t.Errorf("Add() = %+v", sum)
	}

	s.Reset()
	if s.GetSnapshot() != (Snapshot{}) {
		t.Errorf("Reset() left %+v", s.GetSnapshot())
	}
}
