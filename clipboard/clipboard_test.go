package clipboard

import (
	"errors"
	"os/exec"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"
)

type fakeRun struct {
	cmd   Command
	stdin string
	calls int
	err   error
}

func (f *fakeRun) run(c Command, stdin string) error {
	f.calls++
	f.cmd = c
	f.stdin = stdin
	return f.err
}

func onPath(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + n, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func shell(t *testing.T, script string) *System {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	return &System{Commands: func(string) []Command {
		return []Command{{Name: "sh", Args: []string{"-c", script}}}
	}}
}

func TestDocument(t *testing.T) {
	doc := Document("<i>x</i>")
	for _, want := range []string{"charset=utf-8", "<i>x</i>"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("Document: got %q, want it to contain %q", doc, want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	got := StripHTML(Document("Smith &amp; Co. <i>Title</i>."))
	if want := "Smith & Co. Title."; got != want {
		t.Fatalf("StripHTML: got %q, want %q", got, want)
	}
}

func TestSystem_Store(t *testing.T) {
	cases := []struct {
		name      string
		mime      string
		path      []string
		wantCmd   string
		wantPlain string
	}{
		{name: "html via xclip", mime: MIMEHTML, path: []string{"xclip"}, wantCmd: "xclip"},
		{name: "html prefers wl-copy", mime: MIMEHTML, path: []string{"xclip", "wl-copy"}, wantCmd: "wl-copy"},
		{name: "html falls back to text", mime: MIMEHTML, wantPlain: "A Title."},
		{name: "plain skips commands", mime: MIMEPlain, path: []string{"xclip"}, wantPlain: "A <i>Title</i>."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fr := &fakeRun{}
			var written []string
			s := &System{
				lookPath: onPath(tc.path...),
				run:      fr.run,
				writeAll: func(text string) error { written = append(written, text); return nil },
			}

			if err := s.Store(tc.mime, "A <i>Title</i>."); err != nil {
				t.Fatalf("Store: %v", err)
			}

			if tc.wantCmd != "" {
				if fr.calls != 1 || fr.cmd.Name != tc.wantCmd {
					t.Fatalf("command: got %q x%d, want %q x1", fr.cmd.Name, fr.calls, tc.wantCmd)
				}
				if !slices.Contains(fr.cmd.Args, tc.mime) {
					t.Fatalf("args: got %v, want them to name %q", fr.cmd.Args, tc.mime)
				}
				if fr.stdin != "A <i>Title</i>." {
					t.Fatalf("stdin: got %q", fr.stdin)
				}
				if len(written) != 0 {
					t.Fatalf("text fallback used: %v", written)
				}
				return
			}
			if fr.calls != 0 {
				t.Fatalf("command calls: got %d, want 0", fr.calls)
			}
			if want := []string{tc.wantPlain}; !reflect.DeepEqual(written, want) {
				t.Fatalf("written: got %q, want %q", written, want)
			}
		})
	}
}

func TestSystem_StorePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	s := &System{lookPath: onPath("xclip"), run: (&fakeRun{err: boom}).run}
	err := s.Store(MIMEHTML, "x")
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "xclip") {
		t.Fatalf("command error: got %v, want boom naming xclip", err)
	}

	s = &System{lookPath: onPath(), writeAll: func(string) error { return boom }}
	if err := s.Store(MIMEPlain, "x"); !errors.Is(err, boom) {
		t.Fatalf("text error: got %v, want boom", err)
	}
}

func TestSystem_StoreReturnsWhenCommandLeavesChildRunning(t *testing.T) {
	s := shell(t, "cat >/dev/null; (sleep 3) &")

	start := time.Now()
	err := s.Store(MIMEHTML, "<i>x</i>")
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Store: got %v, want nil", err)
	}
	if elapsed >= 2*time.Second {
		t.Fatalf("Store blocked for %v on the background child", elapsed)
	}
}

func TestSystem_StoreReportsCommandStderr(t *testing.T) {
	s := shell(t, "cat >/dev/null; echo no display >&2; exit 1")

	err := s.Store(MIMEHTML, "<i>x</i>")
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("Store: got %v, want an error carrying stderr", err)
	}
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	if _, ok := m.Last(); ok {
		t.Fatal("Last on empty memory: got ok")
	}

	if err := m.Store(MIMEHTML, "a"); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := m.Store(MIMEPlain, "b"); err != nil {
		t.Fatalf("Store: %v", err)
	}
	last, ok := m.Last()
	if want := (Entry{MIME: MIMEPlain, Content: "b"}); !ok || last != want {
		t.Fatalf("Last: got %+v, %v, want %+v", last, ok, want)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(m.Entries))
	}

	m.Err = errors.New("unavailable")
	if err := m.Store(MIMEPlain, "c"); err == nil {
		t.Fatal("Store with Err set: got nil error")
	}
	if len(m.Entries) != 2 {
		t.Fatalf("entries after failure: got %d, want 2", len(m.Entries))
	}
}
