// Package proctest re-executes the running test binary as a server process,
// so a cmd package can check what its main does at startup and on exit.
//
// The cmd package opts in from TestMain:
//
//	func TestMain(m *testing.M) {
//		if proctest.IsChild() {
//			main()
//			return
//		}
//		os.Exit(m.Run())
//	}
package proctest

import (
	"bytes"
	"errors"
	"net"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

const envRunMain = "GREETER_RUN_MAIN"

const waitTimeout = 10 * time.Second

// IsChild reports whether this process was started by Exit or Serve.
func IsChild() bool {
	return os.Getenv(envRunMain) == "1"
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type Process struct {
	cmd      *exec.Cmd
	out      *syncBuffer
	done     chan error
	stopOnce sync.Once
}

func start(t testing.TB, port int) *Process {
	t.Helper()

	p := &Process{
		cmd:  exec.Command(os.Args[0]),
		out:  &syncBuffer{},
		done: make(chan error, 1),
	}
	p.cmd.Env = append(os.Environ(), envRunMain+"=1", "PORT="+strconv.Itoa(port))
	p.cmd.Stdout = p.out
	p.cmd.Stderr = p.out

	if err := p.cmd.Start(); err != nil {
		t.Fatalf("start server process: %v", err)
	}
	go func() { p.done <- p.cmd.Wait() }()
	return p
}

// Exit runs the server on port and waits for it to terminate by itself.
// It returns the exit code and everything the process wrote.
func Exit(t testing.TB, port int) (int, string) {
	t.Helper()

	p := start(t, port)
	select {
	case err := <-p.done:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), p.out.String()
		}
		if err != nil {
			t.Fatalf("wait for server process: %v", err)
		}
		return 0, p.out.String()
	case <-time.After(waitTimeout):
		_ = p.cmd.Process.Kill()
		<-p.done
		t.Fatalf("server on port %d kept running; output:\n%s", port, p.out.String())
		return 0, ""
	}
}

// Serve runs the server on port and returns once it has printed its
// listening line. The process is killed when the test ends.
func Serve(t testing.TB, port int) *Process {
	t.Helper()

	p := start(t, port)
	t.Cleanup(func() { p.Stop() })

	deadline := time.After(waitTimeout)
	for !strings.Contains(p.out.String(), "listening on") {
		select {
		case err := <-p.done:
			p.done <- err
			t.Fatalf("server exited early (%v); output:\n%s", err, p.out.String())
		case <-deadline:
			t.Fatalf("server never reported listening; output:\n%s", p.out.String())
		case <-time.After(20 * time.Millisecond):
		}
	}
	return p
}

// Stop kills the process and returns its output. Safe to call twice.
func (p *Process) Stop() string {
	p.stopOnce.Do(func() {
		_ = p.cmd.Process.Kill()
		<-p.done
	})
	return p.out.String()
}

// FreePort returns a TCP port that was unused a moment ago.
func FreePort(t testing.TB) int {
	t.Helper()

	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
