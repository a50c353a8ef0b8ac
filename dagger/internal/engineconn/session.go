package engineconn

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

const spawnAttempts = 10

// StartSession spawns `<bin> session` and waits for it to report its connect
// params. The session ends when the returned closer is closed.
func StartSession(ctx context.Context, cfg *Config, bin string) (ConnectParams, io.Closer, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.logger()

	args := []string{"session"}
	if cfg.Workdir != "" {
		args = append(args, "--workdir", cfg.Workdir)
	}
	if cfg.ConfigPath != "" {
		args = append(args, "--project", cfg.ConfigPath)
	}

	var (
		proc   *exec.Cmd
		stdout io.ReadCloser
		stdin  io.WriteCloser
	)
	// A freshly downloaded binary may still be open for writing in a forked
	// child (golang/go#22315), which makes exec fail with ETXTBSY for a short
	// while.
	for i := 0; i < spawnAttempts; i++ {
		proc = exec.Command(bin, args...)
		proc.Env = os.Environ()
		proc.Stderr = cfg.LogOutput

		var err error
		stdout, err = proc.StdoutPipe()
		if err != nil {
			return ConnectParams{}, nil, err
		}
		// the session shuts down when its stdin is closed
		stdin, err = proc.StdinPipe()
		if err != nil {
			stdout.Close()
			return ConnectParams{}, nil, err
		}

		err = proc.Start()
		if err == nil {
			break
		}
		stdout.Close()
		stdin.Close()
		proc = nil
		if !strings.Contains(err.Error(), "text file busy") {
			return ConnectParams{}, nil, fmt.Errorf("start engine session: %w", err)
		}
		logger.Debug("engine session binary busy, retrying", "bin", bin, "attempt", i+1)
		select {
		case <-time.After(100 * time.Millisecond):
		case <-ctx.Done():
			return ConnectParams{}, nil, ctx.Err()
		}
	}
	if proc == nil {
		return ConnectParams{}, nil, fmt.Errorf("start engine session: %s stayed busy", bin)
	}
	sess := &session{proc: proc, stdin: stdin}
	logger.Debug("started engine session", "bin", bin, "pid", proc.Process.Pid)

	type result struct {
		params ConnectParams
		err    error
	}
	resultCh := make(chan result, 1)
	go func() {
		// only the first line is read; later output must not block the session
		defer stdout.Close()
		line, err := bufio.NewReader(stdout).ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			resultCh <- result{err: fmt.Errorf("read connect params: %w", err)}
			return
		}
		var params ConnectParams
		if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &params); err != nil {
			resultCh <- result{err: fmt.Errorf("parse connect params %q: %w", strings.TrimSpace(line), err)}
			return
		}
		if params.Port == 0 || params.SessionToken == "" {
			resultCh <- result{err: fmt.Errorf("incomplete connect params %q", strings.TrimSpace(line))}
			return
		}
		resultCh <- result{params: params}
	}()

	timer := time.NewTimer(cfg.timeout())
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			sess.kill()
			return ConnectParams{}, nil, res.err
		}
		return res.params, sess, nil
	case <-timer.C:
		sess.kill()
		return ConnectParams{}, nil, fmt.Errorf("engine session did not start within %s", cfg.timeout())
	case <-ctx.Done():
		sess.kill()
		return ConnectParams{}, nil, ctx.Err()
	}
}

type session struct {
	proc  *exec.Cmd
	stdin io.Closer

	once sync.Once
	err  error
}

// Close ends the session and waits for the process to exit.
func (s *session) Close() error {
	s.once.Do(func() {
		if err := s.stdin.Close(); err != nil {
			s.err = err
		}
		if err := s.proc.Wait(); err != nil && s.err == nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				s.err = err
			}
		}
	})
	return s.err
}

func (s *session) kill() {
	s.once.Do(func() {
		s.stdin.Close()
		_ = s.proc.Process.Kill()
		_ = s.proc.Wait()
	})
}
