package execution

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// helperEnv switches the test binary into a fake subject. The tests invoke
// os.Args[0] as the converter, so no external program is needed.
const helperEnv = "MDHARNESS_HELPER_SUBJECT"

func TestMain(m *testing.M) {
	if mode := os.Getenv(helperEnv); mode != "" {
		os.Exit(runHelperSubject(mode))
	}
	os.Exit(m.Run())
}

func runHelperSubject(mode string) int {
	switch mode {
	case "echo":
		if _, err := io.Copy(os.Stdout, os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		return 0
	case "fail":
		io.Copy(io.Discard, os.Stdin)
		fmt.Fprint(os.Stdout, "<p>partial</p>")
		fmt.Fprint(os.Stderr, "boom")
		return 3
	case "ignore-stdin":
		fmt.Fprint(os.Stdout, "<p>ok</p>")
		return 0
	case "args":
		io.Copy(io.Discard, os.Stdin)
		fmt.Fprint(os.Stdout, strings.Join(os.Args[1:], " "))
		return 0
	case "invalid-utf8":
		io.Copy(io.Discard, os.Stdin)
		os.Stdout.Write([]byte("abc\xffde\x00"))
		return 0
	case "hang":
		time.Sleep(time.Minute)
		return 0
	case "wrapper":
		// A wrapper script: the real work runs in a grandchild sharing our pipes
		io.Copy(io.Discard, os.Stdin)
		child := exec.Command(os.Args[0])
		child.Env = append(os.Environ(), helperEnv+"=hang")
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		if err := child.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	fmt.Fprintf(os.Stderr, "unknown helper mode %q", mode)
	return 2
}

// helperSubject configures the fake subject for the current test
func helperSubject(t *testing.T, mode string) string {
	t.Helper()
	t.Setenv(helperEnv, mode)
	return os.Args[0]
}
