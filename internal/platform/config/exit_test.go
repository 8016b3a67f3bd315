package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	prevOut, prevExit := exitOut, exitFunc
	t.Cleanup(func() {
		exitOut = prevOut
		exitFunc = prevExit
	})

	var out bytes.Buffer
	code := -1
	exitOut = &out
	exitFunc = func(c int) { code = c }

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out.String() != "fatal: something broke\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
