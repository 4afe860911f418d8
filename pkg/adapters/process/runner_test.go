package process_test

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/aretw0/breakpoint"
	"github.com/aretw0/breakpoint/pkg/adapters/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test: the other tests re-execute the test
// binary with this as the entry point to get a child speaking the NDJSON
// yield protocol.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, a := range args {
		if a == "--" {
			args = args[i+1:]
			break
		}
	}

	in := bufio.NewScanner(os.Stdin)
	switch args[0] {
	case "count":
		n, _ := strconv.Atoi(args[1])
		for i := 0; i <= n; i++ {
			fmt.Printf("{\"progress\":%g,\"result\":%d}\n", float64(i)/float64(n), i)
			if !in.Scan() {
				break
			}
		}
	case "plain":
		n, _ := strconv.Atoi(args[1])
		for i := 0; i < n; i++ {
			fmt.Println(i * 10)
			if !in.Scan() {
				break
			}
		}
	case "echo-signal":
		fmt.Println(`"first"`)
		if in.Scan() {
			// The signal line is itself valid JSON; yield it back.
			fmt.Println(in.Text())
			in.Scan()
		}
	case "fail":
		fmt.Println(`{"progress":0,"result":0}`)
		in.Scan()
		os.Exit(3)
	case "garbage":
		fmt.Println("not json at all")
		in.Scan()
	}
	os.Exit(0)
}

func helperArgs(mode string, extra ...string) (string, []string) {
	args := append([]string{"-test.run=TestHelperProcess", "--", mode}, extra...)
	return os.Args[0], args
}

func TestDefinition_TrackedRun(t *testing.T) {
	command, args := helperArgs("count", "4")
	def := process.Definition(command, args, process.WithEnv("GO_WANT_HELPER_PROCESS=1"))

	inst, err := breakpoint.New(breakpoint.WithProgress())
	require.NoError(t, err)

	result, err := inst.Wrap(def)(context.Background())
	require.NoError(t, err)

	// JSON numbers decode as float64.
	assert.Equal(t, 4.0, result)
}

func TestDefinition_PlainRun(t *testing.T) {
	command, args := helperArgs("plain", "3")
	def := process.Definition(command, args, process.WithEnv("GO_WANT_HELPER_PROCESS=1"))

	inst, err := breakpoint.New()
	require.NoError(t, err)

	result, err := inst.Wrap(def)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20.0, result)
}

func TestDefinition_SignalWireFormat(t *testing.T) {
	command, args := helperArgs("echo-signal")
	def := process.Definition(command, args, process.WithEnv("GO_WANT_HELPER_PROCESS=1"))

	seq, err := def()
	require.NoError(t, err)

	ctx := context.Background()
	value, done, err := seq.Resume(ctx, nil)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, "first", value)

	// The multiplier crosses the pipe as a bare JSON number.
	two := 2.0
	value, done, err = seq.Resume(ctx, &two)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, 2.0, value)

	_, done, err = seq.Resume(ctx, nil)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestDefinition_NonZeroExitFailsCall(t *testing.T) {
	command, args := helperArgs("fail")
	def := process.Definition(command, args, process.WithEnv("GO_WANT_HELPER_PROCESS=1"))

	inst, err := breakpoint.New(breakpoint.WithProgress())
	require.NoError(t, err)

	_, err = inst.Wrap(def)(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "process sequence")
}

func TestDefinition_MalformedOutput(t *testing.T) {
	command, args := helperArgs("garbage")
	def := process.Definition(command, args, process.WithEnv("GO_WANT_HELPER_PROCESS=1"))

	seq, err := def()
	require.NoError(t, err)

	_, _, err = seq.Resume(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yield line")
}

func TestDefinition_CallArgsAppended(t *testing.T) {
	// Call arguments become trailing argv entries; the helper reads the last
	// one as its count.
	command, args := helperArgs("plain")
	def := process.Definition(command, args, process.WithEnv("GO_WANT_HELPER_PROCESS=1"))

	inst, err := breakpoint.New()
	require.NoError(t, err)

	result, err := inst.Wrap(def)(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, result)
}
