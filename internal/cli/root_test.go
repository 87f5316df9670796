package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/collections/internal/cli"
	"github.com/denismitr/collections/internal/script"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("demo script without tokens", func(t *testing.T) {
		for _, backing := range []string{"list", "hash"} {
			out, _, err := execute(t, "--backing", backing)
			require.NoError(t, err)
			assert.Equal(t, "size: 2\n", out)
		}
	})

	t.Run("membership queries", func(t *testing.T) {
		out, _, err := execute(t, "+a", "+b", "-a", "?a", "?b", "#")
		require.NoError(t, err)
		assert.Equal(t, "member a: false\nmember b: true\nsize: 1\n", out)
	})

	t.Run("script starting with a removal", func(t *testing.T) {
		out, _, err := execute(t, "--", "-5", "#")
		require.NoError(t, err)
		assert.Equal(t, "size: 0\n", out)
	})

	t.Run("json output keeps insertion order", func(t *testing.T) {
		out, _, err := execute(t, "--json", "+c", "+a", "+c", "+b")
		require.NoError(t, err)
		assert.JSONEq(t, `["c","a","b"]`, out)
	})

	t.Run("debug logs go to stderr", func(t *testing.T) {
		_, logs, err := execute(t, "--log-level", "debug", "+x")
		require.NoError(t, err)
		assert.Contains(t, logs, `"op":"+x"`)
		assert.Contains(t, logs, "script done")
	})

	t.Run("unknown backing", func(t *testing.T) {
		_, _, err := execute(t, "--backing", "tree")
		require.Error(t, err)
		assert.True(t, errors.Is(err, cli.ErrUnknownBacking))
	})

	t.Run("bad token", func(t *testing.T) {
		_, _, err := execute(t, "+1", "oops")
		require.Error(t, err)
		assert.True(t, errors.Is(err, script.ErrBadToken))
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud")
		require.Error(t, err)
	})
}
