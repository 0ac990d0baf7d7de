package main

import (
	"bytes"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-caster/codec"
)

func runWith(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, bytes.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	out, _, err := runWith(t, []byte("[3, 1, 2, 1]\n"), "--elem", "int", "--target", "sorted-set")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "(int32) 1"), strings.Index(out, "(int32) 2"))
	assert.Less(t, strings.Index(out, "(int32) 2"), strings.Index(out, "(int32) 3"))
}

func TestRunCBORStream(t *testing.T) {
	t.Parallel()

	var stream bytes.Buffer
	for _, item := range [][]string{{"a", "b"}, {"c"}} {
		data, err := codec.MarshalCBOR(item)
		require.NoError(t, err)
		stream.Write(data)
	}

	out, _, err := runWith(t, stream.Bytes(), "-f", "cbor", "--stream", "-e", "string", "-t", "queue")
	require.NoError(t, err)
	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, `"c"`)
}

func TestRunConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("categories: [safe_number]\nlog_level: debug\n"), 0o600))

	input := filepath.Join(dir, "values.json")
	require.NoError(t, os.WriteFile(input, []byte(`[7, 8]`), 0o600))

	out, logs, err := runWith(t, nil, "--config", config, "--input", input, "--target", "slice")
	require.NoError(t, err)
	assert.Contains(t, out, "(int64) 7")
	assert.Contains(t, logs, `msg="built plan"`)

	_, _, err = runWith(t, nil, "--config", config, "--input", input, "--target", "array")
	require.Error(t, err)

	out, logs, err = runWith(t, nil, "--input", input, "--target", "array")
	require.NoError(t, err)
	assert.Contains(t, out, "(int64) 8")
	assert.Empty(t, logs)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--elem", "complex"},
		{"--target", "tree"},
		{"--format", "xml"},
		{"--stream"},
		{"extra"},
		{"--input", "does-not-exist.json"},
	} {
		_, _, err := runWith(t, []byte("[]"), args...)
		assert.Error(t, err, args)
	}
}

func TestUnknownNames(t *testing.T) {
	t.Parallel()

	_, _, err := resolveTarget("lnog", "slice")
	require.EqualError(t, err, `unknown element schema "lnog", did you mean "long"?`)

	_, _, err = resolveTarget("long", "sorted_set")
	require.EqualError(t, err, `unknown target "sorted_set", did you mean "sorted-set"?`)

	_, _, err = resolveTarget("long", "tree")
	require.EqualError(t, err, `unknown target "tree"`)
}

func TestTargets(t *testing.T) {
	t.Parallel()

	for name, e := range elems {
		assert.Equal(t, targetNames(), sortedKeys(e.targets), name)

		for target := range e.targets {
			s, typ, err := resolveTarget(name, target)
			require.NoError(t, err)
			assert.Equal(t, "array<"+e.schema.String()+">", s.String())
			assert.NotEqual(t, reflect.Invalid, typ.Kind())
		}
	}
}

func sortedKeys(m map[string]reflect.Type) []string {
	return slices.Sorted(maps.Keys(m))
}
