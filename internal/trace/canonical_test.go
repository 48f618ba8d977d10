package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_Session(t *testing.T) {
	s := Session{
		ID:      "s-1",
		Backend: "unix",
		Events: []Event{
			{Seq: 1, Op: OpInit},
			{Seq: 2, Op: OpPrint, Message: "core: running\n"},
			{Seq: 3, Op: OpPrint, Message: ""},
			{Seq: 4, Op: OpShutdown},
		},
	}

	got, err := MarshalCanonical(s)
	require.NoError(t, err)

	want := `{"backend":"unix","events":[` +
		`{"op":"init","seq":1},` +
		`{"message":"core: running\n","op":"print","seq":2},` +
		`{"message":"","op":"print","seq":3},` +
		`{"op":"shutdown","seq":4}` +
		`],"id":"s-1"}`
	assert.Equal(t, want, string(got))
}

func TestMarshalCanonical_EmptySession(t *testing.T) {
	got, err := MarshalCanonical(Session{})
	require.NoError(t, err)
	assert.Equal(t, `{"backend":"","events":[],"id":""}`, string(got))
}

func TestMarshalCanonicalString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", `"abc"`},
		{"quote and backslash", `a"b\c`, `"a\"b\\c"`},
		{"html not escaped", "<a>&", `"<a>&"`},
		{"control chars", "\x00\x1f\t", `"\u0000\u001f\t"`},
		{"line separators stay literal", "a\u2028b\u2029", "\"a\u2028b\u2029\""},
		{"nfc normalized", "e\u0301", "\"\u00e9\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(marshalCanonicalString(tt.in)))
		})
	}
}

func TestMarshalCanonical_KeyOrderUsesUTF16(t *testing.T) {
	// U+FF61 sorts before U+1F600 in UTF-8 bytes but after it in UTF-16
	// code units, where U+1F600 is a surrogate pair starting at 0xD83D.
	obj := map[string]any{}
	obj["\uff61"] = 2
	obj["\U0001F600"] = 1

	got, err := marshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001F600\":1,\"\uff61\":2}", string(got))
}

func TestMarshalCanonical_RejectsUnsupported(t *testing.T) {
	_, err := marshalCanonical(nil)
	assert.Error(t, err)

	_, err = marshalCanonical(1.5)
	assert.ErrorContains(t, err, "floats are forbidden")

	_, err = marshalCanonical([]any{struct{}{}})
	assert.ErrorContains(t, err, "array[0]")
}

func TestHash_Deterministic(t *testing.T) {
	s := Session{ID: "s-1", Backend: "stub", Events: []Event{{Seq: 1, Op: OpInit}}}

	h1, err := Hash(s)
	require.NoError(t, err)
	h2, err := Hash(s)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	s.Events[0].Seq = 2
	h3, err := Hash(s)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestHashWithDomain_Separates(t *testing.T) {
	data := []byte(`{}`)
	assert.NotEqual(t, hashWithDomain("a", data), hashWithDomain("b", data))
}
