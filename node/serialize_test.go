package node

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeScalars(t *testing.T) {
	var a *Arena

	tests := []struct {
		name string
		el   Element
		want string
	}{
		{"null", a.NewNull(), "null"},
		{"true", a.NewBool(true), "true"},
		{"false", a.NewBool(false), "false"},
		{"int", a.NewInt(42), "42"},
		{"negative int", a.NewInt(-7), "-7"},
		{"float", a.NewFloat(75.3), "75.3"},
		{"negative float", a.NewFloat(-0.5), "-0.5"},
		{"string", a.NewString("hi"), `"hi"`},
		{"empty string", a.NewString(""), `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Serialize(tt.el))
		})
	}
}

func TestSerializeFloatAlwaysFractional(t *testing.T) {
	var a *Arena

	// A whole-valued float must not render as a bare integer, or it would
	// come back from a re-parse as an int node.
	require.Equal(t, "2.0", Serialize(a.NewFloat(2)))
	require.Equal(t, "-10.0", Serialize(a.NewFloat(-10)))
	require.Equal(t, "0.0", Serialize(a.NewFloat(0)))
}

func TestSerializeContainers(t *testing.T) {
	var a *Arena

	arr := a.NewArray(a.NewInt(1), a.NewString("two"), a.NewNull())
	require.Equal(t, `[1,"two",null]`, Serialize(arr))

	require.Equal(t, "[]", Serialize(a.NewArray()))
	require.Equal(t, "{}", Serialize(a.NewObject()))

	obj := a.NewObject()
	obj.Insert("k", a.NewBool(true))
	require.Equal(t, `{"k":true}`, Serialize(obj))

	nested := a.NewArray(a.NewArray(a.NewInt(1)), a.NewArray())
	require.Equal(t, "[[1],[]]", Serialize(nested))
}

func TestSerializeEscapes(t *testing.T) {
	var a *Arena

	tests := []struct {
		in   string
		want string
	}{
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"tab\there", `"tab\there"`},
		{"cr\rbs\bff\f", `"cr\rbs\bff\f"`},
		{"ctl\x01\x1f", `"ctl\u0001\u001f"`},
		{"plain text", `"plain text"`},
		{"unicode é世", "\"unicode é世\""}, // non-ASCII passes through raw
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Serialize(a.NewString(tt.in)))
	}
}

func TestSerializeNil(t *testing.T) {
	require.Equal(t, "", Serialize(nil))
	require.Equal(t, "", PrettySerialize(nil, ' '))
}

func TestAppendSerialize(t *testing.T) {
	var a *Arena
	dst := []byte("prefix:")
	dst = AppendSerialize(dst, a.NewInt(5))
	require.Equal(t, "prefix:5", string(dst))

	// A nil element appends nothing.
	require.Equal(t, "prefix:", string(AppendSerialize(dst[:7], nil)))
}

func TestPrettySerializeArray(t *testing.T) {
	var a *Arena
	arr := a.NewArray(a.NewInt(1), a.NewString("x"))

	want := "[\n 1,\n \"x\"\n]"
	require.Equal(t, want, PrettySerialize(arr, ' '))

	wantTab := "[\n\t1,\n\t\"x\"\n]"
	require.Equal(t, wantTab, PrettySerialize(arr, '\t'))
}

func TestPrettySerializeObject(t *testing.T) {
	var a *Arena

	obj := a.NewObject()
	obj.Insert("port", a.NewInt(8080))
	require.Equal(t, "{\n \"port\":8080\n}", PrettySerialize(obj, ' '))

	// A container value starts on its own line below its key.
	outer := a.NewObject()
	inner := a.NewObject()
	inner.Insert("b", a.NewInt(1))
	outer.Insert("a", inner)
	want := "{\n \"a\":\n {\n  \"b\":1\n }\n}"
	require.Equal(t, want, PrettySerialize(outer, ' '))

	withArr := a.NewObject()
	withArr.Insert("xs", a.NewArray(a.NewInt(1), a.NewInt(2)))
	wantArr := "{\n \"xs\":\n [\n  1,\n  2\n ]\n}"
	require.Equal(t, wantArr, PrettySerialize(withArr, ' '))
}

func TestPrettySerializeEmptyContainers(t *testing.T) {
	var a *Arena
	require.Equal(t, "[]", PrettySerialize(a.NewArray(), ' '))
	require.Equal(t, "{}", PrettySerialize(a.NewObject(), ' '))

	obj := a.NewObject()
	obj.Insert("xs", a.NewArray())
	require.Equal(t, "{\n \"xs\":\n []\n}", PrettySerialize(obj, ' '))
}

func TestCloneDeep(t *testing.T) {
	var a *Arena
	root := a.NewObject()
	root.Insert("xs", a.NewArray(a.NewInt(1), a.NewString("two")))
	root.Insert("flag", a.NewBool(true))

	cp := Clone(root, nil)
	require.True(t, root.Equal(cp))

	// Mutating the copy leaves the original untouched.
	cpObj, err := AsObject(cp)
	require.NoError(t, err)
	cpObj.Insert("flag", a.NewBool(false))
	require.False(t, root.Equal(cp))

	flag, err := NewRef(root).Field("flag").Bool()
	require.NoError(t, err)
	require.True(t, flag)

	require.Nil(t, Clone(nil, nil))
}
