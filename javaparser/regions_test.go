package javaparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegions(t *testing.T) {
	regions := Regions("A.java", "int a; // hi\n/* b */ \"s\"", Options{})

	expected := []Region{
		{State: CodeState, Start: Pos{"A.java", 1, 1, 0}, Stop: Pos{"A.java", 1, 8, 7}, Text: "int a; "},
		{State: LineCommentState, Start: Pos{"A.java", 1, 8, 7}, Stop: Pos{"A.java", 2, 1, 13}, Text: "// hi\n"},
		{State: BlockCommentState, Start: Pos{"A.java", 2, 1, 13}, Stop: Pos{"A.java", 2, 8, 20}, Text: "/* b */"},
		{State: CodeState, Start: Pos{"A.java", 2, 8, 20}, Stop: Pos{"A.java", 2, 9, 21}, Text: " "},
		{State: StringLiteralState, Start: Pos{"A.java", 2, 9, 21}, Stop: Pos{"A.java", 2, 12, 24}, Text: `"s"`},
	}
	assert.Equal(t, expected, regions)
}

func TestRegions_Delimiters(t *testing.T) {
	texts := func(regions []Region) (result []string) {
		for _, r := range regions {
			result = append(result, r.State.String()+":"+r.Text)
		}
		return
	}

	t.Run("absorbed closing marker belongs to the comment", func(t *testing.T) {
		regions := Regions("", "/**\n * x\n */\nint y;", Options{})
		assert.Equal(t, []string{"BlockComment:/**\n * x\n */", "Code:\nint y;"}, texts(regions))
	})

	t.Run("empty block comment", func(t *testing.T) {
		regions := Regions("", "a/**/b", Options{})
		assert.Equal(t, []string{"Code:a", "BlockComment:/**/b"}, texts(regions))

		regions = Regions("", "a/**/b", Options{CloseEmptyComments: true})
		assert.Equal(t, []string{"Code:a", "BlockComment:/**/", "Code:b"}, texts(regions))
	})

	t.Run("comment closed by opener absorption", func(t *testing.T) {
		regions := Regions("", "/** */x", Options{})
		assert.Equal(t, []string{"BlockComment:/** */", "Code:x"}, texts(regions))
	})

	t.Run("closed empty string", func(t *testing.T) {
		regions := Regions("", `f("")`, Options{CloseEmptyStrings: true})
		assert.Equal(t, []string{"Code:f(", `StringLiteral:""`, "Code:)"}, texts(regions))
	})

	t.Run("adjacent literals", func(t *testing.T) {
		regions := Regions("", `'a'"b"`, Options{})
		assert.Equal(t, []string{"CharLiteral:'a'", `StringLiteral:"b"`}, texts(regions))
	})

	t.Run("text block", func(t *testing.T) {
		regions := Regions("", "x=\"\"\"\n\"q\"\n\"\"\";", Options{})
		assert.Equal(t, []string{"Code:x=", "TextBlockLiteral:\"\"\"\n\"q\"\n\"\"\"", "Code:;"}, texts(regions))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Regions("", "", Options{}))
	})
}

func TestRegions_CoverInput(t *testing.T) {
	input := "class A {\n  /** doc */\n  char c = '\\''; // x\n  String s = \"a\\\"b\";\n}\n"
	regions := Regions("", input, Options{})
	require.NotEmpty(t, regions)

	joined := ""
	for i, r := range regions {
		if i > 0 {
			assert.Equal(t, regions[i-1].Stop, r.Start)
			assert.NotEqual(t, regions[i-1].State, r.State)
		}
		joined += r.Text
	}
	assert.Equal(t, input, joined)
}

func TestComments(t *testing.T) {
	comments := Comments("", "a // one\nb /* two */ \"/* no */\"", Options{})
	require.Len(t, comments, 2)
	assert.Equal(t, "// one\n", comments[0].Text)
	assert.Equal(t, "/* two */", comments[1].Text)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "TextBlockLiteral", TextBlockLiteralState.String())
	assert.True(t, LineCommentState.IsComment())
	assert.False(t, StringLiteralState.IsComment())
	assert.True(t, CharLiteralState.IsLiteral())
	assert.False(t, CodeState.IsLiteral())

	text, err := BlockCommentState.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "BlockComment", string(text))
}
