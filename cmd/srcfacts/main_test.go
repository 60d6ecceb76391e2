package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcml-tools/srcxml"
)

func TestFactsHandler(t *testing.T) {
	const doc = `<unit url="test.cpp">` +
		`<function><type><name>int</name></type> <name>main</name>` +
		`<parameter_list>()</parameter_list>` +
		`<block>{<block_content>` +
		`<decl_stmt><decl><type><name>int</name></type> <name>x</name></decl>;</decl_stmt>` +
		`<return>return <expr><literal type="string">x</literal></expr>;</return>` +
		`<comment type="line">// hi</comment>` +
		`</block_content>}</block></function></unit>`

	h := &factsHandler{}
	p := srcxml.New(strings.NewReader(doc), h)
	require.NoError(t, p.Parse())

	assert.Equal(t, "test.cpp", h.url)
	assert.EqualValues(t, 1, h.unitCount)
	assert.EqualValues(t, 1, h.functionCount)
	assert.EqualValues(t, 1, h.declCount)
	assert.EqualValues(t, 1, h.exprCount)
	assert.EqualValues(t, 1, h.commentCount)
	assert.EqualValues(t, 1, h.returnCount)
	assert.EqualValues(t, 1, h.stringCount)
	assert.EqualValues(t, 1, h.lineCommentCount)
}

func TestFactsHandlerClassWithoutUrl(t *testing.T) {
	h := &factsHandler{}
	p := srcxml.New(strings.NewReader(`<unit><class>foo</class></unit>`), h)
	require.NoError(t, p.Parse())

	assert.Equal(t, "", h.url)
	assert.EqualValues(t, 1, h.classCount)
	assert.EqualValues(t, 0, h.stringCount)
	assert.EqualValues(t, 0, h.lineCommentCount)
}
