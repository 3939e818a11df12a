package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/lox/lang/diag"
)

func TestErrorFormat(t *testing.T) {
	e := diag.Error{Line: 3, Origin: " at 'x'", Msg: "Expect expression."}
	assert.Equal(t, "[line 3] Error at 'x': Expect expression.", e.Error())

	e2 := diag.Error{Line: 1, Msg: "Unexpected character."}
	assert.Equal(t, "[line 1] Error: Unexpected character.", e2.Error())
}

func TestListAccumulatesAndSorts(t *testing.T) {
	var l diag.List
	assert.False(t, l.HasErrors())

	l.Add(5, "", "second")
	l.Add(1, "", "first")
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.HasErrors())

	l.Sort()
	errs := l.Errs()
	assert.Equal(t, 1, errs[0].Line)
	assert.Equal(t, 5, errs[1].Line)
}

func TestListErr(t *testing.T) {
	var empty diag.List
	assert.Nil(t, empty.Err())

	var l diag.List
	l.Add(1, "", "boom")
	assert.NotNil(t, l.Err())
	assert.Equal(t, "[line 1] Error: boom", l.Error())
}
