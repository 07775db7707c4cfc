package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInbox(t *testing.T) {
	var b Inbox
	_, ok := b.Last()
	assert.False(t, ok)

	b.Notify(Notice{Text: "one"})
	b.Notify(Notice{Text: "two", Level: LevelError})

	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, "two", last.Text)

	assert.Len(t, b.Drain(), 2)
	assert.Empty(t, b.Drain())
}

func TestNotifierFunc(t *testing.T) {
	var got []string
	n := NotifierFunc(func(x Notice) { got = append(got, x.Text) })
	n.Notify(Notice{Text: "hi"})
	assert.Equal(t, []string{"hi"}, got)
}
