package fail_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-fail/fail"
)

func TestNew_MessageAndNoCause(t *testing.T) {
	t.Parallel()

	f := fail.New("disk full")

	assert.Equal(t, "disk full", f.Error())
	assert.Equal(t, "disk full", f.Message())
	assert.Nil(t, f.Unwrap())
	assert.Nil(t, f.Source())
}

func TestNew_EmptyMessageFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fail.DefaultMessage, fail.New("").Message())
	assert.Equal(t, fail.DefaultMessage, fail.Newf("").Message())
	assert.Equal(t, fail.DefaultMessage, fail.WithCause("", nil).Error())
}

func TestNewf_FormatsMessage(t *testing.T) {
	t.Parallel()

	f := fail.Newf("order %d: %s", 17, "rejected")

	assert.Equal(t, "order 17: rejected", f.Error())
	assert.Nil(t, f.Unwrap())
}

func TestWithCause_OrderAndUnwrap(t *testing.T) {
	t.Parallel()

	inner := fail.New("connection refused")
	outer := fail.WithCause("load profile", inner)

	msg := outer.Error()
	assert.Equal(t, "load profile: connection refused", msg)
	assert.Less(t, strings.Index(msg, "load profile"), strings.Index(msg, "connection refused"))
	assert.Same(t, inner, outer.Unwrap())
	assert.Same(t, inner, outer.Source())
	assert.Equal(t, "load profile", outer.Message())
	assert.True(t, errors.Is(outer, inner))

	assert.Nil(t, fail.WithCause("alone", nil).Unwrap())
}

func TestChain_FiveLevelsRenderInOrder(t *testing.T) {
	t.Parallel()

	f := fail.New("level 5")
	for i := 4; i >= 1; i-- {
		f = fail.WithCause(fmt.Sprintf("level %d", i), f)
	}

	assert.Equal(t, "level 1: level 2: level 3: level 4: level 5", f.Error())

	chain := f.Chain()
	require.Len(t, chain, 5)

	for i, e := range chain {
		var lf *fail.Fail
		require.True(t, errors.As(e, &lf))
		assert.Equal(t, fmt.Sprintf("level %d", i+1), lf.Message())
	}

	want := "level 1\n" +
		"caused by: level 2\n" +
		"  caused by: level 3\n" +
		"    caused by: level 4\n" +
		"      caused by: level 5"
	assert.Equal(t, want, fmt.Sprintf("%+v", f))
}

func TestChain_IncludesForeignCauses(t *testing.T) {
	t.Parallel()

	root := errors.New("EOF")
	mid := fmt.Errorf("read header: %w", root)
	h := fail.Wrap(mid, "parse file")

	var f *fail.Fail
	require.True(t, errors.As(h, &f))

	chain := f.Chain()
	require.Len(t, chain, 3)
	assert.Same(t, f, chain[0])
	assert.Equal(t, mid, chain[1])
	assert.Equal(t, root, chain[2])

	// The foreign error renders its own causes, so %+v stops there.
	assert.Equal(t, "parse file\ncaused by: read header: EOF", fmt.Sprintf("%+v", h))
}

func TestFormat_Verbs(t *testing.T) {
	t.Parallel()

	f := fail.WithCause("outer", fail.New("inner"))

	assert.Equal(t, "outer: inner", fmt.Sprintf("%s", f))
	assert.Equal(t, "outer: inner", fmt.Sprintf("%v", f))
	assert.Equal(t, `"outer: inner"`, fmt.Sprintf("%q", f))
	assert.Equal(t, "outer\ncaused by: inner", fmt.Sprintf("%+v", f))
	assert.Equal(t, "wrapped: outer: inner", fmt.Errorf("wrapped: %w", f).Error())
}

func TestNilReceiverBehaviors(t *testing.T) {
	t.Parallel()

	var f *fail.Fail

	assert.Equal(t, "<nil>", f.Error())
	assert.Equal(t, "<nil>", f.Message())
	assert.Nil(t, f.Unwrap())
	assert.Nil(t, f.Source())
	assert.Nil(t, f.Chain())
	assert.Equal(t, "<nil>", fmt.Sprintf("%+v", f))
}

func TestE_DefaultsAndOptions(t *testing.T) {
	t.Parallel()

	e := fail.E("")
	assert.Equal(t, fail.DefaultMessage, e.Message())
	assert.Nil(t, e.Unwrap())

	inner := fail.New("quota exceeded")
	e = fail.E("upload", fail.WithCauseFail(inner))
	assert.Same(t, inner, e.Unwrap())

	foreign := errors.New("timeout")
	e = fail.E("", fail.WithMessagef("sync %s", "bucket"), fail.WithCauseError(foreign))
	assert.Equal(t, "sync bucket: timeout", e.Error())
	assert.True(t, errors.Is(e, foreign))

	// nil causes are ignored, a Handle is replaced by what it holds
	e = fail.E("x", fail.WithCauseFail(nil), fail.WithCauseError(nil))
	assert.Nil(t, e.Unwrap())

	e = fail.E("x", fail.WithCauseError(fail.From(inner)))
	assert.Same(t, inner, e.Unwrap())
}

// FuzzWithCause checks the single-line rendering for arbitrary messages.
func FuzzWithCause(f *testing.F) {
	f.Add("outer", "inner")
	f.Add("", "")
	f.Add("a: b", "c\nd")
	f.Fuzz(func(t *testing.T, outer, inner string) {
		t.Parallel()

		want := func(s string) string {
			if s == "" {
				return fail.DefaultMessage
			}

			return s
		}

		got := fail.WithCause(outer, fail.New(inner)).Error()
		if got != want(outer)+fail.Delimiter+want(inner) {
			t.Fatalf("Error()=%q outer=%q inner=%q", got, outer, inner)
		}
	})
}

func TestFormat_UnsupportedVerb(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%!d(*fail.Fail=failure)", fmt.Sprintf("%d", fail.New("")))
	assert.Equal(t, "%!x(*fail.Handle=boom)", fmt.Sprintf("%x", fail.FromString("boom")))
}
