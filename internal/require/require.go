package require

import (
	"testing"

	"github.com/raniellyferreira/resp2/internal/assert"
)

func ErrorIs(t testing.TB, want error, err error) {
	t.Helper()

	if !assert.ErrorIs(t, want, err) {
		t.FailNow()
	}
}

func NoError(t testing.TB, err error) {
	t.Helper()

	if !assert.NoError(t, err) {
		t.FailNow()
	}
}

func WantError(t testing.TB, want bool, err error) {
	t.Helper()

	if !assert.WantError(t, want, err) {
		t.FailNow()
	}
}
