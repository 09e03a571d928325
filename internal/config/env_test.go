// SPDX-License-Identifier: MIT
package config

import (
	"testing"
	"time"
)

func TestParseString(t *testing.T) {
	t.Setenv("IDXGW_TEST_STR", "value")
	if got := ParseString("IDXGW_TEST_STR", "fallback"); got != "value" {
		t.Errorf("ParseString = %q, want %q", got, "value")
	}
	if got := ParseString("IDXGW_TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("ParseString = %q, want fallback", got)
	}

	t.Setenv("IDXGW_TEST_STR_EMPTY", "")
	if got := ParseString("IDXGW_TEST_STR_EMPTY", "fallback"); got != "fallback" {
		t.Errorf("ParseString on empty = %q, want fallback", got)
	}
}

func TestParseInt(t *testing.T) {
	t.Setenv("IDXGW_TEST_INT", "42")
	if got := ParseInt("IDXGW_TEST_INT", 7); got != 42 {
		t.Errorf("ParseInt = %d, want 42", got)
	}

	t.Setenv("IDXGW_TEST_INT_BAD", "not-a-number")
	if got := ParseInt("IDXGW_TEST_INT_BAD", 7); got != 7 {
		t.Errorf("ParseInt on garbage = %d, want default 7", got)
	}
}

func TestParseBool(t *testing.T) {
	t.Setenv("IDXGW_TEST_BOOL", "false")
	if got := ParseBool("IDXGW_TEST_BOOL", true); got {
		t.Error("ParseBool = true, want false")
	}

	t.Setenv("IDXGW_TEST_BOOL_BAD", "maybe")
	if got := ParseBool("IDXGW_TEST_BOOL_BAD", true); !got {
		t.Error("ParseBool on garbage = false, want default true")
	}
}

func TestParseDuration(t *testing.T) {
	t.Setenv("IDXGW_TEST_DUR", "1500ms")
	if got := ParseDuration("IDXGW_TEST_DUR", time.Second); got != 1500*time.Millisecond {
		t.Errorf("ParseDuration = %s, want 1.5s", got)
	}

	t.Setenv("IDXGW_TEST_DUR_BAD", "soon")
	if got := ParseDuration("IDXGW_TEST_DUR_BAD", time.Second); got != time.Second {
		t.Errorf("ParseDuration on garbage = %s, want default 1s", got)
	}
}
