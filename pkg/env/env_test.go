package env

import "testing"

func TestStringVariable(t *testing.T) {
	t.Setenv("AOTD_TEST_STRING", "value")
	if got := StringVariable("AOTD_TEST_STRING", "default"); got != "value" {
		t.Errorf("StringVariable() = %q, want %q", got, "value")
	}
	if got := StringVariable("AOTD_TEST_UNSET", "default"); got != "default" {
		t.Errorf("StringVariable() = %q, want %q", got, "default")
	}
}

func TestIntVariable(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 4},
		{"valid", "7", 7},
		{"zero", "0", 0},
		{"negative", "-1", 4},
		{"garbage", "abc", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AOTD_TEST_INT", tt.value)
			if got := IntVariable("AOTD_TEST_INT", 4); got != tt.want {
				t.Errorf("IntVariable(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
