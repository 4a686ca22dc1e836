package codegen

import "testing"

func TestAddFloatSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "0.f"},
		{"5", "5.f"},
		{"-5", "-5.f"},
		{"-0", "-0.f"},
		{"3.14", "3.14f"},
		{"3.", "3.f"},
		{"123", "123.f"},
		{"0.5", "0.5f"},
		{"3.14f", "3.14f"},
		{"3.14F", "3.14F"},
		{"abc", "abc"},
		{"", ""},
		{"-", "-"},
		{"1.2.3", "1.2.3"},
		{".5", ".5"},
		{"1e5", "1e5"},
		{"1/*2*/", "1/*2*/"},
		{"1 // note", "1 // note"},
		{"VAL_1", "VAL_1"},
	}

	for _, tt := range tests {
		if got := AddFloatSuffix(tt.input); got != tt.expected {
			t.Errorf("AddFloatSuffix(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestAddFloatSuffixIdempotent(t *testing.T) {
	inputs := []string{
		"0", "5", "-5", "3.14", "3.", "abc", "", "1/*2*/", "-0", "100",
		"0.001", "val", "1.2.3", "-", "--1", "2F",
	}
	for _, s := range inputs {
		once := AddFloatSuffix(s)
		twice := AddFloatSuffix(once)
		if once != twice {
			t.Errorf("AddFloatSuffix not idempotent on %q: %q != %q", s, once, twice)
		}
	}
}

func TestSuffixNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1.f"},
		{"{1, 2.5, abc}", "{1.f, 2.5f, abc}"},
		{"1 + 2.", "1.f + 2.f"},
		{"-5", "-5.f"},
		{"val1 * 2", "val1 * 2.f"},
		{"3.14f", "3.14f"},
		{"1 /* 2 */ 3", "1.f /* 2 */ 3.f"},
		{"// 2\n1", "// 2\n1.f"},
		{"", ""},
		{"/* only comment */", "/* only comment */"},
	}

	for _, tt := range tests {
		if got := SuffixNumbers(tt.input); got != tt.expected {
			t.Errorf("SuffixNumbers(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
