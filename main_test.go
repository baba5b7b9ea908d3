package main

import (
	"bytes"
	"testing"
)

func TestColorize(t *testing.T) {
	gold := "\x1b[38;5;220m"
	reset := "\x1b[0m"

	tests := []struct {
		name           string
		data           []byte
		inputEncoding  string
		outputEncoding string
		expected       string
	}{
		{"UTF8PassThrough", []byte("hi"), "utf8", "utf8", gold + "hi" + reset},
		{"CP437ToUTF8", []byte{0xB1}, "cp437", "utf8", gold + "▒" + reset},
		{"CP437RoundTrip", []byte{0xB1}, "cp437", "cp437", gold + "\xb1" + reset},
		{"UTF8ToCP437", []byte("▒"), "utf8", "cp437", gold + "\xb1" + reset},
		{"CRLFInput", []byte("a\r\nb"), "utf8", "utf8", gold + "a" + reset + "\n" + gold + "b" + reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := colorize(&buf, tt.data, tt.inputEncoding, tt.outputEncoding, gold); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestColorizeUnsupportedOutputEncoding(t *testing.T) {
	var buf bytes.Buffer
	err := colorize(&buf, []byte("hi"), "utf8", "ebcdic", "\x1b[38;5;220m")
	if err == nil {
		t.Fatal("Expected an error for unsupported output encoding")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output on error, got %q", buf.String())
	}
}
