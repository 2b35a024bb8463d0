package security

import (
	"strings"
	"testing"
)

func TestNewSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{
			name:    "negative length",
			length:  -1,
			wantErr: true,
		},
		{
			name:    "zero length",
			length:  0,
			wantErr: true,
		},
		{
			name:   "typical signing key",
			length: 48,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewSecret(test.length)
			if test.wantErr {
				if err == nil {
					t.Fatalf("NewSecret(%d) expected error, got nil", test.length)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewSecret(%d) returned error: %v", test.length, err)
			}
			if len(got) != test.length {
				t.Fatalf("NewSecret(%d) len = %d, want %d", test.length, len(got), test.length)
			}
			for _, char := range got {
				if !strings.ContainsRune(secretAlphabet, char) {
					t.Fatalf("NewSecret(%d) produced char %q outside alphabet", test.length, char)
				}
			}
		})
	}
}

func TestNewSecretIsNotConstant(t *testing.T) {
	t.Parallel()

	first, err := NewSecret(32)
	if err != nil {
		t.Fatalf("NewSecret returned error: %v", err)
	}
	second, err := NewSecret(32)
	if err != nil {
		t.Fatalf("NewSecret returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two generated secrets are identical: %q", first)
	}
}
