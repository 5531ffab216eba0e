package hash

import "testing"

func TestDigest_Deterministic(t *testing.T) {
	h := New("server-secret")

	first := h.Digest("hunter2")
	second := h.Digest("hunter2")

	if first != second {
		t.Errorf("digest not deterministic: %q vs %q", first, second)
	}
}

func TestDigest_HexEncoded(t *testing.T) {
	h := New("server-secret")

	digest := h.Digest("hunter2")

	// SHA-256 output, hex encoded
	if len(digest) != 64 {
		t.Errorf("digest length = %d, want 64", len(digest))
	}
	for _, c := range digest {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("digest contains non-hex character %q", c)
		}
	}
}

func TestDigest_DependsOnPassword(t *testing.T) {
	h := New("server-secret")

	if h.Digest("hunter2") == h.Digest("hunter3") {
		t.Error("different passwords produced the same digest")
	}
}

func TestDigest_DependsOnSecret(t *testing.T) {
	a := New("secret-a")
	b := New("secret-b")

	if a.Digest("hunter2") == b.Digest("hunter2") {
		t.Error("different secrets produced the same digest")
	}
}
