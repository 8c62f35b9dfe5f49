package memory

import "testing"

func TestAcquireReleaseRoundTrip(t *testing.T) {
	b, err := Acquire(128)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if b.Len() != 128 {
		t.Errorf("Len() = %d, want 128", b.Len())
	}

	bytes := b.Bytes()
	for i := range bytes {
		bytes[i] = byte(i)
	}
	for i, v := range b.Bytes() {
		if v != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, v, byte(i))
		}
	}

	if err := Release(b); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestAcquireZeroSize(t *testing.T) {
	b, err := Acquire(0)
	if err != nil {
		t.Fatalf("Acquire(0): %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if err := Release(b); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestReleaseNil(t *testing.T) {
	if err := Release(nil); err != nil {
		t.Errorf("Release(nil) = %v, want nil", err)
	}
}
