package httpapi

import "testing"

func TestSetMaxBodyBytes(t *testing.T) {
	old := maxBodyBytes
	defer SetMaxBodyBytes(old)

	SetMaxBodyBytes(2048)
	if maxBodyBytes != 2048 {
		t.Fatalf("maxBodyBytes=%d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("zero must restore the default, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(-5)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("negative must restore the default, got %d", maxBodyBytes)
	}
}

func TestSetCORSOptionsCopiesSlices(t *testing.T) {
	origins := []string{"https://example.com"}
	SetCORSOptions(true, origins, nil, nil)
	defer SetCORSOptions(false, nil, nil, nil)

	origins[0] = "mutated"
	if corsAllowedOrigins[0] != "https://example.com" {
		t.Fatalf("origins not copied: %v", corsAllowedOrigins)
	}
	if !corsEnabled {
		t.Fatalf("cors not enabled")
	}
}
