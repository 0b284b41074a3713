package extractor

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	testCases := []struct {
		name        string
		url         string
		expectedID  string
		expectError bool
	}{
		{
			name:       "Standard watch URL",
			url:        "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expectedID: "dQw4w9WgXcQ",
		},
		{
			name:       "Watch URL with extra query parameters",
			url:        "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			expectedID: "dQw4w9WgXcQ",
		},
		{
			name:       "Short youtu.be URL",
			url:        "https://youtu.be/dQw4w9WgXcQ",
			expectedID: "dQw4w9WgXcQ",
		},
		{
			name:       "Shorts URL",
			url:        "https://www.youtube.com/shorts/abc12345678",
			expectedID: "abc12345678",
		},
		{
			name:       "Embed URL",
			url:        "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expectedID: "dQw4w9WgXcQ",
		},
		{
			name:       "Legacy /v/ URL",
			url:        "https://www.youtube.com/v/dQw4w9WgXcQ",
			expectedID: "dQw4w9WgXcQ",
		},
		{
			name:       "ID with underscore and dash",
			url:        "https://www.youtube.com/watch?v=a_b-c_d-e_f",
			expectedID: "a_b-c_d-e_f",
		},
		{
			name:       "Mobile host",
			url:        "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			expectedID: "dQw4w9WgXcQ",
		},
		{
			name:        "Unrelated URL",
			url:         "https://example.com/",
			expectError: true,
		},
		{
			name:        "YouTube channel URL without video",
			url:         "https://www.youtube.com/@somechannel",
			expectError: true,
		},
		{
			name:        "Video ID too short",
			url:         "https://www.youtube.com/watch?v=short",
			expectError: true,
		},
		{
			name:        "Empty string",
			url:         "",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ExtractVideoID(tc.url)

			if tc.expectError {
				if !errors.Is(err, ErrVideoIDNotFound) {
					t.Errorf("Expected ErrVideoIDNotFound, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if id != tc.expectedID {
				t.Errorf("Expected ID %q, got %q", tc.expectedID, id)
			}
		})
	}
}

func TestExtractVideoIDPatternPriority(t *testing.T) {
	// A URL matching both the watch and embed families resolves to the
	// first pattern in the list.
	url := "https://www.youtube.com/watch?v=AAAAAAAAAAA&next=youtube.com/embed/BBBBBBBBBBB"

	id, err := ExtractVideoID(url)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id != "AAAAAAAAAAA" {
		t.Errorf("Expected first pattern family to win, got %q", id)
	}
}
