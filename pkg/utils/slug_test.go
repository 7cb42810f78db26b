package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My Retreat!! 2024", "my-retreat-2024"},
		{"Bali   Bliss", "bali-bliss"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"already-slugged", "already-slugged"},
		{"Under_scores_too", "under-scores-too"},
		{"Señor's Retreat!", "seors-retreat"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.title); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
