package playfair_test

import (
	"errors"
	"strings"
	"testing"

	"playfair/internal/domain"
	"playfair/internal/protocol/playfair"
)

func TestDecrypt_Golden(t *testing.T) {
	got, err := playfair.Decrypt("SUPERSPY", "IKEWENENXLNQLPZSLERUMRHEERYBOFNEINCHCV")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if want := "HIPPOPOTOMONSTROSESQUIPPEDALIOPHOBIA"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestDecrypt_KeyWithTrailingRepeat(t *testing.T) {
	// "playfair example" ends in a letter already placed.
	got, err := playfair.Decrypt("playfair example", "BMODZBXDNABEKUDMUIXMMOUVIF")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if want := "HIDETHEGOLDINTHETREESTUMP"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestDecrypt_Empty(t *testing.T) {
	got, err := playfair.Decrypt("", "   ")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != "" {
		t.Fatalf("want empty plaintext, got %q", got)
	}
}

func TestDecrypt_InvalidInput(t *testing.T) {
	if _, err := playfair.Decrypt("key1", "ABCD"); !errors.Is(err, playfair.ErrInvalidCharacter) {
		t.Fatalf("want ErrInvalidCharacter for key, got %v", err)
	}
	if _, err := playfair.Decrypt("key", "AB,CD"); !errors.Is(err, playfair.ErrInvalidCharacter) {
		t.Fatalf("want ErrInvalidCharacter for ciphertext, got %v", err)
	}
}

// encrypt is the forward Playfair transform, used only to check round trips.
func encrypt(t *testing.T, key, message string) string {
	t.Helper()
	grid, coords, err := playfair.BuildGrid(key)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	digrams, err := playfair.Segment(message)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	var b strings.Builder
	for _, d := range digrams {
		p1, _ := coords.Lookup(d.First)
		p2, _ := coords.Lookup(d.Second)
		switch {
		case p1.Row == p2.Row:
			b.WriteByte(grid[p1.Row][(p1.Col+1)%domain.GridSize])
			b.WriteByte(grid[p2.Row][(p2.Col+1)%domain.GridSize])
		case p1.Col == p2.Col:
			b.WriteByte(grid[(p1.Row+1)%domain.GridSize][p1.Col])
			b.WriteByte(grid[(p2.Row+1)%domain.GridSize][p2.Col])
		default:
			b.WriteByte(grid[p1.Row][p2.Col])
			b.WriteByte(grid[p2.Row][p1.Col])
		}
	}
	return b.String()
}

func TestDecrypt_RoundTrip(t *testing.T) {
	cases := []struct{ key, message string }{
		{"SUPERSPY", "attack at dawn"},
		{"SUPERSPY", "meet me by the old oak tree"},
		{"monarchy", "instruments"},
		{"", "the quick brown fog jumps over the lazy dog"},
		{"Jabberwocky", "balloon"},
		{"THE QUICK BROWN FOX", "a bookkeeper carried three coffee mugs"},
	}
	for _, tc := range cases {
		ciphertext := encrypt(t, tc.key, tc.message)
		got, err := playfair.Decrypt(tc.key, ciphertext)
		if err != nil {
			t.Fatalf("Decrypt(%q, %q): %v", tc.key, ciphertext, err)
		}
		want, err := playfair.Sanitize(tc.message)
		if err != nil {
			t.Fatalf("Sanitize: %v", err)
		}
		want = strings.ReplaceAll(want, "X", "")
		if got != want {
			t.Fatalf("key %q: want %q, got %q", tc.key, want, got)
		}
	}
}

func TestDecrypt_StripsPlaintextFiller(t *testing.T) {
	ciphertext := encrypt(t, "SUPERSPY", "TAXI")
	got, err := playfair.Decrypt("SUPERSPY", ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != "TAI" {
		t.Fatalf("want X removed from plaintext, got %q", got)
	}
}
