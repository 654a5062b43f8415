package playfair

import "playfair/internal/domain"

// Segment sanitizes message and splits it into digrams.
//
// A letter followed by itself is paired with the filler and the repeated
// letter starts the next digram. A trailing unpaired letter is paired with
// the filler. Every returned digram holds two distinct letters.
func Segment(message string) ([]domain.Digram, error) {
	s, err := sanitize(message)
	if err != nil {
		return nil, err
	}
	digrams := make([]domain.Digram, 0, (len(s)+1)/2)
	for i := 0; i < len(s); {
		if i == len(s)-1 || s[i] == s[i+1] {
			digrams = append(digrams, domain.Digram{First: s[i], Second: fillerFor(s[i])})
			i++
			continue
		}
		digrams = append(digrams, domain.Digram{First: s[i], Second: s[i+1]})
		i += 2
	}
	return digrams, nil
}

// fillerFor returns the padding letter for c.
func fillerFor(c byte) byte {
	if c == domain.Filler {
		return domain.AltFiller
	}
	return domain.Filler
}
