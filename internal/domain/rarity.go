package domain

import (
	"fmt"
	"strings"
)

// Rarity is ordered: Common < Uncommon < Rare < Legendary.
// The zero value means "not set".
type Rarity int

const (
	RarityUnknown Rarity = iota
	Common
	Uncommon
	Rare
	Legendary
)

var rarityNames = map[Rarity]string{
	Common:    "Common",
	Uncommon:  "Uncommon",
	Rare:      "Rare",
	Legendary: "Legendary",
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Rank is the ordinal used for minRarity comparisons.
func (r Rarity) Rank() int { return int(r) }

// ParseRarity is case-insensitive.
func ParseRarity(s string) (Rarity, error) {
	for r, name := range rarityNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return RarityUnknown, fmt.Errorf("%w: %q", ErrInvalidRarity, s)
}

func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(b []byte) error {
	parsed, err := ParseRarity(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
