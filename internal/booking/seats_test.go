package booking

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionByID(t *testing.T) {
	s, ok := SectionByID("vip-central")
	assert.True(t, ok)
	assert.Equal(t, "VIP Central", s.Name)
	assert.Equal(t, 500.0, s.Price)

	_, ok = SectionByID("pelouse")
	assert.False(t, ok)
}

func TestGenerateSeats(t *testing.T) {
	section, _ := SectionByID("tribune-nord")
	rng := rand.New(rand.NewSource(1))

	seats := GenerateSeats(section, 4, rng)
	assert.Len(t, seats, 4)
	for _, label := range seats {
		assert.True(t, strings.HasPrefix(label, "T"), label)
	}

	assert.Nil(t, GenerateSeats(section, 0, rng))
}

func TestCompressSeatLabels(t *testing.T) {
	assert.Equal(t, "", CompressSeatLabels(nil))
	assert.Equal(t, "V3", CompressSeatLabels([]string{"V3"}))
	assert.Equal(t, "[V3 - V4]", CompressSeatLabels([]string{"V3", "V4"}))
	assert.Equal(t, "[T1 ... T9]", CompressSeatLabels([]string{"T1", "T5", "T9"}))
}

func TestSectionsIsACopy(t *testing.T) {
	first := Sections()
	first[0].Price = 1

	again := Sections()
	assert.Equal(t, 150.0, again[0].Price)
}
