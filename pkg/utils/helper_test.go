package utils

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
}

func TestGenerateReservationCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := GenerateReservationCode()

		assert.Len(t, code, 8)
		for _, char := range code {
			assert.True(t, strings.ContainsRune(reservationCodeCharset, char),
				"unexpected character %q in code %s", char, code)
		}

		seen[code] = true
	}

	// 100 kode dari ruang 36^8, tabrakan praktis mustahil
	assert.Greater(t, len(seen), 95)
}

func TestGenerateReservationCode_Concurrent(t *testing.T) {
	// Setiap request booking manggil ini dari goroutine handler sendiri
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				code := GenerateReservationCode()
				if len(code) != 8 {
					t.Errorf("unexpected code length: %q", code)
					return
				}
			}
		}()
	}

	wg.Wait()
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	assert.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hash)

	assert.True(t, CheckPasswordHash("rahasia-banget", hash))
	assert.False(t, CheckPasswordHash("salah", hash))
}
