package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{" Dernek / Hakkımızda! ", "dernek/hakkimizda"},
		{"Eğitim Programları", "egitim-programlari"},
		{"Çok   Güzel", "cok-guzel"},
		{"---Dashes---", "dashes"},
		{"parent/child/leaf", "parent/child/leaf"},
		{"a//b", "a/b"},
		{"/leading/and/trailing/", "leading/and/trailing"},
		{"Special@#Chars!", "specialchars"},
		{"şöğüçı", "soguci"},
		{"a\nb", "a-b"},
		{"satır\r\nsonu\tve\vdikey", "satir-sonu-ve-dikey"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		" Dernek / Hakkımızda! ",
		"Üretim & Teknoloji",
		"already-normal/slug",
		"___",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeSegmentsStayClean(t *testing.T) {
	for _, in := range []string{"A B/C D", "ğ/ü/ş", "x!/y?", "  /  "} {
		for _, seg := range splitNonEmpty(Normalize(in)) {
			assert.NotEmpty(t, seg)
			for _, r := range seg {
				valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
				assert.True(t, valid, "segment %q contains %q", seg, r)
			}
		}
	}
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '/' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("dernek/hakkimizda"))
	assert.ErrorIs(t, Validate(""), ErrEmpty)
	assert.ErrorIs(t, Validate("new"), ErrReserved)
	assert.ErrorIs(t, Validate(Normalize("NEW")), ErrReserved)
	assert.ErrorIs(t, Validate(Normalize("!!!")), ErrEmpty)
}
