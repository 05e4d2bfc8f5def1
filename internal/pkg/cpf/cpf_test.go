package cpf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"barbearia/internal/pkg/cpf"
)

// CPFs válidos gerados pelo próprio algoritmo.
var validCPFs = []string{"52998224725", "11144477735", "39053344705"}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "52998224725", cpf.Normalize("529.982.247-25"))
	assert.Equal(t, "52998224725", cpf.Normalize(" 529 982 247 25 "))
	assert.Equal(t, "", cpf.Normalize("abc"))
}

func TestIsValid_KnownValid(t *testing.T) {
	for _, c := range validCPFs {
		assert.True(t, cpf.IsValid(c), c)
	}
}

func TestIsValid_WrongLength(t *testing.T) {
	assert.False(t, cpf.IsValid(""))
	assert.False(t, cpf.IsValid("5299822472"))
	assert.False(t, cpf.IsValid("529982247250"))
}

func TestIsValid_AllSameDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		assert.False(t, cpf.IsValid(strings.Repeat(string(d), 11)), string(d))
	}
}

func TestIsValid_TenRepeatedDigitsPlusOne(t *testing.T) {
	// 10 dígitos repetidos e um diferente em qualquer posição nunca formam um CPF válido.
	for d := byte('0'); d <= '9'; d++ {
		for pos := 0; pos < 11; pos++ {
			b := []byte(strings.Repeat(string(d), 11))
			b[pos] = '0' + (d-'0'+1)%10
			assert.False(t, cpf.IsValid(string(b)), string(b))
		}
	}
}

func TestIsValid_SingleDigitMutationInvalidates(t *testing.T) {
	base := validCPFs[0]
	for _, pos := range []int{0, 4, 8, 9, 10} {
		b := []byte(base)
		b[pos] = '0' + (b[pos]-'0'+1)%10
		assert.False(t, cpf.IsValid(string(b)), "posição %d: %s", pos, string(b))
	}
}

func TestIsValid_RejectsNonDigits(t *testing.T) {
	assert.False(t, cpf.IsValid("529.982.247"))
	assert.False(t, cpf.IsValid("5299822472a"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "529.982.247-25", cpf.Format("52998224725"))
	assert.Equal(t, "123", cpf.Format("123"))
}
