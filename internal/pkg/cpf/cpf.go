// Package cpf valida e normaliza o CPF, identificador usado como login
// pelas três categorias de conta.
package cpf

import "strings"

// Length é a quantidade de dígitos de um CPF.
const Length = 11

// Normalize remove qualquer caractere que não seja dígito ("123.456.789-09" -> "12345678909").
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid aplica o algoritmo dos dois dígitos verificadores (módulo 11).
// Espera o CPF já normalizado.
func IsValid(digits string) bool {
	if len(digits) != Length {
		return false
	}

	d := make([]int, Length)
	allEqual := true
	for i := 0; i < Length; i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d[i] = int(c - '0')
		if d[i] != d[0] {
			allEqual = false
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(d[:9], 10) == d[9] && checkDigit(d[:10], 11) == d[10]
}

// checkDigit calcula um dígito verificador com pesos decrescentes a partir de firstWeight.
func checkDigit(d []int, firstWeight int) int {
	sum := 0
	for i, v := range d {
		sum += v * (firstWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		return 0
	}
	return rest
}

// Format devolve o CPF na máscara 000.000.000-00. Entradas fora do tamanho voltam inalteradas.
func Format(digits string) string {
	if len(digits) != Length {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}
