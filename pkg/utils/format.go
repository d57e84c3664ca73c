package utils

import (
	"fmt"
	"strconv"
)

// FormatPercentage formata um valor float como percentual com duas casas decimais.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// FormatCurrency formata um valor float para string com duas casas decimais.
func FormatCurrency(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// ParseMetaNumber converte um valor numérico retornado como string pela API do
// Meta. Valores vazios ou inválidos viram zero.
func ParseMetaNumber(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return parsed
}
