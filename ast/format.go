package ast

import "strconv"

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
