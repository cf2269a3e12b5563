package messaging

import "strconv"

func appendFloat(b []byte, f float64) []byte {
	b = strconv.AppendFloat(b, f, 'g', -1, 64)
	return append(b, ',')
}

func appendInt(b []byte, i int) []byte {
	b = strconv.AppendInt(b, int64(i), 10)
	return append(b, ';')
}
