// internal/testutil/fixtures.go
package testutil

import "bytes"

// Cabeceras sintéticas de los formatos soportados, con relleno opcional
// para simular el payload de un wallpaper real.

// PNGBytes retorna un blob con firma PNG y payloadLen bytes de relleno.
func PNGBytes(payloadLen int) []byte {
	return withPayload([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, payloadLen)
}

// JPEGBytes retorna un blob con firma JPEG y payloadLen bytes de relleno.
func JPEGBytes(payloadLen int) []byte {
	return withPayload([]byte{0xFF, 0xD8, 0xFF, 0xE0}, payloadLen)
}

// WebPBytes retorna un blob con la firma RIFF....WEBP de dos segmentos.
func WebPBytes(payloadLen int) []byte {
	header := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	header = append(header, []byte("WEBP")...)
	return withPayload(header, payloadLen)
}

// GIFBytes retorna un blob GIF89a con relleno.
func GIFBytes(payloadLen int) []byte {
	return withPayload([]byte("GIF89a"), payloadLen)
}

// GIF87Bytes retorna un blob con la variante GIF87a.
func GIF87Bytes(payloadLen int) []byte {
	return withPayload([]byte("GIF87a"), payloadLen)
}

// BMPBytes retorna un blob con firma BMP y relleno.
func BMPBytes(payloadLen int) []byte {
	return withPayload([]byte("BM"), payloadLen)
}

// UnknownBytes retorna un blob que no coincide con ninguna firma conocida.
func UnknownBytes(payloadLen int) []byte {
	return withPayload([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, payloadLen)
}

// withPayload concatena la cabecera con payloadLen bytes deterministas.
func withPayload(header []byte, payloadLen int) []byte {
	out := make([]byte, 0, len(header)+payloadLen)
	out = append(out, header...)
	if payloadLen > 0 {
		out = append(out, bytes.Repeat([]byte{0xAB}, payloadLen)...)
	}
	return out
}
