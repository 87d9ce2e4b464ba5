package utils

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encryptForTest 按微信的方式加密，供测试构造 encryptedData。
func encryptForTest(t *testing.T, key, iv, plain []byte, blockPad int) string {
	t.Helper()
	padding := blockPad - len(plain)%blockPad
	padded := append(append([]byte{}, plain...), bytes.Repeat([]byte{byte(padding)}, padding)...)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return base64.StdEncoding.EncodeToString(out)
}

func TestDecryptUserData(t *testing.T) {
	key := []byte("0123456789abcdef")
	iv := []byte("fedcba9876543210")
	plain := []byte(`{"openId":"open-1","nickName":"小明","watermark":{"appid":"wx-app"}}`)

	for _, blockPad := range []int{16, 32} {
		encrypted := encryptForTest(t, key, iv, plain, blockPad)
		got, err := DecryptUserData(
			base64.StdEncoding.EncodeToString(key),
			encrypted,
			base64.StdEncoding.EncodeToString(iv),
		)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}
}

func TestDecryptUserDataErrors(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))
	iv := base64.StdEncoding.EncodeToString([]byte("fedcba9876543210"))
	encrypted := encryptForTest(t, []byte("0123456789abcdef"), []byte("fedcba9876543210"), []byte("hello"), 16)

	tests := []struct {
		name                   string
		sessionKey, data, ivIn string
	}{
		{name: "bad key base64", sessionKey: "%%%", data: encrypted, ivIn: iv},
		{name: "bad iv base64", sessionKey: key, data: encrypted, ivIn: "%%%"},
		{name: "bad data base64", sessionKey: key, data: "%%%", ivIn: iv},
		{name: "short key", sessionKey: base64.StdEncoding.EncodeToString([]byte("short")), data: encrypted, ivIn: iv},
		{name: "short iv", sessionKey: key, data: encrypted, ivIn: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "partial block", sessionKey: key, data: base64.StdEncoding.EncodeToString([]byte("abc")), ivIn: iv},
		{name: "empty data", sessionKey: key, data: "", ivIn: iv},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptUserData(tt.sessionKey, tt.data, tt.ivIn)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryptUserData)
		})
	}
}
