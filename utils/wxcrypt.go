package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrDecryptUserData 用户加密数据无法解密：参数不是合法的 base64、长度不对或填充错误。
var ErrDecryptUserData = errors.New("解密用户数据失败")

// maxPKCS7Padding 微信的加密数据按 32 字节对齐填充，这里同时兼容 16 字节填充。
const maxPKCS7Padding = 32

// DecryptUserData 使用 session_key 和 iv 解密 wx.getUserInfo 返回的 encryptedData。
// 三个参数均为 base64 字符串，算法为 AES-128-CBC + PKCS#7。
func DecryptUserData(sessionKey, encryptedData, iv string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: session_key 不是合法的 base64: %v", ErrDecryptUserData, err)
	}
	ivBytes, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return nil, fmt.Errorf("%w: iv 不是合法的 base64: %v", ErrDecryptUserData, err)
	}
	data, err := base64.StdEncoding.DecodeString(encryptedData)
	if err != nil {
		return nil, fmt.Errorf("%w: encryptedData 不是合法的 base64: %v", ErrDecryptUserData, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptUserData, err)
	}
	if len(ivBytes) != block.BlockSize() {
		return nil, fmt.Errorf("%w: iv 长度应为 %d 字节", ErrDecryptUserData, block.BlockSize())
	}
	if len(data) == 0 || len(data)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: 密文长度 %d 不是分组长度的整数倍", ErrDecryptUserData, len(data))
	}

	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, ivBytes).CryptBlocks(plain, data)

	return pkcs7Unpad(plain)
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	padding := int(data[len(data)-1])
	if padding == 0 || padding > maxPKCS7Padding || padding > len(data) {
		return nil, fmt.Errorf("%w: 填充长度 %d 无效", ErrDecryptUserData, padding)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: 填充内容无效", ErrDecryptUserData)
		}
	}
	return data[:len(data)-padding], nil
}
