package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2Iters = 4096

// Hasher 用进程级盐做确定性单向摘要：同输入恒同输出，登录按摘要比对。
// 盐来自配置，不是编译期常量。
type Hasher struct{ salt []byte }

func NewHasher(salt string) *Hasher { return &Hasher{salt: []byte(salt)} }

func (h *Hasher) Hash(raw string) string {
	sum := pbkdf2.Key([]byte(raw), h.salt, pbkdf2Iters, 32, sha256.New)
	return hex.EncodeToString(sum)
}

func (h *Hasher) Check(raw, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(raw)), []byte(digest)) == 1
}
