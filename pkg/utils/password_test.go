package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashDeterministic(t *testing.T) {
	h := NewHasher("salt-a")
	assert.Equal(t, h.Hash("secret"), h.Hash("secret"))
	assert.NotEqual(t, h.Hash("secret"), h.Hash("other"))
}

func TestHashSaltChangesDigest(t *testing.T) {
	a := NewHasher("salt-a")
	b := NewHasher("salt-b")
	assert.NotEqual(t, a.Hash("secret"), b.Hash("secret"))
}

func TestHashEmptyCredential(t *testing.T) {
	h := NewHasher("salt-a")
	// 空凭证按空串处理，不报错
	assert.NotEmpty(t, h.Hash(""))
	assert.Equal(t, h.Hash(""), h.Hash(""))
}

func TestCheck(t *testing.T) {
	h := NewHasher("salt-a")
	digest := h.Hash("secret")
	assert.True(t, h.Check("secret", digest))
	assert.False(t, h.Check("wrong", digest))
}
