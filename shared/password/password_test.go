package password_test

import (
	"testing"

	"holipass/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("holi2026")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, password.Verify("holi2026", hash))
	assert.ErrorIs(t, password.Verify("wrong", hash), password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerifyPlain(t *testing.T) {
	assert.NoError(t, password.VerifyPlain("secret", "secret"))
	assert.ErrorIs(t, password.VerifyPlain("secret", "other"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.VerifyPlain("secret", ""), password.ErrInvalidPassword)
}
