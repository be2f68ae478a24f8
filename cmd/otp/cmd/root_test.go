package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/nomasters/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

// execute runs the otp command tree with args and an empty home directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	stdout, _, err := execute(t, "TEST", "--key", "ASDF")
	require.NoError(t, err)

	want := "Message:\n T  E  S  T\n19  4 18 19\n" +
		"Key:\n A  S  D  F\n 0 18  3  5\n" +
		"Encrypted:\n T  W  V  Y\n19 22 21 24\n" +
		"Decrypted:\n T  E  S  T\n19  4 18 19\n"
	assert.Equal(t, want, stdout)
}

func TestDemoDefaults(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "Message:", lines[0])
	assert.Equal(t, "Key:", lines[3])
	// 48 symbols, each two columns wide plus separators
	assert.Len(t, lines[4], 48*3-1)
	assert.Equal(t, "Decrypted:", lines[9])
	assert.True(t, strings.HasPrefix(lines[10], " H  E  L  L  O     W  O  R  L  D"))
}

func TestDemoReportsEveryInvalidSymbol(t *testing.T) {
	_, stderr, err := execute(t, "test", "--key", "AS-F")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 4 invalid symbols")
	assert.Contains(t, stderr, "Message contains invalid symbol 't' at position 0")
	assert.Contains(t, stderr, "Message contains invalid symbol 'e' at position 1")
	assert.Contains(t, stderr, "Message contains invalid symbol 's' at position 2")
	assert.Contains(t, stderr, "Key contains invalid symbol '-' at position 2")
}

func TestDemoMessageLongerThanGeneratedKey(t *testing.T) {
	_, _, err := execute(t, strings.Repeat("A", otp.DefaultKeyLength+1))
	assert.ErrorIs(t, err, otp.ErrKeyTooShort)
}

func TestInvalidAlphabet(t *testing.T) {
	_, _, err := execute(t, "keygen", "--alphabet", "ABA")
	assert.ErrorIs(t, err, otp.ErrDuplicateSymbol)

	_, _, err = execute(t, "keygen", "--alphabet", "A")
	assert.ErrorIs(t, err, otp.ErrAlphabetTooSmall)
}

func TestEncrypt(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "TEST", "--key", "ASDF")
	require.NoError(t, err)
	assert.Equal(t, "TWVY\n", stdout)
}

func TestEncryptXORAlphabet(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "CAFE", "--key", "BEEF", "--alphabet", "0123456789ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "7411\n", stdout)
}

func TestEncryptGeneratesKey(t *testing.T) {
	stdout, stderr, err := execute(t, "encrypt", "HELLO")
	require.NoError(t, err)
	assert.Len(t, []rune(strings.TrimSuffix(stdout, "\n")), otp.DefaultKeyLength)
	assert.Contains(t, stderr, "key: ")
}

func TestEncryptKeyTooShort(t *testing.T) {
	_, _, err := execute(t, "encrypt", "ABC", "--key", "A")
	var short *otp.KeyTooShortError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 3, short.Required)
	assert.EqualError(t, err, "Message too long for key of size 1")
}

func TestEncryptCustomPad(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "HI", "--key", "ABCD", "--pad", "A")
	require.NoError(t, err)
	assert.Equal(t, "HJCD\n", stdout)

	_, _, err = execute(t, "encrypt", "HI", "--key", "ABCD", "--pad", "AB")
	assert.ErrorContains(t, err, "pad must be a single symbol")
}

func TestDecrypt(t *testing.T) {
	stdout, _, err := execute(t, "decrypt", "TWVY", "--key", "ASDF")
	require.NoError(t, err)
	assert.Equal(t, "TEST\n", stdout)
}

func TestDecryptTrim(t *testing.T) {
	stdout, _, err := execute(t, "encrypt", "HI", "--key", "ABCD")
	require.NoError(t, err)
	require.Equal(t, "HJBC\n", stdout)

	stdout, _, err = execute(t, "decrypt", "HJBC", "--key", "ABCD")
	require.NoError(t, err)
	assert.Equal(t, "HI  \n", stdout)

	stdout, _, err = execute(t, "decrypt", "HJBC", "--key", "ABCD", "--trim")
	require.NoError(t, err)
	assert.Equal(t, "HI\n", stdout)
}

func TestDecryptErrors(t *testing.T) {
	_, _, err := execute(t, "decrypt", "TWVY")
	assert.ErrorContains(t, err, `required flag(s) "key" not set`)

	_, _, err = execute(t, "decrypt", "ABC", "--key", "AB")
	assert.ErrorIs(t, err, otp.ErrKeyExhausted)
}

func TestKeygen(t *testing.T) {
	stdout, _, err := execute(t, "keygen", "-n", "16", "--alphabet", "0123456789ABCDEF")
	require.NoError(t, err)
	key := strings.TrimSuffix(stdout, "\n")
	assert.Len(t, key, 16)
	for _, r := range key {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}

	_, _, err = execute(t, "keygen", "-n", "0")
	assert.ErrorContains(t, err, "key length must be positive")
}

func TestKeygenFromEnv(t *testing.T) {
	t.Setenv("OTP_ALPHABET", "01")
	t.Setenv("OTP_KEY_LENGTH", "20")
	stdout, _, err := execute(t, "keygen")
	require.NoError(t, err)
	key := strings.TrimSuffix(stdout, "\n")
	assert.Len(t, key, 20)
	assert.Empty(t, strings.Trim(key, "01"))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otp.yaml")

	stdout, _, err := execute(t, "config", "init", "--config", path, "--alphabet", "01")
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var c Config
	require.NoError(t, yaml.Unmarshal(data, &c))
	assert.Equal(t, "01", c.Alphabet)
	assert.Equal(t, otp.DefaultKeyLength, c.KeyLength)
	assert.Equal(t, defaultMessage, c.Message)
	assert.Equal(t, "warn", c.Log.Level)

	_, _, err = execute(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	stdout, _, err = execute(t, "keygen", "--config", path)
	require.NoError(t, err)
	key := strings.TrimSuffix(stdout, "\n")
	assert.Len(t, key, otp.DefaultKeyLength)
	assert.Empty(t, strings.Trim(key, "01"))
}

func TestConfigInitRejectsBadAlphabet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otp.yaml")
	_, _, err := execute(t, "config", "init", "--config", path, "--alphabet", "AA")
	assert.ErrorIs(t, err, otp.ErrDuplicateSymbol)
	assert.NoFileExists(t, path)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "encrypt", "TEST", "--key", "ASDF", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "engine ready")
	assert.Contains(t, stderr, "modular")
	assert.Contains(t, stderr, otp.Fingerprint("ASDF"))
}
