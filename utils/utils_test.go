package utils

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***e@e******.com", MaskEmail("alice@example.com"))
	assert.Equal(t, "b*@x.io", MaskEmail("bo@x.io"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash(hash, "s3cret!"))
	assert.False(t, CheckPasswordHash(hash, "wrong"))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("STAYEASE_TEST_INT", "42")
	t.Setenv("STAYEASE_TEST_BOOL", "true")
	t.Setenv("STAYEASE_TEST_DUR", "90m")
	t.Setenv("STAYEASE_TEST_BAD", "nope")

	assert.Equal(t, 42, EnvInt("STAYEASE_TEST_INT", 1))
	assert.Equal(t, 1, EnvInt("STAYEASE_TEST_BAD", 1))
	assert.True(t, EnvBool("STAYEASE_TEST_BOOL", false))
	assert.False(t, EnvBool("STAYEASE_TEST_BAD", false))
	assert.Equal(t, 90*time.Minute, EnvDuration("STAYEASE_TEST_DUR", time.Hour))
	assert.Equal(t, time.Hour, EnvDuration("STAYEASE_TEST_BAD", time.Hour))
	assert.Equal(t, "fallback", EnvOrDefault("STAYEASE_TEST_MISSING", "fallback"))
}

func TestMailerWithoutSMTPOnlyLogs(t *testing.T) {
	m := NewMailer(SMTPConfig{}, testLogger())
	assert.NoError(t, m.SendWaitlistWelcome("alice@example.com", "Alice"))
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
