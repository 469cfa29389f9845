package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planotes/config"
)

func newTestService(t *testing.T) *cookieTokenService {
	t.Helper()

	svc, err := NewCookieTokenService(&config.Config{
		SecretKey: config.SecretKey{
			Session:   "session-secret-for-tests",
			MagicLink: "link-secret-for-tests",
		},
	})
	require.NoError(t, err)

	concrete, ok := svc.(*cookieTokenService)
	require.True(t, ok)

	return concrete
}

func TestNewCookieTokenService_MissingSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewCookieTokenService(&config.Config{})
	assert.Error(t, err)
}

func TestCookieTokenService_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()
	validUntil := time.Now().Add(time.Hour)

	token, err := svc.IssueSessionToken(userID, validUntil)
	require.NoError(t, err)

	claims, err := svc.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, validUntil, claims.ValidUntil, time.Second)
}

func TestCookieTokenService_ExpiredSessionRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	token, err := svc.IssueSessionToken(uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = svc.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestCookieTokenService_TokenTypesNotInterchangeable(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	validUntil := time.Now().Add(time.Hour)

	sessionToken, err := svc.IssueSessionToken(uuid.New(), validUntil)
	require.NoError(t, err)

	linkToken, err := svc.IssueLinkToken(uuid.New(), validUntil)
	require.NoError(t, err)

	_, err = svc.ParseLinkToken(sessionToken)
	assert.Error(t, err, "session token must not pass as a link identifier")

	_, err = svc.ParseSessionToken(linkToken)
	assert.Error(t, err, "link identifier must not pass as a session token")
}

func TestCookieTokenService_TamperedTokenRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	token, err := svc.IssueSessionToken(uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = svc.ParseSessionToken(token + "x")
	assert.Error(t, err)

	_, err = svc.ParseSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestCookieTokenService_LinkRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	linkID := uuid.New()

	token, err := svc.IssueLinkToken(linkID, time.Now().Add(15*time.Minute))
	require.NoError(t, err)

	parsed, err := svc.ParseLinkToken(token)
	require.NoError(t, err)
	assert.Equal(t, linkID, parsed)
}
