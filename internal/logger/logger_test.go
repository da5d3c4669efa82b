package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type ctxKey string

func TestWithContext(t *testing.T) {
	t.Run("anonymous caller", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "anonymous", l.Data["user"])
		assert.NotContains(t, l.Data, "request_id")
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck // nil is tolerated for background jobs
		l := WithContext(nil)
		assert.NotContains(t, l.Data, "user")
	})

	t.Run("typed keys are ignored", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey("email"), "a@b.c")
		l := WithContext(ctx)
		assert.Equal(t, "anonymous", l.Data["user"])
	})
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithFields(t *testing.T) {
	l := New().WithField("artist_id", "x").WithFields(map[string]interface{}{"points": 10})
	assert.Equal(t, "x", l.Data["artist_id"])
	assert.Equal(t, 10, l.Data["points"])
}
