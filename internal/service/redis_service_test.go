package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	l.SetOutput(io.Discard)
	return l
}

func TestRedisService_Get(t *testing.T) {
	type testcase struct {
		name   string
		key    string
		setup  func(*testing.T, *RedisService)
		assert func(*testing.T, string, bool)
	}

	cases := []testcase{
		{
			name: "CacheMiss",
			key:  "absent",
			assert: func(t *testing.T, val string, ok bool) {
				require.False(t, ok)
				require.Empty(t, val)
			},
		},
		{
			name: "Hit",
			key:  "present",
			setup: func(t *testing.T, svc *RedisService) {
				_, err := svc.Set(context.Background(), "present", map[string]bool{"ok": true}, time.Minute)
				require.NoError(t, err)
			},
			assert: func(t *testing.T, val string, ok bool) {
				require.True(t, ok)
				require.JSONEq(t, `{"ok":true}`, val)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, client := newTestRedis(t)
			svc := NewRedisService(client, silentLogger())
			if tc.setup != nil {
				tc.setup(t, svc)
			}
			val, ok := svc.Get(context.Background(), tc.key)
			tc.assert(t, val, ok)
		})
	}
}

func TestRedisService_Get_RedisError(t *testing.T) {
	mr, client := newTestRedis(t)
	svc := NewRedisService(client, silentLogger())

	mr.Close()

	val, ok := svc.Get(context.Background(), "anything")
	require.False(t, ok)
	require.Empty(t, val)
}

func TestRedisService_Set(t *testing.T) {
	t.Run("StoresMarshaledPayloadWithTTL", func(t *testing.T) {
		mr, client := newTestRedis(t)
		svc := NewRedisService(client, silentLogger())

		payload, err := svc.Set(context.Background(), "k", map[string]string{"name": "value"}, time.Minute)
		require.NoError(t, err)
		require.JSONEq(t, `{"name":"value"}`, payload)

		stored, err := mr.Get("k")
		require.NoError(t, err)
		require.Equal(t, payload, stored)

		mr.FastForward(2 * time.Minute)
		require.False(t, mr.Exists("k"))
	})

	t.Run("MarshalError", func(t *testing.T) {
		_, client := newTestRedis(t)
		svc := NewRedisService(client, silentLogger())

		payload, err := svc.Set(context.Background(), "k", make(chan int), time.Minute)
		require.Error(t, err)
		require.Empty(t, payload)
	})

	t.Run("WriteErrorStillReturnsPayload", func(t *testing.T) {
		mr, client := newTestRedis(t)
		svc := NewRedisService(client, silentLogger())

		mr.Close()

		payload, err := svc.Set(context.Background(), "k", map[string]string{"name": "value"}, time.Minute)
		require.Error(t, err)
		require.JSONEq(t, `{"name":"value"}`, payload)
	})
}

func TestRedisService_Delete(t *testing.T) {
	t.Run("RemovesKey", func(t *testing.T) {
		mr, client := newTestRedis(t)
		svc := NewRedisService(client, silentLogger())

		_, err := svc.Set(context.Background(), "k", "v", time.Minute)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), "k"))
		require.False(t, mr.Exists("k"))
	})

	t.Run("MissingKeyIsNoError", func(t *testing.T) {
		_, client := newTestRedis(t)
		svc := NewRedisService(client, silentLogger())

		require.NoError(t, svc.Delete(context.Background(), "never-set"))
	})

	t.Run("RedisError", func(t *testing.T) {
		mr, client := newTestRedis(t)
		svc := NewRedisService(client, silentLogger())

		mr.Close()

		require.Error(t, svc.Delete(context.Background(), "k"))
	})
}
