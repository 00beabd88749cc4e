package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func pass(context.Context) error { return nil }

func failWith(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

type probeBody struct {
	Status string
	Checks map[string]string
}

func probe(t *testing.T, endpoint http.HandlerFunc) (int, probeBody) {
	t.Helper()

	w := httptest.NewRecorder()
	endpoint(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body probeBody
	require.NoError(t, jx.DecodeBytes(w.Body.Bytes()).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "status":
			s, err := d.Str()
			body.Status = s
			return err
		case "checks":
			body.Checks = map[string]string{}
			return d.Obj(func(d *jx.Decoder, name string) error {
				s, err := d.Str()
				body.Checks[name] = s
				return err
			})
		default:
			return d.Skip()
		}
	}))
	return w.Code, body
}

func TestLiveEndpoint(t *testing.T) {
	h := New(nil)
	h.Register(Liveness, "goroutines", pass)
	h.Register(Liveness, "disk", failWith("read-only file system"))
	h.Register(Readiness, "postgres", failWith("ignored by livez"))

	code, body := probe(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusOK, code, "checks start healthy")
	assert.Equal(t, "ok", body.Status)

	ctx := context.Background()
	for range 3 {
		h.checks[1].run(ctx)
		h.checks[2].run(ctx)
	}

	code, body = probe(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, map[string]string{"disk": "read-only file system"}, body.Checks)
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		name      string
		opts      []CheckOption
		failures  int
		unhealthy bool
	}{
		{name: "below default threshold", failures: 2, unhealthy: false},
		{name: "at default threshold", failures: 3, unhealthy: true},
		{name: "custom threshold", opts: []CheckOption{WithThresholds(1, 1)}, failures: 1, unhealthy: true},
		{name: "zero threshold is one", opts: []CheckOption{WithThresholds(0, 0)}, failures: 1, unhealthy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(nil)
			h.Register(Liveness, "flaky", failWith("down"), tt.opts...)
			for range tt.failures {
				h.checks[0].run(context.Background())
			}
			assert.Equal(t, tt.unhealthy, !h.checks[0].healthy.Load())
		})
	}
}

func TestReadyEndpoint(t *testing.T) {
	h := New(nil)
	h.Register(Readiness, "postgres", pass)

	code, body := probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body.Checks, "_readiness")
	assert.False(t, h.IsReady())

	h.SetReady(true)
	code, _ = probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, h.IsReady())

	h.SetReady(false)
	code, _ = probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestReadyEndpoint_OneFailing(t *testing.T) {
	h := New(nil)
	h.Register(Readiness, "postgres", pass)
	h.Register(Readiness, "media", failWith("permission denied"), WithThresholds(1, 1))
	h.SetReady(true)

	h.checks[1].run(context.Background())

	code, body := probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, map[string]string{"media": "permission denied"}, body.Checks)
	assert.False(t, h.IsReady())
}

func TestCheckRecoveryIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := New(zap.New(core))

	failing := true
	h.Register(Readiness, "postgres", func(context.Context) error {
		if failing {
			return errors.New("connection refused")
		}
		return nil
	}, WithThresholds(1, 1))
	c := h.checks[0]

	require.True(t, c.run(context.Background()))
	h.logTransition(c)
	require.False(t, c.run(context.Background()), "still failing is not a transition")

	failing = false
	require.True(t, c.run(context.Background()))
	h.logTransition(c)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Check failing", entries[0].Message)
	assert.Equal(t, "Check recovered", entries[1].Message)
	assert.Equal(t, "postgres", entries[1].ContextMap()["check"])
}

func TestTimeout(t *testing.T) {
	h := New(nil)
	h.Register(Liveness, "slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, WithTimeout(10*time.Millisecond), WithThresholds(1, 1))

	h.checks[0].run(context.Background())
	assert.ErrorIs(t, h.checks[0].err(), context.DeadlineExceeded)
}

func TestConcurrentAccess(t *testing.T) {
	h := New(nil)
	h.Register(Liveness, "flaky", failWith("err"))
	h.Register(Readiness, "postgres", pass)
	h.SetReady(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.Start(ctx, 5*time.Millisecond)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				h.IsReady()
				h.LiveEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/livez", nil))
				h.ReadyEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))
			}
		}()
	}
	wg.Wait()

	h.Stop()
	h.Stop()
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, GoroutineCountCheck(100000)(ctx))
	assert.ErrorContains(t, GoroutineCountCheck(0)(ctx), "exceeds threshold")

	assert.NoError(t, PingCheck(pingerFunc(func(context.Context) error { return nil }))(ctx))
	assert.ErrorContains(t, PingCheck(pingerFunc(func(context.Context) error {
		return errors.New("no route to host")
	}))(ctx), "no route to host")

	assert.NoError(t, WritableDirCheck(t.TempDir())(ctx))
	assert.Error(t, WritableDirCheck("/nonexistent/media")(ctx))
}

func TestReadyEndpoint_HealthyCheckersStayReady(t *testing.T) {
	h := New(nil)
	h.Register(Readiness, "postgres", PingCheck(pingerFunc(pass)), WithThresholds(1, 1))
	h.Register(Readiness, "media", WritableDirCheck(t.TempDir()), WithThresholds(1, 1))
	h.SetReady(true)

	ctx := context.Background()
	for range 3 {
		h.checks[0].run(ctx)
		h.checks[1].run(ctx)
	}

	code, body := probe(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Checks)
}
