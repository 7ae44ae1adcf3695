package main

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	saved := Logger()
	t.Cleanup(func() { SetLogger(saved) })

	SetLogger(nil)
	if l := Logger(); l == nil || l.Core().Enabled(zapcore.DebugLevel) || l.Core().Enabled(zapcore.ErrorLevel) {
		t.Errorf("Logger() after SetLogger(nil) = %v, want a no-op logger", l)
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	saved := Logger()
	t.Cleanup(func() { SetLogger(saved) })

	core, logs := observer.New(zapcore.InfoLevel)
	want := zap.New(core)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(want)
			} else {
				SetLogger(zap.NewNop())
			}
		}()
		go func() {
			defer wg.Done()
			_ = Logger()
		}()
	}
	wg.Wait()

	SetLogger(want)
	Logger().Info("ready")
	if got := logs.FilterMessage("ready").Len(); got != 1 {
		t.Errorf("observed %d entries, want 1", got)
	}
}
