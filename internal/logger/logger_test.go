package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fileOnly(t *testing.T, level string, cfg FileConfig) {
	t.Helper()
	if err := Configure(Options{Level: level, File: cfg}); err != nil {
		t.Fatalf("failed to configure logger: %v", err)
	}
	t.Cleanup(func() { Set(nil) })
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "voxedit.log")

	// 1MB is the smallest size lumberjack rotates at
	fileOnly(t, "debug", FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
	})

	payload := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("voxel %d created: %s", i, payload)
	}
	Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("active log file missing: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		name := e.Name()
		if name == "voxedit.log" || !strings.HasPrefix(name, "voxedit-") {
			continue
		}
		rotated++
		// voxedit-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s has no timestamp", name)
		}
	}
	if rotated == 0 {
		t.Error("expected at least one rotated file")
	}
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
		{"", []string{"INFO"}, []string{"DEBUG"}},
	}

	for _, tt := range tests {
		name := tt.level
		if name == "" {
			name = "default"
		}
		t.Run(name, func(t *testing.T) {
			logFile := filepath.Join(dir, name+".log")
			fileOnly(t, tt.level, FileConfig{Path: logFile, MaxSizeMB: 10})

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in output for level %q", exc, tt.level)
				}
			}
		})
	}
}

func TestHelpersReportTheirCaller(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "caller.log")
	fileOnly(t, "info", FileConfig{Path: logFile, MaxSizeMB: 10})

	Warn("from the test")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "logger/logger_test.go") {
		t.Errorf("expected caller logger_test.go, got %q", content)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "verbose", Console: true}); err == nil {
		t.Error("expected an error for level verbose")
	}
	if err := Configure(Options{Level: "verbose"}); err == nil {
		t.Error("expected Configure to fail for level verbose")
	}
}

func TestNewWithoutSinksDiscards(t *testing.T) {
	l, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a logger with no sinks to be disabled")
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/voxedit.log")

	if cfg.Path != "/tmp/voxedit.log" {
		t.Errorf("expected path /tmp/voxedit.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 10 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 14 {
		t.Errorf("unexpected rotation %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestNopBeforeConfigure(t *testing.T) {
	Set(nil)
	// Must not panic without Configure.
	Warn("unconfigured view kind", zap.String("kind", "bogus"))
	Sync()
}

func TestSetCapturesWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	Set(zap.New(core))
	defer Set(nil)

	Named("camera").Warn("unhandled view type", zap.Int("kind", 9))
	Info("ignored at warn level")
	Warn("package level")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 captured entries, got %d", len(entries))
	}
	if entries[0].LoggerName != "camera" {
		t.Errorf("expected logger name camera, got %q", entries[0].LoggerName)
	}
	if entries[0].ContextMap()["kind"] != int64(9) {
		t.Errorf("expected kind field 9, got %v", entries[0].ContextMap()["kind"])
	}
	if entries[1].Message != "package level" {
		t.Errorf("expected package level message, got %q", entries[1].Message)
	}
}
