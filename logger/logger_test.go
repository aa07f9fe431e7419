package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if Logger == nil {
				t.Fatal("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestInitializeWithVerbosity(t *testing.T) {
	defer func() { Logger = zap.NewNop().Sugar() }()

	tests := []struct {
		verbosity int
		debug     bool
		info      bool
	}{
		{VerbosityUser, false, false},
		{VerbosityInfo, false, true},
		{VerbosityDebug, true, true},
		{VerbosityTrace + 2, true, true},
	}
	for _, tt := range tests {
		if err := InitializeWithVerbosity(false, tt.verbosity); err != nil {
			t.Fatalf("InitializeWithVerbosity(%d) error = %v", tt.verbosity, err)
		}
		core := Logger.Desugar().Core()
		if got := core.Enabled(zapcore.DebugLevel); got != tt.debug {
			t.Errorf("verbosity %d: debug enabled = %v, want %v", tt.verbosity, got, tt.debug)
		}
		if got := core.Enabled(zapcore.InfoLevel); got != tt.info {
			t.Errorf("verbosity %d: info enabled = %v, want %v", tt.verbosity, got, tt.info)
		}
	}
}

func TestThemeFromEnv(t *testing.T) {
	defer SetTheme("everforest")
	defer func() { Logger = zap.NewNop().Sugar() }()

	t.Setenv("UVAL_LOG_THEME", "gruvbox")
	if err := Initialize(false); err != nil {
		t.Fatal(err)
	}
	if Theme() != "gruvbox" {
		t.Errorf("Theme() = %q, want gruvbox", Theme())
	}

	SetTheme("solarized")
	if Theme() != "gruvbox" {
		t.Errorf("unknown theme should be ignored, got %q", Theme())
	}
}

func TestCleanupWithNilLogger(t *testing.T) {
	Logger = nil
	defer func() { Logger = zap.NewNop().Sugar() }()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cleanup() panicked: %v", r)
		}
	}()
	Cleanup()
	Infow("test", "key", "value")
	Debugw("test", "key", "value")
	Warnw("test", "key", "value")
	Errorw("test", "key", "value")
	ConvertDebugw("test")
	CalcDebugw("test")
}

// observe swaps the global logger for an observer at debug level.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = prev })
	return logs
}

func TestSymbolHelpers(t *testing.T) {
	logs := observe(t)

	ConvertDebugw("conversion failed", FieldDimension, "amplitude", FieldFrom, "dBm", FieldTo, "V")
	CalcDebugw("step", FieldToken, "*")
	AMInfow("config loaded", FieldFile, "am.toml")
	UnitInfow("tables loaded", FieldCount, 2)
	WithSymbol("×").Debugw("folded")

	entries := logs.All()
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}

	want := []string{"→", "∑", "≡", "⊡", "×"}
	for i, e := range entries {
		if got := e.ContextMap()[FieldSymbol]; got != want[i] {
			t.Errorf("entry %d (%s): symbol = %v, want %s", i, e.Message, got, want[i])
		}
	}
	if got := entries[0].ContextMap()[FieldDimension]; got != "amplitude" {
		t.Errorf("dimension field = %v, want amplitude", got)
	}
}

func TestComponentLogger(t *testing.T) {
	logs := observe(t)

	l := ChildLogger(ComponentLogger("dim.load"), FieldFile, "units.toml")
	l.Infow("loaded", FieldCount, 3)

	e := logs.All()[0]
	if e.LoggerName != "dim.load" {
		t.Errorf("LoggerName = %q, want dim.load", e.LoggerName)
	}
	if e.ContextMap()[FieldFile] != "units.toml" {
		t.Errorf("child field missing: %v", e.ContextMap())
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := map[int]zapcore.Level{
		-1:             zapcore.WarnLevel,
		VerbosityUser:  zapcore.WarnLevel,
		VerbosityInfo:  zapcore.InfoLevel,
		VerbosityDebug: zapcore.DebugLevel,
		VerbosityTrace: zapcore.DebugLevel,
		9:              zapcore.DebugLevel,
	}
	for v, want := range tests {
		if got := VerbosityToLevel(v); got != want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", v, got, want)
		}
	}
	if LevelName(VerbosityDebug) != "Debug (-vv)" {
		t.Errorf("LevelName(2) = %q", LevelName(VerbosityDebug))
	}
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		verbosity int
		category  OutputCategory
		want      bool
	}{
		{VerbosityUser, OutputResults, true},
		{VerbosityUser, OutputConfig, false},
		{VerbosityInfo, OutputTables, true},
		{VerbosityInfo, OutputSteps, false},
		{VerbosityDebug, OutputSteps, true},
		{VerbosityDebug, OutputStack, false},
		{VerbosityTrace, OutputStack, true},
		{VerbosityDebug, OutputCategory(99), false},
	}
	for _, tt := range tests {
		if got := ShouldOutput(tt.verbosity, tt.category); got != tt.want {
			t.Errorf("ShouldOutput(%d, %s) = %v, want %v", tt.verbosity, CategoryName(tt.category), got, tt.want)
		}
	}
}
