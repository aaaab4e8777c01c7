package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	conf, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if conf.AppName != "handcheck" || conf.Log.Level != "info" {
		t.Fatalf("unexpected defaults %+v", conf)
	}
	if conf.Searcher.MaxCost != 1<<16 || conf.Sweep.Hands != 10000 || !conf.Sweep.UseRedFives || conf.Sweep.MonitorSeconds != 5 {
		t.Fatalf("unexpected defaults %+v", conf)
	}
}

func TestLoadConfig_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "application.yml")
	content := `appName: sweep-test
log:
  level: debug
searcher:
  maxCost: 256
sweep:
  hands: 12
  seed: 99
  useRedFives: false
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	conf, err := LoadConfig(file)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if conf.AppName != "sweep-test" || conf.Log.Level != "debug" || conf.Searcher.MaxCost != 256 {
		t.Fatalf("unexpected config %+v", conf)
	}
	if conf.Sweep.Hands != 12 || conf.Sweep.Seed != 99 || conf.Sweep.UseRedFives {
		t.Fatalf("unexpected sweep config %+v", conf.Sweep)
	}
	// 未配置的项保留默认值
	if conf.Searcher.TTLSeconds != 0 || conf.MetricPort != 0 {
		t.Fatalf("unexpected defaults %+v", conf)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestInitConfig(t *testing.T) {
	InitConfig("")
	if Current() == nil || Current().AppName != "handcheck" {
		t.Fatalf("expected default config after init")
	}
}
