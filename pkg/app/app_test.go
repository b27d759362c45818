package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/embedded"
)

// TestLoadConfig 测试配置加载优先级：文件 > 嵌入资源 > 默认值
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(filePath, []byte("gravity = 100.0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	embeddedFS := fstest.MapFS{
		config.DefaultConfigPath: {Data: []byte("gravity: 50\nrestitution: 0.9\n")},
	}

	tests := []struct {
		name        string
		path        string
		embed       bool
		wantGravity float64
		wantErr     bool
	}{
		{"默认值", "", false, config.DefaultGravity, false},
		{"嵌入配置", "", true, 50, false},
		{"文件优先于嵌入配置", filePath, true, 100, false},
		{"文件不存在", filepath.Join(dir, "missing.yaml"), true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedded.Reset()
			t.Cleanup(embedded.Reset)
			if tt.embed {
				embedded.Init(embeddedFS)
			}

			cfg, err := LoadConfig(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Gravity != tt.wantGravity {
				t.Errorf("expected gravity %v, got %v", tt.wantGravity, cfg.Gravity)
			}
		})
	}
}

// TestLoadConfig_InvalidEmbedded 嵌入配置校验失败时返回错误
func TestLoadConfig_InvalidEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.DefaultConfigPath: {Data: []byte("restitution: 1.5\n")},
	})
	t.Cleanup(embedded.Reset)

	if _, err := LoadConfig(""); err == nil {
		t.Error("expected validation error for restitution 1.5")
	}
}
