// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Default view size for browsers created without WithViewSize.
const (
	DefaultViewWidth  = 800
	DefaultViewHeight = 600
)

// DefaultPumpInterval is the message loop period used by Run and Drain.
const DefaultPumpInterval = time.Second / 60

// Options for creating a Runtime. All fields are optional.
type Options struct {
	BaseDir      string        `mapstructure:"base_dir"`      // Directory containing the bridge library and the engine binaries. Defaults to working directory.
	Debug        bool          `mapstructure:"debug"`         // Verbose engine logging.
	ViewWidth    int           `mapstructure:"view_width"`    // Default browser view width.
	ViewHeight   int           `mapstructure:"view_height"`   // Default browser view height.
	PumpInterval time.Duration `mapstructure:"pump_interval"` // Message loop period when no graphics loop drives Update.
	Settings     Settings      `mapstructure:"engine"`

	Logger     logrus.FieldLogger    `mapstructure:"-"` // Defaults to the package logger.
	Registerer prometheus.Registerer `mapstructure:"-"` // Metrics are registered here when set.
}

// LoadOptions reads Options from an optional config file (YAML, TOML or JSON)
// and CEFUI_* environment variables, e.g. CEFUI_VIEW_WIDTH or
// CEFUI_ENGINE_CACHE_PATH. An empty path looks for cefui.{yaml,toml,json} in
// the working directory; a missing default file is not an error.
func LoadOptions(path string) (Options, error) {
	v := viper.New()

	v.SetDefault("base_dir", "")
	v.SetDefault("debug", false)
	v.SetDefault("view_width", DefaultViewWidth)
	v.SetDefault("view_height", DefaultViewHeight)
	v.SetDefault("pump_interval", DefaultPumpInterval)
	v.SetDefault("engine.browser_subprocess_path", "")
	v.SetDefault("engine.cache_path", "")
	v.SetDefault("engine.locale", "")
	v.SetDefault("engine.log_file", "")
	v.SetDefault("engine.log_severity", "")
	v.SetDefault("engine.windowless_frame_rate", 60)
	v.SetDefault("engine.background_color", 0)
	v.SetDefault("engine.no_sandbox", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("cefui")
	}

	v.SetEnvPrefix("CEFUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Options{}, WithExitCodeIfNone(fmt.Errorf("reading config: %w", err), ExitConfig)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, WithExitCodeIfNone(fmt.Errorf("unmarshal config: %w", err), ExitConfig)
	}
	if opts.ViewWidth <= 0 || opts.ViewHeight <= 0 {
		return Options{}, WithExitCodeIfNone(
			fmt.Errorf("invalid view size %dx%d", opts.ViewWidth, opts.ViewHeight), ExitConfig)
	}
	return opts, nil
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.ViewWidth <= 0 {
		o.ViewWidth = DefaultViewWidth
	}
	if o.ViewHeight <= 0 {
		o.ViewHeight = DefaultViewHeight
	}
	if o.PumpInterval <= 0 {
		o.PumpInterval = DefaultPumpInterval
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}
	if o.Settings.LogSeverity == "" {
		o.Settings.LogSeverity = "warning"
		if o.Debug {
			o.Settings.LogSeverity = "verbose"
		}
	}
	return o
}

// resolveBaseDir returns baseDir, or the first of the working directory and
// the executable's directory that contains the bridge library.
func resolveBaseDir(baseDir string) string {
	if baseDir != "" {
		return baseDir
	}
	baseDir, _ = os.Getwd()
	if _, err := os.Stat(filepath.Join(baseDir, bridgeLibName())); err != nil {
		if exe, _ := os.Executable(); exe != "" {
			baseDir = filepath.Dir(exe)
		}
	}
	return baseDir
}
