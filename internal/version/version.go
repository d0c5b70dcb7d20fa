// Package version exposes build metadata for the lc binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Overridden at release time via
// -ldflags "-X github.com/Peter-Juhasz/line-counter/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info describes the running binary: the linker-injected release data
// plus what the Go toolchain recorded when it was compiled.
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`

	GoVersion string `json:"goVersion"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`

	NumCPU     int `json:"numCPU"`
	GOMAXPROCS int `json:"gomaxprocs"`

	BuildTags []string `json:"buildTags,omitempty"`
	Deps      []Module `json:"deps,omitempty"`
}

// Module identifies one dependency compiled into the binary.
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// Get assembles the version info for this binary.
func Get() Info {
	info := Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,

		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,

		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}

	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range build.Settings {
		if setting.Key == "-tags" && setting.Value != "" {
			info.BuildTags = strings.Split(setting.Value, ",")
		}
	}

	for _, dep := range build.Deps {
		info.Deps = append(info.Deps, Module{
			Path:    dep.Path,
			Version: dep.Version,
		})
	}

	return info
}

// FullVersion renders the report shown by `lc version --full`.
func FullVersion() string {
	info := Get()

	var b strings.Builder
	fmt.Fprintf(&b, "lc %s (%s, %s)\n", info.Version, info.GitCommit, info.BuildDate)
	fmt.Fprintf(&b, "  go:       %s (%s, %s)\n", info.GoVersion, info.Compiler, info.Platform)
	fmt.Fprintf(&b, "  runtime:  %d cpus, gomaxprocs %d\n", info.NumCPU, info.GOMAXPROCS)

	if len(info.BuildTags) > 0 {
		fmt.Fprintf(&b, "  tags:     %s\n", strings.Join(info.BuildTags, ","))
	}

	if len(info.Deps) > 0 {
		b.WriteString("  deps:\n")
		shown := min(8, len(info.Deps))
		for _, dep := range info.Deps[:shown] {
			fmt.Fprintf(&b, "    %s %s\n", dep.Path, dep.Version)
		}
		if rest := len(info.Deps) - shown; rest > 0 {
			fmt.Fprintf(&b, "    ... and %d more\n", rest)
		}
	}

	return b.String()
}
