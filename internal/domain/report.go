package domain

import "time"

// Report summarizes a generation run for the optional YAML report.
type Report struct {
	GeneratedAt time.Time      `yaml:"generated_at"`
	Commit      string         `yaml:"commit,omitempty"`
	Targets     []ReportTarget `yaml:"targets"`
}

// ReportTarget records one sphinx-apidoc run within a report.
type ReportTarget struct {
	Name       string   `yaml:"name"`
	PackageDir string   `yaml:"package_dir"`
	Argv       []string `yaml:"argv"`
	Stubs      []string `yaml:"stubs,omitempty"`
}
