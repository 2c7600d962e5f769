package cli

import (
	"bytes"

	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/scattering-central/pawsdoc/internal/testutil"
	"github.com/spf13/afero"
)

// testDeps bundles the mocks wired into a test container so individual
// tests can inspect them after execution.
type testDeps struct {
	runner  *testutil.MockRunner
	scanner *testutil.MockScanner
	meta    *testutil.MockMetadata
	loader  *testutil.MockConfigLoader
	manager *testutil.MockConfigManager
	logger  *testutil.MockLogger
	fs      afero.Fs
}

func newTestContainer() (*app.Container, *testDeps) {
	deps := &testDeps{
		runner:  &testutil.MockRunner{},
		scanner: &testutil.MockScanner{},
		meta:    &testutil.MockMetadata{},
		loader:  &testutil.MockConfigLoader{},
		manager: &testutil.MockConfigManager{},
		logger:  &testutil.MockLogger{},
		fs:      afero.NewMemMapFs(),
	}
	c := app.NewWithDeps(
		app.Config{WorkDir: "/repo", StateDir: "/repo/.pawsdoc"},
		deps.runner,
		deps.scanner,
		deps.meta,
		deps.loader,
		deps.manager,
		&testutil.MockClock{},
		deps.logger,
		deps.fs,
	)
	return c, deps
}

// execute runs the root command with the given args and returns the
// captured stdout and stderr.
func execute(c *app.Container, args ...string) (string, string, error) {
	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if args == nil {
		// A nil slice would make cobra fall back to os.Args.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func defaultArgv() []string {
	return []string{"-f", "-d", "3", "-o", domain.DefaultOutputDir, domain.DefaultPackageDir}
}
