package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *modular.ModuleLogger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.ErrorLevel)
	logger := modular.NewRootLogger(base).GetModuleLogger()
	return &logger
}

// testPlan lays out fake installed libraries in a temp tree and returns a
// plan aliasing them, mirroring the six-link CUDA layout at small scale.
func testPlan(t *testing.T) Plan {
	t.Helper()
	root := t.TempDir()
	cudaDir := filepath.Join(root, "cuda", "lib64")
	sysDir := filepath.Join(root, "sys")
	require.NoError(t, os.MkdirAll(cudaDir, 0755))
	require.NoError(t, os.MkdirAll(sysDir, 0755))

	plan := Plan{
		SearchDirs: []string{cudaDir, sysDir},
		Profile:    filepath.Join(root, ".bashrc"),
	}
	for _, lib := range []string{"libcudart", "libcublas", "libcufft", "libcurand", "libcusolver"} {
		target := filepath.Join(cudaDir, lib+".so.10.2")
		require.NoError(t, os.WriteFile(target, []byte(lib), 0644))
		plan.Links = append(plan.Links, Link{
			Target: target,
			Alias:  filepath.Join(cudaDir, lib+".so.10.0"),
		})
	}
	target := filepath.Join(sysDir, "libcudnn.so.7.6.5")
	require.NoError(t, os.WriteFile(target, []byte("libcudnn"), 0644))
	plan.Links = append(plan.Links, Link{
		Target: target,
		Alias:  filepath.Join(sysDir, "libcudnn.so.7"),
	})
	return plan
}

func TestApplyCreatesLinks(t *testing.T) {
	plan := testPlan(t)
	b := New(plan, testLogger())

	result, err := b.Apply()
	require.NoError(t, err)
	require.Len(t, result.Links, 6)

	for _, lr := range result.Links {
		assert.Equal(t, LinkCreated, lr.Status, lr.Link.Alias)
		dest, err := os.Readlink(lr.Link.Alias)
		require.NoError(t, err, lr.Link.Alias)
		assert.Equal(t, lr.Link.Target, dest)
	}
	assert.True(t, result.ProfileAppended)

	content, err := os.ReadFile(plan.Profile)
	require.NoError(t, err)
	line := ExportLine(plan.SearchDirs)
	assert.Equal(t, line+"\n", string(content))
	for _, dir := range plan.SearchDirs {
		assert.Contains(t, line, dir)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	plan := testPlan(t)
	b := New(plan, testLogger())

	_, err := b.Apply()
	require.NoError(t, err)

	result, err := b.Apply()
	require.NoError(t, err)
	for _, lr := range result.Links {
		assert.Equal(t, LinkAlreadyLinked, lr.Status, lr.Link.Alias)
	}
	assert.False(t, result.ProfileAppended)

	content, err := os.ReadFile(plan.Profile)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), "LD_LIBRARY_PATH"),
		"rerun must not duplicate the export line")
}

func TestApplyContinuesPastFailures(t *testing.T) {
	plan := testPlan(t)

	// First alias is occupied by a regular file, second points elsewhere.
	require.NoError(t, os.WriteFile(plan.Links[0].Alias, []byte("in the way"), 0644))
	require.NoError(t, os.Symlink(plan.Links[2].Target, plan.Links[1].Alias))

	b := New(plan, testLogger())
	result, err := b.Apply()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 6 links failed")

	assert.Equal(t, LinkFailed, result.Links[0].Status)
	assert.Equal(t, LinkFailed, result.Links[1].Status)
	for _, lr := range result.Links[2:] {
		assert.Equal(t, LinkCreated, lr.Status, lr.Link.Alias)
	}
	// The profile line still lands even when links fail.
	content, readErr := os.ReadFile(plan.Profile)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "LD_LIBRARY_PATH")
}

func TestApplyReportsProfileAndLinkFailures(t *testing.T) {
	plan := testPlan(t)
	require.NoError(t, os.WriteFile(plan.Links[0].Alias, []byte("in the way"), 0644))
	// A directory at the profile path makes the append fail.
	require.NoError(t, os.Mkdir(plan.Profile, 0755))

	b := New(plan, testLogger())
	result, err := b.Apply()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 6 links failed")
	assert.Contains(t, err.Error(), "profile")
	assert.False(t, result.ProfileAppended)
	for _, lr := range result.Links[1:] {
		assert.Equal(t, LinkCreated, lr.Status, lr.Link.Alias)
	}
}

func TestApplyMissingTarget(t *testing.T) {
	plan := testPlan(t)
	require.NoError(t, os.Remove(plan.Links[5].Target))

	b := New(plan, testLogger())
	result, err := b.Apply()
	require.Error(t, err)
	assert.Equal(t, LinkFailed, result.Links[5].Status)
	assert.Len(t, result.Failed(), 1)
}

func TestDryRun(t *testing.T) {
	plan := testPlan(t)
	b := New(plan, testLogger())
	b.SetDryRun(true)

	result, err := b.Apply()
	require.NoError(t, err)
	for _, lr := range result.Links {
		assert.Equal(t, LinkCreated, lr.Status)
		_, statErr := os.Lstat(lr.Link.Alias)
		assert.True(t, os.IsNotExist(statErr), "dry run must not create %s", lr.Link.Alias)
	}
	_, statErr := os.Stat(plan.Profile)
	assert.True(t, os.IsNotExist(statErr), "dry run must not write the profile")
}

func TestEnsureProfileLine(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, ".bashrc")
	dirs := []string{"/usr/local/cuda-10.2/lib64", "/usr/lib/x86_64-linux-gnu"}

	// Missing profile is created.
	appended, err := EnsureProfileLine(profile, dirs)
	require.NoError(t, err)
	assert.True(t, appended)

	// Identical line is not appended twice.
	appended, err = EnsureProfileLine(profile, dirs)
	require.NoError(t, err)
	assert.False(t, appended)

	// A profile without a trailing newline still gets its own line.
	require.NoError(t, os.WriteFile(profile, []byte("# my bashrc"), 0644))
	appended, err = EnsureProfileLine(profile, dirs)
	require.NoError(t, err)
	assert.True(t, appended)

	content, err := os.ReadFile(profile)
	require.NoError(t, err)
	assert.Equal(t, "# my bashrc\n"+ExportLine(dirs)+"\n", string(content))
}

func TestDefaultPlan(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	plan := cfg.Plan()
	require.Len(t, plan.Links, 6)
	assert.Equal(t, "/usr/local/cuda-10.2/lib64/libcudart.so.10.0", plan.Links[0].Alias)
	assert.Equal(t, "/usr/local/cuda-10.2/lib64/libcudart.so.10.2", plan.Links[0].Target)
	assert.Equal(t, "/usr/lib/x86_64-linux-gnu/libcudnn.so.7", plan.Links[5].Alias)
	assert.Equal(t,
		[]string{"/usr/local/cuda-10.2/lib64", "/usr/lib/x86_64-linux-gnu"},
		plan.SearchDirs)
	assert.Contains(t, plan.Profile, ".bashrc")
	assert.Equal(t, DefaultPlan(), plan)
}

func TestConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cudaenv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cuda_lib_dir: /opt/cuda/lib64
profile: /home/robot/.profile
links:
  - target: /opt/cuda/lib64/libcudart.so.11.0
    alias: /opt/cuda/lib64/libcudart.so.10.0
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cuda/lib64", cfg.CudaLibDir)
	assert.Equal(t, "/home/robot/.profile", cfg.Profile)

	plan := cfg.Plan()
	require.Len(t, plan.Links, 1)
	assert.Equal(t, "/opt/cuda/lib64/libcudart.so.10.0", plan.Links[0].Alias)
	assert.Equal(t, []string{"/opt/cuda/lib64", "/usr/lib/x86_64-linux-gnu"}, plan.SearchDirs)
}
