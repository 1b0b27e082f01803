package genmsgs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest("../graspros.yaml")
	require.NoError(t, err)

	assert.Equal(t, "grasp_msgs", m.Package)
	assert.Equal(t, []string{"std_msgs", "sensor_msgs", "geometry_msgs"}, m.Dependencies)
	assert.Equal(t, []string{"GQCNNGrasp", "SegmentedObject"}, m.Messages)
	assert.Equal(t,
		[]string{"gqcnnpj", "gqcnnsuction", "fcgqcnnpj", "fcgqcnnsuction", "maskrcnn"},
		m.Services)
	assert.Equal(t, "github.com/binpick/graspros/msgs", m.ImportPath)

	assert.Equal(t,
		[]string{"grasp_msgs/gqcnnpj", "grasp_msgs/gqcnnsuction", "grasp_msgs/fcgqcnnpj",
			"grasp_msgs/fcgqcnnsuction", "grasp_msgs/maskrcnn"},
		m.SrvFullNames())
}

func TestVerify(t *testing.T) {
	m, err := LoadManifest("../graspros.yaml")
	require.NoError(t, err)

	ctx := NewContext([]string{"../schemas"})
	assert.NoError(t, m.Verify(ctx))
}

func TestVerifyDeclaredButMissing(t *testing.T) {
	m, err := LoadManifest("../graspros.yaml")
	require.NoError(t, err)
	m.Services = append(m.Services, "phantom")

	ctx := NewContext([]string{"../schemas"})
	err = m.Verify(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grasp_msgs/phantom")
}

func TestVerifyUndeclaredSchema(t *testing.T) {
	m, err := LoadManifest("../graspros.yaml")
	require.NoError(t, err)

	root := t.TempDir()
	writeSchemaPackage(t, root, "grasp_msgs", map[string]string{
		"Stray": "int32 v\n",
	}, nil)

	ctx := NewContext([]string{"../schemas", root})
	err = m.Verify(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grasp_msgs/Stray")
}

func TestVerifyEmptyDependency(t *testing.T) {
	m, err := LoadManifest("../graspros.yaml")
	require.NoError(t, err)
	m.Dependencies = append(m.Dependencies, "nav_msgs")

	ctx := NewContext([]string{"../schemas"})
	err = m.Verify(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nav_msgs")
}

func TestLoadManifestValidation(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	_, err := LoadManifest(write("nopkg.yaml", "services:\n  - gqcnnpj\nimport_path: x\n"))
	assert.Error(t, err)

	_, err = LoadManifest(write("noimport.yaml", "package: grasp_msgs\nservices:\n  - gqcnnpj\n"))
	assert.Error(t, err)

	_, err = LoadManifest(write("empty.yaml", "package: grasp_msgs\nimport_path: x\n"))
	assert.Error(t, err)

	_, err = LoadManifest(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
