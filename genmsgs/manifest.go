package genmsgs

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Manifest is the build manifest of an interface package: the declared
// service and message lists and the data-only schema packages they depend
// on. Generation is driven by the manifest, never by whatever happens to be
// on disk, so a stray or missing schema file fails the build instead of
// silently changing the generated surface.
type Manifest struct {
	Package      string   `mapstructure:"package"`
	Dependencies []string `mapstructure:"dependencies"`
	Messages     []string `mapstructure:"messages"`
	Services     []string `mapstructure:"services"`
	ImportPath   string   `mapstructure:"import_path"`
}

// LoadManifest reads the build manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling manifest %s", path)
	}

	if m.Package == "" {
		return nil, errors.Errorf("manifest %s: missing package name", path)
	}
	if m.ImportPath == "" {
		return nil, errors.Errorf("manifest %s: missing import_path", path)
	}
	if len(m.Services) == 0 && len(m.Messages) == 0 {
		return nil, errors.Errorf("manifest %s: declares no messages or services", path)
	}
	return &m, nil
}

// MsgFullNames returns the full names of the declared messages.
func (m *Manifest) MsgFullNames() []string {
	return m.qualified(m.Messages)
}

// SrvFullNames returns the full names of the declared services.
func (m *Manifest) SrvFullNames() []string {
	return m.qualified(m.Services)
}

func (m *Manifest) qualified(shorts []string) []string {
	full := make([]string, len(shorts))
	for i, s := range shorts {
		full[i] = m.Package + sep + s
	}
	return full
}

// Verify checks the manifest against the discovered schema tree. Every
// declared message and service must exist, every schema file of the package
// must be declared, and every dependency package must contribute at least
// one definition.
func (m *Manifest) Verify(ctx *Context) error {
	declaredMsgs := make(map[string]bool)
	for _, name := range m.MsgFullNames() {
		declaredMsgs[name] = true
		if _, ok := ctx.msgPathMap[name]; !ok {
			return errors.Errorf("declared message %s has no schema file", name)
		}
	}
	declaredSrvs := make(map[string]bool)
	for _, name := range m.SrvFullNames() {
		declaredSrvs[name] = true
		if _, ok := ctx.srvPathMap[name]; !ok {
			return errors.Errorf("declared service %s has no schema file", name)
		}
	}

	var undeclared []string
	for name := range ctx.msgPathMap {
		if strings.HasPrefix(name, m.Package+sep) && !declaredMsgs[name] {
			undeclared = append(undeclared, name)
		}
	}
	for name := range ctx.srvPathMap {
		if strings.HasPrefix(name, m.Package+sep) && !declaredSrvs[name] {
			undeclared = append(undeclared, name)
		}
	}
	if len(undeclared) > 0 {
		sort.Strings(undeclared)
		return errors.Errorf("schema files not declared in the manifest: %s",
			strings.Join(undeclared, ", "))
	}

	for _, dep := range m.Dependencies {
		found := false
		for name := range ctx.msgPathMap {
			if strings.HasPrefix(name, dep+sep) {
				found = true
				break
			}
		}
		if !found {
			return errors.Errorf("dependency package %s contributes no definitions", dep)
		}
	}
	return nil
}
