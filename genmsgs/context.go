package genmsgs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// packageManifestFile marks a directory as a schema package.
const packageManifestFile = "package.xml"

// isSchemaPackage reports whether dir is a schema package root.
func isSchemaPackage(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, packageManifestFile))
	return err == nil
}

func findDefinitions(searchPaths []string, subdir string, ext string) map[string]string {
	found := make(map[string]string)

	visit := func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil
		}
		if !isSchemaPackage(path) {
			return nil
		}
		pkgName := filepath.Base(path)
		matches, err := filepath.Glob(filepath.Join(path, subdir, "*"+ext))
		if err == nil {
			for _, m := range matches {
				basename := filepath.Base(m)
				rootname := strings.TrimSuffix(basename, ext)
				found[pkgName+sep+rootname] = m
			}
		}
		// Packages do not nest.
		return filepath.SkipDir
	}

	for _, p := range searchPaths {
		if p == "" {
			continue
		}
		_ = filepath.Walk(p, visit)
	}
	return found
}

// Context resolves message and service names to their parsed specs. It scans
// the given search paths for schema packages once at construction and parses
// definitions lazily, caching message specs so nested MD5 computation does
// not re-read files.
type Context struct {
	msgPathMap  map[string]string
	srvPathMap  map[string]string
	msgRegistry map[string]*MsgSpec
	mu          sync.RWMutex
}

// NewContext scans searchPaths for schema packages. A path that does not
// exist is skipped, matching the tolerance of ROS package path handling.
func NewContext(searchPaths []string) *Context {
	return &Context{
		msgPathMap:  findDefinitions(searchPaths, "msg", ".msg"),
		srvPathMap:  findDefinitions(searchPaths, "srv", ".srv"),
		msgRegistry: make(map[string]*MsgSpec),
	}
}

// MsgNames returns the full names of all discovered messages.
func (ctx *Context) MsgNames() []string {
	names := make([]string, 0, len(ctx.msgPathMap))
	for name := range ctx.msgPathMap {
		names = append(names, name)
	}
	return names
}

// SrvNames returns the full names of all discovered services.
func (ctx *Context) SrvNames() []string {
	names := make([]string, 0, len(ctx.srvPathMap))
	for name := range ctx.srvPathMap {
		names = append(names, name)
	}
	return names
}

func (ctx *Context) register(fullname string, spec *MsgSpec) {
	ctx.mu.Lock()
	ctx.msgRegistry[fullname] = spec
	ctx.mu.Unlock()
}

// LoadMsgFromString parses a message definition given as text. The parsed
// spec is registered under fullname so later loads and nested MD5 lookups
// resolve it from the cache.
func (ctx *Context) LoadMsgFromString(text string, fullname string) (*MsgSpec, error) {
	packageName, _, err := packageResourceName(fullname)
	if err != nil {
		return nil, err
	}

	var fields []Field
	var constants []Constant
	for lineno, origLine := range strings.Split(text, "\n") {
		cleanLine := stripComment(origLine)
		if len(cleanLine) == 0 {
			continue
		} else if strings.Contains(cleanLine, constChar) {
			constant, err := loadConstantLine(origLine)
			if err != nil {
				return nil, newSyntaxError(fullname, lineno, err.Error())
			}
			constants = append(constants, *constant)
		} else {
			field, err := loadFieldLine(origLine, packageName)
			if err != nil {
				return nil, newSyntaxError(fullname, lineno, err.Error())
			}
			fields = append(fields, *field)
		}
	}

	spec := newMsgSpec(fields, constants, text, fullname)
	md5sum, err := computeMsgMD5(ctx, spec)
	if err != nil {
		return nil, errors.Wrapf(err, "computing MD5 of %s", fullname)
	}
	spec.MD5Sum = md5sum
	ctx.register(fullname, spec)
	return spec, nil
}

// LoadMsgFromFile parses the message definition stored at filePath.
func (ctx *Context) LoadMsgFromFile(filePath string, fullname string) (*MsgSpec, error) {
	text, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filePath)
	}
	return ctx.LoadMsgFromString(string(text), fullname)
}

// LoadMsg resolves fullname from the registry or the discovered schema tree.
func (ctx *Context) LoadMsg(fullname string) (*MsgSpec, error) {
	ctx.mu.RLock()
	spec, ok := ctx.msgRegistry[fullname]
	ctx.mu.RUnlock()
	if ok {
		return spec, nil
	}
	path, ok := ctx.msgPathMap[fullname]
	if !ok {
		return nil, errors.Errorf("message definition of `%s` not found", fullname)
	}
	return ctx.LoadMsgFromFile(path, fullname)
}

// splitSrvText splits a service definition at each line consisting of the
// request/response delimiter. A '---' embedded in a comment or constant does
// not split.
func splitSrvText(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	var parts []string
	var cur strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == srvDelim {
			parts = append(parts, cur.String())
			cur.Reset()
			cur.WriteString("\n")
			continue
		}
		cur.WriteString(line)
	}
	return append(parts, cur.String())
}

// LoadSrvFromString parses a service definition given as text. The request
// and response halves register as fullname+"Request" and fullname+"Response".
func (ctx *Context) LoadSrvFromString(text string, fullname string) (*SrvSpec, error) {
	packageName, shortName, err := packageResourceName(fullname)
	if err != nil {
		return nil, err
	}

	components := splitSrvText(text)
	if len(components) != 2 {
		return nil, errors.Errorf("service %s: missing '%s' delimiter", fullname, srvDelim)
	}

	reqSpec, err := ctx.LoadMsgFromString(components[0], fullname+"Request")
	if err != nil {
		return nil, err
	}
	resSpec, err := ctx.LoadMsgFromString(components[1], fullname+"Response")
	if err != nil {
		return nil, err
	}

	spec := &SrvSpec{
		Package:   packageName,
		ShortName: shortName,
		GoName:    ToGoName(shortName),
		FullName:  fullname,
		Text:      text,
		Request:   reqSpec,
		Response:  resSpec,
	}
	md5sum, err := computeSrvMD5(ctx, spec)
	if err != nil {
		return nil, errors.Wrapf(err, "computing MD5 of %s", fullname)
	}
	spec.MD5Sum = md5sum
	return spec, nil
}

// LoadSrvFromFile parses the service definition stored at filePath.
func (ctx *Context) LoadSrvFromFile(filePath string, fullname string) (*SrvSpec, error) {
	text, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filePath)
	}
	return ctx.LoadSrvFromString(string(text), fullname)
}

// LoadSrv resolves fullname from the discovered schema tree.
func (ctx *Context) LoadSrv(fullname string) (*SrvSpec, error) {
	path, ok := ctx.srvPathMap[fullname]
	if !ok {
		return nil, errors.Errorf("service definition of `%s` not found", fullname)
	}
	return ctx.LoadSrvFromFile(path, fullname)
}
