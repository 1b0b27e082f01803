package main

import (
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	modular "github.com/edwinhayes/logrus-modular"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/binpick/graspros/genmsgs"
)

var (
	schemasPath  string
	manifestPath string
	outDir       string
	importPath   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "gengrasp",
	Short: "Generate Go bindings for the grasp planning message packages",
	Long: `gengrasp reads the build manifest, resolves every declared message and
service definition from the schema tree, and writes Go binding packages
ready to import.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemasPath, "schemas", "schemas", "colon-separated directories to scan for schema packages")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "graspros.yaml", "path to the build manifest")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "msgs", "directory to generate binding packages in")
	rootCmd.PersistentFlags().StringVar(&importPath, "import-path", "", "import prefix for cross-package types (defaults to the manifest's import_path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func writeCode(pkg string, goName string, code string) error {
	pkgDir := filepath.Join(outDir, pkg)
	if err := os.MkdirAll(pkgDir, 0775); err != nil {
		return err
	}

	res, err := format.Source([]byte(code))
	if err != nil {
		return errors.Wrapf(err, "formatting generated code for %s/%s", pkg, goName)
	}

	filename := filepath.Join(pkgDir, goName+".go")
	return os.WriteFile(filename, res, 0664)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	base := logrus.New()
	if verbose {
		base.SetLevel(logrus.DebugLevel)
	}
	log := modular.NewRootLogger(base).GetModuleLogger()

	manifest, err := genmsgs.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if importPath == "" {
		importPath = manifest.ImportPath
	}

	searchPaths := strings.Split(schemasPath, ":")
	if env := os.Getenv("GRASPROS_SCHEMA_PATH"); env != "" {
		searchPaths = append(searchPaths, strings.Split(env, ":")...)
	}
	ctx := genmsgs.NewContext(searchPaths)
	log.Debugf("discovered %d message and %d service definitions",
		len(ctx.MsgNames()), len(ctx.SrvNames()))

	if err := manifest.Verify(ctx); err != nil {
		return err
	}

	// Dependency packages are generated in full so the declared bindings
	// have something to import.
	var depMsgs []string
	for _, dep := range manifest.Dependencies {
		for _, fullname := range ctx.MsgNames() {
			if strings.HasPrefix(fullname, dep+"/") {
				depMsgs = append(depMsgs, fullname)
			}
		}
	}
	sort.Strings(depMsgs)

	for _, fullname := range append(depMsgs, manifest.MsgFullNames()...) {
		log.Debugf("generating message %s", fullname)
		spec, err := ctx.LoadMsg(fullname)
		if err != nil {
			return err
		}
		code, err := genmsgs.GenerateMessage(spec, importPath)
		if err != nil {
			return err
		}
		if err := writeCode(spec.Package, spec.GoName, code); err != nil {
			return err
		}
		log.Infof("generated %s (md5 %s)", fullname, spec.MD5Sum)
	}

	for _, fullname := range manifest.SrvFullNames() {
		log.Debugf("generating service %s", fullname)
		spec, err := ctx.LoadSrv(fullname)
		if err != nil {
			return err
		}
		srvCode, reqCode, resCode, err := genmsgs.GenerateService(spec, importPath)
		if err != nil {
			return err
		}
		if err := writeCode(spec.Package, spec.GoName, srvCode); err != nil {
			return err
		}
		if err := writeCode(spec.Package, spec.Request.GoName, reqCode); err != nil {
			return err
		}
		if err := writeCode(spec.Package, spec.Response.GoName, resCode); err != nil {
			return err
		}
		log.Infof("generated %s (md5 %s)", fullname, spec.MD5Sum)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
