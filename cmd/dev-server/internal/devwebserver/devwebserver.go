package devwebserver

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

const (
	packagePath = "github.com/silbinarywolf/toy-pixel-box/cmd/dev-server/internal/devwebserver"
)

type Arguments struct {
	Port      string // :8080
	Directory string // .
	Tags      string // ie. "debug"
}

// server holds what is resolved once at startup
type server struct {
	arguments     Arguments
	wasmJSPath    string
	indexHTMLPath string
	tmpOutputDir  string
}

// Serve will serve a WebAssembly build of any package in the module to the web browser,
// ie. http://localhost:8080/cmd/pixelbox/
//
// This function will block until exit.
func Serve(args []string) error {
	flagSet := flag.NewFlagSet("serve", flag.ExitOnError)
	tags := flagSet.String("tags", "", "a list of build tags to consider satisfied during the build")
	port := flagSet.String("port", ":8080", "address to listen on")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	s := &server{}
	s.arguments = Arguments{
		Port:      *port,
		Directory: ".",
		Tags:      *tags,
	}

	// Get default resources
	var err error
	s.wasmJSPath, err = findWasmExecJS(runtime.GOROOT())
	if err != nil {
		return err
	}
	s.indexHTMLPath, err = getDefaultIndexHTMLPath(s.arguments.Directory)
	if err != nil {
		return err
	}
	s.tmpOutputDir, err = os.MkdirTemp("", "dev-server")
	if err != nil {
		return errors.Wrap(err, "create build directory")
	}

	log.Printf("Listening on http://localhost%s...", s.arguments.Port)
	if err := http.ListenAndServe(s.arguments.Port, s); err != nil {
		return errors.Wrap(err, "listen")
	}
	return nil
}

// splitRequestPath turns "/cmd/pixelbox/main.wasm" into the package directory
// "cmd/pixelbox" and the file "main.wasm". Directories serve "index.html".
func splitRequestPath(urlPath string) (pkg string, file string) {
	upath := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if strings.HasSuffix(urlPath, "/") || upath == "" {
		return upath, "index.html"
	}
	pkg = path.Dir(upath)
	if pkg == "." {
		pkg = ""
	}
	return pkg, path.Base(upath)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pkg, file := splitRequestPath(r.URL.Path)
	switch file {
	case "index.html":
		log.Print("serving index.html: " + s.indexHTMLPath)
		http.ServeFile(w, r, s.indexHTMLPath)
	case "wasm_exec.js":
		log.Print("serving wasm_exec.js: " + s.wasmJSPath)
		http.ServeFile(w, r, s.wasmJSPath)
	case "main.wasm":
		s.serveWasm(w, r, pkg)
	default:
		http.NotFound(w, r)
	}
}

// newBuildOutput reserves a file for one build so concurrent requests
// never read each other's half-written output
func newBuildOutput(dir string) (string, error) {
	f, err := os.CreateTemp(dir, "main-*.wasm")
	if err != nil {
		return "", errors.Wrap(err, "create build output")
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}

func (s *server) serveWasm(w http.ResponseWriter, r *http.Request, pkg string) {
	output, err := newBuildOutput(s.tmpOutputDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(output)
	args := []string{"build", "-o", output}
	if tags := s.arguments.Tags; tags != "" {
		args = append(args, "-tags", tags)
	}
	args = append(args, "./"+pkg)
	log.Print("go ", strings.Join(args, " "))
	cmdBuild := exec.Command(gobin(), args...)
	cmdBuild.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmdBuild.Dir = s.arguments.Directory
	out, err := cmdBuild.CombinedOutput()
	if err != nil {
		log.Print(err)
		log.Print(string(out))
		http.Error(w, string(out), http.StatusInternalServerError)
		return
	}
	if len(out) > 0 {
		log.Print(string(out))
	}

	f, err := os.Open(output)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()
	http.ServeContent(w, r, "main.wasm", time.Now(), f)
}

func gobin() string {
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

// findWasmExecJS finds the JavaScript support file shipped with the Go toolchain.
// Go 1.24 moved it from misc/wasm to lib/wasm.
func findWasmExecJS(goroot string) (string, error) {
	const baseName = "wasm_exec.js"
	for _, dir := range []string{"lib", "misc"} {
		p := filepath.Join(goroot, dir, "wasm", baseName)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.Errorf("unable to find %s in GOROOT: %s", baseName, goroot)
}

var (
	cmdDir string
	cmdErr error
)

func computeCmdSourceDir(gameDir string) (string, error) {
	if cmdDir == "" && cmdErr == nil {
		cmdDir, cmdErr = computeCmdSourceDirUncached(gameDir)
	}
	return cmdDir, cmdErr
}

func computeCmdSourceDirUncached(gameDir string) (string, error) {
	currentDir, err := filepath.Abs(gameDir)
	if err != nil {
		return "", err
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  currentDir,
	}
	pkgs, err := packages.Load(cfg, packagePath)
	if err != nil {
		return "", errors.Wrap(err, "load package")
	}
	if len(pkgs) == 0 {
		return "", errors.New("Unable to find package: " + packagePath)
	}
	pkg := pkgs[0]
	if len(pkg.GoFiles) == 0 {
		return "", errors.New("Cannot find *.go files in:" + currentDir)
	}
	dir := filepath.Dir(pkg.GoFiles[0])
	return dir, nil
}

func getDefaultIndexHTMLPath(gameDir string) (string, error) {
	const baseName = "index.html"
	dir, err := computeCmdSourceDir(gameDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName), nil
}
