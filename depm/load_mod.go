package depm

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"minigo/common"
	"minigo/report"
)

// Module is a minigo module: a named directory of source files identified by
// a module file.
type Module struct {
	// The module's declared name.
	Name string

	// The absolute path to the module directory.
	AbsPath string

	// The minigo version the module was created with.
	Version string
}

// tomlModule represents a minigo module as it is encoded in TOML.
type tomlModule struct {
	Name    string `toml:"name"`
	Version string `toml:"minigo-version"`
}

// LoadModule loads and validates a module.  `abspath` is the absolute path to
// the module directory.
func LoadModule(abspath string) (*Module, error) {
	buff, err := ioutil.ReadFile(filepath.Join(abspath, common.ModuleFileName))
	if err != nil {
		return nil, fmt.Errorf("unable to read module file at `%s`: %s", abspath, err.Error())
	}

	tomlMod := &tomlModule{}
	if err := toml.Unmarshal(buff, tomlMod); err != nil {
		return nil, fmt.Errorf("error parsing module file at `%s`: %s", abspath, err.Error())
	}

	if tomlMod.Name == "" {
		return nil, fmt.Errorf("module at `%s` is missing a name", abspath)
	}

	if !IsValidIdentifier(tomlMod.Name) {
		return nil, fmt.Errorf("module name `%s` must be a valid identifier", tomlMod.Name)
	}

	if tomlMod.Version != common.Version {
		report.ReportCompileWarning("", tomlMod.Name, nil,
			"version of module `%s` (v%s) does not match current minigo version (v%s)",
			tomlMod.Name, tomlMod.Version, common.Version,
		)
	}

	return &Module{Name: tomlMod.Name, AbsPath: abspath, Version: tomlMod.Version}, nil
}

// InitModule creates a new module file with the given name at the given path.
func InitModule(name, path string) error {
	modFilePath := filepath.Join(path, common.ModuleFileName)

	// Never clobber an existing module.
	if _, err := os.Stat(modFilePath); err == nil {
		return errors.New("module file already exists")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("module file error: %s", err.Error())
	}

	if !IsValidIdentifier(name) {
		return errors.New("module name must be a valid identifier")
	}

	f, err := os.Create(modFilePath)
	if err != nil {
		return fmt.Errorf("error creating module file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlModule{Name: name, Version: common.Version}); err != nil {
		return fmt.Errorf("error encoding TOML: %s", err.Error())
	}

	return nil
}

// IsValidIdentifier returns whether the given string is usable as a minigo
// identifier.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, c := range name {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
