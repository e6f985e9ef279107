// Package config loads the shaderast configuration file and sets up
// logging.
package config

import (
	"io/ioutil"
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/shaderast/ast"
	"github.com/pontaoski/shaderast/errors"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/shaderast", "config")

// DefaultPath is read when no path is given.
const DefaultPath = "shaderast.yaml"

type ObjectType struct {
	Name    string   `yaml:"Name"`
	Aliases []string `yaml:"Aliases"`
}

type Qualifier struct {
	Key  string `yaml:"Key"`
	Post bool   `yaml:"Post"`
}

type Config struct {
	LogLevel    string       `yaml:"LogLevel"`
	ObjectTypes []ObjectType `yaml:"ObjectTypes"`
	Qualifiers  []Qualifier  `yaml:"Qualifiers"`
}

func Default() *Config {
	return &Config{LogLevel: "INFO"}
}

// Load reads the file at path. A missing file is not an error; the defaults
// are returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		plog.Debugf("%s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return Parse(data)
}

// Parse decodes a configuration document. Keys left out keep their default
// values.
func Parse(data []byte) (*Config, error) {
	conf := Default()
	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return nil, tracerr.Wrap(err)
	}
	if _, err := capnslog.ParseLevel(conf.LogLevel); err != nil {
		return nil, tracerr.Wrap(errors.InvalidArgument{What: "log level", Text: conf.LogLevel})
	}
	return conf, nil
}

// Apply registers the configured object types and qualifiers in r.
func (c *Config) Apply(r *ast.Registry) error {
	for _, o := range c.ObjectTypes {
		if o.Name == "" {
			return tracerr.Wrap(errors.InvalidArgument{What: "object type name", Text: o.Name})
		}
		r.RegisterObjectType(ast.NewObjectType(o.Name, o.Aliases...))
	}
	for _, q := range c.Qualifiers {
		if _, err := r.RegisterQualifier(q.Key, q.Post); err != nil {
			return err
		}
	}
	plog.Debugf("applied %d object types and %d qualifiers", len(c.ObjectTypes), len(c.Qualifiers))
	return nil
}

// SetupLogging sends all package logs to stderr at the given level. debug
// adds file and line information.
func SetupLogging(level string, debug bool) error {
	lvl, err := capnslog.ParseLevel(level)
	if err != nil {
		return tracerr.Wrap(errors.InvalidArgument{What: "log level", Text: level})
	}
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, debug))
	capnslog.SetGlobalLogLevel(lvl)
	return nil
}
