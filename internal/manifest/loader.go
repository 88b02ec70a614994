package manifest

import (
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/quantmind-br/canister-counter/internal/utils"
)

// FileName is the manifest file looked up in a project directory
const FileName = "dfx.json"

// FileReader reads whole files
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Manifest is a parsed dfx.json document
type Manifest struct {
	Path string
	Root Value
	Size int64
}

// Loader loads manifest files
type Loader struct {
	reader FileReader
	logger *utils.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithReader replaces the filesystem used to read manifests
func WithReader(r FileReader) Option {
	return func(l *Loader) {
		l.reader = r
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *utils.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new manifest loader
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		reader: osReader{},
		logger: utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ResolvePath returns the manifest path inside dir
func ResolvePath(dir string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(utils.ExpandPath(dir), FileName)
}

// Load reads and parses the manifest found in the given project directory
func (l *Loader) Load(dir string) (*Manifest, error) {
	path := ResolvePath(dir)
	l.logger.Debug().Str("path", path).Msg("Reading manifest")

	data, err := l.reader.ReadFile(path)
	if err != nil {
		return nil, NewFileReadError(path, err)
	}

	l.logger.Debug().
		Str("path", path).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("Manifest read")

	return l.LoadFromBytes(path, data)
}

// LoadFromBytes parses manifest content; path is only used for error reporting
func (l *Loader) LoadFromBytes(path string, data []byte) (*Manifest, error) {
	root, err := Parse(data)
	if err != nil {
		return nil, NewParseError(path, err)
	}

	return &Manifest{
		Path: path,
		Root: root,
		Size: int64(len(data)),
	}, nil
}
